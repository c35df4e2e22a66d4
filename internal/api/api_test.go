package api

import (
	"encoding/json"
	"testing"
)

func TestSanitizeCustomCode(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"my code!", "mycode"},
		{"promo", "promo"},
		{"  promo  ", "promo"},
		{"hello-world_42", "hello-world_42"},
		{"släsh/dot.", "slshdot"},
		{"", ""},
		{"!!!", ""},
		{"abcdefghijklmnopqrstuvwxyz", "abcdefghijklmnopqrst"},
	}
	for _, c := range cases {
		if got := SanitizeCustomCode(c.in); got != c.want {
			t.Errorf("SanitizeCustomCode(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestCleanURL(t *testing.T) {
	if got, ok := CleanURL("  https://example.com  "); !ok || got != "https://example.com" {
		t.Fatalf("CleanURL trim: got %q ok=%v", got, ok)
	}
	if _, ok := CleanURL("   "); ok {
		t.Fatal("CleanURL accepted blank input")
	}
}

func TestPathBuilders(t *testing.T) {
	if got := PathURL("abc123"); got != "/api/urls/abc123" {
		t.Errorf("PathURL = %q", got)
	}
	// Codes never contain slashes after sanitizing, but the builder must not
	// let a raw one splice the path.
	if got := PathURL("a/b"); got != "/api/urls/a%2Fb" {
		t.Errorf("PathURL escaping = %q", got)
	}
	if got := PathURLQR("abc"); got != "/api/urls/abc/qr" {
		t.Errorf("PathURLQR = %q", got)
	}
	if got := PathURLsLimit(5); got != "/api/urls?limit=5" {
		t.Errorf("PathURLsLimit = %q", got)
	}
	if got := PathKey(7); got != "/api/keys/7" {
		t.Errorf("PathKey = %q", got)
	}
}

func TestTimeUnmarshalFlavors(t *testing.T) {
	cases := []string{
		`"2026-08-28T10:11:12Z"`,
		`"2026-08-28T10:11:12.345678Z"`,
		`"2026-08-28T10:11:12.345678"`, // service emits naive UTC timestamps
		`"2026-08-28T10:11:12"`,
	}
	for _, c := range cases {
		var ts Time
		if err := json.Unmarshal([]byte(c), &ts); err != nil {
			t.Errorf("unmarshal %s: %v", c, err)
			continue
		}
		if ts.Year() != 2026 || ts.Hour() != 10 {
			t.Errorf("unmarshal %s: got %v", c, ts.Time)
		}
	}

	var zero Time
	if err := json.Unmarshal([]byte(`""`), &zero); err != nil {
		t.Fatalf("empty timestamp: %v", err)
	}
	if !zero.IsZero() {
		t.Fatal("empty timestamp should decode to zero time")
	}
}

func TestURLStatsDecoding(t *testing.T) {
	raw := `{
		"short_code": "promo",
		"original_url": "https://example.com/a",
		"short_url": "https://sho.rt/promo",
		"click_count": 3,
		"created_at": "2026-08-28T10:11:12.345678",
		"top_referers": [
			{"referer": "twitter.com", "count": 2},
			{"referer": "Direct", "count": 1}
		]
	}`
	var st URLStats
	if err := json.Unmarshal([]byte(raw), &st); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if st.ShortCode != "promo" || st.ClickCount != 3 {
		t.Errorf("unexpected link fields: %+v", st.ShortLink)
	}
	if len(st.TopReferrers) != 2 || st.TopReferrers[0].Referrer != "twitter.com" {
		t.Errorf("unexpected referrers: %+v", st.TopReferrers)
	}
	if st.TopReferrers[0].Count < st.TopReferrers[1].Count {
		t.Error("referrers not descending by count")
	}
}

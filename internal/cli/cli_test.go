package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"shrtnr/internal/client"
	"shrtnr/internal/config"
)

func testApp(t *testing.T, baseURL string) *app {
	t.Helper()
	return &app{
		store:  config.NewFileStore(filepath.Join(t.TempDir(), ".shrtnr")),
		st:     defaultStyles(),
		apiURL: baseURL,
	}
}

func runCmd(t *testing.T, a *app, args ...string) (string, error) {
	t.Helper()
	root := a.rootCmd()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func fakeShortenServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.URL.Path == "/api/shorten":
			var req struct {
				URL        string `json:"url"`
				CustomCode string `json:"custom_code"`
			}
			_ = json.NewDecoder(r.Body).Decode(&req)
			code := req.CustomCode
			if code == "" {
				code = "abc123"
			}
			_ = json.NewEncoder(w).Encode(map[string]string{
				"short_url":  "http://" + r.Host + "/" + code,
				"short_code": code,
			})
		case r.URL.Path == "/api/stats":
			_ = json.NewEncoder(w).Encode(map[string]int{
				"total_urls": 12, "total_clicks": 34, "urls_today": 1, "clicks_today": 2,
			})
		default:
			w.WriteHeader(404)
			_ = json.NewEncoder(w).Encode(map[string]string{"detail": "URL not found"})
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestShortenCommandOutput(t *testing.T) {
	srv := fakeShortenServer(t)
	a := testApp(t, srv.URL)

	out, err := runCmd(t, a, "https://example.com/a/very/long/path", "--no-copy", "-c", "my code!")
	if err != nil {
		t.Fatalf("shorten: %v", err)
	}
	if !strings.Contains(out, "URL shortened!") {
		t.Errorf("missing success line in %q", out)
	}
	// Sanitized custom code flows through to the rendered short URL.
	if !strings.Contains(out, "/mycode") {
		t.Errorf("sanitized code missing from output: %q", out)
	}
}

func TestGlobalStatsCommand(t *testing.T) {
	srv := fakeShortenServer(t)
	a := testApp(t, srv.URL)

	out, err := runCmd(t, a, "stats")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	for _, want := range []string{"SHRTNR Global Stats", "12", "34"} {
		if !strings.Contains(out, want) {
			t.Errorf("stats output missing %q: %q", want, out)
		}
	}
}

func TestStatsNotFoundSurfacesDetail(t *testing.T) {
	srv := fakeShortenServer(t)
	a := testApp(t, srv.URL)

	_, err := runCmd(t, a, "stats", "nosuchcode")
	if err == nil {
		t.Fatal("expected error for missing code")
	}
	if !client.IsNotFound(err) {
		t.Fatalf("want 404 API error, got %v", err)
	}
	if !strings.Contains(a.renderError(err), "URL not found") {
		t.Errorf("rendered error lost the service detail: %q", a.renderError(err))
	}
}

func TestNetworkErrorRendering(t *testing.T) {
	srv := fakeShortenServer(t)
	base := srv.URL
	srv.Close()

	a := testApp(t, base)
	_, err := runCmd(t, a, "stats")
	if err == nil {
		t.Fatal("expected connectivity failure")
	}
	rendered := a.renderError(err)
	if !strings.Contains(rendered, "Failed to connect") || !strings.Contains(rendered, base) {
		t.Errorf("network rendering missing base URL or hint: %q", rendered)
	}
}

func TestConfigPersistAndShow(t *testing.T) {
	a := testApp(t, "")

	if _, err := runCmd(t, a, "config", "--set-api-url", "http://localhost:8000", "--set-api-key", "sk_live_abcd"); err != nil {
		t.Fatalf("config set: %v", err)
	}
	stored, _ := a.store.Load()
	if stored.APIURL != "http://localhost:8000" || stored.APIKey != "sk_live_abcd" {
		t.Fatalf("stored config = %+v", stored)
	}

	out, err := runCmd(t, a, "config", "--show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	if !strings.Contains(out, "http://localhost:8000") {
		t.Errorf("show missing url: %q", out)
	}
	if strings.Contains(out, "sk_live_abcd") {
		t.Errorf("show leaked the full key: %q", out)
	}
	if !strings.Contains(out, "***abcd") {
		t.Errorf("show missing masked key: %q", out)
	}
}

func TestNoArgsShowsHelpWithLogo(t *testing.T) {
	a := testApp(t, "")
	out, err := runCmd(t, a)
	if err != nil {
		t.Fatalf("bare invocation: %v", err)
	}
	if !strings.Contains(out, "SHRTNR") && !strings.Contains(out, "shrtnr") {
		t.Errorf("help output looks wrong: %q", out)
	}
}

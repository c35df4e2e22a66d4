// Package api defines the wire contract shared by every shrtnr client
// surface. It carries no behavior beyond shape validation helpers; the
// hosted service owns all shortening, storage and analytics logic.
package api

import (
	"encoding/json"
	"strings"
	"time"
)

// Time tolerates the timestamp flavors the service emits: RFC 3339 with or
// without a zone, with or without fractional seconds.
type Time struct {
	time.Time
}

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

func (t *Time) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	s = strings.TrimSpace(s)
	if s == "" {
		t.Time = time.Time{}
		return nil
	}
	var lastErr error
	for _, layout := range timeLayouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			t.Time = parsed
			return nil
		}
		lastErr = err
	}
	return lastErr
}

func (t Time) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Time.Format(time.RFC3339Nano))
}

// ShortLink is one shortened URL as the service reports it. Clients never
// mutate it; click_count and referrer tallies move only with redirect
// traffic on the service side.
type ShortLink struct {
	ShortCode   string `json:"short_code"`
	OriginalURL string `json:"original_url"`
	ShortURL    string `json:"short_url,omitempty"`
	ClickCount  int    `json:"click_count"`
	CreatedAt   Time   `json:"created_at"`
}

// Referrer is one entry of a link's referrer leaderboard. The service
// spells the wire field "referer".
type Referrer struct {
	Referrer string `json:"referer"`
	Count    int    `json:"count"`
}

// URLStats is the per-link stats lookup response: the link itself plus its
// referrer leaderboard, sorted descending by count.
type URLStats struct {
	ShortLink
	TopReferrers []Referrer `json:"top_referers"`
}

// GlobalStats is a read-only service-wide snapshot.
type GlobalStats struct {
	TotalURLs   int `json:"total_urls"`
	TotalClicks int `json:"total_clicks"`
	URLsToday   int `json:"urls_today"`
	ClicksToday int `json:"clicks_today"`
}

type ShortenRequest struct {
	URL        string `json:"url"`
	CustomCode string `json:"custom_code,omitempty"`
}

type ShortenResponse struct {
	ShortURL  string `json:"short_url"`
	ShortCode string `json:"short_code"`
}

// QRCodeResponse carries the generated QR image as a data URI.
type QRCodeResponse struct {
	QRCode string `json:"qr_code"`
}

type APIKey struct {
	ID        int64  `json:"id"`
	Key       string `json:"key"`
	Name      string `json:"name"`
	CreatedAt Time   `json:"created_at"`
	IsActive  bool   `json:"is_active"`
}

type CreateKeyRequest struct {
	Name string `json:"name"`
}

// ErrorBody is the single error shape the service returns on any non-2xx
// response.
type ErrorBody struct {
	Detail string `json:"detail"`
}

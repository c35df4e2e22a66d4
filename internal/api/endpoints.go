package api

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// Endpoint paths, relative to the configured base URL.
const (
	PathShorten  = "/api/shorten"
	PathURLs     = "/api/urls"
	PathStats    = "/api/stats"
	PathTrending = "/api/trending"
	PathKeys     = "/api/keys"

	// APIKeyHeader is attached to any request when a key is configured.
	// Absence means anonymous semantics, defined by the service.
	APIKeyHeader = "X-API-Key"

	// MaxCodeLen is the service's cap on short-code length.
	MaxCodeLen = 20
)

func PathURL(code string) string {
	return PathURLs + "/" + url.PathEscape(code)
}

func PathURLQR(code string) string {
	return PathURL(code) + "/qr"
}

func PathURLsLimit(limit int) string {
	return fmt.Sprintf("%s?limit=%d", PathURLs, limit)
}

func PathKey(id int64) string {
	return fmt.Sprintf("%s/%d", PathKeys, id)
}

var invalidCodeRunes = regexp.MustCompile(`[^a-zA-Z0-9_-]`)

// SanitizeCustomCode strips characters outside [a-zA-Z0-9_-] and truncates
// to MaxCodeLen. This is a UX courtesy only; the service re-validates
// authoritatively.
func SanitizeCustomCode(code string) string {
	code = invalidCodeRunes.ReplaceAllString(strings.TrimSpace(code), "")
	if len(code) > MaxCodeLen {
		code = code[:MaxCodeLen]
	}
	return code
}

// CleanURL trims surrounding whitespace. The second return is false when
// nothing submittable remains.
func CleanURL(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	return raw, raw != ""
}

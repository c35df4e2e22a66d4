// Package client executes shrtnr contract operations against a configured
// base URL and normalizes every failure into a single error shape. Calls
// are single-shot: retry policy, if any, belongs to the surface driver.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"shrtnr/internal/api"
)

type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
}

// New builds a client for baseURL. apiKey may be empty for anonymous use.
// No request timeout is imposed here; callers cancel via context.
func New(baseURL string, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		apiKey:  apiKey,
		httpc:   &http.Client{},
	}
}

func (c *Client) BaseURL() string { return c.baseURL }

func (c *Client) Shorten(ctx context.Context, req api.ShortenRequest) (api.ShortenResponse, error) {
	var out api.ShortenResponse
	err := c.do(ctx, http.MethodPost, api.PathShorten, req, &out)
	return out, err
}

func (c *Client) URLStats(ctx context.Context, code string) (api.URLStats, error) {
	var out api.URLStats
	err := c.do(ctx, http.MethodGet, api.PathURL(code), nil, &out)
	return out, err
}

func (c *Client) ListURLs(ctx context.Context, limit int) ([]api.ShortLink, error) {
	var out []api.ShortLink
	err := c.do(ctx, http.MethodGet, api.PathURLsLimit(limit), nil, &out)
	return out, err
}

func (c *Client) GlobalStats(ctx context.Context) (api.GlobalStats, error) {
	var out api.GlobalStats
	err := c.do(ctx, http.MethodGet, api.PathStats, nil, &out)
	return out, err
}

func (c *Client) Trending(ctx context.Context) ([]api.ShortLink, error) {
	var out []api.ShortLink
	err := c.do(ctx, http.MethodGet, api.PathTrending, nil, &out)
	return out, err
}

func (c *Client) DeleteURL(ctx context.Context, code string) error {
	return c.do(ctx, http.MethodDelete, api.PathURL(code), nil, nil)
}

func (c *Client) QRCode(ctx context.Context, code string) (api.QRCodeResponse, error) {
	var out api.QRCodeResponse
	err := c.do(ctx, http.MethodGet, api.PathURLQR(code), nil, &out)
	return out, err
}

func (c *Client) CreateKey(ctx context.Context, name string) (api.APIKey, error) {
	var out api.APIKey
	err := c.do(ctx, http.MethodPost, api.PathKeys, api.CreateKeyRequest{Name: name}, &out)
	return out, err
}

func (c *Client) ListKeys(ctx context.Context) ([]api.APIKey, error) {
	var out []api.APIKey
	err := c.do(ctx, http.MethodGet, api.PathKeys, nil, &out)
	return out, err
}

func (c *Client) RevokeKey(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, api.PathKey(id), nil, nil)
}

func (c *Client) do(ctx context.Context, method string, path string, body any, out any) error {
	var payload io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return &Error{Kind: ErrMalformed, BaseURL: c.baseURL, Err: err}
		}
		payload = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return &Error{Kind: ErrNetwork, BaseURL: c.baseURL, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set(api.APIKeyHeader, c.apiKey)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return &Error{Kind: ErrNetwork, BaseURL: c.baseURL, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Kind: ErrMalformed, BaseURL: c.baseURL, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb api.ErrorBody
		_ = json.Unmarshal(raw, &eb)
		return &Error{Kind: ErrAPI, Status: resp.StatusCode, Detail: eb.Detail, BaseURL: c.baseURL}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &Error{Kind: ErrMalformed, BaseURL: c.baseURL, Err: err}
	}
	return nil
}

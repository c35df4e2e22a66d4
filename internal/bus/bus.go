// Package bus is the background surface's single dispatch point. Popup
// actions arrive as typed messages; the bus routes them by kind, drives
// the shorten chain (config → API call → notification → clipboard) and
// correlates replies back to the sender.
package bus

import (
	"context"

	"github.com/google/uuid"

	"shrtnr/internal/api"
	"shrtnr/internal/client"
	"shrtnr/internal/config"
	"shrtnr/internal/eventlog"
	"shrtnr/internal/notify"
)

// Message kinds. Copy is one-way: the platform offers no write
// confirmation from the clipboard context, so none is modeled here.
const (
	KindShorten = "shorten"
	KindCopy    = "copy-to-clipboard"
)

type ShortenParams struct {
	URL        string
	CustomCode string
}

// Message is one cross-context request. Reply is nil for one-way kinds;
// for KindShorten it stays open until the asynchronous chain completes,
// then receives exactly one Response and is closed.
type Message struct {
	ID      string
	Kind    string
	Text    string
	Shorten ShortenParams
	Reply   chan<- Response
}

type Response struct {
	Success  bool
	ShortURL string
	Error    string
}

// Shortener is the one contract operation the bus drives itself.
type Shortener interface {
	Shorten(ctx context.Context, req api.ShortenRequest) (api.ShortenResponse, error)
}

// Clipboard is the bridge surface the bus forwards copy messages to.
type Clipboard interface {
	Write(text string)
}

// DialFunc builds a Shortener from freshly resolved settings. The bus
// re-reads stored config on every shorten, so a settings change applies to
// the next request without a restart.
type DialFunc func(cfg config.Config) Shortener

type Bus struct {
	provider config.Provider
	dial     DialFunc
	clip     Clipboard
	notifyFn notify.Func
	events   *eventlog.Logger
	inbox    chan Message
}

func New(provider config.Provider, dial DialFunc, clip Clipboard, notifyFn notify.Func, events *eventlog.Logger) *Bus {
	if notifyFn == nil {
		notifyFn = func(string, string) {}
	}
	return &Bus{
		provider: provider,
		dial:     dial,
		clip:     clip,
		notifyFn: notifyFn,
		events:   events,
		inbox:    make(chan Message, 64),
	}
}

// Send enqueues a message. Messages from one sender are dispatched in the
// order they were sent; nothing is guaranteed across senders.
func (b *Bus) Send(msg Message) {
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	b.inbox <- msg
}

// Run dispatches until ctx is canceled. Dispatch itself is serial; the
// shorten chain runs asynchronously so a slow network call does not stall
// later messages, and overlapping in-flight chains are tolerated.
func (b *Bus) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-b.inbox:
			b.dispatch(ctx, msg)
		}
	}
}

func (b *Bus) dispatch(ctx context.Context, msg Message) {
	b.events.Append("bus", "message.received", map[string]any{"kind": msg.Kind}, msg.ID)
	switch msg.Kind {
	case KindCopy:
		// Fire-and-forget by design: no acknowledgment path exists back
		// from the clipboard context.
		b.clip.Write(msg.Text)
	case KindShorten:
		go b.runShorten(ctx, msg)
	default:
		b.events.Append("bus", "message.unknown", map[string]any{"kind": msg.Kind}, msg.ID)
		b.reply(msg, Response{Success: false, Error: "unknown message kind: " + msg.Kind})
	}
}

func (b *Bus) runShorten(ctx context.Context, msg Message) {
	stored, _ := b.provider.Load()
	cfg := config.Resolve(config.Config{}, stored)

	req := api.ShortenRequest{
		URL:        msg.Shorten.URL,
		CustomCode: api.SanitizeCustomCode(msg.Shorten.CustomCode),
	}

	resp, err := b.dial(cfg).Shorten(ctx, req)
	if err != nil {
		detail := err.Error()
		if client.IsNetwork(err) {
			detail = "Failed to connect to " + cfg.APIURL + ". Is the server running?"
		}
		b.events.Append("bus", "shorten.failed", map[string]any{"error": detail}, msg.ID)
		b.notifyFn("Error", detail)
		b.reply(msg, Response{Success: false, Error: detail})
		return
	}

	b.clip.Write(resp.ShortURL)
	b.notifyFn("URL Shortened!", resp.ShortURL+"\nCopied to clipboard!")
	b.events.Append("bus", "shorten.ok", map[string]any{"short_url": resp.ShortURL}, msg.ID)
	b.reply(msg, Response{Success: true, ShortURL: resp.ShortURL})
}

func (b *Bus) reply(msg Message, r Response) {
	if msg.Reply == nil {
		return
	}
	msg.Reply <- r
	close(msg.Reply)
}

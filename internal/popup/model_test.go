package popup

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"shrtnr/internal/agent"
	"shrtnr/internal/config"
)

func testAgent(t *testing.T) *agent.Agent {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/shorten":
			_ = json.NewEncoder(w).Encode(map[string]string{
				"short_url": "http://" + r.Host + "/abc123", "short_code": "abc123",
			})
		case "/api/stats":
			_ = json.NewEncoder(w).Encode(map[string]int{
				"total_urls": 5, "total_clicks": 9, "urls_today": 1, "clicks_today": 2,
			})
		default:
			w.WriteHeader(404)
			_ = json.NewEncoder(w).Encode(map[string]string{"detail": "not found"})
		}
	}))
	t.Cleanup(srv.Close)

	ag := agent.New(t.TempDir())
	if err := ag.Settings().Save(config.Config{APIURL: srv.URL}); err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go ag.Run(ctx)
	return ag
}

// collectMsgs executes a command tree once, flattening batches, without
// re-entering Update. Keeps the simulation deterministic.
func collectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collectMsgs(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func TestSubmitRendersShortURL(t *testing.T) {
	ag := testAgent(t)
	var model tea.Model = New(ag, "")

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("https://example.com/long")})
	model, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if m, ok := model.(Model); !ok || !m.busy {
		t.Fatal("model not busy after submit")
	}

	// The batch carries the spinner tick and the blocking reply wait; the
	// reply arrives once the bus chain completes.
	var got *shortenResultMsg
	for _, msg := range collectMsgs(cmd) {
		if r, ok := msg.(shortenResultMsg); ok {
			got = &r
		}
	}
	if got == nil {
		t.Fatal("no shorten result message produced")
	}
	if !got.Success {
		t.Fatalf("shorten failed: %s", got.Error)
	}

	model, _ = model.Update(*got)
	view := model.View()
	if !strings.Contains(view, "/abc123") {
		t.Errorf("view missing short url: %q", view)
	}
	if !strings.Contains(view, "Copied to clipboard!") {
		t.Errorf("view missing copy affordance: %q", view)
	}
}

func TestSubmitWithoutURLShowsError(t *testing.T) {
	ag := testAgent(t)
	var model tea.Model = New(ag, "")

	model, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("empty submit should not produce a command")
	}
	if !strings.Contains(model.View(), "Please enter a URL") {
		t.Errorf("view missing validation error: %q", model.View())
	}
}

func TestTabTogglesCustomCodeField(t *testing.T) {
	ag := testAgent(t)
	var model tea.Model = New(ag, "")

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyTab})
	if !strings.Contains(model.View(), "Custom code") {
		t.Error("custom code field not shown after tab")
	}
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyTab})
	if strings.Contains(model.View(), "Custom code") {
		t.Error("custom code field still shown after second tab")
	}
}

func TestStatsFooter(t *testing.T) {
	ag := testAgent(t)
	m := New(ag, "")

	msg := m.fetchStats()
	var model tea.Model = m
	model, _ = model.Update(msg)
	view := model.View()
	if !strings.Contains(view, "5 urls") {
		t.Errorf("footer missing stats: %q", view)
	}
}

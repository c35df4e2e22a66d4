// Package agent is the long-lived background context behind the popup
// surface: it owns the message bus, the clipboard bridge, the event log,
// a short-lived stats cache, and the surface's synchronized settings file.
package agent

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	gocache "github.com/patrickmn/go-cache"

	"shrtnr/internal/api"
	"shrtnr/internal/bus"
	"shrtnr/internal/client"
	"shrtnr/internal/clipboard"
	"shrtnr/internal/config"
	"shrtnr/internal/eventlog"
	"shrtnr/internal/notify"
)

const (
	settingsFile = "sync.json"
	eventsFile   = "events.jsonl"

	statsCacheTTL = 60 * time.Second

	cacheKeyStats    = "global_stats"
	cacheKeyTrending = "trending"
)

type Agent struct {
	stateDir string
	store    *config.FileStore
	events   *eventlog.Logger
	bridge   *clipboard.Bridge
	bus      *bus.Bus
	cache    *gocache.Cache
	watcher  *fsnotify.Watcher
}

// StateDir resolves the agent state directory: SHRTNR_STATE_DIR, else
// ~/.shrtnr.d.
func StateDir() string {
	if v := strings.TrimSpace(os.Getenv("SHRTNR_STATE_DIR")); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".shrtnr.d"
	}
	return filepath.Join(home, ".shrtnr.d")
}

func New(stateDir string) *Agent {
	_ = os.MkdirAll(stateDir, 0o755)
	events := eventlog.New(filepath.Join(stateDir, eventsFile))
	store := config.NewFileStore(filepath.Join(stateDir, settingsFile))
	bridge := clipboard.NewBridge(events)

	a := &Agent{
		stateDir: stateDir,
		store:    store,
		events:   events,
		bridge:   bridge,
		cache:    gocache.New(statsCacheTTL, 2*statsCacheTTL),
	}
	a.bus = bus.New(store, a.dial, bridge, notify.Send, events)
	return a
}

func (a *Agent) Bus() *bus.Bus                 { return a.bus }
func (a *Agent) Bridge() *clipboard.Bridge     { return a.bridge }
func (a *Agent) Settings() *config.FileStore   { return a.store }
func (a *Agent) Events() *eventlog.Logger      { return a.events }

func (a *Agent) dial(cfg config.Config) bus.Shortener {
	return client.New(cfg.APIURL, cfg.APIKey)
}

// Client resolves current settings into a fresh adapter. Settings are
// re-read on every call so edits apply to the next request.
func (a *Agent) Client() *client.Client {
	stored, _ := a.store.Load()
	cfg := config.Resolve(config.Config{}, stored)
	return client.New(cfg.APIURL, cfg.APIKey)
}

// Run starts the bus and the settings watcher and blocks until ctx is
// canceled.
func (a *Agent) Run(ctx context.Context) {
	a.events.Append("agent", "started", map[string]any{"state_dir": a.stateDir}, "")
	go a.watchSettings(ctx)
	a.bus.Run(ctx)
	a.events.Append("agent", "stopped", nil, "")
}

// watchSettings is the stand-in for synchronized-storage change events:
// when the settings file is rewritten, the stats cache is flushed since
// the configured base may have changed.
func (a *Agent) watchSettings(ctx context.Context) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		a.events.Append("agent", "watch.failed", map[string]any{"error": err.Error()}, "")
		return
	}
	defer w.Close()
	a.watcher = w

	// Watch the directory: editors and atomic saves replace the file.
	if err := w.Add(a.stateDir); err != nil {
		a.events.Append("agent", "watch.failed", map[string]any{"error": err.Error()}, "")
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != settingsFile {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			a.cache.Flush()
			a.events.Append("agent", "settings.changed", map[string]any{"op": ev.Op.String()}, "")
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			a.events.Append("agent", "watch.error", map[string]any{"error": err.Error()}, "")
		}
	}
}

// GlobalStats returns the service-wide snapshot, cached for a minute so a
// popup reopening in quick succession does not hammer the API.
func (a *Agent) GlobalStats(ctx context.Context) (api.GlobalStats, error) {
	if v, ok := a.cache.Get(cacheKeyStats); ok {
		return v.(api.GlobalStats), nil
	}
	stats, err := a.Client().GlobalStats(ctx)
	if err != nil {
		return api.GlobalStats{}, err
	}
	a.cache.SetDefault(cacheKeyStats, stats)
	return stats, nil
}

// Trending returns the service's trending links with the same cache
// policy as GlobalStats.
func (a *Agent) Trending(ctx context.Context) ([]api.ShortLink, error) {
	if v, ok := a.cache.Get(cacheKeyTrending); ok {
		return v.([]api.ShortLink), nil
	}
	links, err := a.Client().Trending(ctx)
	if err != nil {
		return nil, err
	}
	a.cache.SetDefault(cacheKeyTrending, links)
	return links, nil
}

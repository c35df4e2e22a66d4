// Package clipboard gives the background surface its only path to the
// system clipboard. The background context has no clipboard authority of
// its own, so the bridge lazily creates a single hidden writer and hands
// writes off to it, fire-and-forget.
package clipboard

import (
	"sync"

	"shrtnr/internal/eventlog"
)

type state int

const (
	stateAbsent state = iota
	statePending
	stateActive
)

// Bridge manages the writer lifecycle: absent until first use, then a
// single creation attempt shared by all concurrent callers, then active.
// There is no modeled teardown; the writer lives as long as the process.
type Bridge struct {
	mu      sync.Mutex
	st      state
	pending chan struct{} // closed when the in-flight creation settles
	w       writer

	newWriter func() (writer, error)
	events    *eventlog.Logger
}

func NewBridge(events *eventlog.Logger) *Bridge {
	return &Bridge{
		newWriter: newPlatformWriter,
		events:    events,
	}
}

// Write ensures the writer exists, then hands text off without waiting for
// the write to land. Callers must not assume the clipboard is updated when
// Write returns; the "copied" affordance racing the actual write is an
// accepted limitation. No error ever propagates back from here.
func (b *Bridge) Write(text string) {
	w := b.ensure()
	if w == nil {
		// Creation failed; the write is best-effort and silently dropped.
		return
	}
	go func() {
		if err := w.write(text); err != nil {
			b.events.Append("clipboard", "write.failed", map[string]any{"error": err.Error()}, "")
		}
	}()
}

// ensure collapses concurrent creation into one in-flight attempt: the
// first caller creates, everyone else waits for that attempt to settle.
// A failed attempt returns the bridge to absent so a later write can try
// again; the failure cause is logged but never surfaced.
func (b *Bridge) ensure() writer {
	for {
		b.mu.Lock()
		switch b.st {
		case stateActive:
			w := b.w
			b.mu.Unlock()
			return w
		case statePending:
			ch := b.pending
			b.mu.Unlock()
			<-ch
			continue
		}

		b.st = statePending
		ch := make(chan struct{})
		b.pending = ch
		b.mu.Unlock()

		w, err := b.newWriter()

		b.mu.Lock()
		if err != nil {
			b.st = stateAbsent
			b.mu.Unlock()
			close(ch)
			b.events.Append("clipboard", "create.failed", map[string]any{"error": err.Error()}, "")
			return nil
		}
		b.st = stateActive
		b.w = w
		b.mu.Unlock()
		close(ch)
		return w
	}
}

// Active reports whether the writer has been created. Exposed for the
// surface status line only.
func (b *Bridge) Active() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.st == stateActive
}

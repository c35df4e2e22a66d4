// Package eventlog appends agent-internal events to a JSONL file. It is
// the only log the background surface keeps; nothing here is ever shown to
// the end user.
package eventlog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Logger struct {
	path string
	mu   sync.Mutex
	seq  uint64
}

type record struct {
	Timestamp     string `json:"timestamp"`
	Seq           uint64 `json:"seq"`
	Source        string `json:"source"`
	Type          string `json:"type"`
	Payload       any    `json:"payload,omitempty"`
	CorrelationID string `json:"correlation_id,omitempty"`
}

// New returns a logger appending to path. A nil Logger is safe to call.
func New(path string) *Logger {
	_ = os.MkdirAll(filepath.Dir(path), 0o755)
	return &Logger{path: path}
}

func (l *Logger) Append(source string, eventType string, payload any, correlationID string) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	l.seq++
	rec := record{
		Timestamp:     time.Now().UTC().Format(time.RFC3339Nano),
		Seq:           l.seq,
		Source:        source,
		Type:          eventType,
		Payload:       payload,
		CorrelationID: correlationID,
	}
	b, err := json.Marshal(rec)
	if err != nil {
		return
	}
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return
	}
	_, _ = f.Write(append(b, '\n'))
	_ = f.Close()
}

// NewCorrelationID mints an ID tying an event chain together.
func NewCorrelationID() string {
	return uuid.NewString()
}

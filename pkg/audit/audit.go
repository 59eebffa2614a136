// Package audit records admission decisions for later review.
package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Event is one admission decision.
type Event struct {
	ID           string    `json:"id"`
	Time         time.Time `json:"time"`
	SubmissionID string    `json:"submissionId"`
	UsesFlutter  bool      `json:"usesFlutter"`
	UsesFirebase bool      `json:"usesFirebase"`
	Rejected     []string  `json:"rejected,omitempty"`
	Deprecated   []string  `json:"deprecated,omitempty"`
}

// Recorder records admission decisions.
type Recorder interface {
	Record(event Event) error
}

// NopRecorder discards events.
type NopRecorder struct{}

func (NopRecorder) Record(Event) error { return nil }

// FileRecorder appends events as JSON lines under a base directory.
type FileRecorder struct {
	mu   sync.Mutex
	path string
}

// NewFileRecorder creates the base directory and returns a recorder
// writing to decisions.jsonl inside it.
func NewFileRecorder(baseDir string) (*FileRecorder, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create audit dir: %w", err)
	}
	return &FileRecorder{path: filepath.Join(baseDir, "decisions.jsonl")}, nil
}

func (r *FileRecorder) Record(event Event) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Time.IsZero() {
		event.Time = time.Now().UTC()
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := os.OpenFile(r.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open audit log: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("append audit event: %w", err)
	}
	return nil
}

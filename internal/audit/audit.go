// Package audit appends administrative actions to a plain text trail,
// separate from the monetary transaction log.
package audit

import (
	"fmt"
	"os"
	"sync"
	"time"
)

// Line format of the trail, one action per line.
const lineFormat = "[%s] User ID: %d | Action: %s | Status: %s\n"

const timeLayout = "2006-01-02 15:04:05"

// Trail is an append-only text log of administrative actions.
type Trail struct {
	mu   sync.Mutex
	path string
}

// NewTrail creates a Trail writing to path. The file is created on first use.
func NewTrail(path string) *Trail {
	return &Trail{path: path}
}

// Record appends one action line for the affected user.
func (t *Trail) Record(userID int64, action, status string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	f, err := os.OpenFile(t.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open audit trail: %w", err)
	}
	defer f.Close()

	line := fmt.Sprintf(lineFormat, time.Now().Format(timeLayout), userID, action, status)
	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("append audit trail: %w", err)
	}
	return nil
}

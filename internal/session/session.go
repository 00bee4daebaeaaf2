// Package session holds per-session state: the selected language and the
// append-only history of analyses. Each session is an explicit context
// object created on demand and torn down at session end.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Humam-hub/network-log-translator/internal/classifier"
)

// ErrorReport is one completed analysis. Reports are created only on a
// successful explanation request and are immutable once recorded.
type ErrorReport struct {
	ID          uuid.UUID           `json:"id"`
	RawText     string              `json:"raw_text"`
	Explanation string              `json:"explanation"`
	Category    classifier.Category `json:"category"`
	Severity    classifier.Severity `json:"severity"`
	QuickFix    string              `json:"quick_fix"`
	CreatedAt   time.Time           `json:"created_at"`
}

// Session is the per-user analysis context.
type Session struct {
	ID        uuid.UUID `json:"id"`
	Language  string    `json:"language"`
	CreatedAt time.Time `json:"created_at"`

	mu         sync.Mutex
	history    []ErrorReport
	lastActive time.Time
}

// Record appends a report to the session history. The history is append-only
// and unbounded within the session's lifetime.
func (s *Session) Record(report ErrorReport) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, report)
	s.lastActive = time.Now()
}

// Recent returns the last n reports in reverse chronological order.
func (s *Session) Recent(n int) []ErrorReport {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n > len(s.history) {
		n = len(s.history)
	}
	out := make([]ErrorReport, 0, n)
	for i := len(s.history) - 1; i >= len(s.history)-n; i-- {
		out = append(out, s.history[i])
	}
	return out
}

// Len returns the number of recorded reports.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.history)
}

// Touch marks the session as recently used for TTL sweeping.
func (s *Session) Touch() {
	s.mu.Lock()
	s.lastActive = time.Now()
	s.mu.Unlock()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

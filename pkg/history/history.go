// Package history keeps the in-memory record of symbols queried this session
package history

import (
	"time"

	"github.com/google/uuid"
)

// Entry is one successful query
type Entry struct {
	ID        string
	Symbol    string
	Records   int
	QueriedAt time.Time
}

// History is a bounded, session-scoped query log. Nothing is persisted;
// a new run starts empty. It is only touched from the event loop, so no
// locking is needed.
type History struct {
	entries []Entry
	max     int
	cursor  int
}

// New creates a history bounded to max entries; max <= 0 means 50
func New(max int) *History {
	if max <= 0 {
		max = 50
	}
	return &History{max: max}
}

// Add records a successful query. A repeat of the most recent symbol
// updates that entry instead of stacking duplicates.
func (h *History) Add(symbol string, records int) {
	now := time.Now()
	if n := len(h.entries); n > 0 && h.entries[n-1].Symbol == symbol {
		h.entries[n-1].Records = records
		h.entries[n-1].QueriedAt = now
	} else {
		h.entries = append(h.entries, Entry{
			ID:        uuid.NewString(),
			Symbol:    symbol,
			Records:   records,
			QueriedAt: now,
		})
		if len(h.entries) > h.max {
			h.entries = h.entries[len(h.entries)-h.max:]
		}
	}
	h.cursor = len(h.entries)
}

// Prev steps back through recorded symbols, oldest-bounded
func (h *History) Prev() (string, bool) {
	if h.cursor == 0 {
		return "", false
	}
	h.cursor--
	return h.entries[h.cursor].Symbol, true
}

// Next steps forward again; stepping past the newest entry returns false,
// which callers use to clear the recall
func (h *History) Next() (string, bool) {
	if h.cursor >= len(h.entries) {
		return "", false
	}
	h.cursor++
	if h.cursor == len(h.entries) {
		return "", false
	}
	return h.entries[h.cursor].Symbol, true
}

// Len returns the number of recorded entries
func (h *History) Len() int { return len(h.entries) }

// Recent returns up to n entries, newest first
func (h *History) Recent(n int) []Entry {
	if n > len(h.entries) {
		n = len(h.entries)
	}
	out := make([]Entry, 0, n)
	for i := len(h.entries) - 1; i >= len(h.entries)-n; i-- {
		out = append(out, h.entries[i])
	}
	return out
}

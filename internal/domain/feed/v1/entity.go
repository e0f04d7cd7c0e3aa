package v1

import (
	"sync"

	quotev1 "github.com/ppgiii/ViZ/internal/domain/quote/v1"
)

// Series is a rolling window of quotes for a single symbol. Appending past
// the window size evicts the oldest rows first.
type Series struct {
	mu   sync.RWMutex
	rows []quotev1.Quote
	size int
}

// NewSeries creates an empty series holding at most size rows.
func NewSeries(size int) *Series {
	return &Series{
		rows: make([]quotev1.Quote, 0, size),
		size: size,
	}
}

// Append adds quotes to the window, oldest rows roll off first.
func (s *Series) Append(quotes ...quotev1.Quote) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rows = append(s.rows, quotes...)
	if overflow := len(s.rows) - s.size; overflow > 0 {
		n := copy(s.rows, s.rows[overflow:])
		s.rows = s.rows[:n]
	}
}

// Len returns the current number of rows in the window.
func (s *Series) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.rows)
}

// Quotes returns a copy of the window, oldest first.
func (s *Series) Quotes() []quotev1.Quote {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]quotev1.Quote, len(s.rows))
	copy(out, s.rows)
	return out
}

// Reset drops every row while keeping the window size.
func (s *Series) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rows = s.rows[:0]
}

// Size returns the configured window size.
func (s *Series) Size() int {
	return s.size
}

// Snapshot is the full feed state a client needs to render from scratch.
type Snapshot struct {
	Symbol  string          `json:"symbol"`
	Title   string          `json:"title"`
	Columns quotev1.Columns `json:"columns"`
}

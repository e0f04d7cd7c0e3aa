package feed

import (
	"context"
	"time"

	v1 "github.com/ppgiii/ViZ/internal/domain/feed/v1"
	quotev1 "github.com/ppgiii/ViZ/internal/domain/quote/v1"
)

//go:generate mockgen -source=interface.go -destination=mock/interface_mock.go -package=mock

// Usecase is the interface for the feed usecase.
type Usecase interface {
	// SetSymbol switches the feed to a new symbol, clearing the window,
	// and returns the snapshot clients should render from.
	SetSymbol(ctx context.Context, symbol string) *v1.Snapshot
	// Tick performs one poll cycle against the quote source.
	Tick(ctx context.Context) error
	// Snapshot returns the current feed state.
	Snapshot(ctx context.Context) *v1.Snapshot
}

// Broadcaster pushes feed changes to attached clients.
type Broadcaster interface {
	Append(ctx context.Context, columns quotev1.Columns)
	Reset(ctx context.Context, snapshot *v1.Snapshot)
}

// Clock abstracts wall clock reads and sleeps so the poll loop can be
// driven deterministically in tests.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// RealClock implements Clock on the runtime clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// Sleep pauses the calling goroutine for d.
func (RealClock) Sleep(d time.Duration) {
	time.Sleep(d)
}

package feed

import (
	"context"
	"sync"
	"time"

	feeddomain "github.com/ppgiii/ViZ/internal/domain/feed"
	v1 "github.com/ppgiii/ViZ/internal/domain/feed/v1"
	quotev1 "github.com/ppgiii/ViZ/internal/domain/quote/v1"
	"github.com/ppgiii/ViZ/internal/infrastructure/iex"
	"github.com/ppgiii/ViZ/pkg/errors"
	"github.com/ppgiii/ViZ/pkg/logger"
)

const (
	// initialTitle prefixes the feed title before the first symbol change.
	initialTitle = "IEX Real Time Price Security Symbol: "
	// updatedTitle prefixes the feed title once a symbol has been chosen.
	updatedTitle = "IEX Real-Time Price: "
)

// Config carries the feed parameters.
type Config struct {
	// Symbol is the initial ticker, empty starts the feed idle.
	Symbol string
	// Rollover is the rolling window size in rows.
	Rollover int
	// Location renders display times, must not be nil.
	Location *time.Location
}

// Usecase drives the quote feed for a single symbol.
type Usecase struct {
	fetcher     iex.QuoteFetcher
	broadcaster feeddomain.Broadcaster
	clock       feeddomain.Clock
	logger      logger.Interface

	mu         sync.Mutex
	symbol     string
	title      string
	generation uint64
	series     *v1.Series
	location   *time.Location
}

// Ensure Usecase implements feed.Usecase interface
var _ feeddomain.Usecase = (*Usecase)(nil)

// NewUsecase creates a new feed usecase.
func NewUsecase(cfg Config, fetcher iex.QuoteFetcher, broadcaster feeddomain.Broadcaster, clock feeddomain.Clock, logger logger.Interface) *Usecase {
	return &Usecase{
		fetcher:     fetcher,
		broadcaster: broadcaster,
		clock:       clock,
		logger:      logger,
		symbol:      cfg.Symbol,
		title:       initialTitle + cfg.Symbol,
		series:      v1.NewSeries(cfg.Rollover),
		location:    cfg.Location,
	}
}

// SetSymbol switches the feed to symbol. The window is cleared right away
// and attached clients receive the empty snapshot, rows of the previous
// symbol never survive a switch. The symbol is taken as given, it is not
// validated or normalized.
func (u *Usecase) SetSymbol(ctx context.Context, symbol string) *v1.Snapshot {
	u.mu.Lock()
	u.symbol = symbol
	u.title = updatedTitle + symbol
	u.generation++
	u.series.Reset()
	snapshot := u.snapshotLocked()
	u.broadcaster.Reset(ctx, snapshot)
	u.mu.Unlock()

	u.logger.InfoContext(ctx, "feed symbol changed",
		logger.NewField("symbol", symbol),
	)

	return snapshot
}

// Tick performs one poll cycle. With no symbol configured it appends a
// zero placeholder so the stream keeps advancing. A failed fetch skips
// the cycle and leaves the window as it was, the next tick tries again.
func (u *Usecase) Tick(ctx context.Context) error {
	u.mu.Lock()
	symbol := u.symbol
	generation := u.generation
	u.mu.Unlock()

	if symbol == "" {
		u.append(ctx, quotev1.Quote{Price: 0, Timestamp: u.clock.Now().UTC()}, generation)
		return nil
	}

	quote, err := u.fetcher.FetchLast(ctx, symbol)
	if err != nil {
		return errors.TracerFromError(err)
	}

	if !u.append(ctx, *quote, generation) {
		u.logger.DebugContext(ctx, "stale quote dropped",
			logger.NewField("symbol", symbol),
		)
	}

	return nil
}

// Snapshot returns the current feed state.
func (u *Usecase) Snapshot(ctx context.Context) *v1.Snapshot {
	u.mu.Lock()
	defer u.mu.Unlock()

	return u.snapshotLocked()
}

// append adds the quote and notifies clients, unless the feed has moved
// to another generation since the quote was requested.
func (u *Usecase) append(ctx context.Context, quote quotev1.Quote, generation uint64) bool {
	u.mu.Lock()
	defer u.mu.Unlock()

	if generation != u.generation {
		return false
	}

	quote = quote.WithDisplayTime(u.location)
	u.series.Append(quote)
	u.broadcaster.Append(ctx, quotev1.ColumnsFromQuotes([]quotev1.Quote{quote}))
	return true
}

func (u *Usecase) snapshotLocked() *v1.Snapshot {
	return &v1.Snapshot{
		Symbol:  u.symbol,
		Title:   u.title,
		Columns: quotev1.ColumnsFromQuotes(u.series.Quotes()),
	}
}

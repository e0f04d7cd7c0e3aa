package feed

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	feedMock "github.com/ppgiii/ViZ/internal/domain/feed/mock"
	feedv1 "github.com/ppgiii/ViZ/internal/domain/feed/v1"
	quotev1 "github.com/ppgiii/ViZ/internal/domain/quote/v1"
	iexMock "github.com/ppgiii/ViZ/internal/infrastructure/iex/mock"
	"github.com/ppgiii/ViZ/pkg/errors"
	loggerMock "github.com/ppgiii/ViZ/pkg/logger/mock"
)

var fetchedAt = time.Date(2018, 3, 26, 14, 0, 0, 0, time.UTC)

func mustLocation(t *testing.T) *time.Location {
	t.Helper()

	loc, err := time.LoadLocation("US/Eastern")
	require.NoError(t, err)
	return loc
}

func TestUsecase_Tick(t *testing.T) {
	testCases := []struct {
		name     string
		cfg      Config
		mockFn   func(fetcher *iexMock.MockQuoteFetcher, broadcaster *feedMock.MockBroadcaster, clock *feedMock.MockClock, logger *loggerMock.MockInterface)
		assertFn func(t *testing.T, u *Usecase, err error)
	}{
		{
			name: "appends the fetched quote with display time",
			cfg:  Config{Symbol: "AAPL", Rollover: 10},
			mockFn: func(fetcher *iexMock.MockQuoteFetcher, broadcaster *feedMock.MockBroadcaster, clock *feedMock.MockClock, logger *loggerMock.MockInterface) {
				fetcher.EXPECT().FetchLast(gomock.Any(), "AAPL").Return(&quotev1.Quote{
					Symbol:    "AAPL",
					Price:     171.25,
					Size:      100,
					Timestamp: fetchedAt,
				}, nil)
				broadcaster.EXPECT().Append(gomock.Any(), gomock.Any()).Do(func(_ context.Context, cols quotev1.Columns) {
					require.Equal(t, 1, cols.Len())
					assert.Equal(t, fetchedAt.UnixMilli(), cols.Time[0])
					assert.Equal(t, "2018-03-26 10:00:00", cols.DisplayTime[0])
					assert.Equal(t, 171.25, cols.Price[0])
				})
			},
			assertFn: func(t *testing.T, u *Usecase, err error) {
				require.NoError(t, err)

				snapshot := u.Snapshot(context.Background())
				require.Equal(t, 1, snapshot.Columns.Len())
				assert.Equal(t, "2018-03-26 10:00:00", snapshot.Columns.DisplayTime[0])
			},
		},
		{
			name: "appends a zero placeholder while no symbol is set",
			cfg:  Config{Symbol: "", Rollover: 10},
			mockFn: func(fetcher *iexMock.MockQuoteFetcher, broadcaster *feedMock.MockBroadcaster, clock *feedMock.MockClock, logger *loggerMock.MockInterface) {
				clock.EXPECT().Now().Return(fetchedAt)
				broadcaster.EXPECT().Append(gomock.Any(), gomock.Any()).Do(func(_ context.Context, cols quotev1.Columns) {
					require.Equal(t, 1, cols.Len())
					assert.Equal(t, 0.0, cols.Price[0])
				})
			},
			assertFn: func(t *testing.T, u *Usecase, err error) {
				require.NoError(t, err)
				assert.Equal(t, 1, u.Snapshot(context.Background()).Columns.Len())
			},
		},
		{
			name: "failed fetch skips the cycle and keeps the window",
			cfg:  Config{Symbol: "AAPL", Rollover: 10},
			mockFn: func(fetcher *iexMock.MockQuoteFetcher, broadcaster *feedMock.MockBroadcaster, clock *feedMock.MockClock, logger *loggerMock.MockInterface) {
				fetcher.EXPECT().FetchLast(gomock.Any(), "AAPL").Return(nil,
					errors.NewErrorDetails("connection refused", string(errors.QuoteNetworkError), ""))
			},
			assertFn: func(t *testing.T, u *Usecase, err error) {
				require.Error(t, err)
				assert.EqualError(t, err, "connection refused")
				assert.Equal(t, 0, u.Snapshot(context.Background()).Columns.Len())
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			fetcher := iexMock.NewMockQuoteFetcher(ctrl)
			broadcaster := feedMock.NewMockBroadcaster(ctrl)
			clock := feedMock.NewMockClock(ctrl)
			logger := loggerMock.NewMockInterface(ctrl)

			tc.mockFn(fetcher, broadcaster, clock, logger)

			tc.cfg.Location = mustLocation(t)
			u := NewUsecase(tc.cfg, fetcher, broadcaster, clock, logger)

			err := u.Tick(context.Background())
			tc.assertFn(t, u, err)
		})
	}
}

func TestUsecase_Tick_WindowGrowsTickByTick(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fetcher := iexMock.NewMockQuoteFetcher(ctrl)
	broadcaster := feedMock.NewMockBroadcaster(ctrl)
	clock := feedMock.NewMockClock(ctrl)
	logger := loggerMock.NewMockInterface(ctrl)

	u := NewUsecase(Config{Symbol: "AAPL", Rollover: 10, Location: mustLocation(t)}, fetcher, broadcaster, clock, logger)

	tick := 0
	fetcher.EXPECT().FetchLast(gomock.Any(), "AAPL").DoAndReturn(func(ctx context.Context, symbol string) (*quotev1.Quote, error) {
		tick++
		return &quotev1.Quote{
			Symbol:    symbol,
			Price:     float64(tick),
			Timestamp: fetchedAt.Add(time.Duration(tick) * time.Second),
		}, nil
	}).Times(3)
	broadcaster.EXPECT().Append(gomock.Any(), gomock.Any()).Times(3)

	for i := 1; i <= 3; i++ {
		require.NoError(t, u.Tick(context.Background()))
		assert.Equal(t, i, u.Snapshot(context.Background()).Columns.Len())
	}
}

func TestUsecase_Tick_RollsOverAtWindowSize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fetcher := iexMock.NewMockQuoteFetcher(ctrl)
	broadcaster := feedMock.NewMockBroadcaster(ctrl)
	clock := feedMock.NewMockClock(ctrl)
	logger := loggerMock.NewMockInterface(ctrl)

	u := NewUsecase(Config{Symbol: "AAPL", Rollover: 5, Location: mustLocation(t)}, fetcher, broadcaster, clock, logger)

	tick := 0
	fetcher.EXPECT().FetchLast(gomock.Any(), "AAPL").DoAndReturn(func(ctx context.Context, symbol string) (*quotev1.Quote, error) {
		tick++
		return &quotev1.Quote{
			Symbol:    symbol,
			Price:     float64(tick),
			Timestamp: fetchedAt.Add(time.Duration(tick) * time.Second),
		}, nil
	}).Times(8)
	broadcaster.EXPECT().Append(gomock.Any(), gomock.Any()).Times(8)

	for i := 0; i < 8; i++ {
		require.NoError(t, u.Tick(context.Background()))
		assert.LessOrEqual(t, u.Snapshot(context.Background()).Columns.Len(), 5)
	}

	snapshot := u.Snapshot(context.Background())
	require.Equal(t, 5, snapshot.Columns.Len())

	// ticks 1..3 rolled off, 4..8 remain oldest first
	assert.Equal(t, 4.0, snapshot.Columns.Price[0])
	assert.Equal(t, 8.0, snapshot.Columns.Price[4])
}

func TestUsecase_SetSymbol(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fetcher := iexMock.NewMockQuoteFetcher(ctrl)
	broadcaster := feedMock.NewMockBroadcaster(ctrl)
	clock := feedMock.NewMockClock(ctrl)
	logger := loggerMock.NewMockInterface(ctrl)

	u := NewUsecase(Config{Symbol: "AAPL", Rollover: 10, Location: mustLocation(t)}, fetcher, broadcaster, clock, logger)

	// seed a few rows first
	tick := 0
	fetcher.EXPECT().FetchLast(gomock.Any(), "AAPL").DoAndReturn(func(ctx context.Context, symbol string) (*quotev1.Quote, error) {
		tick++
		return &quotev1.Quote{
			Symbol:    symbol,
			Price:     float64(tick),
			Timestamp: fetchedAt.Add(time.Duration(tick) * time.Second),
		}, nil
	}).Times(3)
	broadcaster.EXPECT().Append(gomock.Any(), gomock.Any()).Times(3)

	for i := 0; i < 3; i++ {
		require.NoError(t, u.Tick(context.Background()))
	}
	require.Equal(t, 3, u.Snapshot(context.Background()).Columns.Len())

	broadcaster.EXPECT().Reset(gomock.Any(), gomock.Any()).Do(func(_ context.Context, snapshot *feedv1.Snapshot) {
		assert.Equal(t, "MSFT", snapshot.Symbol)
		assert.Equal(t, 0, snapshot.Columns.Len())
	})
	logger.EXPECT().InfoContext(gomock.Any(), "feed symbol changed", gomock.Any())

	snapshot := u.SetSymbol(context.Background(), "MSFT")

	// the window is empty the moment the call returns
	require.NotNil(t, snapshot)
	assert.Equal(t, "MSFT", snapshot.Symbol)
	assert.Equal(t, "IEX Real-Time Price: MSFT", snapshot.Title)
	assert.Equal(t, 0, snapshot.Columns.Len())
	assert.Equal(t, 0, u.Snapshot(context.Background()).Columns.Len())
}

func TestUsecase_SetSymbol_EmptySymbolAccepted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fetcher := iexMock.NewMockQuoteFetcher(ctrl)
	broadcaster := feedMock.NewMockBroadcaster(ctrl)
	clock := feedMock.NewMockClock(ctrl)
	logger := loggerMock.NewMockInterface(ctrl)

	u := NewUsecase(Config{Symbol: "AAPL", Rollover: 10, Location: mustLocation(t)}, fetcher, broadcaster, clock, logger)

	broadcaster.EXPECT().Reset(gomock.Any(), gomock.Any())
	logger.EXPECT().InfoContext(gomock.Any(), "feed symbol changed", gomock.Any())

	snapshot := u.SetSymbol(context.Background(), "")
	assert.Equal(t, "", snapshot.Symbol)

	// the next tick goes back to placeholder mode
	clock.EXPECT().Now().Return(fetchedAt)
	broadcaster.EXPECT().Append(gomock.Any(), gomock.Any())
	require.NoError(t, u.Tick(context.Background()))
}

func TestUsecase_Tick_StaleFetchDropped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fetcher := iexMock.NewMockQuoteFetcher(ctrl)
	broadcaster := feedMock.NewMockBroadcaster(ctrl)
	clock := feedMock.NewMockClock(ctrl)
	logger := loggerMock.NewMockInterface(ctrl)

	u := NewUsecase(Config{Symbol: "AAPL", Rollover: 10, Location: mustLocation(t)}, fetcher, broadcaster, clock, logger)

	// the symbol changes while the fetch is in flight, the late quote
	// must not leak into the new window
	fetcher.EXPECT().FetchLast(gomock.Any(), "AAPL").DoAndReturn(func(ctx context.Context, symbol string) (*quotev1.Quote, error) {
		u.SetSymbol(ctx, "MSFT")
		return &quotev1.Quote{Symbol: "AAPL", Price: 171.25, Timestamp: fetchedAt}, nil
	})
	broadcaster.EXPECT().Reset(gomock.Any(), gomock.Any())
	logger.EXPECT().InfoContext(gomock.Any(), "feed symbol changed", gomock.Any())
	logger.EXPECT().DebugContext(gomock.Any(), "stale quote dropped", gomock.Any())

	require.NoError(t, u.Tick(context.Background()))

	snapshot := u.Snapshot(context.Background())
	assert.Equal(t, "MSFT", snapshot.Symbol)
	assert.Equal(t, 0, snapshot.Columns.Len())
}

func TestUsecase_InitialTitle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fetcher := iexMock.NewMockQuoteFetcher(ctrl)
	broadcaster := feedMock.NewMockBroadcaster(ctrl)
	clock := feedMock.NewMockClock(ctrl)
	logger := loggerMock.NewMockInterface(ctrl)

	testCases := []struct {
		name   string
		symbol string
		want   string
	}{
		{
			name:   "no initial symbol",
			symbol: "",
			want:   "IEX Real Time Price Security Symbol: ",
		},
		{
			name:   "initial symbol from config",
			symbol: "AAPL",
			want:   "IEX Real Time Price Security Symbol: AAPL",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			u := NewUsecase(Config{Symbol: tc.symbol, Rollover: 10, Location: mustLocation(t)}, fetcher, broadcaster, clock, logger)
			assert.Equal(t, tc.want, u.Snapshot(context.Background()).Title)
		})
	}
}

func TestUsecase_SnapshotIsolation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fetcher := iexMock.NewMockQuoteFetcher(ctrl)
	broadcaster := feedMock.NewMockBroadcaster(ctrl)
	clock := feedMock.NewMockClock(ctrl)
	logger := loggerMock.NewMockInterface(ctrl)

	u := NewUsecase(Config{Symbol: "AAPL", Rollover: 10, Location: mustLocation(t)}, fetcher, broadcaster, clock, logger)

	fetcher.EXPECT().FetchLast(gomock.Any(), "AAPL").Return(&quotev1.Quote{
		Symbol: "AAPL", Price: 171.25, Timestamp: fetchedAt,
	}, nil)
	broadcaster.EXPECT().Append(gomock.Any(), gomock.Any())
	require.NoError(t, u.Tick(context.Background()))

	snapshot := u.Snapshot(context.Background())
	snapshot.Columns.Price[0] = -1

	assert.Equal(t, 171.25, u.Snapshot(context.Background()).Columns.Price[0])
}

func TestUsecase_Tick_ErrorKindsAllSkip(t *testing.T) {
	codes := []errors.ErrorCode{
		errors.QuoteNetworkError,
		errors.QuoteUnknownSymbolError,
		errors.QuoteParseError,
		errors.QuoteEmptyResponseError,
		errors.QuoteMultiRowError,
	}

	for _, code := range codes {
		t.Run(string(code), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			fetcher := iexMock.NewMockQuoteFetcher(ctrl)
			broadcaster := feedMock.NewMockBroadcaster(ctrl)
			clock := feedMock.NewMockClock(ctrl)
			logger := loggerMock.NewMockInterface(ctrl)

			u := NewUsecase(Config{Symbol: "AAPL", Rollover: 10, Location: mustLocation(t)}, fetcher, broadcaster, clock, logger)

			fetcher.EXPECT().FetchLast(gomock.Any(), "AAPL").Return(nil,
				errors.NewErrorDetails(fmt.Sprintf("fetch failed with %s", code), string(code), ""))

			err := u.Tick(context.Background())
			require.Error(t, err)
			assert.Equal(t, 0, u.Snapshot(context.Background()).Columns.Len())
		})
	}
}

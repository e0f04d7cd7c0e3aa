package bootstrap

import (
	feedDomain "github.com/ppgiii/ViZ/internal/domain/feed"
	feedUc "github.com/ppgiii/ViZ/internal/usecase/feed"
	"github.com/ppgiii/ViZ/internal/usecase/poller"
)

// Usecase holds the feed pipeline use cases.
type Usecase struct {
	FeedUsecase feedDomain.Usecase
	Poller      *poller.Poller
}

// registerUsecase registers the use cases and points the hub at the feed.
func (b *Bootstrap) registerUsecase() {
	usecase := feedUc.NewUsecase(feedUc.Config{
		Symbol:   b.Config.Feed.Symbol,
		Rollover: b.Config.Feed.Rollover,
		Location: b.Location,
	}, b.Fetcher, b.Hub, feedDomain.RealClock{}, b.Logger)

	b.Hub.SetSource(usecase)

	b.Usecase.FeedUsecase = usecase
	b.Usecase.Poller = poller.NewPoller(usecase, feedDomain.RealClock{}, b.Logger, b.Config.Feed.Interval)
}

package bootstrap

import "github.com/ppgiii/ViZ/internal/infrastructure/iex"

// registerFetcher registers the IEX quote fetcher.
func (b *Bootstrap) registerFetcher() {
	b.Fetcher = iex.NewClient(b.Config.IEX)
}

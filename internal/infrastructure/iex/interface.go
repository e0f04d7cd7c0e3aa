package iex

import (
	"context"

	quotev1 "github.com/ppgiii/ViZ/internal/domain/quote/v1"
)

// QuoteFetcher is the interface for the last trade quote client.
//
//go:generate mockgen -source=interface.go -destination=mock/interface_mock.go -package=mock
type QuoteFetcher interface {
	FetchLast(ctx context.Context, symbol string) (*quotev1.Quote, error)
}

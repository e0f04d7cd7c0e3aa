package bootstrap

import (
	"net/http"

	"github.com/ppgiii/ViZ/internal/api"
)

// registerServer registers the HTTP surface.
func (b *Bootstrap) registerServer() {
	b.Server = api.NewServer(b.Usecase.FeedUsecase, http.HandlerFunc(b.Hub.ServeWS), b.Web, b.Logger)
}

package bootstrap

import (
	"net/http"
	"time"

	"github.com/ppgiii/ViZ/internal/api"
	"github.com/ppgiii/ViZ/internal/infrastructure/iex"
	"github.com/ppgiii/ViZ/internal/stream"
	"github.com/ppgiii/ViZ/pkg/config"
	"github.com/ppgiii/ViZ/pkg/logger"
)

// Bootstrap wires the feed pipeline together.
type Bootstrap struct {
	Fetcher iex.QuoteFetcher
	Hub     *stream.Hub
	Usecase Usecase
	Server  *api.Server

	Config   config.Config
	Location *time.Location
	Web      http.Handler
	Logger   logger.Interface
}

// BootstrapConfig is the config for the bootstrap.
type BootstrapConfig struct {
	Config   config.Config
	Location *time.Location
	Web      http.Handler
	Logger   logger.Interface
}

// Init initializes the bootstrap.
func (b *Bootstrap) Init(config BootstrapConfig) Bootstrap {
	b.Config = config.Config
	b.Location = config.Location
	b.Web = config.Web
	b.Logger = config.Logger

	b.registerFetcher()
	b.registerStream()
	b.registerUsecase()
	b.registerServer()

	return *b
}

package bootstrap

import "github.com/ppgiii/ViZ/internal/stream"

// registerStream registers the websocket hub.
func (b *Bootstrap) registerStream() {
	b.Hub = stream.NewHub(b.Logger)
}

package stream

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	feeddomain "github.com/ppgiii/ViZ/internal/domain/feed"
	v1 "github.com/ppgiii/ViZ/internal/domain/feed/v1"
	quotev1 "github.com/ppgiii/ViZ/internal/domain/quote/v1"
	"github.com/ppgiii/ViZ/pkg/errors"
	"github.com/ppgiii/ViZ/pkg/logger"
)

// Source provides the snapshot pushed to a client right after it attaches.
type Source interface {
	Snapshot(ctx context.Context) *v1.Snapshot
}

// clientConn is the hub side surface of an attached client.
type clientConn interface {
	ID() string
	Enqueue(message []byte) bool
	Close()
}

// Hub fans feed frames out to every attached websocket client.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]clientConn

	source   Source
	logger   logger.Interface
	upgrader websocket.Upgrader
}

// Ensure Hub implements feed.Broadcaster interface
var _ feeddomain.Broadcaster = (*Hub)(nil)

// NewHub creates a hub with no attached clients.
func NewHub(logger logger.Interface) *Hub {
	return &Hub{
		clients: make(map[string]clientConn),
		logger:  logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// SetSource wires the snapshot source. Must be set before ServeWS runs.
func (h *Hub) SetSource(source Source) {
	h.source = source
}

// ServeWS upgrades the request and attaches the connection to the hub.
// The first frame a client receives is always the full snapshot.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.ErrorContext(r.Context(), errors.TracerFromError(err))
		return
	}

	client := newClient(uuid.NewString(), conn, h, h.logger)
	h.register(client)

	if frame, err := marshalFrame(FrameReset, h.source.Snapshot(r.Context())); err == nil {
		client.Enqueue(frame)
	} else {
		h.logger.ErrorContext(r.Context(), errors.NewTracer("stream_encode_error").Wrap(err))
	}

	go client.writePump()
	go client.readPump()

	h.logger.InfoContext(r.Context(), "stream client attached",
		logger.NewField("client_id", client.ID()),
	)
}

// Append pushes freshly appended columns to every attached client.
// Ragged columns never leave the process.
func (h *Hub) Append(ctx context.Context, columns quotev1.Columns) {
	if err := columns.Validate(); err != nil {
		h.logger.ErrorContext(ctx, errors.TracerFromError(err))
		return
	}

	h.broadcast(ctx, FrameAppend, columns)
}

// Reset pushes a full snapshot, clients drop local state and redraw.
func (h *Hub) Reset(ctx context.Context, snapshot *v1.Snapshot) {
	h.broadcast(ctx, FrameReset, snapshot)
}

// Len returns the number of attached clients.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.clients)
}

// Close detaches every client, used on shutdown.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, client := range h.clients {
		delete(h.clients, id)
		client.Close()
	}
}

func (h *Hub) broadcast(ctx context.Context, frameType string, data any) {
	frame, err := marshalFrame(frameType, data)
	if err != nil {
		h.logger.ErrorContext(ctx, errors.NewTracer("stream_encode_error").Wrap(err))
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, client := range h.clients {
		if !client.Enqueue(frame) {
			h.logger.Debug("stream frame dropped",
				logger.NewField("client_id", client.ID()),
			)
		}
	}
}

func (h *Hub) register(client clientConn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client.ID()] = client
}

func (h *Hub) unregister(client clientConn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client.ID()]; !ok {
		return
	}

	delete(h.clients, client.ID())
	client.Close()
}

func marshalFrame(frameType string, data any) ([]byte, error) {
	return json.Marshal(Frame{Type: frameType, Data: data})
}

package stream

// Frame types pushed to attached clients.
const (
	// FrameReset carries a full snapshot, the client redraws from scratch.
	FrameReset = "reset"
	// FrameAppend carries columns extending the current window.
	FrameAppend = "append"
)

// Frame is the envelope for every message pushed over a stream connection.
type Frame struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

package protocol

import "time"

const (
	DefaultEndpoint = "ws://localhost:8080"

	// FrameKey is the single top-level key wrapping every face frame.
	FrameKey = "V8"

	// Text carried by the text publisher and the Content annotation.
	Greeting = "你好"
)

const (
	FaceInterval     = 30 * time.Millisecond
	TextInterval     = 1000 * time.Millisecond
	ReconnectBackoff = 3 * time.Second
)

package network

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"livelink/protocol"
)

const (
	sinkReadLimit    = 1 << 20 // 1MB
	sinkPongWait     = 60 * time.Second
	sinkPingInterval = 25 * time.Second
	sinkWriteWait    = 10 * time.Second
)

// Sink is a receive-only websocket endpoint for local runs: it accepts
// publishers and logs what arrives. Face frames are summarised rather than
// dumped.
type Sink struct {
	// OnMessage, if set, gets every text payload received.
	OnMessage func([]byte)
	Logger    *slog.Logger

	upgrader websocket.Upgrader
}

func NewSink() *Sink {
	return &Sink{
		upgrader: websocket.Upgrader{
			// For dev, allow all origins.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

func (s *Sink) log() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

func (s *Sink) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := s.log().With("remote", r.RemoteAddr)

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn("upgrade failed", "error", err)
		return
	}
	defer conn.Close()
	log.Info("publisher connected")

	conn.SetReadLimit(sinkReadLimit)
	_ = conn.SetReadDeadline(time.Now().Add(sinkPongWait))
	conn.SetPongHandler(func(string) error {
		_ = conn.SetReadDeadline(time.Now().Add(sinkPongWait))
		return nil
	})

	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(sinkPingInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(sinkWriteWait)); err != nil {
					return
				}
			case <-done:
				return
			}
		}
	}()

	for {
		msgType, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Info("publisher disconnected")
			} else {
				log.Warn("read failed", "error", err)
			}
			return
		}
		// any traffic counts as liveness
		_ = conn.SetReadDeadline(time.Now().Add(sinkPongWait))
		if msgType != websocket.TextMessage {
			continue
		}
		s.record(log, msg)
	}
}

// frameSummary is the part of a face frame the sink reports on.
type frameSummary struct {
	V8 struct {
		BoneArray  []struct{ Name string }
		Expression []struct{ Name string }
		Content    []protocol.Annotation
	}
}

// annotation returns the first value stored under key.
func annotation(entries []protocol.Annotation, key string) string {
	for _, e := range entries {
		if v, ok := e[key]; ok {
			return v
		}
	}
	return ""
}

func (s *Sink) record(log *slog.Logger, msg []byte) {
	if s.OnMessage != nil {
		s.OnMessage(msg)
	}

	f, err := protocol.Decode[frameSummary](msg)
	if err == nil && (f.V8.BoneArray != nil || f.V8.Expression != nil) {
		log.Debug("recv frame",
			"bones", len(f.V8.BoneArray),
			"curves", len(f.V8.Expression),
			"speaking", annotation(f.V8.Content, "Speaking") == "true",
			"text", annotation(f.V8.Content, "Text"),
			"bytes", len(msg))
		return
	}
	log.Info("recv", "text", protocol.Preview(msg, 100))
}

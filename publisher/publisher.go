package publisher

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"

	"livelink/metrics"
	"livelink/protocol"
)

type State int32

const (
	Disconnected State = iota
	Streaming
)

func (s State) String() string {
	switch s {
	case Disconnected:
		return "disconnected"
	case Streaming:
		return "streaming"
	default:
		return "unknown"
	}
}

const previewLen = 100

type Options struct {
	Variant  string        // label for logs and metrics, e.g. "face"
	Endpoint string        // defaults to protocol.DefaultEndpoint
	Interval time.Duration // pause after each successful send
	Backoff  time.Duration // pause after any failure, defaults to protocol.ReconnectBackoff
	Clock    clockwork.Clock
	Metrics  *metrics.PublisherMetrics
	Logger   *slog.Logger

	// LogSends logs every sent message at Info instead of Debug.
	LogSends bool
}

// Publisher keeps one session to the endpoint open and writes a composed
// message on it every Interval. Any failure drops the session, waits Backoff
// and dials again, forever.
type Publisher struct {
	dialer   Dialer
	composer Composer

	variant  string
	endpoint string
	interval time.Duration
	backoff  time.Duration
	clock    clockwork.Clock
	metrics  *metrics.PublisherMetrics
	log      *slog.Logger
	sendLvl  slog.Level

	state atomic.Int32
	seq   uint64
}

func New(d Dialer, c Composer, opts Options) *Publisher {
	p := &Publisher{
		dialer:   d,
		composer: c,
		variant:  opts.Variant,
		endpoint: opts.Endpoint,
		interval: opts.Interval,
		backoff:  opts.Backoff,
		clock:    opts.Clock,
		metrics:  opts.Metrics,
		log:      opts.Logger,
		sendLvl:  slog.LevelDebug,
	}
	if opts.LogSends {
		p.sendLvl = slog.LevelInfo
	}
	if p.variant == "" {
		p.variant = "default"
	}
	if p.endpoint == "" {
		p.endpoint = protocol.DefaultEndpoint
	}
	if p.interval <= 0 {
		p.interval = protocol.TextInterval
	}
	if p.backoff <= 0 {
		p.backoff = protocol.ReconnectBackoff
	}
	if p.clock == nil {
		p.clock = clockwork.NewRealClock()
	}
	if p.metrics == nil {
		// unexported registry so callers without metrics don't need nil checks
		p.metrics = metrics.NewPublisherMetrics(prometheus.NewRegistry())
	}
	if p.log == nil {
		p.log = slog.Default()
	}
	p.log = p.log.With("publisher", p.variant, "endpoint", p.endpoint)
	return p
}

func (p *Publisher) State() State {
	return State(p.state.Load())
}

func (p *Publisher) setState(s State) {
	p.state.Store(int32(s))
	if s == Streaming {
		p.metrics.Streaming.WithLabelValues(p.variant).Set(1)
	} else {
		p.metrics.Streaming.WithLabelValues(p.variant).Set(0)
	}
}

// Run drives the Disconnected/Streaming loop until ctx is cancelled. The
// current session, if any, is closed on return. Run only ever returns ctx.Err().
func (p *Publisher) Run(ctx context.Context) error {
	var (
		conn Conn
		log  = p.log
	)
	defer func() {
		if conn != nil {
			_ = conn.Close()
		}
		p.setState(Disconnected)
	}()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		switch p.State() {
		case Disconnected:
			c, err := p.connect(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				log.Warn("connect failed, retrying", "error", err, "backoff", p.backoff)
				if err := p.wait(ctx, p.backoff); err != nil {
					return err
				}
				continue
			}
			conn = c
			log = p.log.With("session", uuid.NewString())
			log.Info("connected")
			p.setState(Streaming)

		case Streaming:
			if err := p.send(ctx, log, conn); err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				log.Warn("send failed, reconnecting", "error", err, "backoff", p.backoff)
				_ = conn.Close()
				conn = nil
				log = p.log
				p.setState(Disconnected)
				if err := p.wait(ctx, p.backoff); err != nil {
					return err
				}
				continue
			}
			if err := p.wait(ctx, p.interval); err != nil {
				return err
			}
		}
	}
}

func (p *Publisher) connect(ctx context.Context) (Conn, error) {
	p.metrics.ConnectAttempts.WithLabelValues(p.variant).Inc()
	c, err := p.dialer.Dial(ctx, p.endpoint)
	if err != nil {
		p.metrics.ConnectFailures.WithLabelValues(p.variant).Inc()
		return nil, &ConnectError{Endpoint: p.endpoint, Err: err}
	}
	return c, nil
}

// send composes a fresh message and writes it. A failed message is dropped,
// never retried.
func (p *Publisher) send(ctx context.Context, log *slog.Logger, conn Conn) error {
	p.seq++
	seq := p.seq

	b, err := p.composer.Compose()
	if err != nil {
		p.metrics.SendFailures.WithLabelValues(p.variant).Inc()
		return &SendError{Seq: seq, Err: err}
	}
	// Send can block forever on a peer that stopped reading; cancel closes the session.
	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	err = conn.Send(b)
	stop()
	if err != nil {
		p.metrics.SendFailures.WithLabelValues(p.variant).Inc()
		return &SendError{Seq: seq, Err: err}
	}
	p.metrics.MessagesSent.WithLabelValues(p.variant).Inc()

	if log.Enabled(ctx, p.sendLvl) {
		log.Log(ctx, p.sendLvl, "message sent", "seq", seq, "bytes", len(b), "preview", protocol.Preview(b, previewLen))
	}
	return nil
}

// wait suspends the loop without holding anything else up.
func (p *Publisher) wait(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-p.clock.After(d):
		return nil
	}
}

package publisher

import "context"

// Conn is a single live session to the endpoint. It is owned by one loop and
// never shared.
type Conn interface {
	Send([]byte) error
	Close() error
}

// Dialer opens a new Conn to endpoint.
type Dialer interface {
	Dial(ctx context.Context, endpoint string) (Conn, error)
}

// DialFunc adapts a plain function to a Dialer.
type DialFunc func(ctx context.Context, endpoint string) (Conn, error)

func (f DialFunc) Dial(ctx context.Context, endpoint string) (Conn, error) {
	return f(ctx, endpoint)
}

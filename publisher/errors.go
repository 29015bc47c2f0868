package publisher

import "fmt"

// ConnectError means the session could not be established.
type ConnectError struct {
	Endpoint string
	Err      error
}

func (e *ConnectError) Error() string {
	return fmt.Sprintf("connect %s: %v", e.Endpoint, e.Err)
}

func (e *ConnectError) Unwrap() error { return e.Err }

// SendError means an established session stopped accepting messages.
type SendError struct {
	Seq uint64
	Err error
}

func (e *SendError) Error() string {
	return fmt.Sprintf("send message %d: %v", e.Seq, e.Err)
}

func (e *SendError) Unwrap() error { return e.Err }

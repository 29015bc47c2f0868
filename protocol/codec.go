package protocol

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrEmptyFrame = errors.New("empty frame")

// Encode serialises a face frame body.
func Encode(body Body) ([]byte, error) {
	if len(body.BoneArray) == 0 {
		return nil, fmt.Errorf("trying to encode frame without bones")
	}
	if len(body.Expression) == 0 {
		return nil, fmt.Errorf("trying to encode frame without expression curves")
	}
	return json.Marshal(Frame{V8: body})
}

func DecodeFrame(b []byte) (Frame, error) {
	if len(b) == 0 {
		return Frame{}, ErrEmptyFrame
	}
	var f Frame
	if err := json.Unmarshal(b, &f); err != nil {
		return Frame{}, err
	}
	if f.V8.BoneArray == nil && f.V8.Expression == nil {
		return Frame{}, fmt.Errorf("missing %q object", FrameKey)
	}
	return f, nil
}

// Decode unmarshals b into whatever T is, e.g. a partial view of a frame.
func Decode[T any](b []byte) (T, error) {
	var out T
	if len(b) == 0 {
		return out, ErrEmptyFrame
	}
	err := json.Unmarshal(b, &out)
	return out, err
}

// Preview returns at most n runes of a payload for log lines.
func Preview(b []byte, n int) string {
	r := []rune(string(b))
	if len(r) <= n {
		return string(r)
	}
	return string(r[:n]) + "..."
}

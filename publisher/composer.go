package publisher

import (
	"livelink/protocol"
	"livelink/rig"
)

// Composer builds the next serialised message.
type Composer interface {
	Compose() ([]byte, error)
}

// TextComposer sends the same literal every time.
type TextComposer struct {
	Text string
}

func (c TextComposer) Compose() ([]byte, error) {
	return []byte(c.Text), nil
}

// FaceComposer builds V8 frames. Only the expression values change between
// calls; bones and annotations are built once.
type FaceComposer struct {
	sampler rig.Sampler
	bones   []protocol.Bone
	content []protocol.Annotation
	order   []protocol.Annotation
}

func NewFaceComposer(s rig.Sampler) *FaceComposer {
	if s == nil {
		s = rig.RandSampler{}
	}
	return &FaceComposer{
		sampler: s,
		bones:   protocol.BonesFrom(rig.Skeleton),
		content: protocol.DefaultContent,
		order:   protocol.DefaultOrder,
	}
}

// body rolls a fresh set of expression values.
func (c *FaceComposer) body() protocol.Body {
	return protocol.Body{
		BoneArray:  c.bones,
		Expression: protocol.CurvesFrom(rig.Channels, rig.Weights(c.sampler)),
		Content:    c.content,
		Order:      c.order,
	}
}

func (c *FaceComposer) Compose() ([]byte, error) {
	return protocol.Encode(c.body())
}

package publisher

import (
	"encoding/json"
	"testing"

	"livelink/protocol"
	"livelink/rig"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// staticFields re-encodes everything in a frame except the expression values.
func staticFields(t *testing.T, b []byte) []byte {
	t.Helper()
	f, err := protocol.DecodeFrame(b)
	require.NoError(t, err)
	names := make([]string, len(f.V8.Expression))
	for i, c := range f.V8.Expression {
		names[i] = c.Name
	}
	out, err := json.Marshal(struct {
		Bones    []protocol.Bone
		Channels []string
		Content  []protocol.Annotation
		Order    []protocol.Annotation
	}{f.V8.BoneArray, names, f.V8.Content, f.V8.Order})
	require.NoError(t, err)
	return out
}

func TestTextComposer(t *testing.T) {
	b, err := TextComposer{Text: protocol.Greeting}.Compose()
	require.NoError(t, err)
	assert.Equal(t, "你好", string(b))
}

func TestFaceComposerLayout(t *testing.T) {
	c := NewFaceComposer(rig.NewSeededSampler(1))
	for i := 0; i < 50; i++ {
		b, err := c.Compose()
		require.NoError(t, err)

		f, err := protocol.DecodeFrame(b)
		require.NoError(t, err)

		require.Len(t, f.V8.BoneArray, len(rig.Skeleton))
		for j, bone := range f.V8.BoneArray {
			assert.Equal(t, rig.Skeleton[j].Name, bone.Name)
			assert.Equal(t, rig.Skeleton[j].Parent, bone.Parent)
		}

		require.Len(t, f.V8.Expression, len(rig.Channels))
		for j, curve := range f.V8.Expression {
			assert.Equal(t, rig.Channels[j], curve.Name)
			assert.GreaterOrEqual(t, curve.Value, 0.0)
			assert.Less(t, curve.Value, 0.3)
		}

		assert.Equal(t, protocol.DefaultContent, f.V8.Content)
		assert.Equal(t, protocol.DefaultOrder, f.V8.Order)
	}
}

func TestFaceComposerTableSizes(t *testing.T) {
	// Counted from the capture script's BoneArray (Hips..RightToeBase) and
	// blend_shape_names (browDownLeft..tongueOut) tables.
	assert.Len(t, rig.Skeleton, 21)
	assert.Len(t, rig.Channels, 52)
}

func TestFaceComposerStaticFieldsIdentical(t *testing.T) {
	c := NewFaceComposer(rig.NewSeededSampler(2))
	a, err := c.Compose()
	require.NoError(t, err)
	b, err := c.Compose()
	require.NoError(t, err)

	assert.NotEqual(t, a, b, "expression values should be re-rolled")
	assert.Equal(t, staticFields(t, a), staticFields(t, b))
}

func TestFaceComposerRoundTrip(t *testing.T) {
	c := NewFaceComposer(nil)
	b, err := c.Compose()
	require.NoError(t, err)

	f, err := protocol.DecodeFrame(b)
	require.NoError(t, err)
	again, err := protocol.Encode(f.V8)
	require.NoError(t, err)

	g, err := protocol.DecodeFrame(again)
	require.NoError(t, err)

	bones := map[string]bool{}
	for _, bone := range g.V8.BoneArray {
		bones[bone.Name] = true
	}
	for _, name := range rig.BoneNames() {
		assert.True(t, bones[name], "missing bone %s", name)
	}
	channels := map[string]bool{}
	for _, curve := range g.V8.Expression {
		channels[curve.Name] = true
		assert.GreaterOrEqual(t, curve.Value, rig.ExpressionMin)
		assert.Less(t, curve.Value, rig.ExpressionMax)
	}
	assert.Len(t, channels, len(rig.Channels))
	assert.JSONEq(t, string(b), string(again))
}

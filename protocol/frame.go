package protocol

import "livelink/rig"

// Frame is the face message as it goes on the wire: {"V8": {...}}.
type Frame struct {
	V8 Body `json:"V8"`
}

type Body struct {
	BoneArray  []Bone       `json:"BoneArray"`
	Expression []Curve      `json:"Expression"`
	Content    []Annotation `json:"Content"`
	Order      []Annotation `json:"Order"`
}

type Bone struct {
	Name     string     `json:"Name"`
	Parent   string     `json:"Parent"`
	Location [3]float64 `json:"Location"`
	Rotation [4]float64 `json:"Rotation"` // x, y, z, w
}

// Curve is one blend-shape channel value.
type Curve struct {
	Name  string  `json:"Name"`
	Value float64 `json:"Value"`
}

// Annotation is a single-key object such as {"Speaking":"true"}.
type Annotation map[string]string

// Static annotations sent with every frame.
var (
	DefaultContent = []Annotation{
		{"Speaking": "true"},
		{"Text": Greeting},
	}
	DefaultOrder = []Annotation{
		{"AnimOrder": "招手"},
		{"Order2": "其他"},
	}
)

// BonesFrom converts the rig table into wire bones.
func BonesFrom(skeleton []rig.Bone) []Bone {
	out := make([]Bone, len(skeleton))
	for i, b := range skeleton {
		out[i] = Bone{
			Name:     b.Name,
			Parent:   b.Parent,
			Location: b.Location,
			Rotation: b.Rotation,
		}
	}
	return out
}

// CurvesFrom pairs channel names with values. Both slices must be the same length.
func CurvesFrom(names []string, values []float64) []Curve {
	out := make([]Curve, len(names))
	for i, n := range names {
		out[i] = Curve{Name: n, Value: values[i]}
	}
	return out
}

package rig

// RootParent is the parent name carried by the root bone.
const RootParent = "None"

// Bone is a rigid transform node. Parent links are by name, not pointer.
type Bone struct {
	Name     string
	Parent   string
	Location [3]float64
	Rotation [4]float64 // x, y, z, w
}

// Skeleton is the humanoid rest pose streamed with every face frame.
// Hips is the root; every parent appears before its children.
var Skeleton = []Bone{
	{"Hips", RootParent, [3]float64{0.0, 0.0, 0.0}, [4]float64{-0.01, 1.0, 0.01, 0.05}},
	{"Spine", "Hips", [3]float64{-0.0, 75.76, 0.0}, [4]float64{-0.04, -0.01, -0.0, 1.0}},
	{"Spine1", "Spine", [3]float64{-0.0, 164.8, 0.0}, [4]float64{-0.01, -0.0, 0.01, 1.0}},
	{"Neck", "Spine1", [3]float64{-0.0, 183.28, 0.0}, [4]float64{0.04, -0.02, -0.02, 1.0}},
	{"Head", "Neck", [3]float64{-0.0, 143.21, 18.48}, [4]float64{0.0, -0.02, -0.01, 1.0}},

	{"LeftShoulder", "Spine1", [3]float64{36.59, 144.4, -2.04}, [4]float64{0.03, 0.03, 0.13, 0.99}},
	{"LeftArm", "LeftShoulder", [3]float64{117.79, 0.0, 0.0}, [4]float64{0.05, -0.03, -0.14, 0.99}},
	{"LeftForeArm", "LeftArm", [3]float64{266.45, 0.0, 0.0}, [4]float64{-0.02, -0.03, 0.02, 1.0}},
	{"LeftHand", "LeftForeArm", [3]float64{266.61, 0.0, 0.0}, [4]float64{-0.01, -0.06, -0.01, 1.0}},

	{"RightShoulder", "Spine1", [3]float64{-37.24, 144.4, -2.04}, [4]float64{0.0, 0.02, -0.16, 0.99}},
	{"RightArm", "RightShoulder", [3]float64{-117.79, 0.0, 0.0}, [4]float64{0.05, -0.02, 0.14, 0.99}},
	{"RightForeArm", "RightArm", [3]float64{-266.45, 0.0, 0.0}, [4]float64{-0.05, 0.01, 0.0, 1.0}},
	{"RightHand", "RightForeArm", [3]float64{-266.61, 0.0, 0.0}, [4]float64{-0.06, 0.02, -0.02, 1.0}},

	{"LeftUpLeg", "Hips", [3]float64{92.4, 0.0, 0.0}, [4]float64{0.03, 0.04, -0.04, 1.0}},
	{"LeftLeg", "LeftUpLeg", [3]float64{-0.0, -383.75, 0.0}, [4]float64{-0.06, 0.1, 0.02, 0.99}},
	{"LeftFoot", "LeftLeg", [3]float64{-0.0, -363.85, 0.0}, [4]float64{-0.0, 0.12, -0.01, 0.99}},
	{"LeftToeBase", "LeftFoot", [3]float64{-0.0, -60.06, 138.59}, [4]float64{0.0, 0.0, 0.0, 1.0}},

	{"RightUpLeg", "Hips", [3]float64{-92.4, 0.0, 0.0}, [4]float64{0.04, -0.03, 0.01, 1.0}},
	{"RightLeg", "RightUpLeg", [3]float64{-0.0, -383.75, 0.0}, [4]float64{-0.05, -0.04, 0.0, 1.0}},
	{"RightFoot", "RightLeg", [3]float64{-0.0, -363.85, 0.0}, [4]float64{-0.03, -0.14, 0.0, 0.99}},
	{"RightToeBase", "RightFoot", [3]float64{-0.0, -60.06, 138.59}, [4]float64{0.0, 0.0, 0.0, 1.0}},
}

// BoneNames returns the skeleton's bone names in declaration order.
func BoneNames() []string {
	out := make([]string, len(Skeleton))
	for i, b := range Skeleton {
		out[i] = b.Name
	}
	return out
}

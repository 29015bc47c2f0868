package rig

import "testing"

func TestSkeletonHierarchy(t *testing.T) {
	if len(Skeleton) == 0 {
		t.Fatalf("empty skeleton")
	}
	if Skeleton[0].Name != "Hips" || Skeleton[0].Parent != RootParent {
		t.Fatalf("root = %q (parent %q), want Hips (parent %q)", Skeleton[0].Name, Skeleton[0].Parent, RootParent)
	}

	seen := make(map[string]bool, len(Skeleton))
	for i, b := range Skeleton {
		if seen[b.Name] {
			t.Fatalf("duplicate bone %q", b.Name)
		}
		if i > 0 && !seen[b.Parent] {
			t.Fatalf("bone %q references parent %q before it is declared", b.Name, b.Parent)
		}
		seen[b.Name] = true
	}
}

func TestSkeletonLimbs(t *testing.T) {
	want := map[string]string{
		"Head":         "Neck",
		"LeftHand":     "LeftForeArm",
		"RightHand":    "RightForeArm",
		"LeftToeBase":  "LeftFoot",
		"RightToeBase": "RightFoot",
		"LeftUpLeg":    "Hips",
		"RightUpLeg":   "Hips",
	}
	parents := make(map[string]string, len(Skeleton))
	for _, b := range Skeleton {
		parents[b.Name] = b.Parent
	}
	for name, parent := range want {
		if got := parents[name]; got != parent {
			t.Fatalf("%s parent = %q, want %q", name, got, parent)
		}
	}
}

func TestSkeletonRotationsNearUnit(t *testing.T) {
	for _, b := range Skeleton {
		r := b.Rotation
		n := r[0]*r[0] + r[1]*r[1] + r[2]*r[2] + r[3]*r[3]
		// values are rounded to two decimals upstream
		if n < 0.95 || n > 1.05 {
			t.Fatalf("%s rotation not a unit quaternion: |q|^2=%f", b.Name, n)
		}
	}
}

func TestBoneNamesOrder(t *testing.T) {
	names := BoneNames()
	if len(names) != len(Skeleton) {
		t.Fatalf("len = %d, want %d", len(names), len(Skeleton))
	}
	for i := range names {
		if names[i] != Skeleton[i].Name {
			t.Fatalf("names[%d] = %q, want %q", i, names[i], Skeleton[i].Name)
		}
	}
}

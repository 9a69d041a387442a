package spatial

import (
	"math"
	"testing"
)

const floatTolerance = 1e-9

func floatEquals(a, b float64) bool {
	return math.Abs(a-b) < floatTolerance
}

func TestVec3_DistanceTo(t *testing.T) {
	a := Vec3{1, 0, 2}
	b := Vec3{1, 0, 2}

	if !floatEquals(a.DistanceTo(b), 0) {
		t.Errorf("Distance to self: got %v, want 0", a.DistanceTo(b))
	}

	c := Vec3{4, 4, 2}
	if !floatEquals(a.DistanceTo(c), 5) {
		t.Errorf("Distance: got %v, want 5", a.DistanceTo(c))
	}
}

func TestVec3_Normalized_Degenerate(t *testing.T) {
	v := Vec3{}.Normalized()
	if v != (Vec3{1, 0, 0}) {
		t.Errorf("Degenerate normalize: got %v, want unit X", v)
	}
}

func TestLerpVec3(t *testing.T) {
	a := Vec3{0, 0, 0}
	b := Vec3{10, -4, 2}

	mid := LerpVec3(a, b, 0.5)
	if !floatEquals(mid.X, 5) || !floatEquals(mid.Y, -2) || !floatEquals(mid.Z, 1) {
		t.Errorf("Midpoint lerp: got %v", mid)
	}

	if LerpVec3(a, b, 0) != a {
		t.Error("Lerp at t=0 should return start")
	}
	if LerpVec3(a, b, 1) != b {
		t.Error("Lerp at t=1 should return end")
	}
}

func TestSlerp_Endpoints(t *testing.T) {
	a := IdentityQuat()
	b := AxisAngle(Vec3{0, 1, 0}, math.Pi/2)

	start := Slerp(a, b, 0)
	if math.Abs(start.Dot(a))-1 > floatTolerance {
		t.Errorf("Slerp at t=0: got %v, want %v", start, a)
	}

	end := Slerp(a, b, 1)
	if math.Abs(end.Dot(b))-1 > floatTolerance {
		t.Errorf("Slerp at t=1: got %v, want %v", end, b)
	}
}

func TestSlerp_Halfway(t *testing.T) {
	a := IdentityQuat()
	b := AxisAngle(Vec3{0, 1, 0}, math.Pi/2)

	mid := Slerp(a, b, 0.5)
	want := AxisAngle(Vec3{0, 1, 0}, math.Pi/4)

	if math.Abs(mid.Dot(want)) < 1-1e-6 {
		t.Errorf("Slerp halfway: got %v, want %v", mid, want)
	}
}

func TestSlerp_ShortPath(t *testing.T) {
	a := AxisAngle(Vec3{0, 1, 0}, 0.1)
	// Same rotation expressed with all components negated
	b := AxisAngle(Vec3{0, 1, 0}, 0.2)
	neg := Quat{W: -b.W, X: -b.X, Y: -b.Y, Z: -b.Z}

	got := Slerp(a, neg, 0.5)
	want := Slerp(a, b, 0.5)

	if math.Abs(got.Dot(want)) < 1-1e-6 {
		t.Errorf("Slerp should take the short path: got %v, want %v", got, want)
	}
}

func TestSlerp_NearlyParallel(t *testing.T) {
	a := AxisAngle(Vec3{0, 1, 0}, 0.001)
	b := AxisAngle(Vec3{0, 1, 0}, 0.002)

	got := Slerp(a, b, 0.5)
	if !floatEquals(math.Sqrt(got.Dot(got)), 1) {
		t.Errorf("Nearly parallel slerp should stay normalized: got %v", got)
	}
}

func TestLerpTransform(t *testing.T) {
	a := IdentityTransform()
	b := Transform{
		Position: Vec3{2, 0, 0},
		Rotation: AxisAngle(Vec3{0, 0, 1}, math.Pi/2),
	}

	mid := LerpTransform(a, b, 0.5)
	if !floatEquals(mid.Position.X, 1) {
		t.Errorf("Transform lerp position: got %v, want X=1", mid.Position)
	}

	wantRot := AxisAngle(Vec3{0, 0, 1}, math.Pi/4)
	if math.Abs(mid.Rotation.Dot(wantRot)) < 1-1e-6 {
		t.Errorf("Transform lerp rotation: got %v, want %v", mid.Rotation, wantRot)
	}
}

package math

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-5

func near(a, b float32) bool {
	return float32(math.Abs(float64(a-b))) <= eps
}

func matNear(t *testing.T, name string, got Mat4, want mgl32.Mat4) {
	t.Helper()
	for i := range got {
		if !near(got[i], want[i]) {
			t.Errorf("%s: element %d = %f, want %f", name, i, got[i], want[i])
		}
	}
}

func vecNear(a, b Vec3) bool {
	return near(a.X, b.X) && near(a.Y, b.Y) && near(a.Z, b.Z)
}

func TestIdentity(t *testing.T) {
	matNear(t, "Identity", Identity(), mgl32.Ident4())
}

func TestPerspectiveMatchesMathGL(t *testing.T) {
	tests := []struct {
		name        string
		fov, aspect float32
		zNear, zFar float32
	}{
		{"globe 4:3", Radians(45), 800.0 / 600.0, 1, 100},
		{"square", Radians(45), 1, 1, 100},
		{"wide", Radians(60), 16.0 / 9.0, 0.1, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Perspective(tt.fov, tt.aspect, tt.zNear, tt.zFar)
			want := mgl32.Perspective(tt.fov, tt.aspect, tt.zNear, tt.zFar)
			matNear(t, "Perspective", got, want)
		})
	}
}

func TestOrthoMatchesMathGL(t *testing.T) {
	got := Ortho(0, 800, 600, 0, -1, 1)
	want := mgl32.Ortho(0, 800, 600, 0, -1, 1)
	matNear(t, "Ortho", got, want)
}

func TestLookAtMatchesMathGL(t *testing.T) {
	got := LookAt(Vec3{0, 0, 5}, Vec3{}, Vec3{0, 1, 0})
	want := mgl32.LookAtV(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	matNear(t, "LookAt", got, want)

	// The origin ends up 5 units in front of the camera.
	p := got.TransformPoint(Vec3{})
	if !vecNear(p, Vec3{0, 0, -5}) {
		t.Errorf("origin in view space = %v, want (0, 0, -5)", p)
	}
}

func TestRotationsMatchMathGL(t *testing.T) {
	for _, deg := range []float32{0, 30, 90, 180, 270, -45} {
		a := Radians(deg)
		matNear(t, "RotateX", RotateX(a), mgl32.HomogRotate3DX(a))
		matNear(t, "RotateY", RotateY(a), mgl32.HomogRotate3DY(a))
	}
}

func TestRotateX90MovesUpToFront(t *testing.T) {
	p := RotateX(Radians(90)).TransformPoint(Vec3{0, 1, 0})
	if !vecNear(p, Vec3{0, 0, 1}) {
		t.Errorf("RotateX(90) * (0,1,0) = %v, want (0, 0, 1)", p)
	}
}

func TestMulOrder(t *testing.T) {
	rx := RotateX(Radians(90))
	ry := RotateY(Radians(90))

	got := rx.Mul(ry)
	want := mgl32.HomogRotate3DX(Radians(90)).Mul4(mgl32.HomogRotate3DY(Radians(90)))
	matNear(t, "Rx*Ry", got, want)

	// Ry acts first: +X -> -Z, then Rx: -Z -> +Y.
	p := got.TransformPoint(Vec3{1, 0, 0})
	if !vecNear(p, Vec3{0, 1, 0}) {
		t.Errorf("(Rx*Ry) * (1,0,0) = %v, want (0, 1, 0)", p)
	}
}

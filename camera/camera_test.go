package camera_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"j4k.co/phong/camera"
)

func newCamera() *camera.Camera {
	return camera.New(camera.DefaultFOV, 4.0/3.0, camera.DefaultNear, camera.DefaultFar)
}

func TestScaleCompounds(t *testing.T) {
	c := newCamera()
	tests := []struct {
		amount float32
		want   float32
	}{
		{2, 2},
		{2, 4},
		{0.5, 2},
		{0, 2},
		{-3, 2},
	}
	for _, test := range tests {
		c.ScaleBy(test.amount)
		if got := c.Scale(); got != test.want {
			t.Errorf("ScaleBy(%v): scale = %v, want %v", test.amount, got, test.want)
		}
	}
}

func TestModelScale(t *testing.T) {
	c := newCamera()
	c.ScaleBy(3)
	p := c.Model().Mul4x1(mgl32.Vec4{1, 1, 1, 1})
	if !p.ApproxEqual(mgl32.Vec4{3, 3, 3, 1}) {
		t.Fatalf("scaled point = %v", p)
	}
}

func TestTranslateMovesView(t *testing.T) {
	c := newCamera()
	c.Translate(mgl32.Vec3{0, 0, -5})
	c.Translate(mgl32.Vec3{1, 0, 0})
	if got := c.Translation(); !got.ApproxEqual(mgl32.Vec3{1, 0, -5}) {
		t.Fatalf("translation = %v", got)
	}
	p := c.View().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	if !p.ApproxEqual(mgl32.Vec4{1, 0, -5, 1}) {
		t.Fatalf("origin in view space = %v", p)
	}
}

func TestRotateWraps(t *testing.T) {
	c := newCamera()
	c.Rotate(mgl32.Vec3{350, -350, 90})
	c.Rotate(mgl32.Vec3{20, -20, 0})
	if got := c.Rotation(); !got.ApproxEqual(mgl32.Vec3{10, -10, 90}) {
		t.Fatalf("rotation = %v", got)
	}
}

func TestRotateView(t *testing.T) {
	c := newCamera()
	c.Rotate(mgl32.Vec3{0, 90, 0})
	p := c.View().Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	want := mgl32.Vec4{0, 0, -1, 1}
	for i := range want {
		if mgl32.Abs(p[i]-want[i]) > 1e-5 {
			t.Fatalf("rotated point = %v, want %v", p, want)
		}
	}
}

func TestResize(t *testing.T) {
	c := newCamera()
	before := c.Projection()
	c.Resize(0)
	if c.Projection() != before {
		t.Fatal("zero aspect changed projection")
	}
	c.Resize(2)
	if c.Aspect() != 2 {
		t.Fatalf("aspect = %v", c.Aspect())
	}
	if c.Projection() == before {
		t.Fatal("projection unchanged after resize")
	}
}

func TestNewBadAspect(t *testing.T) {
	c := camera.New(camera.DefaultFOV, 0, camera.DefaultNear, camera.DefaultFar)
	if c.Aspect() != 1 {
		t.Fatalf("aspect = %v, want 1", c.Aspect())
	}
}

func TestModelViewProjection(t *testing.T) {
	c := newCamera()
	c.Translate(mgl32.Vec3{0, 0, -4})
	c.Rotate(mgl32.Vec3{30, 45, 0})
	c.ScaleBy(1.5)
	want := c.Projection().Mul4(c.View()).Mul4(c.Model())
	if got := c.ModelViewProjection(); !got.ApproxEqualThreshold(want, 1e-5) {
		t.Fatalf("mvp = %v, want %v", got, want)
	}
}

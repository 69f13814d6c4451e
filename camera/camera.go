// Package camera provides a perspective camera that orbits a single object:
// the view transform moves and rotates the world, and a uniform scale is
// applied to the object itself.
package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

const (
	DefaultFOV  = 45
	DefaultNear = 0.1
	DefaultFar  = 100
)

type Camera struct {
	fovy   float32 // degrees
	aspect float32
	near   float32
	far    float32

	translation mgl32.Vec3
	rotation    mgl32.Vec3 // degrees around x, y and z
	scale       float32
}

// New creates a camera at the origin looking down -z with unit scale. A
// non-positive aspect ratio falls back to 1.
func New(fovy, aspect, near, far float32) *Camera {
	if aspect <= 0 {
		aspect = 1
	}
	return &Camera{
		fovy:   fovy,
		aspect: aspect,
		near:   near,
		far:    far,
		scale:  1,
	}
}

func (c *Camera) Translate(diff mgl32.Vec3) {
	c.translation = c.translation.Add(diff)
}

func (c *Camera) Translation() mgl32.Vec3 {
	return c.translation
}

// Rotate adds degrees to the rotation around each axis, wrapped to
// (-360, 360).
func (c *Camera) Rotate(degrees mgl32.Vec3) {
	for i := range c.rotation {
		r := c.rotation[i] + degrees[i]
		for r >= 360 {
			r -= 360
		}
		for r <= -360 {
			r += 360
		}
		c.rotation[i] = r
	}
}

func (c *Camera) Rotation() mgl32.Vec3 {
	return c.rotation
}

// ScaleBy multiplies the current scale by amount. Non-positive amounts are
// ignored.
func (c *Camera) ScaleBy(amount float32) {
	if amount <= 0 {
		return
	}
	c.scale *= amount
}

func (c *Camera) Scale() float32 {
	return c.scale
}

// Resize sets a new aspect ratio. Non-positive ratios, as reported for a
// minimized window, are ignored.
func (c *Camera) Resize(aspect float32) {
	if aspect <= 0 {
		return
	}
	c.aspect = aspect
}

func (c *Camera) Aspect() float32 {
	return c.aspect
}

func (c *Camera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.fovy), c.aspect, c.near, c.far)
}

func (c *Camera) View() mgl32.Mat4 {
	r := c.rotation
	return mgl32.Translate3D(c.translation[0], c.translation[1], c.translation[2]).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(r[0]))).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(r[1]))).
		Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(r[2])))
}

func (c *Camera) Model() mgl32.Mat4 {
	return mgl32.Scale3D(c.scale, c.scale, c.scale)
}

func (c *Camera) ModelView() mgl32.Mat4 {
	return c.View().Mul4(c.Model())
}

func (c *Camera) ModelViewProjection() mgl32.Mat4 {
	return c.Projection().Mul4(c.ModelView())
}

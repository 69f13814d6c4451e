package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Light is a single Phong point light.
type Light struct {
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3
	Intensity float32
	Position  mgl32.Vec3 // world space
}

// Material is the surface the light shades. Ambient only feeds the
// precomputed ambient factor; it is not uploaded on its own.
type Material struct {
	Ambient   mgl32.Vec3
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3
	Shininess float32
}

// DefaultLight is white, full intensity, just above the origin.
func DefaultLight() Light {
	return Light{
		Diffuse:   mgl32.Vec3{1, 1, 1},
		Specular:  mgl32.Vec3{1, 1, 1},
		Intensity: 1,
		Position:  mgl32.Vec3{0, 0.9, 0},
	}
}

// DefaultMaterial is blue in every channel with a tight highlight.
func DefaultMaterial() Material {
	blue := mgl32.Vec3{0, 0, 1}
	return Material{
		Ambient:   blue,
		Diffuse:   blue,
		Specular:  blue,
		Shininess: 128,
	}
}

const DefaultAmbientIntensity = 0.2

var DefaultAmbientColor = mgl32.Vec3{1, 1, 1}

// ambientFactor multiplies the ambient light by the material's ambient
// reflectance per channel.
func ambientFactor(color mgl32.Vec3, intensity float32, m Material) mgl32.Vec3 {
	f := color.Mul(intensity)
	return mgl32.Vec3{f[0] * m.Ambient[0], f[1] * m.Ambient[1], f[2] * m.Ambient[2]}
}

package scene

import (
	"j4k.co/phong/gfx"
)

// Uniform locations shared with the Phong shaders. Any change here must bump
// BindingsVersion and the shaders' layout qualifiers with it.
const (
	AmbientFactorLocation int32 = iota
	LightDiffuseLocation
	LightSpecularLocation
	LightIntensityLocation
	LightPositionLocation
	MaterialDiffuseLocation
	MaterialSpecularLocation
	MaterialShininessLocation
	ModelViewMatrixLocation
	ViewMatrixLocation
	ProjectionMatrixLocation
)

const BindingsVersion = 1

// Attribute slots for the vertex streams.
var (
	PositionSlot = gfx.VertexPosition.Slot()
	NormalSlot   = gfx.VertexNormal.Slot()
)

// Bindings is the name to location table used for uniform upload.
var Bindings = gfx.Bindings{
	Version: BindingsVersion,
	Locations: map[string]int32{
		"ambientFactor":     AmbientFactorLocation,
		"lightDiffuse":      LightDiffuseLocation,
		"lightSpecular":     LightSpecularLocation,
		"lightIntensity":    LightIntensityLocation,
		"lightPosition":     LightPositionLocation,
		"materialDiffuse":   MaterialDiffuseLocation,
		"materialSpecular":  MaterialSpecularLocation,
		"materialShininess": MaterialShininessLocation,
		"modelViewMatrix":   ModelViewMatrixLocation,
		"viewMatrix":        ViewMatrixLocation,
		"projectionMatrix":  ProjectionMatrixLocation,
	},
}

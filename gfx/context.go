// Package gfx wraps the handful of graphics API calls a renderer needs behind
// an explicit Context, so that resources can be bound, uploaded and released
// without relying on an implicit current context.
package gfx

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Context is a graphics context that is current on the calling goroutine's
// thread. Handles are plain uint32 values where 0 means no object.
type Context interface {
	Enable(c Capability)
	DepthFunc(f CompareFunc)
	ClearColor(r, g, b, a float32)
	Clear(color, depth bool)
	Viewport(x, y, width, height int)

	GenVertexArray() uint32
	BindVertexArray(va uint32)
	DeleteVertexArray(va uint32)

	GenBuffer() uint32
	BindBuffer(t Target, buf uint32)
	BufferData(t Target, data []byte, usage Usage)
	DeleteBuffer(buf uint32)

	VertexAttribPointer(slot uint32, elems int, typ DataType, normalized bool, stride, offset int)
	EnableVertexAttribArray(slot uint32)

	UseProgram(prog uint32)
	Uniform1f(location int32, v float32)
	Uniform3fv(location int32, v mgl32.Vec3)
	UniformMatrix4fv(location int32, m mgl32.Mat4)

	DrawElements(mode Primitive, count int, typ DataType, offset int)

	CreateShader(stage ShaderStage) uint32
	CompileShader(shader uint32, source string) (ok bool, log string)
	DeleteShader(shader uint32)
	CreateProgram() uint32
	AttachShader(prog, shader uint32)
	DetachShader(prog, shader uint32)
	LinkProgram(prog uint32) (ok bool, log string)
	DeleteProgram(prog uint32)
}

type Usage uint16

const (
	StaticDraw Usage = iota
	DynamicDraw
	StreamDraw
	StaticCopy
	DynamicCopy
	StreamCopy
)

type Target uint8

const (
	ArrayBuffer Target = iota
	ElementArrayBuffer
)

type Capability uint8

const (
	DepthTest Capability = iota
	Multisample
)

// CompareFunc is the depth comparison. LessEqual passes fragments whose
// depth is less than or equal to the stored value.
type CompareFunc uint8

const (
	Never CompareFunc = iota
	Less
	Equal
	LessEqual
	Greater
	NotEqual
	GreaterEqual
	Always
)

type Primitive uint8

const (
	Triangles Primitive = iota
	Lines
	Points
)

type DataType uint8

const (
	Float DataType = iota
	UnsignedInt
	UnsignedShort
	UnsignedByte
)

// Size gives the byte size of a single value of the type.
func (t DataType) Size() int {
	switch t {
	case UnsignedShort:
		return 2
	case UnsignedByte:
		return 1
	default:
		return 4
	}
}

type ShaderStage uint8

const (
	VertexStage ShaderStage = iota
	FragmentStage
)

func (s ShaderStage) String() string {
	switch s {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	default:
		return "unknown"
	}
}

var (
	usageNames      = [...]string{"StaticDraw", "DynamicDraw", "StreamDraw", "StaticCopy", "DynamicCopy", "StreamCopy"}
	targetNames     = [...]string{"ArrayBuffer", "ElementArrayBuffer"}
	capabilityNames = [...]string{"DepthTest", "Multisample"}
	compareNames    = [...]string{"Never", "Less", "Equal", "LessEqual", "Greater", "NotEqual", "GreaterEqual", "Always"}
	primitiveNames  = [...]string{"Triangles", "Lines", "Points"}
	dataTypeNames   = [...]string{"Float", "UnsignedInt", "UnsignedShort", "UnsignedByte"}
)

func name(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return "unknown"
	}
	return names[i]
}

func (u Usage) String() string       { return name(usageNames[:], int(u)) }
func (t Target) String() string      { return name(targetNames[:], int(t)) }
func (c Capability) String() string  { return name(capabilityNames[:], int(c)) }
func (f CompareFunc) String() string { return name(compareNames[:], int(f)) }
func (p Primitive) String() string   { return name(primitiveNames[:], int(p)) }
func (t DataType) String() string    { return name(dataTypeNames[:], int(t)) }

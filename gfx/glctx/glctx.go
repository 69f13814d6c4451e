// Package glctx implements gfx.Context on an OpenGL 3.3 core profile
// context. Every call must happen on the thread the context is current on.
package glctx

import (
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"j4k.co/phong/gfx"
)

// Init loads the GL function pointers for the current context.
func Init() error {
	if err := gl.Init(); err != nil {
		return errors.Wrap(err, "glctx: init")
	}
	return nil
}

// Version reports the GL version string of the current context.
func Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

type Context struct{}

var _ gfx.Context = Context{}

func (Context) Enable(c gfx.Capability) {
	gl.Enable(capability(c))
}

func (Context) DepthFunc(f gfx.CompareFunc) {
	gl.DepthFunc(compareFunc(f))
}

func (Context) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (Context) Clear(color, depth bool) {
	var mask uint32
	if color {
		mask |= gl.COLOR_BUFFER_BIT
	}
	if depth {
		mask |= gl.DEPTH_BUFFER_BIT
	}
	gl.Clear(mask)
}

func (Context) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

func (Context) GenVertexArray() uint32 {
	var va uint32
	gl.GenVertexArrays(1, &va)
	return va
}

func (Context) BindVertexArray(va uint32) {
	gl.BindVertexArray(va)
}

func (Context) DeleteVertexArray(va uint32) {
	gl.DeleteVertexArrays(1, &va)
}

func (Context) GenBuffer() uint32 {
	var buf uint32
	gl.GenBuffers(1, &buf)
	return buf
}

func (Context) BindBuffer(t gfx.Target, buf uint32) {
	gl.BindBuffer(target(t), buf)
}

func (Context) BufferData(t gfx.Target, data []byte, u gfx.Usage) {
	if len(data) == 0 {
		gl.BufferData(target(t), 0, nil, usage(u))
		return
	}
	gl.BufferData(target(t), len(data), gl.Ptr(data), usage(u))
}

func (Context) DeleteBuffer(buf uint32) {
	gl.DeleteBuffers(1, &buf)
}

func (Context) VertexAttribPointer(slot uint32, elems int, typ gfx.DataType, normalized bool, stride, offset int) {
	gl.VertexAttribPointerWithOffset(slot, int32(elems), dataType(typ), normalized, int32(stride), uintptr(offset))
}

func (Context) EnableVertexAttribArray(slot uint32) {
	gl.EnableVertexAttribArray(slot)
}

func (Context) UseProgram(prog uint32) {
	gl.UseProgram(prog)
}

func (Context) Uniform1f(loc int32, v float32) {
	gl.Uniform1f(loc, v)
}

func (Context) Uniform3fv(loc int32, v mgl32.Vec3) {
	gl.Uniform3fv(loc, 1, &v[0])
}

func (Context) UniformMatrix4fv(loc int32, m mgl32.Mat4) {
	gl.UniformMatrix4fv(loc, 1, false, &m[0])
}

func (Context) DrawElements(mode gfx.Primitive, count int, typ gfx.DataType, offset int) {
	gl.DrawElementsWithOffset(primitive(mode), int32(count), dataType(typ), uintptr(offset))
}

func (Context) CreateShader(stage gfx.ShaderStage) uint32 {
	switch stage {
	case gfx.FragmentStage:
		return gl.CreateShader(gl.FRAGMENT_SHADER)
	default:
		return gl.CreateShader(gl.VERTEX_SHADER)
	}
}

func (Context) CompileShader(shader uint32, source string) (bool, string) {
	csrc, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.TRUE {
		return true, ""
	}
	var n int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &n)
	return false, infoLog(n, func(log *uint8) { gl.GetShaderInfoLog(shader, n, nil, log) })
}

func (Context) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (Context) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (Context) AttachShader(prog, shader uint32) {
	gl.AttachShader(prog, shader)
}

func (Context) DetachShader(prog, shader uint32) {
	gl.DetachShader(prog, shader)
}

func (Context) LinkProgram(prog uint32) (bool, string) {
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.TRUE {
		return true, ""
	}
	var n int32
	gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &n)
	return false, infoLog(n, func(log *uint8) { gl.GetProgramInfoLog(prog, n, nil, log) })
}

func (Context) DeleteProgram(prog uint32) {
	gl.DeleteProgram(prog)
}

func infoLog(n int32, get func(*uint8)) string {
	if n <= 0 {
		return "no info log"
	}
	log := strings.Repeat("\x00", int(n+1))
	get(gl.Str(log))
	return strings.TrimRight(log, "\x00\n")
}

func usage(u gfx.Usage) uint32 {
	switch u {
	case gfx.StaticDraw:
		return gl.STATIC_DRAW
	case gfx.DynamicDraw:
		return gl.DYNAMIC_DRAW
	case gfx.StreamDraw:
		return gl.STREAM_DRAW
	case gfx.StaticCopy:
		return gl.STATIC_COPY
	case gfx.DynamicCopy:
		return gl.DYNAMIC_COPY
	case gfx.StreamCopy:
		return gl.STREAM_COPY
	default:
		return gl.STATIC_DRAW
	}
}

func target(t gfx.Target) uint32 {
	if t == gfx.ElementArrayBuffer {
		return gl.ELEMENT_ARRAY_BUFFER
	}
	return gl.ARRAY_BUFFER
}

func capability(c gfx.Capability) uint32 {
	if c == gfx.Multisample {
		return gl.MULTISAMPLE
	}
	return gl.DEPTH_TEST
}

func compareFunc(f gfx.CompareFunc) uint32 {
	switch f {
	case gfx.Never:
		return gl.NEVER
	case gfx.Less:
		return gl.LESS
	case gfx.Equal:
		return gl.EQUAL
	case gfx.LessEqual:
		return gl.LEQUAL
	case gfx.Greater:
		return gl.GREATER
	case gfx.NotEqual:
		return gl.NOTEQUAL
	case gfx.GreaterEqual:
		return gl.GEQUAL
	default:
		return gl.ALWAYS
	}
}

func primitive(p gfx.Primitive) uint32 {
	switch p {
	case gfx.Lines:
		return gl.LINES
	case gfx.Points:
		return gl.POINTS
	default:
		return gl.TRIANGLES
	}
}

func dataType(t gfx.DataType) uint32 {
	switch t {
	case gfx.UnsignedInt:
		return gl.UNSIGNED_INT
	case gfx.UnsignedShort:
		return gl.UNSIGNED_SHORT
	case gfx.UnsignedByte:
		return gl.UNSIGNED_BYTE
	default:
		return gl.FLOAT
	}
}

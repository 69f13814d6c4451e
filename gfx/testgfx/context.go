// Package testgfx provides a recording gfx.Context for tests that run
// without a GPU.
package testgfx

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"j4k.co/phong/gfx"
)

type Attrib struct {
	Buffer     uint32
	Elems      int
	Type       gfx.DataType
	Normalized bool
	Stride     int
	Offset     int
	Enabled    bool
}

type Draw struct {
	Mode          gfx.Primitive
	Count         int
	Type          gfx.DataType
	Offset        int
	Program       uint32
	VertexArray   uint32
	ArrayBuffer   uint32
	ElementBuffer uint32
}

type Upload struct {
	Location int32
	Value    interface{}
}

type Buffer struct {
	Data  []byte
	Usage gfx.Usage
}

// Context records every call made through it. Handles are allocated from a
// single increasing counter starting at 1, so they are never reused.
type Context struct {
	// FailAlloc makes every Gen/Create call return 0.
	FailAlloc bool
	// AllocLimit, when positive, makes Gen/Create calls return 0 once that
	// many handles have been handed out.
	AllocLimit int
	// CompileLog, when not empty, fails shader compiles with that log.
	CompileLog string
	// LinkLog, when not empty, fails program links with that log.
	LinkLog string

	Calls  []string
	Errors []string

	Enabled    map[gfx.Capability]bool
	Depth      gfx.CompareFunc
	ClearRGBA  [4]float32
	Clears     int
	ViewportXY [4]int

	VertexArrays map[uint32]bool
	Buffers      map[uint32]*Buffer
	Shaders      map[uint32]string
	Programs     map[uint32]bool

	BoundArray   uint32
	BoundBuffers map[gfx.Target]uint32
	Program      uint32

	Attribs  map[uint32]*Attrib
	Uniforms map[int32]interface{}
	Uploads  []Upload
	Draws    []Draw

	next uint32
}

var _ gfx.Context = (*Context)(nil)

func New() *Context {
	return &Context{
		Enabled:      make(map[gfx.Capability]bool),
		VertexArrays: make(map[uint32]bool),
		Buffers:      make(map[uint32]*Buffer),
		Shaders:      make(map[uint32]string),
		Programs:     make(map[uint32]bool),
		BoundBuffers: make(map[gfx.Target]uint32),
		Attribs:      make(map[uint32]*Attrib),
		Uniforms:     make(map[int32]interface{}),
	}
}

// Reset forgets the recorded call, upload and draw logs but keeps objects
// and bindings.
func (c *Context) Reset() {
	c.Calls = nil
	c.Errors = nil
	c.Uploads = nil
	c.Draws = nil
}

func (c *Context) record(format string, args ...interface{}) {
	c.Calls = append(c.Calls, fmt.Sprintf(format, args...))
}

func (c *Context) fail(format string, args ...interface{}) {
	c.Errors = append(c.Errors, fmt.Sprintf(format, args...))
}

func (c *Context) gen() uint32 {
	if c.FailAlloc || (c.AllocLimit > 0 && int(c.next) >= c.AllocLimit) {
		return 0
	}
	c.next++
	return c.next
}

func (c *Context) Enable(capability gfx.Capability) {
	c.record("Enable(%v)", capability)
	c.Enabled[capability] = true
}

func (c *Context) DepthFunc(f gfx.CompareFunc) {
	c.record("DepthFunc(%v)", f)
	c.Depth = f
}

func (c *Context) ClearColor(r, g, b, a float32) {
	c.record("ClearColor(%v, %v, %v, %v)", r, g, b, a)
	c.ClearRGBA = [4]float32{r, g, b, a}
}

func (c *Context) Clear(color, depth bool) {
	c.record("Clear(%v, %v)", color, depth)
	c.Clears++
}

func (c *Context) Viewport(x, y, width, height int) {
	c.record("Viewport(%d, %d, %d, %d)", x, y, width, height)
	c.ViewportXY = [4]int{x, y, width, height}
}

func (c *Context) GenVertexArray() uint32 {
	va := c.gen()
	c.record("GenVertexArray() = %d", va)
	if va != 0 {
		c.VertexArrays[va] = true
	}
	return va
}

func (c *Context) BindVertexArray(va uint32) {
	c.record("BindVertexArray(%d)", va)
	if va != 0 && !c.VertexArrays[va] {
		c.fail("bind of unknown vertex array %d", va)
	}
	c.BoundArray = va
}

func (c *Context) DeleteVertexArray(va uint32) {
	c.record("DeleteVertexArray(%d)", va)
	if !c.VertexArrays[va] {
		c.fail("delete of unknown vertex array %d", va)
		return
	}
	delete(c.VertexArrays, va)
	if c.BoundArray == va {
		c.BoundArray = 0
	}
}

func (c *Context) GenBuffer() uint32 {
	buf := c.gen()
	c.record("GenBuffer() = %d", buf)
	if buf != 0 {
		c.Buffers[buf] = &Buffer{}
	}
	return buf
}

func (c *Context) BindBuffer(t gfx.Target, buf uint32) {
	c.record("BindBuffer(%v, %d)", t, buf)
	if _, ok := c.Buffers[buf]; buf != 0 && !ok {
		c.fail("bind of unknown buffer %d", buf)
	}
	c.BoundBuffers[t] = buf
}

func (c *Context) BufferData(t gfx.Target, data []byte, usage gfx.Usage) {
	c.record("BufferData(%v, %d bytes, %v)", t, len(data), usage)
	b, ok := c.Buffers[c.BoundBuffers[t]]
	if !ok {
		c.fail("buffer data with no buffer bound to %v", t)
		return
	}
	b.Data = append([]byte(nil), data...)
	b.Usage = usage
}

func (c *Context) DeleteBuffer(buf uint32) {
	c.record("DeleteBuffer(%d)", buf)
	if _, ok := c.Buffers[buf]; !ok {
		c.fail("delete of unknown buffer %d", buf)
		return
	}
	delete(c.Buffers, buf)
	for t, b := range c.BoundBuffers {
		if b == buf {
			c.BoundBuffers[t] = 0
		}
	}
}

func (c *Context) VertexAttribPointer(slot uint32, elems int, typ gfx.DataType, normalized bool, stride, offset int) {
	c.record("VertexAttribPointer(%d, %d, %v, %v, %d, %d)", slot, elems, typ, normalized, stride, offset)
	buf := c.BoundBuffers[gfx.ArrayBuffer]
	if buf == 0 {
		c.fail("attribute %d pointer with no array buffer bound", slot)
	}
	a := c.attrib(slot)
	a.Buffer, a.Elems, a.Type, a.Normalized, a.Stride, a.Offset = buf, elems, typ, normalized, stride, offset
}

func (c *Context) EnableVertexAttribArray(slot uint32) {
	c.record("EnableVertexAttribArray(%d)", slot)
	c.attrib(slot).Enabled = true
}

func (c *Context) attrib(slot uint32) *Attrib {
	a, ok := c.Attribs[slot]
	if !ok {
		a = &Attrib{}
		c.Attribs[slot] = a
	}
	return a
}

func (c *Context) UseProgram(prog uint32) {
	c.record("UseProgram(%d)", prog)
	c.Program = prog
}

func (c *Context) upload(loc int32, v interface{}) {
	if c.Program == 0 {
		c.fail("uniform %d set with no program in use", loc)
	}
	c.Uniforms[loc] = v
	c.Uploads = append(c.Uploads, Upload{Location: loc, Value: v})
}

func (c *Context) Uniform1f(loc int32, v float32) {
	c.record("Uniform1f(%d)", loc)
	c.upload(loc, v)
}

func (c *Context) Uniform3fv(loc int32, v mgl32.Vec3) {
	c.record("Uniform3fv(%d)", loc)
	c.upload(loc, v)
}

func (c *Context) UniformMatrix4fv(loc int32, m mgl32.Mat4) {
	c.record("UniformMatrix4fv(%d)", loc)
	c.upload(loc, m)
}

func (c *Context) DrawElements(mode gfx.Primitive, count int, typ gfx.DataType, offset int) {
	c.record("DrawElements(%v, %d, %v, %d)", mode, count, typ, offset)
	if c.Program == 0 {
		c.fail("draw with no program in use")
	}
	c.Draws = append(c.Draws, Draw{
		Mode:          mode,
		Count:         count,
		Type:          typ,
		Offset:        offset,
		Program:       c.Program,
		VertexArray:   c.BoundArray,
		ArrayBuffer:   c.BoundBuffers[gfx.ArrayBuffer],
		ElementBuffer: c.BoundBuffers[gfx.ElementArrayBuffer],
	})
}

func (c *Context) CreateShader(stage gfx.ShaderStage) uint32 {
	s := c.gen()
	c.record("CreateShader(%v) = %d", stage, s)
	if s != 0 {
		c.Shaders[s] = ""
	}
	return s
}

func (c *Context) CompileShader(shader uint32, source string) (bool, string) {
	c.record("CompileShader(%d)", shader)
	c.Shaders[shader] = source
	if c.CompileLog != "" {
		return false, c.CompileLog
	}
	return true, ""
}

func (c *Context) DeleteShader(shader uint32) {
	c.record("DeleteShader(%d)", shader)
	if _, ok := c.Shaders[shader]; !ok {
		c.fail("delete of unknown shader %d", shader)
	}
	delete(c.Shaders, shader)
}

func (c *Context) CreateProgram() uint32 {
	p := c.gen()
	c.record("CreateProgram() = %d", p)
	if p != 0 {
		c.Programs[p] = true
	}
	return p
}

func (c *Context) AttachShader(prog, shader uint32) {
	c.record("AttachShader(%d, %d)", prog, shader)
}

func (c *Context) DetachShader(prog, shader uint32) {
	c.record("DetachShader(%d, %d)", prog, shader)
}

func (c *Context) LinkProgram(prog uint32) (bool, string) {
	c.record("LinkProgram(%d)", prog)
	if c.LinkLog != "" {
		return false, c.LinkLog
	}
	return true, ""
}

func (c *Context) DeleteProgram(prog uint32) {
	c.record("DeleteProgram(%d)", prog)
	if !c.Programs[prog] {
		c.fail("delete of unknown program %d", prog)
	}
	delete(c.Programs, prog)
}

// BufferFloats returns the floats uploaded to buf.
func (c *Context) BufferFloats(buf uint32) []float32 {
	b, ok := c.Buffers[buf]
	if !ok {
		return nil
	}
	return gfx.Float32s(b.Data)
}

// BufferIndices returns the 32-bit indices uploaded to buf.
func (c *Context) BufferIndices(buf uint32) []uint32 {
	b, ok := c.Buffers[buf]
	if !ok {
		return nil
	}
	return gfx.Uint32s(b.Data)
}

// CallsSince returns the calls recorded after the first n.
func (c *Context) CallsSince(n int) []string {
	if n > len(c.Calls) {
		return nil
	}
	return c.Calls[n:]
}

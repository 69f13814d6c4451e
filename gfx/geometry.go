package gfx

import (
	"github.com/pkg/errors"
)

type VertexFormat uint32

const (
	VertexPosition VertexFormat = 1 << iota
	VertexNormal
	MaxVertexFormat = VertexNormal
)

// Slot gives the attribute location a single piece of vertex data is bound
// to. Position is 0 and Normal is 1, matching the shader contract.
func (v VertexFormat) Slot() uint32 {
	var slot uint32
	for i := VertexFormat(1); i < v && i <= MaxVertexFormat; i <<= 1 {
		slot++
	}
	return slot
}

// AttribElems gives the number of float elements for a specific piece of
// vertex data.
func (v VertexFormat) AttribElems() int {
	return 3
}

// AttribBytes gives the byte size of a specific piece of vertex data.
func (v VertexFormat) AttribBytes() int {
	return v.AttribElems() * Float.Size()
}

// Stride gives the stride in bytes of a vertex holding every piece of data
// in the format.
func (v VertexFormat) Stride() int {
	stride := 0
	for i := VertexFormat(1); i <= MaxVertexFormat; i <<= 1 {
		if v&i != 0 {
			stride += i.AttribBytes()
		}
	}
	return stride
}

func (v VertexFormat) Count() int {
	count := 0
	for i := VertexFormat(1); i <= MaxVertexFormat; i <<= 1 {
		if v&i != 0 {
			count++
		}
	}
	return count
}

var (
	ErrBadVertexFormat = errors.New("gfx: bad vertex format")
	ErrAllocFailed     = errors.New("gfx: object allocation failed")
)

// VertexArray records attribute to buffer bindings so they can be
// re-activated as a unit.
type VertexArray struct {
	va uint32
}

func NewVertexArray(ctx Context) (*VertexArray, error) {
	va := ctx.GenVertexArray()
	if va == 0 {
		return nil, errors.Wrap(ErrAllocFailed, "vertex array")
	}
	return &VertexArray{va: va}, nil
}

func (a *VertexArray) Handle() uint32 {
	if a == nil {
		return 0
	}
	return a.va
}

// Bind makes the array current and returns a func that unbinds it.
func (a *VertexArray) Bind(ctx Context) func() {
	ctx.BindVertexArray(a.va)
	return func() { ctx.BindVertexArray(0) }
}

// Release unbinds and deletes the array. It is a no-op once the handle is 0.
func (a *VertexArray) Release(ctx Context) {
	if a == nil || a.va == 0 {
		return
	}
	ctx.BindVertexArray(0)
	ctx.DeleteVertexArray(a.va)
	a.va = 0
}

// VertexBuffer holds a single tightly packed attribute stream.
type VertexBuffer struct {
	buf    uint32
	count  int
	format VertexFormat
}

func NewVertexBuffer(ctx Context, format VertexFormat) (*VertexBuffer, error) {
	if format.Count() != 1 {
		return nil, ErrBadVertexFormat
	}
	buf := ctx.GenBuffer()
	if buf == 0 {
		return nil, errors.Wrap(ErrAllocFailed, "vertex buffer")
	}
	return &VertexBuffer{buf: buf, format: format}, nil
}

func (b *VertexBuffer) Handle() uint32 {
	if b == nil {
		return 0
	}
	return b.buf
}

func (b *VertexBuffer) Count() int {
	return b.count
}

func (b *VertexBuffer) Format() VertexFormat {
	return b.format
}

// Bind binds the buffer to the array buffer target and returns a func that
// unbinds it.
func (b *VertexBuffer) Bind(ctx Context) func() {
	ctx.BindBuffer(ArrayBuffer, b.buf)
	return func() { ctx.BindBuffer(ArrayBuffer, 0) }
}

// SetVertices uploads src and leaves the buffer bound so that an attribute
// pointer can be set up against it.
func (b *VertexBuffer) SetVertices(ctx Context, src []float32, usage Usage) error {
	elems := b.format.AttribElems()
	if len(src)%elems != 0 {
		return errors.Wrapf(ErrBadVertexFormat, "%d floats do not fit %d element vertices", len(src), elems)
	}
	ctx.BindBuffer(ArrayBuffer, b.buf)
	ctx.BufferData(ArrayBuffer, float32Bytes(src), usage)
	b.count = len(src) / elems
	return nil
}

// EnableAttrib points the buffer's attribute slot at the currently bound
// array buffer and enables it.
func (b *VertexBuffer) EnableAttrib(ctx Context) {
	slot := b.format.Slot()
	ctx.VertexAttribPointer(slot, b.format.AttribElems(), Float, false, 0, 0)
	ctx.EnableVertexAttribArray(slot)
}

// Release deletes the buffer. It is a no-op once the handle is 0.
func (b *VertexBuffer) Release(ctx Context) {
	if b == nil || b.buf == 0 {
		return
	}
	ctx.DeleteBuffer(b.buf)
	b.buf = 0
	b.count = 0
}

type IndexBuffer struct {
	buf   uint32
	count int
}

func NewIndexBuffer(ctx Context) (*IndexBuffer, error) {
	buf := ctx.GenBuffer()
	if buf == 0 {
		return nil, errors.Wrap(ErrAllocFailed, "index buffer")
	}
	return &IndexBuffer{buf: buf}, nil
}

func (b *IndexBuffer) Handle() uint32 {
	if b == nil {
		return 0
	}
	return b.buf
}

func (b *IndexBuffer) Count() int {
	if b == nil {
		return 0
	}
	return b.count
}

func (b *IndexBuffer) Bind(ctx Context) func() {
	ctx.BindBuffer(ElementArrayBuffer, b.buf)
	return func() { ctx.BindBuffer(ElementArrayBuffer, 0) }
}

// SetIndices uploads 32-bit indices and unbinds the element buffer.
func (b *IndexBuffer) SetIndices(ctx Context, src []uint32, usage Usage) {
	defer b.Bind(ctx)()
	ctx.BufferData(ElementArrayBuffer, uint32Bytes(src), usage)
	b.count = len(src)
}

// Draw issues one indexed draw covering every index in the buffer.
func (b *IndexBuffer) Draw(ctx Context, mode Primitive) {
	ctx.DrawElements(mode, b.count, UnsignedInt, 0)
}

func (b *IndexBuffer) Release(ctx Context) {
	if b == nil || b.buf == 0 {
		return
	}
	ctx.DeleteBuffer(b.buf)
	b.buf = 0
	b.count = 0
}

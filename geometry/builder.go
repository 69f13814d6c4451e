package geometry

import (
	"j4k.co/phong/gfx"
)

// Builder collects one float stream per attribute plus 32-bit indices.
// Streams are not interleaved; each is uploaded to its own buffer.
type Builder struct {
	VertexBuilder
	IndexBuilder
}

func NewBuilder(vf gfx.VertexFormat) *Builder {
	return &Builder{
		VertexBuilder: VertexBuilder{vf: vf},
	}
}

func (b *Builder) Clear() {
	b.VertexBuilder.Clear()
	b.IndexBuilder.Clear()
}

type VertexBuilder struct {
	vf        gfx.VertexFormat
	positions []float32
	normals   []float32
}

func NewVertexBuilder(vf gfx.VertexFormat) *VertexBuilder {
	return &VertexBuilder{vf: vf}
}

// Clear resets streams to zero length.
func (b *VertexBuilder) Clear() {
	b.positions = b.positions[:0]
	b.normals = b.normals[:0]
}

func (b *VertexBuilder) VertexFormat() gfx.VertexFormat {
	return b.vf
}

// Position appends a vertex position.
func (b *VertexBuilder) Position(x, y, z float32) *VertexBuilder {
	if b.vf&gfx.VertexPosition == 0 {
		panic(gfx.ErrBadVertexFormat)
	}
	b.positions = append(b.positions, x, y, z)
	return b
}

// Normal appends a normal. Normals are counted independently of
// positions, so a stream may hold one normal per face instead of one per
// vertex.
func (b *VertexBuilder) Normal(x, y, z float32) *VertexBuilder {
	if b.vf&gfx.VertexNormal == 0 {
		panic(gfx.ErrBadVertexFormat)
	}
	b.normals = append(b.normals, x, y, z)
	return b
}

// VertexCount returns the number of positions available.
func (b *VertexBuilder) VertexCount() int {
	return len(b.positions) / gfx.VertexPosition.AttribElems()
}

func (b *VertexBuilder) NormalCount() int {
	return len(b.normals) / gfx.VertexNormal.AttribElems()
}

// Stream returns the floats collected for a single attribute.
func (b *VertexBuilder) Stream(v gfx.VertexFormat) []float32 {
	switch v {
	case gfx.VertexPosition:
		return b.positions
	case gfx.VertexNormal:
		return b.normals
	default:
		panic(gfx.ErrBadVertexFormat)
	}
}

// CopyVertices uploads the attribute stream matching dest's format.
func (b *VertexBuilder) CopyVertices(ctx gfx.Context, dest *gfx.VertexBuffer, usage gfx.Usage) error {
	if b.vf&dest.Format() == 0 {
		return gfx.ErrBadVertexFormat
	}
	return dest.SetVertices(ctx, b.Stream(dest.Format()), usage)
}

type IndexBuilder struct {
	idxs    []uint32
	nextidx uint32
}

// Indices appends new indices to the buffer that are relative to the maximum index in the buffer.
func (b *IndexBuilder) Indices(idxs ...uint32) *IndexBuilder {
	newnext := b.nextidx
	for _, idx := range idxs {
		idx += b.nextidx
		if idx >= newnext {
			newnext = idx + 1
		}
		b.idxs = append(b.idxs, idx)
	}
	b.nextidx = newnext
	return b
}

// SetIndices copies idxs into a new buffer. The indices are absolute.
func (b *IndexBuilder) SetIndices(idxs ...uint32) {
	b.idxs = make([]uint32, len(idxs))
	copy(b.idxs, idxs)
	b.nextidx = 0
	for _, idx := range idxs {
		if idx >= b.nextidx {
			b.nextidx = idx + 1
		}
	}
}

// IndexCount returns the number of indices available.
func (b *IndexBuilder) IndexCount() int {
	return len(b.idxs)
}

func (b *IndexBuilder) IndexSlice() []uint32 {
	return b.idxs
}

// CopyIndices uploads the indices to dest.
func (b *IndexBuilder) CopyIndices(ctx gfx.Context, dest *gfx.IndexBuffer, usage gfx.Usage) {
	dest.SetIndices(ctx, b.idxs, usage)
}

// Clear resets buffers to zero length.
func (b *IndexBuilder) Clear() {
	b.idxs = b.idxs[:0]
	b.nextidx = 0
}

package geometry

import (
	"j4k.co/phong/gfx"
)

const (
	CubeVertices = 8
	CubeIndices  = 36
	CubeNormals  = 6

	cubeHalf = 0.9
)

// Cube builds the fixed cube: 8 corners at ±0.9, 12 triangles and one unit
// normal per face. Normals live in their own stream and are not indexed
// alongside the positions.
func Cube() *Builder {
	const h = cubeHalf
	b := NewBuilder(gfx.VertexPosition | gfx.VertexNormal)

	b.Position(h, -h, -h)
	b.Position(h, -h, h)
	b.Position(-h, -h, h)
	b.Position(-h, -h, -h)
	b.Position(h, h, -h)
	b.Position(h, h, h)
	b.Position(-h, h, h)
	b.Position(-h, h, -h)

	b.Indices(
		1, 3, 0,
		7, 5, 4,
		4, 1, 0,
		5, 2, 1,
		2, 7, 3,
		0, 7, 4,
		1, 2, 3,
		7, 6, 5,
		4, 5, 1,
		5, 6, 2,
		2, 6, 7,
		0, 3, 7,
	)

	b.Normal(0, -1, 0)
	b.Normal(0, 1, 0)
	b.Normal(1, 0, 0)
	b.Normal(0, 0, 1)
	b.Normal(-1, 0, 0)
	b.Normal(0, 0, -1)

	return b
}

package geometry_test

import (
	"testing"

	"j4k.co/phong/geometry"
	"j4k.co/phong/gfx"
)

const builderQuads = 40 * 40

func BenchmarkBuilderTinyVerts(b *testing.B) {
	bdr := geometry.NewBuilder(gfx.VertexPosition)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bdr.Clear()
		for q := 0; q < builderQuads; q++ {
			bdr.Position(0, 0, 0)
			bdr.Position(1, 0, 0)
			bdr.Position(1, 1, 0)
			bdr.Position(0, 1, 0)
			bdr.Indices(0, 1, 2, 2, 0, 3)
		}
	}
}

func BenchmarkBuilderFatVerts(b *testing.B) {
	bdr := geometry.NewBuilder(gfx.VertexPosition | gfx.VertexNormal)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bdr.Clear()
		for q := 0; q < builderQuads; q++ {
			bdr.Position(0, 0, 0).Normal(0, 0, 1)
			bdr.Position(1, 0, 0).Normal(0, 0, 1)
			bdr.Position(1, 1, 0).Normal(0, 0, 1)
			bdr.Position(0, 1, 0).Normal(0, 0, 1)
			bdr.Indices(0, 1, 2, 2, 0, 3)
		}
	}
}

func BenchmarkCube(b *testing.B) {
	for i := 0; i < b.N; i++ {
		geometry.Cube()
	}
}

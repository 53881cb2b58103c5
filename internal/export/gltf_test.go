package export

import (
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"

	"github.com/cowsed/Random/CubeWave/internal/gfx"
	"github.com/cowsed/Random/CubeWave/internal/grid"
)

func TestDocument_Counts(t *testing.T) {
	cubes := grid.New(grid.Dims{X: 2, Y: 1, Z: 3}, 1.7).Cubes()
	doc := Document(cubes, gfx.RGB8(28, 181, 237))

	if len(doc.Meshes) != 1 || len(doc.Meshes[0].Primitives) != 1 {
		t.Fatalf("expected a single primitive, got %d meshes", len(doc.Meshes))
	}
	prim := doc.Meshes[0].Primitives[0]
	pos := doc.Accessors[prim.Attributes[gltf.POSITION]]
	if pos.Count != len(cubes)*24 {
		t.Fatalf("position count %d, want %d", pos.Count, len(cubes)*24)
	}
	idx := doc.Accessors[*prim.Indices]
	if idx.Count != len(cubes)*36 {
		t.Fatalf("index count %d, want %d", idx.Count, len(cubes)*36)
	}
	for _, attr := range []string{gltf.NORMAL, gltf.COLOR_0} {
		if n := doc.Accessors[prim.Attributes[attr]].Count; n != pos.Count {
			t.Fatalf("%s count %d, want %d", attr, n, pos.Count)
		}
	}
	if f := doc.Materials[0].PBRMetallicRoughness.BaseColorFactor; f == nil || *f != [4]float64{1, 1, 1, 1} {
		t.Fatalf("base color %v", f)
	}
	if doc.Materials[0].AlphaMode != gltf.AlphaBlend {
		t.Fatalf("alpha mode %v", doc.Materials[0].AlphaMode)
	}
}

func TestDocument_Empty(t *testing.T) {
	doc := Document(nil, gfx.Color{})
	if len(doc.Meshes) != 0 {
		t.Fatalf("empty frame produced %d meshes", len(doc.Meshes))
	}
}

func TestWriteGLB_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.glb")
	cubes := grid.New(grid.Dims{X: 1, Y: 1, Z: 1}, 1).Cubes()
	if err := WriteGLB(path, cubes, gfx.Color{R: 1}); err != nil {
		t.Fatal(err)
	}
	doc, err := gltf.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Nodes) != 1 || doc.Nodes[0].Name != "CubeWave" {
		t.Fatalf("nodes %+v", doc.Nodes)
	}
}

// Package export writes a single frame of the cube wave as a glTF binary.
package export

import (
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/cowsed/Random/CubeWave/internal/gfx"
	"github.com/cowsed/Random/CubeWave/internal/grid"
)

// Per face: two triangles over the quad's four corners.
var quadTriangles = [6]uint32{0, 1, 2, 0, 2, 3}

// Document builds one mesh holding every cube, flat shaded, each vertex
// colored c with the cube translucency.
func Document(cubes []grid.Cube, c gfx.Color) *gltf.Document {
	n := len(cubes) * len(gfx.CubeFaces) * 4
	positions := make([][3]float32, 0, n)
	normals := make([][3]float32, 0, n)
	colors := make([][4]float32, 0, n)
	indices := make([]uint32, 0, len(cubes)*len(gfx.CubeFaces)*len(quadTriangles))

	rgba := [4]float32{c.R, c.G, c.B, gfx.CubeAlpha}
	for _, cube := range cubes {
		for _, face := range gfx.CubeFaces {
			normal := face[1].Sub(face[0]).Cross(face[2].Sub(face[1])).Normalize()
			base := uint32(len(positions))
			for _, v := range face {
				p := v.Add(cube.Position)
				positions = append(positions, p)
				normals = append(normals, normal)
				colors = append(colors, rgba)
			}
			for _, i := range quadTriangles {
				indices = append(indices, base+i)
			}
		}
	}

	doc := gltf.NewDocument()
	doc.Asset.Generator = "cubewave"
	if len(cubes) == 0 {
		return doc
	}

	posAccessor := modeler.WritePosition(doc, positions)
	normalAccessor := modeler.WriteNormal(doc, normals)
	colorAccessor := modeler.WriteColor(doc, colors)
	indicesAccessor := modeler.WriteIndices(doc, indices)

	prim := &gltf.Primitive{
		Attributes: gltf.PrimitiveAttributes{
			gltf.POSITION: posAccessor,
			gltf.NORMAL:   normalAccessor,
			gltf.COLOR_0:  colorAccessor,
		},
		Indices:  gltf.Index(indicesAccessor),
		Material: gltf.Index(0),
	}
	doc.Materials = []*gltf.Material{{
		Name:      "Cube",
		AlphaMode: gltf.AlphaBlend,
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			BaseColorFactor: &[4]float64{1, 1, 1, 1},
			MetallicFactor:  gltf.Float(0),
			RoughnessFactor: gltf.Float(1),
		},
	}}
	doc.Meshes = []*gltf.Mesh{{Name: "CubeWave", Primitives: []*gltf.Primitive{prim}}}
	doc.Nodes = []*gltf.Node{{Name: "CubeWave", Mesh: gltf.Index(0)}}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 0)
	return doc
}

// WriteGLB saves the frame to path.
func WriteGLB(path string, cubes []grid.Cube, c gfx.Color) error {
	return gltf.SaveBinary(Document(cubes, c), path)
}

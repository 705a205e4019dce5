// Package scene builds a 3D mockup of a wall scenario using the
// github.com/deadsy/sdfx SDF-based CAD library and tessellates it into a
// triangle mesh for the frontend viewer.
package scene

import (
	"fmt"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/ocarden/wallplan/pkg/scenario"
)

// Mockup dimensions, in meters. Obstacles protrude from the wall face so
// they read as raised fixtures in the viewer.
const (
	wallThickness = 0.1
	obstacleDepth = 0.15
)

// defaultMeshCells controls marching cubes tessellation resolution.
const defaultMeshCells = 100

// Mesh is a flat triangle mesh in the layout the viewer consumes.
type Mesh struct {
	Vertices []float32 `json:"vertices"`
	Normals  []float32 `json:"normals"`
	Indices  []uint32  `json:"indices"`
}

// box creates a box with its minimum corner at the origin. sdf.Box3D
// centers the box at the origin, so we translate by half-dimensions.
func box(x, y, z float64) (sdf.SDF3, error) {
	s, err := sdf.Box3D(v3.Vec{X: x, Y: y, Z: z}, 0)
	if err != nil {
		return nil, fmt.Errorf("sdfx.Box3D: %w", err)
	}
	m := sdf.Translate3d(v3.Vec{X: x / 2, Y: y / 2, Z: z / 2})
	return sdf.Transform3D(s, m), nil
}

// translate moves a solid by (x, y, z).
func translate(s sdf.SDF3, x, y, z float64) sdf.SDF3 {
	m := sdf.Translate3d(v3.Vec{X: x, Y: y, Z: z})
	return sdf.Transform3D(s, m)
}

// Build constructs the wall mockup solid. The wall slab spans the XY plane
// with Z as depth; obstacles sit on the wall face.
func Build(sc *scenario.Scenario) (sdf.SDF3, error) {
	if sc.WallWidth <= 0 || sc.WallHeight <= 0 {
		return nil, fmt.Errorf("degenerate wall %gx%g", sc.WallWidth, sc.WallHeight)
	}

	wall, err := box(sc.WallWidth, sc.WallHeight, wallThickness)
	if err != nil {
		return nil, err
	}

	solid := wall
	for i, obs := range sc.Obstacles {
		b, err := box(obs.Width, obs.Height, obstacleDepth)
		if err != nil {
			return nil, fmt.Errorf("obstacle %d: %w", i, err)
		}
		solid = sdf.Union3D(solid, translate(b, obs.X, obs.Y, wallThickness))
	}
	return solid, nil
}

// ToMesh tessellates a solid into a flat triangle mesh using marching
// cubes. Cells values of zero or below fall back to the default resolution.
func ToMesh(s sdf.SDF3, cells int) *Mesh {
	if cells <= 0 {
		cells = defaultMeshCells
	}

	renderer := render.NewMarchingCubesUniform(cells)
	triangles := render.ToTriangles(s, renderer)

	numTri := len(triangles)
	numVerts := numTri * 3

	vertices := make([]float32, 0, numVerts*3)
	normals := make([]float32, 0, numVerts*3)
	indices := make([]uint32, 0, numVerts)

	for i, tri := range triangles {
		// Compute face normal.
		n := tri.Normal()
		nx := float32(n.X)
		ny := float32(n.Y)
		nz := float32(n.Z)

		for j := 0; j < 3; j++ {
			v := tri[j]
			vertices = append(vertices, float32(v.X), float32(v.Y), float32(v.Z))
			normals = append(normals, nx, ny, nz)
			indices = append(indices, uint32(i*3+j))
		}
	}

	return &Mesh{
		Vertices: vertices,
		Normals:  normals,
		Indices:  indices,
	}
}

package geometry

import (
	"github.com/chewxy/math32"

	"github.com/spaghettifunk/photomesh/engine/core"
	"github.com/spaghettifunk/photomesh/engine/math"
)

// Shape selects which parametric surface to generate.
type Shape uint8

const (
	ShapeCube Shape = iota
	ShapeSphere
)

func (s Shape) String() string {
	switch s {
	case ShapeCube:
		return "cube"
	case ShapeSphere:
		return "sphere"
	default:
		return "unknown"
	}
}

// Source describes one mesh generation request: the shape plus, for the
// sphere, the tessellation density.
type Source struct {
	Shape        Shape
	Subdivisions uint32
}

const (
	MinSubdivisions uint32 = 2
	MaxSubdivisions uint32 = 8
)

// SubdivisionsForImageCount derives the sphere tessellation density from the
// number of uploaded images: more source material, denser preview mesh.
func SubdivisionsForImageCount(imageCount int) uint32 {
	if imageCount < 0 {
		imageCount = 0
	}
	return math.Clamp(2+uint32(imageCount)/5, MinSubdivisions, MaxSubdivisions)
}

/**
 * @brief The generated mesh: parallel attribute arrays plus the index list.
 * Positions and normals are parallel only per-accessor; the fixed cube table
 * deliberately carries 8 positions against 24 face-aligned normal slots.
 */
type Config struct {
	Name        string
	Shape       Shape
	VertexCount uint32
	Positions   []math.Vec3
	Normals     []math.Vec3
	Colours     []math.Vec4
	/** @brief The size of each index in bytes: 2 for the cube, 4 for the sphere. */
	IndexSize  uint32
	IndexCount uint32
	Indices    []uint32
	Extents    math.Extents3D
}

// Generate produces a closed triangulated surface centered at the origin with
// radius 1. Inputs are pre-validated by the caller; the subdivision count is
// always clamped into [MinSubdivisions, MaxSubdivisions].
func Generate(src Source) (*Config, error) {
	switch src.Shape {
	case ShapeCube:
		return generateCube(), nil
	case ShapeSphere:
		subdivisions := math.Clamp(src.Subdivisions, MinSubdivisions, MaxSubdivisions)
		return generateSphere(subdivisions), nil
	default:
		return nil, core.ErrUnsupportedShape
	}
}

// Fixed flat-shaded unit cube: 8 corner vertices, 36 indices (12 triangles),
// 24 per-face normal slots (6 faces x 4). The table is part of the output
// contract and must not change.
var (
	cubePositions = []math.Vec3{
		{X: -1, Y: -1, Z: 1},
		{X: 1, Y: -1, Z: 1},
		{X: 1, Y: 1, Z: 1},
		{X: -1, Y: 1, Z: 1},
		{X: -1, Y: -1, Z: -1},
		{X: 1, Y: -1, Z: -1},
		{X: 1, Y: 1, Z: -1},
		{X: -1, Y: 1, Z: -1},
	}

	cubeIndices = []uint32{
		// Front face
		0, 1, 2, 2, 3, 0,
		// Right face
		1, 5, 6, 6, 2, 1,
		// Back face
		7, 6, 5, 5, 4, 7,
		// Left face
		4, 0, 3, 3, 7, 4,
		// Bottom face
		4, 5, 1, 1, 0, 4,
		// Top face
		3, 2, 6, 6, 7, 3,
	}

	cubeNormals = []math.Vec3{
		{Z: 1}, {Z: 1}, {Z: 1}, {Z: 1},
		{X: 1}, {X: 1}, {X: 1}, {X: 1},
		{Z: -1}, {Z: -1}, {Z: -1}, {Z: -1},
		{X: -1}, {X: -1}, {X: -1}, {X: -1},
		{Y: -1}, {Y: -1}, {Y: -1}, {Y: -1},
		{Y: 1}, {Y: 1}, {Y: 1}, {Y: 1},
	}
)

func generateCube() *Config {
	config := &Config{
		Name:        "cube",
		Shape:       ShapeCube,
		VertexCount: uint32(len(cubePositions)),
		Positions:   make([]math.Vec3, len(cubePositions)),
		Normals:     make([]math.Vec3, len(cubeNormals)),
		IndexSize:   2,
		IndexCount:  uint32(len(cubeIndices)),
		Indices:     make([]uint32, len(cubeIndices)),
	}
	copy(config.Positions, cubePositions)
	copy(config.Normals, cubeNormals)
	copy(config.Indices, cubeIndices)
	config.Extents = computeExtents(config.Positions)
	return config
}

func generateSphere(subdivisions uint32) *Config {
	rings := subdivisions
	sectors := 2 * subdivisions

	vertexCount := (rings + 1) * (sectors + 1)
	config := &Config{
		Name:        "sphere",
		Shape:       ShapeSphere,
		VertexCount: vertexCount,
		Positions:   make([]math.Vec3, 0, vertexCount),
		Normals:     make([]math.Vec3, 0, vertexCount),
		IndexSize:   4,
	}

	for i := uint32(0); i <= rings; i++ {
		theta := math32.Pi * float32(i) / float32(rings)
		sinTheta := math32.Sin(theta)
		cosTheta := math32.Cos(theta)

		for j := uint32(0); j <= sectors; j++ {
			phi := 2.0 * math32.Pi * float32(j) / float32(sectors)

			position := math.NewVec3(
				sinTheta*math32.Cos(phi),
				cosTheta,
				sinTheta*math32.Sin(phi),
			)
			config.Positions = append(config.Positions, position)
			// Unit radius, so the normal is the position itself.
			config.Normals = append(config.Normals, position)
		}
	}

	for i := uint32(0); i < rings; i++ {
		for j := uint32(0); j < sectors; j++ {
			current := i*(sectors+1) + j
			next := current + sectors + 1

			// The first ring collapses to the top pole and the last to the
			// bottom pole; emitting both triangles there would produce
			// zero-area faces.
			if i > 0 {
				config.Indices = append(config.Indices, current, next, current+1)
			}
			if i < rings-1 {
				config.Indices = append(config.Indices, current+1, next, next+1)
			}
		}
	}
	config.IndexCount = uint32(len(config.Indices))
	config.Extents = computeExtents(config.Positions)

	core.LogDebug("generated sphere: subdivisions=%d vertices=%d indices=%d",
		subdivisions, config.VertexCount, config.IndexCount)
	return config
}

func computeExtents(positions []math.Vec3) math.Extents3D {
	if len(positions) == 0 {
		return math.Extents3D{}
	}
	extents := math.Extents3D{Min: positions[0], Max: positions[0]}
	for _, p := range positions[1:] {
		extents.Min = math.Min3(extents.Min, p)
		extents.Max = math.Max3(extents.Max, p)
	}
	return extents
}

package geometry

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestSubdivisionsForImageCount(t *testing.T) {
	var table = []struct {
		images int
		want   uint32
	}{
		{-3, 2},
		{0, 2},
		{4, 2},
		{5, 3},
		{25, 7},
		{30, 8},
		{1000, 8},
	}
	for _, tt := range table {
		if got := SubdivisionsForImageCount(tt.images); got != tt.want {
			t.Errorf("SubdivisionsForImageCount(%d) = %d, want %d", tt.images, got, tt.want)
		}
	}
}

func TestGenerateCubeTable(t *testing.T) {
	cfg, err := Generate(Source{Shape: ShapeCube})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if cfg.VertexCount != 8 || len(cfg.Positions) != 8 {
		t.Fatalf("got %d vertices, want 8", len(cfg.Positions))
	}
	if cfg.IndexCount != 36 || len(cfg.Indices) != 36 {
		t.Fatalf("got %d indices, want 36", len(cfg.Indices))
	}
	if len(cfg.Normals) != 24 {
		t.Fatalf("got %d normals, want 24", len(cfg.Normals))
	}
	if cfg.IndexSize != 2 {
		t.Errorf("cube index size = %d, want 2", cfg.IndexSize)
	}

	// The table is a fixed output contract; pin it verbatim.
	if cfg.Positions[0] != cubePositions[0] || cfg.Positions[7] != cubePositions[7] {
		t.Error("cube corner positions changed")
	}
	for i, want := range cubeIndices {
		if cfg.Indices[i] != want {
			t.Fatalf("index %d = %d, want %d", i, cfg.Indices[i], want)
		}
	}
	for i, want := range cubeNormals {
		if cfg.Normals[i] != want {
			t.Fatalf("normal %d = %v, want %v", i, cfg.Normals[i], want)
		}
	}
	for _, p := range cfg.Positions {
		for _, c := range [3]float32{p.X, p.Y, p.Z} {
			if c != 1 && c != -1 {
				t.Fatalf("cube corner component %v not at +/-1", c)
			}
		}
	}
	if cfg.Extents.Min.X != -1 || cfg.Extents.Max.Z != 1 {
		t.Errorf("cube extents = %+v, want unit box", cfg.Extents)
	}
}

func TestGenerateSphereCounts(t *testing.T) {
	for subdivisions := MinSubdivisions; subdivisions <= MaxSubdivisions; subdivisions++ {
		cfg, err := Generate(Source{Shape: ShapeSphere, Subdivisions: subdivisions})
		if err != nil {
			t.Fatalf("Generate(%d): %v", subdivisions, err)
		}

		rings := subdivisions
		sectors := 2 * subdivisions
		wantVertices := (rings + 1) * (sectors + 1)
		if cfg.VertexCount != wantVertices {
			t.Errorf("subdivisions %d: %d vertices, want %d", subdivisions, cfg.VertexCount, wantVertices)
		}
		if len(cfg.Positions) != int(wantVertices) || len(cfg.Normals) != int(wantVertices) {
			t.Errorf("subdivisions %d: attribute arrays not parallel", subdivisions)
		}

		if cfg.IndexCount == 0 || cfg.IndexCount%3 != 0 {
			t.Errorf("subdivisions %d: index count %d not a positive triangle multiple", subdivisions, cfg.IndexCount)
		}
		if (cfg.IndexCount/3)%2 != 0 {
			t.Errorf("subdivisions %d: odd triangle count %d", subdivisions, cfg.IndexCount/3)
		}
		for _, idx := range cfg.Indices {
			if idx >= cfg.VertexCount {
				t.Fatalf("subdivisions %d: index %d out of range", subdivisions, idx)
			}
		}
		if cfg.IndexSize != 4 {
			t.Errorf("sphere index size = %d, want 4", cfg.IndexSize)
		}
	}
}

func TestGenerateSphereFromTwentyFiveImages(t *testing.T) {
	subdivisions := SubdivisionsForImageCount(25)
	if subdivisions != 7 {
		t.Fatalf("subdivisions = %d, want 7", subdivisions)
	}
	cfg, err := Generate(Source{Shape: ShapeSphere, Subdivisions: subdivisions})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	// rings=7, sectors=14 -> 8*15 vertices.
	if cfg.VertexCount != 120 {
		t.Errorf("vertex count = %d, want 120", cfg.VertexCount)
	}
}

func TestGenerateSphereNormalsEqualPositions(t *testing.T) {
	cfg, err := Generate(Source{Shape: ShapeSphere, Subdivisions: 4})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for i := range cfg.Positions {
		if cfg.Positions[i] != cfg.Normals[i] {
			t.Fatalf("vertex %d: normal %v != position %v", i, cfg.Normals[i], cfg.Positions[i])
		}
	}
	// Unit radius everywhere.
	for i, p := range cfg.Positions {
		r := math32.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
		if math32.Abs(r-1) > 1e-5 {
			t.Fatalf("vertex %d: radius %v, want 1", i, r)
		}
	}
}

func TestGenerateSphereExtents(t *testing.T) {
	cfg, err := Generate(Source{Shape: ShapeSphere, Subdivisions: 3})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	// Poles sit exactly at +/-1 on Y; X and Z maxima depend on tessellation
	// and stay within the unit box.
	if cfg.Extents.Min.Y != -1 || cfg.Extents.Max.Y != 1 {
		t.Errorf("Y extents = [%v, %v], want [-1, 1]", cfg.Extents.Min.Y, cfg.Extents.Max.Y)
	}
	if cfg.Extents.Max.X > 1 || cfg.Extents.Min.X < -1 || cfg.Extents.Max.Z > 1 || cfg.Extents.Min.Z < -1 {
		t.Errorf("extents %+v exceed the unit box", cfg.Extents)
	}
}

func TestGenerateSubdivisionsClamped(t *testing.T) {
	low, err := Generate(Source{Shape: ShapeSphere, Subdivisions: 0})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	want, _ := Generate(Source{Shape: ShapeSphere, Subdivisions: MinSubdivisions})
	if low.VertexCount != want.VertexCount {
		t.Errorf("subdivisions 0 produced %d vertices, want clamp to %d", low.VertexCount, want.VertexCount)
	}

	high, err := Generate(Source{Shape: ShapeSphere, Subdivisions: 100})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	wantHigh, _ := Generate(Source{Shape: ShapeSphere, Subdivisions: MaxSubdivisions})
	if high.VertexCount != wantHigh.VertexCount {
		t.Errorf("subdivisions 100 produced %d vertices, want clamp to %d", high.VertexCount, wantHigh.VertexCount)
	}
}

func TestGenerateUnknownShape(t *testing.T) {
	if _, err := Generate(Source{Shape: Shape(42)}); err == nil {
		t.Error("expected error for unknown shape")
	}
}

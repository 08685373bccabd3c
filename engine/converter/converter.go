// Package converter drives the full synthesis pipeline: parametric geometry,
// vertex colours, buffer packing, scene description and GLB assembly. Every
// call builds its state from scratch, so independent requests are safe to
// run concurrently.
package converter

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/spaghettifunk/photomesh/engine/core"
	"github.com/spaghettifunk/photomesh/engine/geometry"
	"github.com/spaghettifunk/photomesh/engine/gltf"
	"github.com/spaghettifunk/photomesh/engine/math"
)

// Request carries the already-resolved inputs of one conversion: the shape
// to synthesize, the dominant colour of each uploaded image and how many
// images there were. Colour components are in [0, 1].
type Request struct {
	Shape      geometry.Shape
	Colours    []math.Vec3
	ImageCount int
	// OnProgress, when set, receives a monotonically increasing percentage
	// in [0, 100] at stage boundaries. Advisory only.
	OnProgress core.ProgressFunc
	// Validate re-decodes the finished container through an independent
	// parser before returning it.
	Validate bool
}

// Convert runs the pipeline and returns the finished GLB bytes.
func Convert(req *Request) ([]byte, error) {
	job := uuid.New().String()[:8]
	progress := core.NewProgressTracker(req.OnProgress)
	progress.Report(0)

	src := geometry.Source{Shape: req.Shape}
	if req.Shape == geometry.ShapeSphere {
		src.Subdivisions = geometry.SubdivisionsForImageCount(req.ImageCount)
	}

	cfg, err := geometry.Generate(src)
	if err != nil {
		return nil, fmt.Errorf("job %s: %w", job, err)
	}
	core.LogInfo("job %s: generated %s (%d vertices, %d indices)",
		job, cfg.Shape, cfg.VertexCount, cfg.IndexCount)
	progress.Report(30)

	// The fixed cube carries no colour stream; its look comes entirely from
	// the material.
	if cfg.Shape == geometry.ShapeSphere {
		cfg.Colours = geometry.Colorize(req.Colours, cfg.VertexCount)
	}
	progress.Report(50)

	doc, bin := gltf.BuildDocument(cfg)
	progress.Report(75)

	blob, err := gltf.EncodeGLB(doc, bin)
	if err != nil {
		return nil, fmt.Errorf("job %s: %w", job, err)
	}

	if req.Validate {
		if err := gltf.Verify(blob); err != nil {
			return nil, fmt.Errorf("job %s: verification failed: %w", job, err)
		}
	}

	progress.Report(100)
	core.LogInfo("job %s: container assembled (%d bytes)", job, len(blob))
	return blob, nil
}

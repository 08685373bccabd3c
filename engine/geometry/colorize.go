package geometry

import (
	"github.com/spaghettifunk/photomesh/engine/math"
)

// DefaultColour is assigned to every vertex when no sampled colours are
// available.
var DefaultColour = math.NewVec4(0.8, 0.8, 0.8, 1.0)

// Colorize derives a per-vertex RGBA stream from the sampled dominant
// colours, one per source image, cycling them across vertices with alpha
// fixed at 1. The mapping is a plain round-robin: the per-image dominant
// colour carries no spatial information, so correlating it with mesh
// position would be meaningless.
func Colorize(colours []math.Vec3, vertexCount uint32) []math.Vec4 {
	out := make([]math.Vec4, vertexCount)
	if len(colours) == 0 {
		for i := range out {
			out[i] = DefaultColour
		}
		return out
	}
	for i := uint32(0); i < vertexCount; i++ {
		c := colours[int(i)%len(colours)]
		out[i] = math.NewVec4(c.X, c.Y, c.Z, 1.0)
	}
	return out
}

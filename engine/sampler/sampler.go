// Package sampler extracts one dominant colour per uploaded image. The
// colour is the only signal the synthesizer takes from the images; no actual
// reconstruction happens downstream.
package sampler

import (
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/transform"
	_ "golang.org/x/image/webp"

	"github.com/spaghettifunk/photomesh/engine/core"
	"github.com/spaghettifunk/photomesh/engine/math"
)

// Downscale target before averaging. Small enough to be cheap, large enough
// that a single outlier pixel cannot dominate.
const sampleSize = 16

// DominantColour reduces an image to one RGB triple with components in
// [0, 1] by downscaling it and averaging the result.
func DominantColour(img image.Image) math.Vec3 {
	small := transform.Resize(img, sampleSize, sampleSize, transform.Linear)

	var r, g, b uint64
	bounds := small.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			cr, cg, cb, _ := small.At(x, y).RGBA()
			r += uint64(cr)
			g += uint64(cg)
			b += uint64(cb)
		}
	}
	n := uint64(bounds.Dx() * bounds.Dy())
	if n == 0 {
		return math.Vec3{}
	}
	// RGBA returns 16-bit components.
	return math.NewVec3(
		float32(r/n)/0xffff,
		float32(g/n)/0xffff,
		float32(b/n)/0xffff,
	)
}

// DominantColours samples every image in order.
func DominantColours(imgs []image.Image) []math.Vec3 {
	colours := make([]math.Vec3, 0, len(imgs))
	for _, img := range imgs {
		colours = append(colours, DominantColour(img))
	}
	return colours
}

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
}

// LoadColours decodes every supported image directly under dir and returns
// its dominant colours plus the number of images sampled. Files that fail to
// decode are skipped with a warning; an empty result is not an error here,
// the colorizer falls back to the default colour.
func LoadColours(dir string) ([]math.Vec3, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var colours []math.Vec3
	for _, entry := range entries {
		if entry.IsDir() || !imageExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		img, err := loadImage(path)
		if err != nil {
			core.LogWarn("skipping %s: %v", path, err)
			continue
		}
		colours = append(colours, DominantColour(img))
	}
	core.LogDebug("sampled %d dominant colours from %s", len(colours), dir)
	return colours, nil
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	return img, err
}

// Package placeholder synthesizes stand-in rocky surface textures for bodies
// that have no real imagery yet: a flat base color, per-pixel noise and a
// light blur, written as JPEG.
package placeholder

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"math/rand/v2"

	"github.com/agentic-research/skyforge/internal/writeback"
	"github.com/cespare/xxhash/v2"
	"github.com/disintegration/imaging"
	"github.com/go-git/go-billy/v5"
)

const (
	// NoiseAmplitude bounds the per-pixel delta added to each channel.
	NoiseAmplitude = 30
	// BlurSigma softens pixel-level noise.
	BlurSigma = 1.0
	// DefaultQuality is the JPEG quality used when none is configured.
	DefaultQuality = 85
)

// ErrInvalidSize is returned for a Spec with a non-positive dimension.
var ErrInvalidSize = errors.New("invalid texture size")

// Seed derives the noise seed for a body name. Stable across runs and machines.
func Seed(name string) uint64 {
	return xxhash.Sum64String(name)
}

// Noise is a seeded integer source.
type Noise struct {
	r *rand.Rand
}

// NewNoise returns a Noise seeded with seed. Equal seeds give equal sequences.
func NewNoise(seed uint64) *Noise {
	return &Noise{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Between returns an integer in [lo, hi].
func (n *Noise) Between(lo, hi int) int {
	return lo + n.r.IntN(hi-lo+1)
}

// Render builds the blurred raster for spec. Noise is sampled in row-major
// order so the same name always yields the same image.
func Render(spec Spec) (*image.NRGBA, error) {
	if spec.Width <= 0 || spec.Height <= 0 {
		return nil, fmt.Errorf("%w: %s is %dx%d", ErrInvalidSize, spec.Name, spec.Width, spec.Height)
	}

	img := image.NewNRGBA(image.Rect(0, 0, spec.Width, spec.Height))
	noise := NewNoise(Seed(spec.Name))
	base := spec.Color

	for y := 0; y < spec.Height; y++ {
		row := img.Pix[y*img.Stride:]
		for x := 0; x < spec.Width; x++ {
			d := noise.Between(-NoiseAmplitude, NoiseAmplitude)
			px := row[x*4 : x*4+4 : x*4+4]
			px[0] = clamp(int(base.R) + d)
			px[1] = clamp(int(base.G) + d)
			px[2] = clamp(int(base.B) + d)
			px[3] = 0xFF
		}
	}

	return imaging.Blur(img, BlurSigma), nil
}

func clamp(v int) uint8 {
	return uint8(max(0, min(255, v)))
}

// Generate renders spec and writes it as a JPEG at spec.Path.
func Generate(fs billy.Filesystem, spec Spec, quality int) error {
	img, err := Render(spec)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return fmt.Errorf("encode %s: %w", spec.Path, err)
	}
	if err := writeback.WriteFile(fs, spec.Path, buf.Bytes()); err != nil {
		return fmt.Errorf("write %s: %w", spec.Path, err)
	}
	return nil
}

// GenerateAll creates the category directories and then every texture in
// specs, in order. It stops at the first failure.
func GenerateAll(fs billy.Filesystem, specs []Spec, quality int) error {
	for _, dir := range Dirs {
		if err := fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	logger := slog.With("component", "placeholder")
	for _, spec := range specs {
		logger.Info("creating placeholder", "name", spec.Name)
		if err := Generate(fs, spec, quality); err != nil {
			return err
		}
		logger.Info("created placeholder", "path", spec.Path, "width", spec.Width, "height", spec.Height)
	}
	return nil
}

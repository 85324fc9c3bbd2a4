// Package imageseed derives a palette seed from an image without calling a
// model: the dominant hue family becomes the base color, the overall
// lightness and saturation pick the mood, and the spread of hues picks the
// harmony rule.
package imageseed

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"math"

	// stdlib decoders
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/lucasb-eyer/go-colorful"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/leonardotrapani/chromagen/internal/harmony"
)

var ErrUnsupportedImage = errors.New("unsupported image")

const (
	// MaxPixels bounds what Analyze agrees to decode; the header is checked
	// before any pixel memory is allocated.
	MaxPixels = 40_000_000

	gridSize = 64
	sectors  = 12

	// below this RGB chroma a pixel counts as gray and carries no hue
	minChroma = 0.12
	// a second hue family smaller than this share is treated as noise
	minSecondShare = 0.10
	triadicShare   = 0.15

	darkLightness   = 25
	pastelLightness = 80
	vibrantSat      = 70
)

type labSum struct {
	l, a, b float64
	n       int
}

func (s *labSum) add(c colorful.Color) {
	l, a, b := c.Lab()
	s.l += l
	s.a += a
	s.b += b
	s.n++
}

func (s labSum) hex() string {
	n := float64(s.n)
	return colorful.Lab(s.l/n, s.a/n, s.b/n).Clamped().Hex()
}

// Stats is what FromImage measured, exposed for the CLI's verbose output.
type Stats struct {
	Samples       int
	Chromatic     int
	Sectors       [sectors]int
	AvgLightness  float64
	AvgSaturation float64
}

// FromImage decodes r and derives a seed from its pixels.
func FromImage(r io.Reader) (harmony.Spec, error) {
	spec, _, err := Analyze(r)
	return spec, err
}

// Analyze is FromImage that also returns the sampling statistics.
func Analyze(r io.Reader) (harmony.Spec, Stats, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return harmony.Spec{}, Stats{}, fmt.Errorf("read image: %w", err)
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return harmony.Spec{}, Stats{}, fmt.Errorf("%w: %w", ErrUnsupportedImage, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return harmony.Spec{}, Stats{}, fmt.Errorf("%w: empty %s image", ErrUnsupportedImage, format)
	}
	if int64(cfg.Width)*int64(cfg.Height) > MaxPixels {
		return harmony.Spec{}, Stats{}, fmt.Errorf("%w: %dx%d %s image exceeds %d pixels",
			ErrUnsupportedImage, cfg.Width, cfg.Height, format, MaxPixels)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return harmony.Spec{}, Stats{}, fmt.Errorf("%w: %w", ErrUnsupportedImage, err)
	}

	bounds := img.Bounds()
	if bounds.Empty() {
		return harmony.Spec{}, Stats{}, fmt.Errorf("%w: empty %s image", ErrUnsupportedImage, format)
	}

	var (
		stats    Stats
		all      labSum
		bySector [sectors]labSum
		sumL     float64
		sumS     float64
	)

	cols := min(bounds.Dx(), gridSize)
	rows := min(bounds.Dy(), gridSize)
	for j := 0; j < rows; j++ {
		y := bounds.Min.Y + j*bounds.Dy()/rows
		for i := 0; i < cols; i++ {
			x := bounds.Min.X + i*bounds.Dx()/cols

			c, ok := colorful.MakeColor(img.At(x, y))
			if !ok {
				// fully transparent
				continue
			}

			h, s, l := c.Hsl()
			sumL += l * 100
			sumS += s * 100
			stats.Samples++
			all.add(c)

			if chroma(c) < minChroma {
				continue
			}
			sector := int(h/(360/sectors)) % sectors
			bySector[sector].add(c)
			stats.Sectors[sector]++
			stats.Chromatic++
		}
	}

	if stats.Samples == 0 {
		return harmony.Spec{}, stats, fmt.Errorf("%w: %s image is fully transparent", ErrUnsupportedImage, format)
	}

	stats.AvgLightness = sumL / float64(stats.Samples)
	stats.AvgSaturation = sumS / float64(stats.Samples)

	spec := harmony.Spec{
		Mood: pickMood(stats.AvgLightness, stats.AvgSaturation),
	}

	if stats.Chromatic == 0 {
		spec.BaseColor = all.hex()
		spec.Harmony = harmony.Monochromatic
		return spec, stats, nil
	}

	first, second := topSectors(stats.Sectors)
	spec.BaseColor = bySector[first].hex()
	spec.Harmony = pickHarmony(stats.Sectors, stats.Chromatic, first, second)
	return spec, stats, nil
}

func chroma(c colorful.Color) float64 {
	return math.Max(c.R, math.Max(c.G, c.B)) - math.Min(c.R, math.Min(c.G, c.B))
}

func pickMood(avgL, avgS float64) harmony.Mood {
	switch {
	case avgL < darkLightness:
		return harmony.Dark
	case avgL > pastelLightness:
		return harmony.Pastel
	case avgS > vibrantSat:
		return harmony.Vibrant
	default:
		return harmony.Standard
	}
}

// topSectors returns the two most populated sectors; ties go to the lower
// index. second is -1 when only one sector has pixels.
func topSectors(counts [sectors]int) (first, second int) {
	first, second = -1, -1
	for i, n := range counts {
		if n == 0 {
			continue
		}
		switch {
		case first < 0 || n > counts[first]:
			second = first
			first = i
		case second < 0 || n > counts[second]:
			second = i
		}
	}
	return first, second
}

func pickHarmony(counts [sectors]int, total, first, second int) harmony.Rule {
	if second < 0 || float64(counts[second]) < minSecondShare*float64(total) {
		return harmony.Monochromatic
	}

	d := first - second
	if d < 0 {
		d = -d
	}
	d = min(d, sectors-d)

	switch d {
	case 1:
		return harmony.Analogous
	case sectors / 2:
		return harmony.Complementary
	}

	significant := 0
	for _, n := range counts {
		if float64(n) > triadicShare*float64(total) {
			significant++
		}
	}
	if significant >= 3 {
		return harmony.Triadic
	}
	return harmony.Monochromatic
}

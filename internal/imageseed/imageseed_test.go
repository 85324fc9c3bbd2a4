package imageseed

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"golang.org/x/image/bmp"

	"github.com/leonardotrapani/chromagen/internal/harmony"
	"github.com/leonardotrapani/chromagen/internal/testutil"
)

// band is a vertical stripe of width columns filled with c.
type band struct {
	c     color.RGBA
	width int
}

func striped(height int, bands ...band) *image.RGBA {
	width := 0
	for _, b := range bands {
		width += b.width
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	x := 0
	for _, b := range bands {
		for i := 0; i < b.width; i++ {
			for y := 0; y < height; y++ {
				img.SetRGBA(x, y, b.c)
			}
			x++
		}
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return &buf
}

var (
	red    = color.RGBA{255, 0, 0, 255}
	orange = color.RGBA{255, 128, 0, 255}
	green  = color.RGBA{0, 255, 0, 255}
	cyan   = color.RGBA{0, 255, 255, 255}
	blue   = color.RGBA{0, 0, 255, 255}
	gray   = color.RGBA{128, 128, 128, 255}
	black  = color.RGBA{0, 0, 0, 255}
	white  = color.RGBA{255, 255, 255, 255}
)

func TestFromImage(t *testing.T) {
	tests := []struct {
		name string
		img  image.Image
		want harmony.Spec
	}{
		{
			name: "solid red",
			img:  striped(10, band{red, 10}),
			want: harmony.Spec{BaseColor: "#ff0000", Harmony: harmony.Monochromatic, Mood: harmony.Vibrant},
		},
		{
			name: "red and orange are adjacent",
			img:  striped(10, band{red, 6}, band{orange, 4}),
			want: harmony.Spec{BaseColor: "#ff0000", Harmony: harmony.Analogous, Mood: harmony.Vibrant},
		},
		{
			name: "red and cyan are opposite",
			img:  striped(10, band{cyan, 6}, band{red, 4}),
			want: harmony.Spec{BaseColor: "#00ffff", Harmony: harmony.Complementary, Mood: harmony.Vibrant},
		},
		{
			name: "three primaries",
			img:  striped(9, band{red, 3}, band{green, 3}, band{blue, 3}),
			want: harmony.Spec{BaseColor: "#ff0000", Harmony: harmony.Triadic, Mood: harmony.Vibrant},
		},
		{
			name: "gray only",
			img:  striped(8, band{gray, 8}),
			want: harmony.Spec{BaseColor: "#808080", Harmony: harmony.Monochromatic, Mood: harmony.Standard},
		},
		{
			name: "black is dark",
			img:  striped(8, band{black, 8}),
			want: harmony.Spec{BaseColor: "#000000", Harmony: harmony.Monochromatic, Mood: harmony.Dark},
		},
		{
			name: "mostly white with a blue mark is pastel",
			img:  striped(10, band{white, 9}, band{blue, 1}),
			want: harmony.Spec{BaseColor: "#0000ff", Harmony: harmony.Monochromatic, Mood: harmony.Pastel},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := FromImage(encodePNG(t, tc.img))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("expected %+v, got %+v", tc.want, got)
			}
		})
	}
}

func TestFromImageBMP(t *testing.T) {
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, striped(4, band{blue, 4})); err != nil {
		t.Fatalf("encode bmp: %v", err)
	}

	got, err := FromImage(&buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.BaseColor != "#0000ff" {
		t.Errorf("expected #0000ff, got %s", got.BaseColor)
	}
}

func TestAnalyzeSamplesAtMostGrid(t *testing.T) {
	_, stats, err := Analyze(encodePNG(t, striped(200, band{red, 150}, band{cyan, 150})))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Samples != gridSize*gridSize {
		t.Errorf("expected %d samples, got %d", gridSize*gridSize, stats.Samples)
	}
	if stats.Sectors[0]+stats.Sectors[6] != stats.Chromatic {
		t.Errorf("expected only red and cyan sectors, got %v", stats.Sectors)
	}
}

func TestFromImageErrors(t *testing.T) {
	if _, err := FromImage(strings.NewReader("definitely not an image")); !errors.Is(err, ErrUnsupportedImage) {
		t.Errorf("expected ErrUnsupportedImage, got %v", err)
	}

	transparent := image.NewRGBA(image.Rect(0, 0, 4, 4))
	if _, err := FromImage(encodePNG(t, transparent)); !errors.Is(err, ErrUnsupportedImage) {
		t.Errorf("expected ErrUnsupportedImage for transparent image, got %v", err)
	}
}

func TestFromImageRejectsOversized(t *testing.T) {
	_, err := FromImage(bytes.NewReader(testutil.PNGHeader(20000, 20000)))
	if !errors.Is(err, ErrUnsupportedImage) {
		t.Fatalf("expected ErrUnsupportedImage, got %v", err)
	}
	if !strings.Contains(err.Error(), "20000x20000") {
		t.Errorf("expected the size in the error, got %v", err)
	}
}

func TestTopSectors(t *testing.T) {
	tests := []struct {
		counts        [sectors]int
		first, second int
	}{
		{[sectors]int{0: 5, 3: 7}, 3, 0},
		{[sectors]int{2: 4}, 2, -1},
		{[sectors]int{1: 3, 5: 3, 9: 3}, 1, 5},
		{[sectors]int{}, -1, -1},
	}

	for _, tc := range tests {
		first, second := topSectors(tc.counts)
		if first != tc.first || second != tc.second {
			t.Errorf("topSectors(%v) = %d, %d; want %d, %d", tc.counts, first, second, tc.first, tc.second)
		}
	}
}

func TestPickHarmonyWrapsAround(t *testing.T) {
	counts := [sectors]int{0: 10, 11: 8}
	if got := pickHarmony(counts, 18, 0, 11); got != harmony.Analogous {
		t.Errorf("sectors 0 and 11 are adjacent, got %s", got)
	}

	noise := [sectors]int{0: 95, 6: 5}
	if got := pickHarmony(noise, 100, 0, 6); got != harmony.Monochromatic {
		t.Errorf("a 5%% second hue should be ignored, got %s", got)
	}
}

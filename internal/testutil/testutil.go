// Package testutil holds fakes and helpers shared by package tests.
package testutil

import (
	"bytes"
	"context"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/leonardotrapani/chromagen/internal/harmony"
	"github.com/leonardotrapani/chromagen/internal/llm"
)

// MockResolver implements llm.Resolver, returning Spec or Err and recording
// every request.
type MockResolver struct {
	Spec harmony.Spec
	Err  error
	// ResolveFunc overrides Spec and Err when set
	ResolveFunc func(ctx context.Context, req llm.Request) (harmony.Spec, error)

	mu    sync.Mutex
	calls []llm.Request
}

func NewMockResolver(spec harmony.Spec, err error) *MockResolver {
	return &MockResolver{Spec: spec, Err: err}
}

func (m *MockResolver) Resolve(ctx context.Context, req llm.Request) (harmony.Spec, error) {
	m.mu.Lock()
	m.calls = append(m.calls, req)
	fn := m.ResolveFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, req)
	}
	return m.Spec, m.Err
}

// Calls returns a copy of the requests seen so far
func (m *MockResolver) Calls() []llm.Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]llm.Request(nil), m.calls...)
}

// CreateTempConfigFile writes content to a config.toml in a temp dir
func CreateTempConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write temp config: %v", err)
	}
	return path
}

// SolidPNG encodes a 4x4 image of a single color
func SolidPNG(t *testing.T, c color.RGBA) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			img.SetRGBA(x, y, c)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Failed to encode png: %v", err)
	}
	return buf.Bytes()
}

// PNGHeader is a PNG signature and IHDR chunk for an 8-bit RGB image of the
// given size with no pixel data behind it. Decoders that trust the header
// would allocate width*height*4 bytes.
func PNGHeader(width, height uint32) []byte {
	var buf bytes.Buffer
	buf.WriteString("\x89PNG\r\n\x1a\n")

	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:4], width)
	binary.BigEndian.PutUint32(ihdr[4:8], height)
	ihdr[8] = 8 // bit depth
	ihdr[9] = 2 // truecolor

	chunk := append([]byte("IHDR"), ihdr...)
	binary.Write(&buf, binary.BigEndian, uint32(len(ihdr)))
	buf.Write(chunk)
	binary.Write(&buf, binary.BigEndian, crc32.ChecksumIEEE(chunk))
	return buf.Bytes()
}

// TestContext returns a context with timeout for testing
func TestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 5*time.Second)
}

// WaitForCondition waits for a condition to be true or times out
func WaitForCondition(t *testing.T, condition func() bool, timeout time.Duration) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			t.Fatalf("Condition not met within %v", timeout)
		default:
			if condition() {
				return
			}
			time.Sleep(10 * time.Millisecond)
		}
	}
}

// CaptureOutput captures stdout for testing
func CaptureOutput(t *testing.T, fn func()) string {
	t.Helper()

	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = old

	out, _ := io.ReadAll(r)
	return string(out)
}

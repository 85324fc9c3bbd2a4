package ui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevOut, prevNow, prevNoColor := Output, now, color.NoColor
	Output = &buf
	now = func() time.Time { return time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC) }
	color.NoColor = true
	t.Cleanup(func() {
		Output, now, color.NoColor = prevOut, prevNow, prevNoColor
	})
	return &buf
}

func TestLogStatus(t *testing.T) {
	tests := []struct {
		category string
		icon     string
	}{
		{"success", "✔"},
		{"error", "✖"},
		{"warning", "⚠"},
		{"info", "ℹ"},
		{"other", "●"},
	}

	for _, tc := range tests {
		t.Run(tc.category, func(t *testing.T) {
			buf := capture(t)
			LogStatus(tc.category, "server listening")
			want := "15:04:05  " + tc.icon + "  server listening\n"
			if buf.String() != want {
				t.Errorf("expected %q, got %q", want, buf.String())
			}
		})
	}
}

func TestLogRequest(t *testing.T) {
	buf := capture(t)
	LogRequest("GET", "/api/palette", 400, 1500*time.Microsecond)
	got := buf.String()
	for _, want := range []string{"400", "GET", "/api/palette", "1.5ms"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in %q", want, got)
		}
	}
}

func TestLogGroupItem(t *testing.T) {
	buf := capture(t)
	LogGroupItem("listen", ":8080")
	if got := buf.String(); got != "  listen:    :8080\n" {
		t.Errorf("unexpected output %q", got)
	}
}

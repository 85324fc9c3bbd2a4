package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/leonardotrapani/chromagen/internal/accessibility"
	"github.com/leonardotrapani/chromagen/internal/colorspace"
	"github.com/leonardotrapani/chromagen/internal/export"
	"github.com/leonardotrapani/chromagen/internal/harmony"
	"github.com/leonardotrapani/chromagen/internal/history"
	"github.com/leonardotrapani/chromagen/internal/imageseed"
	"github.com/leonardotrapani/chromagen/internal/llm"
	"github.com/leonardotrapani/chromagen/internal/pipeline"
	"github.com/leonardotrapani/chromagen/internal/render"
)

var errInvalidBody = errors.New("invalid request body")

type errorResponse struct {
	Message string `json:"message"`
}

type generateRequest struct {
	Prompt string `json:"prompt"`
	// Image is a base64 data URI.
	Image string `json:"image,omitempty"`
}

type paletteResponse struct {
	Spec    harmony.Spec    `json:"spec"`
	Palette harmony.Palette `json:"palette"`
}

type nameResponse struct {
	Hex  string `json:"hex"`
	Name string `json:"name"`
}

type healthResponse struct {
	Status string `json:"status"`
	Online bool   `json:"online"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var body generateRequest
	if err := decodeJSON(w, r, &body); err != nil {
		writeErr(w, err)
		return
	}

	req := pipeline.Request{Prompt: body.Prompt}
	if body.Image != "" {
		img, err := llm.ParseDataURI(body.Image)
		if err != nil {
			writeErr(w, err)
			return
		}
		req.Image = img
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.Timeout)
	defer cancel()

	res, err := s.pipeline.Run(ctx, req)
	if err != nil {
		writeErr(w, err)
		return
	}

	s.metrics.observePalette(res.Spec)
	if res.Degraded {
		s.metrics.fallbacks.Inc()
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handlePalette(w http.ResponseWriter, r *http.Request) {
	spec, p, err := s.paletteFromQuery(r)
	if err != nil {
		writeErr(w, err)
		return
	}
	s.metrics.observePalette(spec)
	writeJSON(w, http.StatusOK, paletteResponse{Spec: spec, Palette: p})
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	p, err := decodePalette(w, r)
	if err != nil {
		writeErr(w, err)
		return
	}
	report, err := accessibility.Build(p)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	format, err := export.ParseFormat(r.PathValue("format"))
	if err != nil {
		writeErr(w, err)
		return
	}
	p, err := decodePalette(w, r)
	if err != nil {
		writeErr(w, err)
		return
	}
	out, err := export.Render(format, p)
	if err != nil {
		writeErr(w, err)
		return
	}
	w.Header().Set("Content-Type", format.ContentType())
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(out))
}

func (s *Server) handleTemplate(w http.ResponseWriter, r *http.Request) {
	name, err := render.ParseTemplate(r.PathValue("name"))
	if err != nil {
		writeErr(w, err)
		return
	}
	_, p, err := s.paletteFromQuery(r)
	if err != nil {
		writeErr(w, err)
		return
	}
	html, err := render.HTML(name, p)
	if err != nil {
		writeErr(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(html))
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	entries := []history.Entry{}
	if s.history != nil {
		list, err := s.history.List()
		if err != nil {
			writeErr(w, err)
			return
		}
		entries = append(entries, list...)
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleName(w http.ResponseWriter, r *http.Request) {
	hex, err := colorspace.NormalizeHex(r.PathValue("hex"))
	if err != nil {
		writeErr(w, err)
		return
	}
	name, err := colorspace.NearestColorName(hex)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nameResponse{Hex: hex, Name: name})
}

func (s *Server) handlePreflight(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Online: s.pipeline.Online()})
}

// paletteFromQuery reads baseColor, harmony and mood, defaulting each
// missing parameter from the default seed.
func (s *Server) paletteFromQuery(r *http.Request) (harmony.Spec, harmony.Palette, error) {
	q := r.URL.Query()
	spec := harmony.DefaultSpec()
	if v := q.Get("baseColor"); v != "" {
		spec.BaseColor = v
	}
	if v := q.Get("harmony"); v != "" {
		spec.Harmony = harmony.Rule(v)
	}
	if v := q.Get("mood"); v != "" {
		spec.Mood = harmony.Mood(v)
	}

	spec, err := spec.Normalize()
	if err != nil {
		return harmony.Spec{}, harmony.Palette{}, err
	}
	p, err := s.pipeline.Generate(spec)
	if err != nil {
		return harmony.Spec{}, harmony.Palette{}, err
	}
	return spec, p, nil
}

// decodePalette accepts either a bare palette array or {"palette": [...]},
// the shape /api/generate and /api/palette respond with.
func decodePalette(w http.ResponseWriter, r *http.Request) (harmony.Palette, error) {
	var raw json.RawMessage
	if err := decodeJSON(w, r, &raw); err != nil {
		return harmony.Palette{}, err
	}

	var p harmony.Palette
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var wrapped struct {
			Palette harmony.Palette `json:"palette"`
		}
		if err := json.Unmarshal(trimmed, &wrapped); err != nil {
			return harmony.Palette{}, fmt.Errorf("%w: %w", harmony.ErrInvalidPalette, err)
		}
		p = wrapped.Palette
	} else if err := json.Unmarshal(trimmed, &p); err != nil {
		return harmony.Palette{}, fmt.Errorf("%w: %w", harmony.ErrInvalidPalette, err)
	}

	if err := p.Validate(); err != nil {
		return harmony.Palette{}, err
	}
	return p, nil
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", errInvalidBody, err)
	}
	return nil
}

// statusFor maps domain errors onto HTTP statuses; anything unknown is a
// server error.
func statusFor(err error) int {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, errInvalidBody),
		errors.Is(err, colorspace.ErrInvalidColor),
		errors.Is(err, harmony.ErrInvalidPalette),
		errors.Is(err, export.ErrUnknownFormat),
		errors.Is(err, render.ErrUnknownTemplate),
		errors.Is(err, llm.ErrEmptyRequest),
		errors.Is(err, llm.ErrInvalidDataURI),
		errors.Is(err, imageseed.ErrUnsupportedImage):
		return http.StatusBadRequest
	case errors.Is(err, history.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeErr(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Printf("Server: request failed: %v", err)
	}
	writeError(w, status, err.Error())
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Message: message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Server: failed to encode response: %v", err)
	}
}

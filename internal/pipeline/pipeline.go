package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/leonardotrapani/chromagen/internal/harmony"
	"github.com/leonardotrapani/chromagen/internal/history"
	"github.com/leonardotrapani/chromagen/internal/imageseed"
	"github.com/leonardotrapani/chromagen/internal/llm"
)

// imagePrompt is what image-only requests are recorded as in history.
const imagePrompt = "(image)"

// HistoryStore records generated palettes.
type HistoryStore interface {
	Add(prompt string, spec harmony.Spec, palette harmony.Palette) (history.Entry, error)
}

type Request struct {
	Prompt    string
	Image     *llm.Image
	NoHistory bool
}

type Result struct {
	Spec    harmony.Spec    `json:"spec"`
	Palette harmony.Palette `json:"palette"`
	// Degraded is set when the resolver failed and the default seed was used.
	Degraded bool     `json:"degraded"`
	Warnings []string `json:"warnings,omitempty"`
}

// Pipeline resolves a request into a seed, generates the palette and records
// it. resolver and store may be nil.
type Pipeline struct {
	mu       sync.RWMutex
	resolver llm.Resolver
	cache    *harmony.Cache
	store    HistoryStore
}

func New(resolver llm.Resolver, cache *harmony.Cache, store HistoryStore) *Pipeline {
	if cache == nil {
		cache = harmony.NewCache(0)
	}
	return &Pipeline{resolver: resolver, cache: cache, store: store}
}

func (p *Pipeline) Cache() *harmony.Cache {
	return p.cache
}

// Online reports whether a model resolver is configured.
func (p *Pipeline) Online() bool {
	return p.currentResolver() != nil
}

// SetResolver swaps the resolver, e.g. after a config reload. nil switches
// to offline mode. Requests already resolving keep the old one.
func (p *Pipeline) SetResolver(r llm.Resolver) {
	p.mu.Lock()
	p.resolver = r
	p.mu.Unlock()
}

func (p *Pipeline) currentResolver() llm.Resolver {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.resolver
}

// Generate expands a known seed without resolving or recording it.
func (p *Pipeline) Generate(spec harmony.Spec) (harmony.Palette, error) {
	return p.cache.Generate(spec)
}

func (p *Pipeline) Run(ctx context.Context, req Request) (Result, error) {
	req.Prompt = strings.TrimSpace(req.Prompt)
	llmReq := llm.Request{Prompt: req.Prompt, Image: req.Image}
	if llmReq.Empty() {
		return Result{}, llm.ErrEmptyRequest
	}

	var res Result
	spec, err := p.resolve(ctx, llmReq, &res)
	if err != nil {
		return Result{}, err
	}

	palette, err := p.cache.Generate(spec)
	if err != nil {
		return Result{}, fmt.Errorf("generate palette for %s: %w", spec, err)
	}
	res.Spec = spec
	res.Palette = palette

	if p.store != nil && !req.NoHistory {
		prompt := req.Prompt
		if prompt == "" {
			prompt = imagePrompt
		}
		if _, err := p.store.Add(prompt, spec, palette); err != nil {
			log.Printf("Pipeline: failed to record history: %v", err)
			res.Warnings = append(res.Warnings, fmt.Sprintf("history not saved: %v", err))
		}
	}

	return res, nil
}

func (p *Pipeline) resolve(ctx context.Context, req llm.Request, res *Result) (harmony.Spec, error) {
	resolver := p.currentResolver()
	if resolver == nil {
		if req.Image != nil && len(req.Image.Data) > 0 {
			spec, err := imageseed.FromImage(bytes.NewReader(req.Image.Data))
			if err != nil {
				return harmony.Spec{}, fmt.Errorf("image seed: %w", err)
			}
			log.Printf("Pipeline: derived %s from image", spec)
			return spec, nil
		}

		spec := harmony.DefaultSpec()
		log.Printf("Pipeline: no resolver configured, using default seed %s", spec)
		res.Warnings = append(res.Warnings, "no model configured, using the default seed")
		return spec, nil
	}

	start := time.Now()
	spec, err := resolver.Resolve(ctx, req)
	if err != nil {
		spec = harmony.DefaultSpec()
		log.Printf("Pipeline: resolver failed after %v, using default seed %s: %v", time.Since(start), spec, err)
		res.Degraded = true
		res.Warnings = append(res.Warnings, fmt.Sprintf("resolver failed, using the default seed: %v", err))
		return spec, nil
	}

	log.Printf("Pipeline: resolved %s in %v", spec, time.Since(start))
	return spec, nil
}

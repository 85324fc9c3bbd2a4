// Package history keeps the most recent generated palettes in a small JSON
// file, newest first.
package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/leonardotrapani/chromagen/internal/harmony"
)

const DefaultCapacity = 10

var (
	ErrEmptyPrompt = errors.New("prompt is empty")
	ErrNotFound    = errors.New("history entry not found")
)

type Entry struct {
	ID        int64           `json:"id"`
	Timestamp time.Time       `json:"timestamp"`
	Prompt    string          `json:"prompt"`
	Spec      harmony.Spec    `json:"spec"`
	Palette   harmony.Palette `json:"palette"`
}

// Store is safe for concurrent use within one process. The file is re-read
// before every operation and rewritten atomically on every change.
type Store struct {
	path     string
	capacity int
	now      func() time.Time

	mu      sync.Mutex
	entries []Entry
}

type Option func(*Store)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New opens the store at path. Nothing is read until first use.
func New(path string, capacity int, opts ...Option) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	s := &Store{path: path, capacity: capacity, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DefaultPath is ~/.cache/chromagen/history.json (per os.UserCacheDir).
func DefaultPath() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user cache directory: %w", err)
	}
	return filepath.Join(cacheDir, "chromagen", "history.json"), nil
}

func (s *Store) Path() string { return s.path }

// Add records a palette as the newest entry and drops the oldest entries
// beyond capacity.
func (s *Store) Add(prompt string, spec harmony.Spec, palette harmony.Palette) (Entry, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return Entry{}, ErrEmptyPrompt
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadLocked(); err != nil {
		return Entry{}, err
	}

	now := s.now()
	id := now.UnixMilli()
	// ids must stay unique when two entries land in the same millisecond
	if len(s.entries) > 0 && id <= s.entries[0].ID {
		id = s.entries[0].ID + 1
	}

	entry := Entry{
		ID:        id,
		Timestamp: now.UTC().Truncate(time.Second),
		Prompt:    prompt,
		Spec:      spec,
		Palette:   palette,
	}

	next := make([]Entry, 0, s.capacity)
	next = append(next, entry)
	next = append(next, s.entries...)
	if len(next) > s.capacity {
		next = next[:s.capacity]
	}

	if err := s.writeLocked(next); err != nil {
		return Entry{}, err
	}
	s.entries = next
	return entry, nil
}

// List returns a copy of the entries, newest first.
func (s *Store) List() ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadLocked(); err != nil {
		return nil, err
	}
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out, nil
}

func (s *Store) Get(id int64) (Entry, error) {
	entries, err := s.List()
	if err != nil {
		return Entry{}, err
	}
	for _, e := range entries {
		if e.ID == id {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("%w: %d", ErrNotFound, id)
}

// Clear removes every entry and the file.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove history file: %w", err)
	}
	s.entries = nil
	return nil
}

// loadLocked re-reads the file on every call so entries written by another
// process (a CLI run next to serve) are kept.
func (s *Store) loadLocked() error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		s.entries = nil
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read history file %s: %w", s.path, err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Printf("History: ignoring corrupt history file %s: %v", s.path, err)
		entries = nil
	}

	valid := entries[:0]
	for _, e := range entries {
		if err := e.Palette.Validate(); err != nil {
			log.Printf("History: dropping entry %d: %v", e.ID, err)
			continue
		}
		valid = append(valid, e)
	}
	if len(valid) > s.capacity {
		valid = valid[:s.capacity]
	}

	s.entries = valid
	return nil
}

func (s *Store) writeLocked(entries []Entry) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create history directory: %w", err)
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".history-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write history: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write history: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace history file: %w", err)
	}
	return nil
}

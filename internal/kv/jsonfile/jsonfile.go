package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const formatVersion = 1

type document struct {
	Version int               `json:"version"`
	Values  map[string]string `json:"values"`
}

// Store keeps every key in a single JSON document that is rewritten on each Set.
type Store struct {
	path string

	mu  sync.Mutex
	doc *document
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Init creates the parent directory and loads the document, creating an empty
// one if the file does not exist yet.
func (s *Store) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.doc = &document{Version: formatVersion, Values: make(map[string]string)}
			return s.save()
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	doc := &document{}
	if err := json.Unmarshal(data, doc); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}
	if doc.Version > formatVersion {
		return fmt.Errorf("storage format version (%d) is newer than supported version (%d)", doc.Version, formatVersion)
	}
	if doc.Values == nil {
		doc.Values = make(map[string]string)
	}
	s.doc = doc
	return nil
}

func (s *Store) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.doc == nil {
		return "", false, fmt.Errorf("storage not loaded")
	}
	v, ok := s.doc.Values[key]
	return v, ok, nil
}

func (s *Store) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}

	prev, had := s.doc.Values[key]
	s.doc.Values[key] = value
	if err := s.save(); err != nil {
		if had {
			s.doc.Values[key] = prev
		} else {
			delete(s.doc.Values, key)
		}
		return err
	}
	return nil
}

func (s *Store) Close() error { return nil }

func (s *Store) Describe() string { return s.path }

// save writes through a temp file so a crash never leaves a truncated document.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to write storage: %w", err)
	}
	return nil
}

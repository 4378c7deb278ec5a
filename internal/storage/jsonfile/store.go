// Package jsonfile persists the entire dataset as one flat JSON document with
// four named collections. The document is loaded once at open time into a
// single authoritative in-memory copy guarded by a global mutex; every
// mutation runs as an atomic critical section (lock, modify, persist, unlock)
// and is written back to disk before it returns, so the file always reflects
// the last successful mutation. Reads take the read lock and may observe a
// snapshot that is slightly stale relative to in-flight writers, which is
// fine: nothing on the read path does read-modify-write.
package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gatherly/server/internal/domain/events"
	"github.com/gatherly/server/internal/domain/locations"
	"github.com/gatherly/server/internal/domain/participants"
	"github.com/gatherly/server/internal/domain/users"
	"github.com/gatherly/server/internal/metrics"
	"github.com/gatherly/server/internal/storage"
	"github.com/rs/zerolog"
)

var _ storage.Repository = (*Store)(nil)

// ErrIO wraps any failure to read, parse, or write the backing file.
var ErrIO = errors.New("store i/o failure")

// document is the on-disk shape: four ordered record collections.
type document struct {
	Users        []users.User               `json:"users"`
	Events       []events.Event             `json:"events"`
	Locations    []locations.Location       `json:"locations"`
	Participants []participants.Participant `json:"participants"`
}

// Store is the sole gateway to persisted state. It implements
// storage.Repository.
type Store struct {
	path   string
	logger zerolog.Logger

	mu  sync.RWMutex
	doc document
}

// Open loads the document at path. A missing or structurally invalid file is
// an ErrIO; use Create (or the seed command) to initialize a new store.
func Open(path string, logger zerolog.Logger) (*Store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrIO, filepath.Base(path), err)
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrIO, filepath.Base(path), err)
	}

	s := &Store{path: path, logger: logger, doc: doc}
	s.updateGauges()
	logger.Info().
		Str("path", path).
		Int("users", len(doc.Users)).
		Int("events", len(doc.Events)).
		Int("locations", len(doc.Locations)).
		Int("participants", len(doc.Participants)).
		Msg("store opened")
	return s, nil
}

// Create initializes a new empty store file at path. It refuses to clobber an
// existing file.
func Create(path string, logger zerolog.Logger) (*Store, error) {
	if _, err := os.Stat(path); err == nil {
		return nil, fmt.Errorf("store file %s already exists", filepath.Base(path))
	}

	s := &Store{
		path:   path,
		logger: logger,
		doc: document{
			Users:        []users.User{},
			Events:       []events.Event{},
			Locations:    []locations.Location{},
			Participants: []participants.Participant{},
		},
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.save(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the location of the backing file.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) Users() users.Repository               { return &userRepo{s} }
func (s *Store) Events() events.Repository             { return &eventRepo{s} }
func (s *Store) Locations() locations.Repository       { return &locationRepo{s} }
func (s *Store) Participants() participants.Repository { return &participantRepo{s} }

// save writes the document atomically (temp file + rename). Callers must hold
// the write lock.
func (s *Store) save() error {
	start := time.Now()

	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode document: %v", ErrIO, err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrIO, filepath.Base(tmp), err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("%w: rename %s: %v", ErrIO, filepath.Base(tmp), err)
	}

	metrics.StoreSaveDuration.Observe(time.Since(start).Seconds())
	s.updateGauges()
	return nil
}

func (s *Store) updateGauges() {
	metrics.StoreRecords.WithLabelValues("users").Set(float64(len(s.doc.Users)))
	metrics.StoreRecords.WithLabelValues("events").Set(float64(len(s.doc.Events)))
	metrics.StoreRecords.WithLabelValues("locations").Set(float64(len(s.doc.Locations)))
	metrics.StoreRecords.WithLabelValues("participants").Set(float64(len(s.doc.Participants)))
}

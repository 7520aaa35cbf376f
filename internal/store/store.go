// Package store persists curated records as one JSON document on disk.
//
// The document is rewritten in full on every save. Writers serialize through
// an advisory lock file next to the document, so two processes adding at the
// same time no longer lose each other's records.
package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"github.com/julienpequegnot/curator/internal/record"
)

var (
	ErrNotFound  = errors.New("content not found")
	ErrMalformed = errors.New("malformed store")
)

const (
	lockTimeout = 3 * time.Second
	lockRetry   = 100 * time.Millisecond
)

// HTML escaping is off so titles like "<Cmd+K>" are stored as typed.
var codec = jsoniter.Config{
	EscapeHTML:             false,
	ValidateJsonRawMessage: true,
}.Froze()

type Store struct {
	path     string
	fileLock *flock.Flock
	log      *zap.Logger
	now      func() time.Time
}

type Option func(*Store)

func WithLogger(log *zap.Logger) Option {
	return func(s *Store) { s.log = log }
}

// WithClock replaces time.Now for timestamps written by Add and Save.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New returns a store backed by the JSON file at path. Nothing is touched on
// disk until the first write.
func New(path string, opts ...Option) *Store {
	s := &Store{
		path:     path,
		fileLock: flock.New(path + ".lock"),
		log:      zap.NewNop(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) Dir() string {
	return filepath.Dir(s.path)
}

// EnsureReady creates the data directory if it is missing.
func (s *Store) EnsureReady() error {
	if err := os.MkdirAll(s.Dir(), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	return nil
}

// Load reads the document. A missing file yields an empty document and
// leaves the filesystem untouched.
func (s *Store) Load() (*record.Document, error) {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		s.log.Debug("store file missing, starting empty", zap.String("path", s.path))
		return record.NewDocument(), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), lockTimeout)
	defer cancel()

	locked, err := s.fileLock.TryRLockContext(ctx, lockRetry)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("could not acquire file lock")
	}
	defer func() { _ = s.fileLock.Unlock() }()

	return s.loadLocked()
}

// Save stamps last_update and rewrites the whole document.
func (s *Store) Save(doc *record.Document) error {
	if err := s.EnsureReady(); err != nil {
		return err
	}
	return s.withWriteLock(func() error {
		return s.saveLocked(doc)
	})
}

// Add appends a new raw record and returns it with the number of records the
// saved document holds.
func (s *Store) Add(title, content, source, url string, tags []string) (*record.Record, int, error) {
	if err := s.EnsureReady(); err != nil {
		return nil, 0, err
	}
	if tags == nil {
		tags = []string{}
	}

	var added record.Record
	var total int
	err := s.withWriteLock(func() error {
		doc, err := s.loadLocked()
		if err != nil {
			return err
		}

		added = record.Record{
			ID:        doc.NextID(),
			Title:     title,
			Content:   content,
			Source:    source,
			URL:       url,
			Tags:      tags,
			DateAdded: record.NewTimestamp(s.now()),
			Status:    record.StatusRaw,
		}
		doc.Contents = append(doc.Contents, added)
		total = len(doc.Contents)

		return s.saveLocked(doc)
	})
	if err != nil {
		return nil, 0, err
	}

	s.log.Debug("added record", zap.Int("id", added.ID), zap.String("source", added.Source))
	return &added, total, nil
}

func (s *Store) Get(id int) (*record.Record, error) {
	doc, err := s.Load()
	if err != nil {
		return nil, err
	}
	r, ok := doc.Find(id)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return &r, nil
}

// List returns every record, or only those with the given status when it is
// not empty, in insertion order.
func (s *Store) List(status record.Status) ([]record.Record, error) {
	doc, err := s.Load()
	if err != nil {
		return nil, err
	}
	return doc.Filter(status), nil
}

func (s *Store) withWriteLock(fn func() error) error {
	ctx, cancel := context.WithTimeout(context.Background(), lockTimeout)
	defer cancel()

	locked, err := s.fileLock.TryLockContext(ctx, lockRetry)
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("could not acquire file lock")
	}
	defer func() { _ = s.fileLock.Unlock() }()

	return fn()
}

func (s *Store) loadLocked() (*record.Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return record.NewDocument(), nil
		}
		return nil, fmt.Errorf("failed to read store: %w", err)
	}

	doc := record.NewDocument()
	if err := codec.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, s.path, err)
	}
	doc.Normalize()

	s.log.Debug("loaded store", zap.String("path", s.path), zap.Int("records", len(doc.Contents)))
	return doc, nil
}

func (s *Store) saveLocked(doc *record.Document) error {
	doc.Normalize()
	stamp := record.NewTimestamp(s.now())
	doc.LastUpdate = &stamp

	data, err := codec.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal store: %w", err)
	}

	tmpFile := s.path + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := os.Rename(tmpFile, s.path); err != nil {
		_ = os.Remove(tmpFile)
		return fmt.Errorf("failed to rename file: %w", err)
	}

	s.log.Info("saved store", zap.String("path", s.path), zap.Int("records", len(doc.Contents)))
	return nil
}

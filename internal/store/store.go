// Package store persists named documents in a Badger database.
//
// Only documents are persisted; undo/redo history is session state and is
// deliberately never written.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	badger "github.com/dgraph-io/badger/v4"

	"github.com/dshills/inkwell/internal/engine/document"
)

const (
	// AppName is the application name used for data directories.
	AppName = "inkwell"

	docPrefix = "doc/"
)

// ErrNotFound is returned when a named document does not exist.
var ErrNotFound = errors.New("document not found")

// Options configures the store.
type Options struct {
	// Path is the database directory. Empty string uses the XDG default.
	Path string
	// InMemory forces in-memory mode regardless of Path.
	InMemory bool
	// Logger receives store diagnostics; nil uses slog.Default.
	Logger *slog.Logger
}

// DefaultPath returns the default database path following the XDG spec.
func DefaultPath() string {
	return filepath.Join(xdg.DataHome, AppName, "db")
}

// Store wraps a Badger database holding document snapshots.
type Store struct {
	db  *badger.DB
	log *slog.Logger
}

// Open opens or creates a store.
func Open(opts Options) (*Store, error) {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	var badgerOpts badger.Options
	if opts.InMemory {
		badgerOpts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		path := opts.Path
		if path == "" {
			path = DefaultPath()
		}
		if err := os.MkdirAll(path, 0o755); err != nil {
			return nil, fmt.Errorf("creating store directory: %w", err)
		}
		badgerOpts = badger.DefaultOptions(path)
	}

	// Reduce logging noise
	badgerOpts = badgerOpts.WithLoggingLevel(badger.ERROR)

	db, err := badger.Open(badgerOpts)
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}

	log.Debug("store opened", "in_memory", opts.InMemory, "path", opts.Path)
	return &Store{db: db, log: log}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save writes a document snapshot under the given name, replacing any
// previous version.
func (s *Store) Save(name string, doc *document.Document) error {
	if name == "" {
		return errors.New("document name must not be empty")
	}

	data, err := json.Marshal(doc.Snapshot())
	if err != nil {
		return fmt.Errorf("encoding document %q: %w", name, err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(docPrefix+name), data)
	})
	if err != nil {
		return fmt.Errorf("saving document %q: %w", name, err)
	}

	s.log.Debug("document saved", "name", name, "bytes", len(data))
	return nil
}

// Load reads the named document.
func (s *Store) Load(name string) (*document.Document, error) {
	var snap document.Snapshot

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(docPrefix + name))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return fmt.Errorf("%w: %s", ErrNotFound, name)
			}
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &snap)
		})
	})
	if err != nil {
		return nil, err
	}

	return document.FromSnapshot(snap), nil
}

// Delete removes the named document. Deleting an absent name is not an
// error.
func (s *Store) Delete(name string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(docPrefix + name))
	})
	if err != nil {
		return fmt.Errorf("deleting document %q: %w", name, err)
	}
	return nil
}

// List returns the names of all stored documents.
func (s *Store) List() ([]string, error) {
	var names []string

	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{Prefix: []byte(docPrefix)})
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			key := string(it.Item().Key())
			names = append(names, key[len(docPrefix):])
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return names, nil
}

// Package storage persists solved knight's tours in BadgerDB.
package storage

import (
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/lgbarn/mailbox-go/internal/chess"
	"github.com/lgbarn/mailbox-go/internal/errors"
)

// keyPrefix namespaces tour records; the start square name follows it.
const keyPrefix = "tour/"

// TourRecord is a stored tour.
type TourRecord struct {
	Start    string    `json:"start"`
	Path     []string  `json:"path"`
	Nodes    int       `json:"nodes"`
	SolvedAt time.Time `json:"solved_at"`
}

// NewTourRecord builds a record for a tour from start.
func NewTourRecord(start chess.Square, path []chess.Square, nodes int) *TourRecord {
	names := make([]string, len(path))
	for i, sq := range path {
		names[i] = sq.String()
	}
	return &TourRecord{
		Start:    start.String(),
		Path:     names,
		Nodes:    nodes,
		SolvedAt: time.Now(),
	}
}

// StartSquare parses the record's start square.
func (r *TourRecord) StartSquare() (chess.Square, error) {
	return chess.ParseSquare(r.Start)
}

// Squares parses the record's path.
func (r *TourRecord) Squares() ([]chess.Square, error) {
	return chess.ParseSquares(strings.Join(r.Path, " "))
}

// Store wraps BadgerDB for tour records.
type Store struct {
	db *badger.DB
}

// Open opens or creates a store in dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging
	return open(opts)
}

// OpenInMemory opens a store that is discarded on Close.
func OpenInMemory() (*Store, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil
	return open(opts)
}

func open(opts badger.Options) (*Store, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "opening tour store")
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func key(start chess.Square) []byte {
	return []byte(keyPrefix + start.String())
}

// Put saves rec, replacing any record for the same start square.
func (s *Store) Put(rec *TourRecord) error {
	start, err := rec.StartSquare()
	if err != nil {
		return errors.Wrap(err, "storing tour")
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(start), data)
	})
}

// Get loads the record for start. It returns errors.ErrNotFound when no
// tour from start has been stored.
func (s *Store) Get(start chess.Square) (*TourRecord, error) {
	rec := &TourRecord{}

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(start))
		if err == badger.ErrKeyNotFound {
			return errors.Wrapf(errors.ErrNotFound, "tour from %v", start)
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, rec)
		})
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// List returns every stored record ordered by start square index.
func (s *Store) List() ([]*TourRecord, error) {
	var records []*TourRecord

	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(keyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			rec := &TourRecord{}
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, rec)
			})
			if err != nil {
				return err
			}
			records = append(records, rec)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(records, func(i, j int) bool {
		a, _ := records[i].StartSquare()
		b, _ := records[j].StartSquare()
		return a < b
	})
	return records, nil
}

package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"
)

var (
	// BoltDB bucket names
	bucketAuth   = []byte("auth")
	bucketClient = []byte("client")
)

// Storage is the BoltDB-backed client-side store. It holds exactly two
// things: the current session slot and the per-install client id.
type Storage struct {
	db *bbolt.DB
}

// New opens (or creates) the BoltDB file at dbPath and prepares buckets.
func New(ctx context.Context, dbPath string) (*Storage, error) {
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	storage := &Storage{db: db}

	if err := storage.initBuckets(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return storage, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketAuth); err != nil {
			return fmt.Errorf("failed to create auth bucket: %w", err)
		}
		if _, err := tx.CreateBucketIfNotExists(bucketClient); err != nil {
			return fmt.Errorf("failed to create client bucket: %w", err)
		}
		return nil
	})
}

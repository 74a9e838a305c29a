package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"

	"github.com/signalops/sigconsole/internal/client/storage"
)

var (
	authKey     = []byte("current")
	clientIDKey = []byte("id")
)

// Compile-time checks that Storage satisfies the client storage interfaces
var (
	_ storage.AuthStorage     = (*Storage)(nil)
	_ storage.ClientIDStorage = (*Storage)(nil)
)

// SaveAuth stores the session slot, replacing any previous value.
func (s *Storage) SaveAuth(ctx context.Context, auth *storage.AuthData) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAuth)
		if bucket == nil {
			return fmt.Errorf("auth bucket not found")
		}

		data, err := json.Marshal(auth)
		if err != nil {
			return fmt.Errorf("failed to marshal auth data: %w", err)
		}

		if err := bucket.Put(authKey, data); err != nil {
			return fmt.Errorf("failed to save auth data: %w", err)
		}

		return nil
	})
}

// GetAuth retrieves the stored session slot.
func (s *Storage) GetAuth(ctx context.Context) (*storage.AuthData, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var auth *storage.AuthData

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAuth)
		if bucket == nil {
			return fmt.Errorf("auth bucket not found")
		}

		data := bucket.Get(authKey)
		if data == nil {
			return storage.ErrAuthNotFound
		}

		auth = &storage.AuthData{}
		if err := json.Unmarshal(data, auth); err != nil {
			return fmt.Errorf("failed to unmarshal auth data: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return auth, nil
}

// DeleteAuth clears the session slot (logout or expiry).
func (s *Storage) DeleteAuth(ctx context.Context) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAuth)
		if bucket == nil {
			return fmt.Errorf("auth bucket not found")
		}

		if bucket.Get(authKey) == nil {
			return storage.ErrAuthNotFound
		}

		if err := bucket.Delete(authKey); err != nil {
			return fmt.Errorf("failed to delete auth data: %w", err)
		}

		return nil
	})
}

// ClientID returns the stable per-install identifier, generating and
// persisting one on first use. The id survives logins and logouts.
func (s *Storage) ClientID(ctx context.Context) (string, error) {
	if s.db == nil {
		return "", storage.ErrStorageClosed
	}

	var id string

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketClient)
		if bucket == nil {
			return fmt.Errorf("client bucket not found")
		}

		if data := bucket.Get(clientIDKey); data != nil {
			id = string(data)
			return nil
		}

		id = uuid.New().String()
		if err := bucket.Put(clientIDKey, []byte(id)); err != nil {
			return fmt.Errorf("failed to save client id: %w", err)
		}

		return nil
	})

	if err != nil {
		return "", err
	}

	return id, nil
}

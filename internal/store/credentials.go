// Package store provides the client's durable local storage. The only
// thing the admin client persists between runs is the bearer credential,
// kept under a single key in a bbolt database file.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.etcd.io/bbolt"
)

var (
	bucketCredentials = []byte("credentials")
	keyToken          = []byte("ssctoken")
)

// CredentialStore persists the bearer credential across application
// restarts. It owns the token exclusively: the HTTP adapter borrows a
// read-only copy at construction time and never sees later writes.
type CredentialStore struct {
	db *bbolt.DB
}

// NewCredentialStore opens (creating if needed) the bbolt database at
// path and ensures the credentials bucket exists. An empty path defaults
// to a "credentials.db" file next to the executable.
func NewCredentialStore(path string) (*CredentialStore, error) {
	if strings.TrimSpace(path) == "" {
		execPath, err := os.Executable()
		if err != nil {
			return nil, fmt.Errorf("resolve executable path: %w", err)
		}
		path = filepath.Join(filepath.Dir(execPath), "credentials.db")
	}

	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("open credentials db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketCredentials)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create credentials bucket: %w", err)
	}

	return &CredentialStore{db: db}, nil
}

// Get returns the stored bearer credential, or an empty string if none
// has ever been set.
func (s *CredentialStore) Get() (string, error) {
	var token string

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCredentials)
		if bucket == nil {
			return nil
		}
		token = string(bucket.Get(keyToken))
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("read credential: %w", err)
	}

	return token, nil
}

// Set stores token, replacing any previous value. Called immediately
// after a successful login response.
func (s *CredentialStore) Set(token string) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketCredentials).Put(keyToken, []byte(token))
	})
	if err != nil {
		return fmt.Errorf("save credential: %w", err)
	}

	return nil
}

// Clear removes the stored credential. Clearing an already-empty store is
// not an error.
func (s *CredentialStore) Clear() error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketCredentials).Delete(keyToken)
	})
	if err != nil {
		return fmt.Errorf("clear credential: %w", err)
	}

	return nil
}

// Close releases the underlying database file.
func (s *CredentialStore) Close() error {
	return s.db.Close()
}

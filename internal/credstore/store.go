// Package credstore persists the bearer token for the barhop backend.
//
// The store is the single durable source of truth for the credential: the
// session manager writes through it on every authentication change, and the
// API client re-reads it at request time. Absence of the file is the normal
// signed-out state.
package credstore

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/barhopapp/barhop/internal/errors"
)

// credentials is the on-disk representation.
type credentials struct {
	Token   string    `json:"token"`
	Email   string    `json:"email,omitempty"`
	SavedAt time.Time `json:"saved_at"`
}

// Store reads and writes the bearer token at a fixed file path.
type Store struct {
	path string
}

// New creates a Store backed by the given file path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Get returns the stored token, or an empty string when no credential is
// stored. Read failures other than absence degrade to absent as well: a
// broken store must sign the user out, not crash the client. The error is
// returned alongside so callers can log it.
func (s *Store) Get(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", errors.NewStoreReadError(err)
	}

	var creds credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return "", errors.NewStoreReadError(err)
	}

	return creds.Token, nil
}

// GetEmail returns the email recorded with the stored token, if any.
func (s *Store) GetEmail(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", errors.NewStoreReadError(err)
	}

	var creds credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return "", errors.NewStoreReadError(err)
	}

	return creds.Email, nil
}

// Set durably persists the token. Failures propagate to the caller so a
// login is never reported successful without the credential on disk.
func (s *Store) Set(ctx context.Context, token, email string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errors.NewStoreWriteError(err)
	}

	data, err := json.MarshalIndent(credentials{
		Token:   token,
		Email:   email,
		SavedAt: time.Now().UTC(),
	}, "", "  ")
	if err != nil {
		return errors.NewStoreWriteError(err)
	}

	// Write to a sibling temp file and rename so a crash mid-write never
	// leaves a truncated credential behind.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return errors.NewStoreWriteError(err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return errors.NewStoreWriteError(err)
	}

	return nil
}

// Clear removes the stored credential. Clearing an already-empty store is a
// no-op; any other failure propagates.
func (s *Store) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.NewStoreWriteError(err)
	}

	return nil
}

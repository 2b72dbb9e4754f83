// Package session owns the single piece of shared mutable client state:
// the current identity. All access goes through the Store's serialized
// interface.
package session

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/cashstate/cashstate-go/pkg/crypto"
	"github.com/cashstate/cashstate-go/pkg/domain"
)

// Store holds the active identity in memory and mirrors it to a file so
// it survives process restarts.
type Store struct {
	mu sync.Mutex

	path string
	// when both set the file contents are encrypted at rest
	key string
	sig string

	identity *domain.Identity
	loaded   bool
}

type Option func(*Store)

// WithEncryption encrypts the persisted session with the given keys.
func WithEncryption(key, sig string) Option {
	return func(s *Store) {
		s.key = key
		s.sig = sig
	}
}

// NewFileStore creates a Store persisting to path.
func NewFileStore(path string, opts ...Option) *Store {
	s := &Store{path: path}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Load restores a previously saved identity from disk. Returns whether
// one was found. A missing file is not an error.
func (s *Store) Load() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked()
}

func (s *Store) loadLocked() (bool, error) {
	s.loaded = true

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if s.encrypted() {
		data, err = crypto.Decrypt(string(data), s.key, s.sig)
		if err != nil {
			return false, err
		}
	}

	id := &domain.Identity{}
	if err := json.Unmarshal(data, id); err != nil {
		return false, err
	}
	if id.UserID == "" {
		return false, nil
	}

	s.identity = id
	return true, nil
}

// Current returns the in-memory identity, hydrating from disk on first
// access. Nil when logged out.
func (s *Store) Current() *domain.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		s.loadLocked() // best effort; an unreadable file means logged out
	}
	if s.identity == nil {
		return nil
	}
	cp := *s.identity
	return &cp
}

// Set stores the identity in memory and persists it.
func (s *Store) Set(id *domain.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *id
	s.identity = &cp
	s.loaded = true

	data, err := json.Marshal(&cp)
	if err != nil {
		return err
	}
	if s.encrypted() {
		blob, err := crypto.Encrypt(data, s.key, s.sig)
		if err != nil {
			return err
		}
		data = []byte(blob)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0600)
}

// Clear removes the identity from memory and disk (logout).
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.identity = nil
	s.loaded = true

	err := os.Remove(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func (s *Store) encrypted() bool {
	return s.key != "" && s.sig != ""
}

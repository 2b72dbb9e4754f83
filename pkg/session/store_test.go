package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cashstate/cashstate-go/pkg/crypto"
	"github.com/cashstate/cashstate-go/pkg/domain"
)

func TestSetLoadClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	s := NewFileStore(path)

	found, err := s.Load()
	require.NoError(t, err)
	assert.False(t, found)

	id := domain.NewIdentity("u1", "tok", "refresh", 3600)
	require.NoError(t, s.Set(id))

	// a fresh store hydrates from the same file
	s2 := NewFileStore(path)
	found, err = s2.Load()
	require.NoError(t, err)
	assert.True(t, found)

	got := s2.Current()
	require.NotNil(t, got)
	assert.Equal(t, "u1", got.UserID)
	assert.Equal(t, "tok", got.AccessToken)

	require.NoError(t, s2.Clear())
	assert.Nil(t, s2.Current())
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// clearing twice is fine
	require.NoError(t, s2.Clear())
}

func TestCurrentHydratesLazily(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, NewFileStore(path).Set(domain.NewIdentity("u1", "tok", "", 3600)))

	// no explicit Load
	s := NewFileStore(path)
	got := s.Current()
	require.NotNil(t, got)
	assert.Equal(t, "u1", got.UserID)
}

func TestEncryptedAtRest(t *testing.T) {
	key, err := crypto.NewRandomKey()
	require.NoError(t, err)
	sig, err := crypto.NewRandomKey()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "session.json")
	s := NewFileStore(path, WithEncryption(key, sig))
	require.NoError(t, s.Set(domain.NewIdentity("u1", "super-secret-token", "", 3600)))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "super-secret-token")

	s2 := NewFileStore(path, WithEncryption(key, sig))
	found, err := s2.Load()
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "super-secret-token", s2.Current().AccessToken)

	// the wrong key fails closed
	otherKey, _ := crypto.NewRandomKey()
	s3 := NewFileStore(path, WithEncryption(otherKey, sig))
	_, err = s3.Load()
	assert.Error(t, err)
	assert.Nil(t, s3.Current())
}

func TestCurrentReturnsACopy(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, s.Set(domain.NewIdentity("u1", "tok", "", 3600)))

	got := s.Current()
	got.UserID = "tampered"

	assert.Equal(t, "u1", s.Current().UserID)
}

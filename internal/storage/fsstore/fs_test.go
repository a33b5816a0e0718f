package fsstore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/dmitrijs2005/moodyssey/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ storage.Backend = (*Store)(nil)

func newStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "data"))
	require.NoError(t, err)
	return s
}

func TestStore_ReadMissing(t *testing.T) {
	s := newStore(t)
	_, err := s.Read(context.Background(), "users.json")
	assert.True(t, errors.Is(err, storage.ErrNotFound))
}

func TestStore_WriteThenRead(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.Write(ctx, "mood_entries_alice.json", []byte(`[]`)))
	got, err := s.Read(ctx, "mood_entries_alice.json")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))

	require.NoError(t, s.Write(ctx, "mood_entries_alice.json", []byte(`[1]`)))
	got, err = s.Read(ctx, "mood_entries_alice.json")
	require.NoError(t, err)
	assert.Equal(t, `[1]`, string(got))

	onDisk, err := os.ReadFile(filepath.Join(s.Root(), "mood_entries_alice.json"))
	require.NoError(t, err)
	assert.Equal(t, `[1]`, string(onDisk))
}

func TestStore_RejectsNonLocalKeys(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	for _, key := range []string{"", "../users.json", "/etc/passwd", "sub/users.json"} {
		t.Run(key, func(t *testing.T) {
			require.Error(t, s.Write(ctx, key, []byte(`{}`)))
			_, err := s.Read(ctx, key)
			require.Error(t, err)
			assert.False(t, errors.Is(err, storage.ErrNotFound))
		})
	}
}

func TestStore_ReadUnreadable(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced")
	}
	s := newStore(t)
	p := filepath.Join(s.Root(), "users.json")
	require.NoError(t, os.WriteFile(p, []byte(`{}`), 0o000))

	_, err := s.Read(context.Background(), "users.json")
	require.Error(t, err)
	assert.False(t, errors.Is(err, storage.ErrNotFound))
}

func TestStore_CanceledContext(t *testing.T) {
	s := newStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, s.Write(ctx, "users.json", []byte(`{}`)), context.Canceled)
	_, err := s.Read(ctx, "users.json")
	assert.ErrorIs(t, err, context.Canceled)
}

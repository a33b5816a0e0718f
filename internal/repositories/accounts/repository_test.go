package accounts

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/moodyssey/internal/common"
	"github.com/dmitrijs2005/moodyssey/internal/logging"
	"github.com/dmitrijs2005/moodyssey/internal/models"
	"github.com/dmitrijs2005/moodyssey/internal/storage"
	"github.com/dmitrijs2005/moodyssey/internal/storage/memstore"
)

var _ Repository = (*JSONRepository)(nil)

func newRepo() (*JSONRepository, *memstore.Store) {
	backend := memstore.New()
	return NewJSONRepository(backend, storage.DefaultLayout(), logging.Nop()), backend
}

func TestLoad_MissingAndEmpty(t *testing.T) {
	repo, backend := newRepo()

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got)

	for _, content := range []string{"", " ", "null", "{}"} {
		backend.Put("users.json", []byte(content))
		got, err := repo.Load(context.Background())
		require.NoError(t, err, content)
		require.NotNil(t, got)
		assert.Empty(t, got)
	}
}

func TestSaveThenLoad(t *testing.T) {
	repo, backend := newRepo()
	ctx := context.Background()

	table := map[string]models.Account{
		"alice": {HashedPassword: "$2a$10$abc"},
		"Alice": {HashedPassword: "$2a$10$def"},
	}
	require.NoError(t, repo.Save(ctx, table))

	raw, ok := backend.Get("users.json")
	require.True(t, ok)
	assert.JSONEq(t, `{"Alice":{"hashed_password":"$2a$10$def"},"alice":{"hashed_password":"$2a$10$abc"}}`, string(raw))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, table, got)
}

func TestLoad_Corrupt(t *testing.T) {
	repo, backend := newRepo()
	backend.Put("users.json", []byte(`["not", "an", "object"]`))

	got, err := repo.Load(context.Background())
	assert.True(t, errors.Is(err, common.ErrCorruptData))
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestLoad_Unavailable(t *testing.T) {
	repo, backend := newRepo()
	backend.ReadErr = errors.New("permission denied")

	got, err := repo.Load(context.Background())
	assert.True(t, errors.Is(err, common.ErrStorageUnavailable))
	assert.NotNil(t, got)
}

func TestSave_Failure(t *testing.T) {
	repo, backend := newRepo()
	backend.WriteErr = errors.New("read-only")

	err := repo.Save(context.Background(), nil)
	assert.True(t, errors.Is(err, common.ErrPersistence))
}

package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/moodyssey/internal/common"
	"github.com/dmitrijs2005/moodyssey/internal/logging"
	"github.com/dmitrijs2005/moodyssey/internal/repositories/accounts"
	"github.com/dmitrijs2005/moodyssey/internal/storage"
	"github.com/dmitrijs2005/moodyssey/internal/storage/memstore"
)

func newAuth(t *testing.T) (*AuthService, *accounts.JSONRepository, *memstore.Store) {
	t.Helper()
	backend := memstore.New()
	repo := accounts.NewJSONRepository(backend, storage.DefaultLayout(), logging.Nop())
	return NewAuthService(repo, bcrypt.MinCost, logging.Nop()), repo, backend
}

func TestRegister_Success(t *testing.T) {
	svc, repo, backend := newAuth(t)
	ctx := context.Background()

	res := svc.Register(ctx, "alice", []byte("pw"))
	require.True(t, res.Success, res.Message)
	assert.NoError(t, res.Err)
	assert.Equal(t, MsgAccountCreated, res.Message)

	table, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Contains(t, table, "alice")
	assert.NotEqual(t, "pw", table["alice"].HashedPassword)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(table["alice"].HashedPassword), []byte("pw")))

	raw, _ := backend.Get("users.json")
	assert.NotContains(t, string(raw), `"pw"`, "plaintext never stored")
}

func TestRegister_DuplicateKeepsStoredHash(t *testing.T) {
	svc, repo, _ := newAuth(t)
	ctx := context.Background()

	require.True(t, svc.Register(ctx, "alice", []byte("pw")).Success)
	before, err := repo.Load(ctx)
	require.NoError(t, err)

	res := svc.Register(ctx, "alice", []byte("other"))
	assert.False(t, res.Success)
	assert.True(t, errors.Is(res.Err, common.ErrDuplicateUsername))
	assert.Equal(t, MsgUsernameTaken, res.Message)

	after, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, before["alice"].HashedPassword, after["alice"].HashedPassword)
}

func TestRegister_CaseSensitiveUsernames(t *testing.T) {
	svc, repo, _ := newAuth(t)
	ctx := context.Background()

	require.True(t, svc.Register(ctx, "alice", []byte("pw")).Success)
	require.True(t, svc.Register(ctx, "Alice", []byte("pw")).Success)

	table, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, table, 2)
}

func TestRegister_Validation(t *testing.T) {
	svc, _, backend := newAuth(t)
	ctx := context.Background()

	res := svc.Register(ctx, "", []byte("pw"))
	assert.True(t, errors.Is(res.Err, common.ErrInvalidUsername))

	res = svc.Register(ctx, "alice", nil)
	assert.True(t, errors.Is(res.Err, common.ErrInvalidPassword))

	res = svc.Register(ctx, "alice", []byte(strings.Repeat("x", 73)))
	assert.True(t, errors.Is(res.Err, common.ErrInvalidPassword))
	assert.Equal(t, MsgPasswordTooLong, res.Message)

	_, ok := backend.Get("users.json")
	assert.False(t, ok, "nothing persisted")
}

func TestRegister_SaveFailure(t *testing.T) {
	svc, _, backend := newAuth(t)
	backend.WriteErr = errors.New("disk full")

	res := svc.Register(context.Background(), "alice", []byte("pw"))
	assert.False(t, res.Success)
	assert.True(t, errors.Is(res.Err, common.ErrPersistence))
	assert.Equal(t, MsgAccountSaveFailed, res.Message)
}

func TestRegister_CorruptTableStartsFresh(t *testing.T) {
	svc, repo, backend := newAuth(t)
	backend.Put("users.json", []byte("{broken"))

	res := svc.Register(context.Background(), "alice", []byte("pw"))
	require.True(t, res.Success)

	table, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, table, 1)
}

func TestRegister_UnreadableTableIsNotOverwritten(t *testing.T) {
	svc, _, backend := newAuth(t)
	backend.Put("users.json", []byte(`{"bob":{"hashed_password":"x"}}`))
	backend.ReadErr = errors.New("permission denied")

	res := svc.Register(context.Background(), "alice", []byte("pw"))
	assert.False(t, res.Success)
	assert.True(t, errors.Is(res.Err, common.ErrStorageUnavailable))

	raw, _ := backend.Get("users.json")
	assert.Contains(t, string(raw), "bob")
}

func TestAuthenticate(t *testing.T) {
	svc, _, _ := newAuth(t)
	ctx := context.Background()
	require.True(t, svc.Register(ctx, "bob", []byte("secret")).Success)

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
		wantMsg  string
	}{
		{"correct", "bob", "secret", nil, MsgLoggedIn},
		{"wrong password", "bob", "guess", common.ErrInvalidCredential, MsgIncorrectPassword},
		{"unknown user", "carol", "secret", common.ErrUnknownUsername, MsgUsernameNotFound},
		{"case sensitive", "Bob", "secret", common.ErrUnknownUsername, MsgUsernameNotFound},
		{"empty password", "bob", "", common.ErrInvalidCredential, MsgIncorrectPassword},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := svc.Authenticate(ctx, tt.username, []byte(tt.password))
			assert.Equal(t, tt.wantErr == nil, res.Success)
			assert.Equal(t, tt.wantMsg, res.Message)
			if tt.wantErr == nil {
				assert.NoError(t, res.Err)
			} else {
				assert.True(t, errors.Is(res.Err, tt.wantErr), res.Err)
			}
		})
	}
}

func TestAuthenticate_MalformedStoredHash(t *testing.T) {
	svc, _, backend := newAuth(t)
	backend.Put("users.json", []byte(`{"dave":{"hashed_password":"plain"}}`))

	res := svc.Authenticate(context.Background(), "dave", []byte("plain"))
	assert.False(t, res.Success)
	assert.True(t, errors.Is(res.Err, common.ErrInvalidCredential))
}

func TestAuthenticate_StorageUnavailable(t *testing.T) {
	svc, _, backend := newAuth(t)
	backend.ReadErr = errors.New("timeout")

	res := svc.Authenticate(context.Background(), "bob", []byte("secret"))
	assert.False(t, res.Success)
	assert.True(t, errors.Is(res.Err, common.ErrStorageUnavailable))
}

func TestNewAuthService_CostOutOfRange(t *testing.T) {
	repo := accounts.NewJSONRepository(memstore.New(), storage.DefaultLayout(), logging.Nop())
	assert.Equal(t, bcrypt.DefaultCost, NewAuthService(repo, 0, logging.Nop()).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewAuthService(repo, 99, logging.Nop()).cost)
	assert.Equal(t, bcrypt.MinCost, NewAuthService(repo, bcrypt.MinCost, logging.Nop()).cost)
}

package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/moodyssey/internal/logging"
	"github.com/dmitrijs2005/moodyssey/internal/repositories/accounts"
	"github.com/dmitrijs2005/moodyssey/internal/repositories/records"
	"github.com/dmitrijs2005/moodyssey/internal/storage"
	"github.com/dmitrijs2005/moodyssey/internal/storage/fsstore"
)

func TestNonASCIIUsernames_OnFilesystem(t *testing.T) {
	backend, err := fsstore.New(t.TempDir())
	require.NoError(t, err)
	layout := storage.DefaultLayout()

	auth := NewAuthService(accounts.NewJSONRepository(backend, layout, logging.Nop()), bcrypt.MinCost, logging.Nop())
	journal := NewJournalService(records.NewJSONRepository(backend, layout, logging.Nop()), logging.Nop(),
		WithClock(func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }))

	tests := []struct {
		name     string
		username string
	}{
		{"thirty CJK characters", strings.Repeat("日", 30)},
		{"hundred CJK characters", strings.Repeat("日", 100)},
		{"accented", "Zoë"},
	}
	for _, tt := range tests {
		username := tt.username
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()

			res := auth.Register(ctx, username, []byte("pw"))
			require.True(t, res.Success, res.Message)
			res = auth.Authenticate(ctx, username, []byte("pw"))
			require.True(t, res.Success, res.Message)

			_, err := journal.Append(ctx, username, "Happy", "first")
			require.NoError(t, err)

			got, err := journal.List(ctx, username)
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, "first", got[0].NoteText())
		})
	}
}

package client

import (
	"context"

	"github.com/dmitrijs2005/moodyssey/internal/models"
	"github.com/dmitrijs2005/moodyssey/internal/summary"
)

type Client interface {
	Close() error
	Ping(ctx context.Context) error
	Register(ctx context.Context, username string, password []byte) (string, error)
	Login(ctx context.Context, username string, password []byte) (string, error)
	Logout(ctx context.Context) error
	AddMood(ctx context.Context, mood, note string) (models.MoodRecord, error)
	ListMoods(ctx context.Context, newestFirst bool) ([]models.MoodRecord, string, error)
	Summarize(ctx context.Context, bucket summary.Bucket, window summary.Window) (summary.Table, string, error)
	Compare(ctx context.Context, recentDays, previousDays int) (summary.Comparison, string, error)
	Frequency(ctx context.Context) ([]summary.MoodCount, string, error)
}

package services

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/moodyssey/internal/common"
	"github.com/dmitrijs2005/moodyssey/internal/logging"
	"github.com/dmitrijs2005/moodyssey/internal/models"
	"github.com/dmitrijs2005/moodyssey/internal/repositories/records"
	"github.com/dmitrijs2005/moodyssey/internal/summary"
)

// JournalService appends, lists and aggregates a user's mood records.
//
// Read operations return usable data next to a non-nil error when the stored
// records could not be loaded; the error is a warning and the data is empty.
type JournalService struct {
	records records.Repository
	logger  logging.Logger
	now     func() time.Time
}

type JournalOption func(*JournalService)

// WithClock replaces time.Now as the source of record timestamps and of
// "today" in trailing comparisons.
func WithClock(now func() time.Time) JournalOption {
	return func(s *JournalService) { s.now = now }
}

func NewJournalService(repo records.Repository, logger logging.Logger, opts ...JournalOption) *JournalService {
	s := &JournalService{
		records: repo,
		logger:  logger.With("module", "journal_service"),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Append stamps a new record with the current time and adds it to the end of
// the user's records. Mood must be non-empty; it is not checked against
// models.Moods.
func (s *JournalService) Append(ctx context.Context, userID, mood, note string) (models.MoodRecord, error) {
	rec, err := models.NewMoodRecord(mood, note, s.now())
	if err != nil {
		return models.MoodRecord{}, err
	}

	existing, err := s.records.Load(ctx, userID)
	if err != nil {
		// Corrupt records are replaced; records that could not be read at
		// all must not be overwritten.
		if !errors.Is(err, common.ErrCorruptData) {
			return models.MoodRecord{}, err
		}
		s.logger.Warn(ctx, "discarding corrupt records", "user", userID, "error", err.Error())
	}

	if err := s.records.Save(ctx, userID, append(existing, rec)); err != nil {
		return models.MoodRecord{}, err
	}
	return rec, nil
}

// List returns the user's records in insertion order.
func (s *JournalService) List(ctx context.Context, userID string) ([]models.MoodRecord, error) {
	return s.records.Load(ctx, userID)
}

func (s *JournalService) Summarize(ctx context.Context, userID string, bucket summary.Bucket, window summary.Window) (summary.Table, error) {
	if _, err := summary.ParseBucket(string(bucket)); err != nil {
		return summary.Table{}, err
	}
	recs, warn := s.records.Load(ctx, userID)
	table, err := summary.Summarize(recs, bucket, window)
	if err != nil {
		return summary.Table{}, err
	}
	return table, warn
}

// Compare sets the last recentDays days against the previousDays days before
// them.
func (s *JournalService) Compare(ctx context.Context, userID string, recentDays, previousDays int) (summary.Comparison, error) {
	recent, previous, err := summary.TrailingWindows(s.now(), recentDays, previousDays)
	if err != nil {
		return summary.Comparison{}, err
	}
	recs, warn := s.records.Load(ctx, userID)
	return summary.Compare(recs, recent, previous), warn
}

func (s *JournalService) Frequency(ctx context.Context, userID string) ([]summary.MoodCount, error) {
	recs, warn := s.records.Load(ctx, userID)
	return summary.MoodFrequency(recs), warn
}

// History returns the user's records newest first.
func (s *JournalService) History(ctx context.Context, userID string) ([]models.MoodRecord, error) {
	recs, warn := s.records.Load(ctx, userID)
	return summary.History(recs), warn
}

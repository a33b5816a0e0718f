// Package records is the Record Store: each user's mood records as one JSON
// array document.
package records

import (
	"context"

	"github.com/dmitrijs2005/moodyssey/internal/logging"
	"github.com/dmitrijs2005/moodyssey/internal/models"
	"github.com/dmitrijs2005/moodyssey/internal/repositories/documents"
	"github.com/dmitrijs2005/moodyssey/internal/storage"
)

// Repository loads and saves a user's full record sequence.
type Repository interface {
	// Load never returns nil records. A non-nil error next to an empty
	// slice is a warning: the stored data could not be used.
	Load(ctx context.Context, userID string) ([]models.MoodRecord, error)
	Save(ctx context.Context, userID string, records []models.MoodRecord) error
}

type JSONRepository struct {
	docs   *documents.Documents
	layout storage.Layout
}

func NewJSONRepository(backend storage.Backend, layout storage.Layout, logger logging.Logger) *JSONRepository {
	return &JSONRepository{
		docs:   documents.New(backend, logger.With("module", "records")),
		layout: layout,
	}
}

func (r *JSONRepository) Load(ctx context.Context, userID string) ([]models.MoodRecord, error) {
	key, err := r.layout.Records(userID)
	if err != nil {
		return []models.MoodRecord{}, err
	}

	var records []models.MoodRecord
	if err := r.docs.Load(ctx, key, &records); err != nil {
		return []models.MoodRecord{}, err
	}
	if records == nil {
		records = []models.MoodRecord{}
	}
	return records, nil
}

func (r *JSONRepository) Save(ctx context.Context, userID string, records []models.MoodRecord) error {
	key, err := r.layout.Records(userID)
	if err != nil {
		return err
	}
	if records == nil {
		records = []models.MoodRecord{}
	}
	return r.docs.Save(ctx, key, records)
}

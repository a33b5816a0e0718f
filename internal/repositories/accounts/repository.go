// Package accounts is the Account Store: the whole username to credential
// table as one JSON object document.
package accounts

import (
	"context"

	"github.com/dmitrijs2005/moodyssey/internal/logging"
	"github.com/dmitrijs2005/moodyssey/internal/models"
	"github.com/dmitrijs2005/moodyssey/internal/repositories/documents"
	"github.com/dmitrijs2005/moodyssey/internal/storage"
)

// Repository loads and saves the account table. Registration is a
// read-modify-write of the whole table; concurrent writers lose updates.
type Repository interface {
	// Load never returns a nil map; see records.Repository for the
	// warning semantics of the error.
	Load(ctx context.Context) (map[string]models.Account, error)
	Save(ctx context.Context, accounts map[string]models.Account) error
}

type JSONRepository struct {
	docs   *documents.Documents
	layout storage.Layout
}

func NewJSONRepository(backend storage.Backend, layout storage.Layout, logger logging.Logger) *JSONRepository {
	return &JSONRepository{
		docs:   documents.New(backend, logger.With("module", "accounts")),
		layout: layout,
	}
}

func (r *JSONRepository) Load(ctx context.Context) (map[string]models.Account, error) {
	var accounts map[string]models.Account
	if err := r.docs.Load(ctx, r.layout.Accounts(), &accounts); err != nil {
		return map[string]models.Account{}, err
	}
	if accounts == nil {
		accounts = map[string]models.Account{}
	}
	return accounts, nil
}

func (r *JSONRepository) Save(ctx context.Context, accounts map[string]models.Account) error {
	if accounts == nil {
		accounts = map[string]models.Account{}
	}
	return r.docs.Save(ctx, r.layout.Accounts(), accounts)
}

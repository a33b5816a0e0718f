package server

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/moodyssey/internal/server/config"
	"github.com/dmitrijs2005/moodyssey/internal/storage"
	"github.com/dmitrijs2005/moodyssey/internal/storage/fsstore"
	"github.com/dmitrijs2005/moodyssey/internal/storage/memstore"
	"github.com/dmitrijs2005/moodyssey/internal/storage/pgstore"
	"github.com/dmitrijs2005/moodyssey/internal/storage/s3store"
)

// openBackend returns the storage backend selected by cfg.StorageBackend
// and a function releasing its resources.
func openBackend(ctx context.Context, cfg *config.Config) (storage.Backend, func() error, error) {
	noop := func() error { return nil }

	switch cfg.StorageBackend {
	case config.BackendFile, "":
		s, err := fsstore.New(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return s, noop, nil

	case config.BackendMemory:
		return memstore.New(), noop, nil

	case config.BackendS3:
		s, err := s3store.New(ctx, s3store.Config{
			Bucket:       cfg.S3Bucket,
			Prefix:       cfg.S3Prefix,
			Region:       cfg.S3Region,
			BaseEndpoint: cfg.S3BaseEndpoint,
			AccessKey:    cfg.S3AccessKey,
			SecretKey:    cfg.S3SecretKey,
		})
		if err != nil {
			return nil, nil, err
		}
		return s, noop, nil

	case config.BackendPostgres:
		db, err := pgstore.Open(ctx, cfg.DatabaseDSN)
		if err != nil {
			return nil, nil, err
		}
		if err := pgstore.Migrate(ctx, db); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return pgstore.New(db), db.Close, nil
	}

	return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
}

// Package documents implements the load/save semantics shared by the account
// and record stores: whole JSON documents, read failures reported as
// warnings next to empty data, write failures as persistence errors.
package documents

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/moodyssey/internal/common"
	"github.com/dmitrijs2005/moodyssey/internal/logging"
	"github.com/dmitrijs2005/moodyssey/internal/storage"
)

// Documents decodes and encodes JSON documents held by a storage.Backend.
type Documents struct {
	backend storage.Backend
	logger  logging.Logger
}

func New(backend storage.Backend, logger logging.Logger) *Documents {
	return &Documents{backend: backend, logger: logger}
}

// Load decodes the document under key into v.
//
// A missing or blank document leaves v untouched and returns nil. Any other
// failure is logged as a warning and returned wrapping
// common.ErrStorageUnavailable (read failed) or common.ErrCorruptData
// (undecodable content); v must then be treated as empty.
func (d *Documents) Load(ctx context.Context, key string, v any) error {
	data, err := d.backend.Read(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		d.logger.Warn(ctx, "document unreadable, treating as empty", "key", key, "error", err.Error())
		return fmt.Errorf("%w: %s: %v", common.ErrStorageUnavailable, key, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, v); err != nil {
		d.logger.Warn(ctx, "corrupted data file, starting fresh", "key", key, "error", err.Error())
		return fmt.Errorf("%w: %s: %v", common.ErrCorruptData, key, err)
	}
	return nil
}

// Save encodes v with four-space indentation and replaces the document under
// key. Failures are logged and returned wrapping common.ErrPersistence.
func (d *Documents) Save(ctx context.Context, key string, v any) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		d.logger.Error(ctx, "encoding document failed", "key", key, "error", err.Error())
		return fmt.Errorf("%w: encode %s: %v", common.ErrPersistence, key, err)
	}

	if err := d.backend.Write(ctx, key, data); err != nil {
		d.logger.Error(ctx, "saving document failed", "key", key, "error", err.Error())
		return fmt.Errorf("%w: %s: %v", common.ErrPersistence, key, err)
	}
	return nil
}

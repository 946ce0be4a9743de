// internal/store/store.go
package store

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/hautevault/boutique-backend/internal/models"
)

// ErrNotFound is returned when an item id does not exist.
var ErrNotFound = errors.New("not found")

// Store persists items, the settings singleton and the job log. Two
// implementations exist: DB (Postgres) and Memory (process-local, lost
// on restart). Callers cannot tell them apart except through
// Persistent().
type Store interface {
	ListItems(ctx context.Context, publishedOnly bool) ([]models.Item, error)
	GetItem(ctx context.Context, id uuid.UUID) (*models.Item, error)
	// UpsertItems inserts new items and refreshes already-known ones,
	// deduplicating on the external marketplace id. Returns the number
	// of affected rows.
	UpsertItems(ctx context.Context, items []models.Item) (int, error)
	UpdateItem(ctx context.Context, id uuid.UUID, patch models.ItemPatch) error

	GetSettings(ctx context.Context) (models.Settings, error)
	SaveSettings(ctx context.Context, settings models.Settings) error

	AppendLog(ctx context.Context, level, message string) error
	Logs(ctx context.Context, limit int) ([]models.LogEntry, error)

	Persistent() bool
}

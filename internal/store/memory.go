// internal/store/memory.go
package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hautevault/boutique-backend/internal/models"
)

// memoryLogCap bounds log retention in the fallback store.
const memoryLogCap = 200

// Memory is the fallback store for local development. State is scoped
// to the process lifetime and not shared between instances.
type Memory struct {
	mu       sync.Mutex
	items    []models.Item
	settings models.Settings
	logs     []models.LogEntry
}

func NewMemory() *Memory {
	return &Memory{settings: models.DefaultSettings()}
}

func (m *Memory) ListItems(_ context.Context, publishedOnly bool) ([]models.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]models.Item, 0, len(m.items))
	for _, item := range m.items {
		if publishedOnly && item.PublishStatus != models.PublishStatePublished {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func (m *Memory) GetItem(_ context.Context, id uuid.UUID) (*models.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.items {
		if m.items[i].ID == id {
			item := m.items[i]
			return &item, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) UpsertItems(_ context.Context, items []models.Item) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	known := make(map[string]struct{}, len(m.items))
	for _, item := range m.items {
		known[item.EbayItemID] = struct{}{}
	}

	var unique []models.Item
	for _, item := range items {
		if _, seen := known[item.EbayItemID]; seen {
			continue
		}
		known[item.EbayItemID] = struct{}{}
		unique = append(unique, item)
	}

	// Newest first, matching the persistent store's last_seen ordering.
	m.items = append(unique, m.items...)
	return len(unique), nil
}

func (m *Memory) UpdateItem(_ context.Context, id uuid.UUID, patch models.ItemPatch) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.items {
		if m.items[i].ID == id {
			patch.Apply(&m.items[i])
			return nil
		}
	}
	return ErrNotFound
}

func (m *Memory) GetSettings(_ context.Context) (models.Settings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.settings, nil
}

func (m *Memory) SaveSettings(_ context.Context, settings models.Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings = settings
	return nil
}

func (m *Memory) AppendLog(_ context.Context, level, message string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry := models.LogEntry{TS: time.Now().UTC(), Level: level, Message: message}
	m.logs = append([]models.LogEntry{entry}, m.logs...)
	if len(m.logs) > memoryLogCap {
		m.logs = m.logs[:memoryLogCap]
	}
	return nil
}

func (m *Memory) Logs(_ context.Context, limit int) ([]models.LogEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if limit > len(m.logs) {
		limit = len(m.logs)
	}
	out := make([]models.LogEntry, limit)
	copy(out, m.logs[:limit])
	return out, nil
}

func (m *Memory) Persistent() bool { return false }

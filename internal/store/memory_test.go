// internal/store/memory_test.go
package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hautevault/boutique-backend/internal/models"
	"github.com/hautevault/boutique-backend/internal/models/modelstesting"
)

func TestMemoryUpsertDeduplicates(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	first := modelstesting.FakeItem()
	second := modelstesting.FakeItem()

	count, err := m.UpsertItems(ctx, []models.Item{first, second})
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	// Re-ingesting the same external listing must not create a new row.
	duplicate := modelstesting.FakeItem(func(i *models.Item) {
		i.EbayItemID = first.EbayItemID
	})
	count, err = m.UpsertItems(ctx, []models.Item{duplicate})
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	items, err := m.ListItems(ctx, false)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestMemoryListItemsPublishedOnly(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	published := modelstesting.FakeItem(func(i *models.Item) {
		i.PublishStatus = models.PublishStatePublished
	})
	hidden := modelstesting.FakeItem()

	_, err := m.UpsertItems(ctx, []models.Item{published, hidden})
	require.NoError(t, err)

	visible, err := m.ListItems(ctx, true)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, published.ID, visible[0].ID)

	all, err := m.ListItems(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestMemoryUpdateItem(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	item := modelstesting.FakeItem()
	_, err := m.UpsertItems(ctx, []models.Item{item})
	require.NoError(t, err)

	title := "Patek Philippe Nautilus"
	published := models.PublishStatePublished
	err = m.UpdateItem(ctx, item.ID, models.ItemPatch{
		TitleBoutique: &title,
		PublishStatus: &published,
	})
	require.NoError(t, err)

	got, err := m.GetItem(ctx, item.ID)
	require.NoError(t, err)
	require.NotNil(t, got.TitleBoutique)
	assert.Equal(t, title, *got.TitleBoutique)
	assert.Equal(t, models.PublishStatePublished, got.PublishStatus)
	// Untouched fields survive the patch.
	assert.Equal(t, item.TitleRaw, got.TitleRaw)
}

func TestMemoryUpdateItemNotFound(t *testing.T) {
	m := NewMemory()

	err := m.UpdateItem(context.Background(), modelstesting.FakeItem().ID, models.ItemPatch{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryGetItemNotFound(t *testing.T) {
	m := NewMemory()

	_, err := m.GetItem(context.Background(), modelstesting.FakeItem().ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryLogCap(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	for i := 0; i < memoryLogCap+50; i++ {
		require.NoError(t, m.AppendLog(ctx, models.LogLevelInfo, fmt.Sprintf("line %d", i)))
	}

	logs, err := m.Logs(ctx, memoryLogCap+50)
	require.NoError(t, err)
	require.Len(t, logs, memoryLogCap)
	// Newest first.
	assert.Equal(t, fmt.Sprintf("line %d", memoryLogCap+49), logs[0].Message)
}

func TestMemoryDefaultSettings(t *testing.T) {
	m := NewMemory()

	settings, err := m.GetSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSettings(), settings)

	settings.SellerMinScore = 1000
	require.NoError(t, m.SaveSettings(context.Background(), settings))

	got, err := m.GetSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1000, got.SellerMinScore)
}

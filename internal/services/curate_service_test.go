// internal/services/curate_service_test.go
package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hautevault/boutique-backend/internal/ai"
	"github.com/hautevault/boutique-backend/internal/models"
	"github.com/hautevault/boutique-backend/internal/models/modelstesting"
	"github.com/hautevault/boutique-backend/internal/store"
)

type stubCopywriter struct {
	normalized   *ai.NormalizedData
	copyData     *ai.CopyData
	normalizeErr error
	copyErr      error
}

func (s *stubCopywriter) Normalize(context.Context, models.Category, string) (*ai.NormalizedData, error) {
	if s.normalizeErr != nil {
		return nil, s.normalizeErr
	}
	return s.normalized, nil
}

func (s *stubCopywriter) GenerateCopy(context.Context, models.Category, *ai.NormalizedData) (*ai.CopyData, error) {
	if s.copyErr != nil {
		return nil, s.copyErr
	}
	return s.copyData, nil
}

func seedItem(t *testing.T, st store.Store) models.Item {
	t.Helper()
	item := modelstesting.FakeItem()
	_, err := st.UpsertItems(context.Background(), []models.Item{item})
	require.NoError(t, err)
	return item
}

func TestCuratePublishesItem(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	item := seedItem(t, st)

	writer := &stubCopywriter{
		normalized: &ai.NormalizedData{Brand: "Cartier", Model: "Santos", Condition: "Excellent"},
		copyData:   &ai.CopyData{LongDescription: "A sculptural icon of 1904."},
	}

	got, err := NewCurateService(st, writer, nil).Curate(ctx, item.ID)
	require.NoError(t, err)

	assert.Equal(t, models.PublishStatePublished, got.PublishStatus)
	require.NotNil(t, got.TitleBoutique)
	assert.Equal(t, "Cartier Santos", *got.TitleBoutique)
	require.NotNil(t, got.Description)
	assert.Equal(t, "A sculptural icon of 1904.", *got.Description)
}

func TestCurateFailureLeavesItemUntouched(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	item := seedItem(t, st)

	writer := &stubCopywriter{normalizeErr: errors.New("upstream timeout")}

	_, err := NewCurateService(st, writer, nil).Curate(ctx, item.ID)
	require.Error(t, err)

	got, getErr := st.GetItem(ctx, item.ID)
	require.NoError(t, getErr)
	assert.Equal(t, models.PublishStateUnpublished, got.PublishStatus)
	assert.Nil(t, got.TitleBoutique)
	assert.Nil(t, got.Description)

	logs, logErr := st.Logs(ctx, 10)
	require.NoError(t, logErr)
	require.NotEmpty(t, logs)
	assert.Equal(t, models.LogLevelError, logs[0].Level)
	assert.Contains(t, logs[0].Message, "CURATE: failed")
}

func TestCuratePreservesSentinelErrors(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	item := seedItem(t, st)

	writer := &stubCopywriter{normalizeErr: ai.ErrNotConfigured}

	_, err := NewCurateService(st, writer, nil).Curate(ctx, item.ID)
	assert.ErrorIs(t, err, ai.ErrNotConfigured)
}

func TestCurateUnknownItem(t *testing.T) {
	st := store.NewMemory()
	writer := &stubCopywriter{}

	_, err := NewCurateService(st, writer, nil).Curate(context.Background(), modelstesting.FakeItem().ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestCurateOverwritesEarlierCopy(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	item := seedItem(t, st)
	svc := NewCurateService(st, &stubCopywriter{
		normalized: &ai.NormalizedData{Brand: "Rolex", Model: "Datejust"},
		copyData:   &ai.CopyData{LongDescription: "first pass"},
	}, nil)

	_, err := svc.Curate(ctx, item.ID)
	require.NoError(t, err)

	svc = NewCurateService(st, &stubCopywriter{
		normalized: &ai.NormalizedData{Brand: "Rolex", Model: "Datejust 41"},
		copyData:   &ai.CopyData{LongDescription: "second pass"},
	}, nil)

	got, err := svc.Curate(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rolex Datejust 41", *got.TitleBoutique)
	assert.Equal(t, "second pass", *got.Description)
}

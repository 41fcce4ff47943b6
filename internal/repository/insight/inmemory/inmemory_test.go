package inmemory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/long2333z/ai-time-menagement/internal/models"
	"github.com/long2333z/ai-time-menagement/internal/repository"
	"github.com/long2333z/ai-time-menagement/internal/repository/insight/inmemory"
)

func makeInsight(id string, createdAt time.Time, isRead bool) *models.Insight {
	return &models.Insight{
		ID:        id,
		Type:      models.InsightTimeManagement,
		Title:     "暗时间挖掘：" + id,
		Priority:  models.PriorityMedium,
		IsRead:    isRead,
		CreatedAt: createdAt,
	}
}

// TestStorage_GetAll_Filter тестирует фильтры по прочтению и избранному
func TestStorage_GetAll_Filter(t *testing.T) {
	storage := inmemory.NewStorage()
	ctx := context.Background()

	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	require.NoError(t, storage.Create(ctx, makeInsight("insight-1", base, true)))
	require.NoError(t, storage.Create(ctx, makeInsight("insight-2", base.Add(time.Minute), false)))
	require.NoError(t, storage.Create(ctx, makeInsight("insight-3", base.Add(2*time.Minute), false)))

	unread := false
	got, err := storage.GetAll(ctx, repository.InsightFilter{IsRead: &unread})
	require.NoError(t, err)
	require.Len(t, got, 2)

	// новые первыми
	assert.Equal(t, "insight-3", got[0].ID)
	assert.Equal(t, "insight-2", got[1].ID)
}

// TestStorage_GetAll_SkipLimit тестирует постраничную выдачу
func TestStorage_GetAll_SkipLimit(t *testing.T) {
	storage := inmemory.NewStorage()
	ctx := context.Background()

	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	for i, id := range []string{"insight-1", "insight-2", "insight-3"} {
		require.NoError(t, storage.Create(ctx, makeInsight(id, base.Add(time.Duration(i)*time.Minute), false)))
	}

	got, err := storage.GetAll(ctx, repository.InsightFilter{Skip: 1, Limit: 1})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "insight-2", got[0].ID)

	empty, err := storage.GetAll(ctx, repository.InsightFilter{Skip: 10})
	require.NoError(t, err)
	assert.Empty(t, empty)
}

// TestStorage_Update тестирует смену флагов
func TestStorage_Update(t *testing.T) {
	storage := inmemory.NewStorage()
	ctx := context.Background()

	insight := makeInsight("insight-1", time.Now(), false)
	require.NoError(t, storage.Create(ctx, insight))

	insight.IsRead = true
	insight.IsFavorite = true
	require.NoError(t, storage.Update(ctx, insight))

	got, err := storage.GetByID(ctx, "insight-1")
	require.NoError(t, err)
	assert.True(t, got.IsRead)
	assert.True(t, got.IsFavorite)
}

// TestStorage_Update_NotFound тестирует обновление несуществующего инсайта
func TestStorage_Update_NotFound(t *testing.T) {
	storage := inmemory.NewStorage()

	err := storage.Update(context.Background(), makeInsight("missing", time.Now(), false))
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

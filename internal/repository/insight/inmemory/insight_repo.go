package inmemory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/long2333z/ai-time-menagement/internal/models"
	"github.com/long2333z/ai-time-menagement/internal/repository"
)

type Storage struct {
	mtx      sync.RWMutex
	insights map[string]*models.Insight
}

func NewStorage() *Storage {
	return &Storage{
		insights: make(map[string]*models.Insight),
	}
}

func (s *Storage) Create(ctx context.Context, insight *models.Insight) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if insight.CreatedAt.IsZero() {
		insight.CreatedAt = time.Now()
	}

	clone := *insight
	s.insights[insight.ID] = &clone
	return nil
}

func (s *Storage) GetByID(ctx context.Context, id string) (*models.Insight, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	insight, ok := s.insights[id]
	if !ok {
		return nil, repository.ErrNotFound
	}

	clone := *insight
	return &clone, nil
}

func (s *Storage) GetAll(ctx context.Context, filter repository.InsightFilter) ([]*models.Insight, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	all := make([]*models.Insight, 0, len(s.insights))
	for _, insight := range s.insights {
		if filter.IsRead != nil && insight.IsRead != *filter.IsRead {
			continue
		}
		if filter.IsFavorite != nil && insight.IsFavorite != *filter.IsFavorite {
			continue
		}
		clone := *insight
		all = append(all, &clone)
	}

	// новые рекомендации первыми
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].ID < all[j].ID
		}
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	if filter.Skip >= len(all) {
		return []*models.Insight{}, nil
	}
	all = all[filter.Skip:]

	if filter.Limit > 0 && filter.Limit < len(all) {
		all = all[:filter.Limit]
	}
	return all, nil
}

func (s *Storage) Update(ctx context.Context, insight *models.Insight) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if _, ok := s.insights[insight.ID]; !ok {
		return repository.ErrNotFound
	}

	clone := *insight
	s.insights[insight.ID] = &clone
	return nil
}

package inmemory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/long2333z/ai-time-menagement/internal/models"
	"github.com/long2333z/ai-time-menagement/internal/repository"
)

// Storage — потокобезопасное хранилище задач в памяти,
// используется в тестах и при запуске без PostgreSQL
type Storage struct {
	mtx   sync.RWMutex
	tasks map[string]*models.Task
}

func NewStorage() *Storage {
	return &Storage{
		tasks: make(map[string]*models.Task),
	}
}

func (s *Storage) HealthCheck(ctx context.Context) error {
	return nil
}

func (s *Storage) Create(ctx context.Context, task *models.Task) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if task.CreatedAt.IsZero() {
		task.CreatedAt = time.Now()
	}
	if task.UpdatedAt.IsZero() {
		task.UpdatedAt = task.CreatedAt
	}

	clone := *task
	s.tasks[task.ID] = &clone
	return nil
}

func (s *Storage) GetByID(ctx context.Context, id string) (*models.Task, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	task, ok := s.tasks[id]
	if !ok {
		return nil, repository.ErrNotFound
	}

	clone := *task
	return &clone, nil
}

func (s *Storage) GetAll(ctx context.Context, page, limit int) ([]*models.Task, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	all := make([]*models.Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		clone := *task
		all = append(all, &clone)
	}

	// стабильный порядок: по времени создания, затем по id
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].ID < all[j].ID
		}
		return all[i].CreatedAt.Before(all[j].CreatedAt)
	})

	offset := (page - 1) * limit
	if offset >= len(all) {
		return []*models.Task{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (s *Storage) Update(ctx context.Context, task *models.Task) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if _, ok := s.tasks[task.ID]; !ok {
		return repository.ErrNotFound
	}

	task.UpdatedAt = time.Now()
	clone := *task
	s.tasks[task.ID] = &clone
	return nil
}

func (s *Storage) Delete(ctx context.Context, id string) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return repository.ErrNotFound
	}

	delete(s.tasks, id)
	return nil
}

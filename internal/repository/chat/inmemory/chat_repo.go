package inmemory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/long2333z/ai-time-menagement/internal/models"
)

type Storage struct {
	mtx      sync.RWMutex
	messages []*models.ChatMessage
}

func NewStorage() *Storage {
	return &Storage{
		messages: make([]*models.ChatMessage, 0),
	}
}

func (s *Storage) Create(ctx context.Context, msg *models.ChatMessage) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now()
	}

	clone := *msg
	s.messages = append(s.messages, &clone)
	return nil
}

// GetBySession возвращает сообщения в хронологическом порядке.
// Пустой sessionID — сообщения всех сессий.
func (s *Storage) GetBySession(ctx context.Context, sessionID string, skip, limit int) ([]*models.ChatMessage, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	selected := make([]*models.ChatMessage, 0, len(s.messages))
	for _, msg := range s.messages {
		if sessionID != "" && msg.SessionID != sessionID {
			continue
		}
		clone := *msg
		selected = append(selected, &clone)
	}

	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].CreatedAt.Before(selected[j].CreatedAt)
	})

	if skip >= len(selected) {
		return []*models.ChatMessage{}, nil
	}
	selected = selected[skip:]

	if limit > 0 && limit < len(selected) {
		selected = selected[:limit]
	}
	return selected, nil
}

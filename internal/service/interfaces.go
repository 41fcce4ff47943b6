package service

import (
	"context"

	"github.com/long2333z/ai-time-menagement/internal/llm"
	"github.com/long2333z/ai-time-menagement/internal/models"
	"github.com/long2333z/ai-time-menagement/internal/repository"
)

type TaskRepository interface {
	HealthCheck(ctx context.Context) error
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, id string) (*models.Task, error)
	GetAll(ctx context.Context, page, limit int) ([]*models.Task, error)
	Update(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, id string) error
}

type InsightRepository interface {
	Create(ctx context.Context, insight *models.Insight) error
	GetByID(ctx context.Context, id string) (*models.Insight, error)
	GetAll(ctx context.Context, filter repository.InsightFilter) ([]*models.Insight, error)
	Update(ctx context.Context, insight *models.Insight) error
}

type ChatRepository interface {
	Create(ctx context.Context, msg *models.ChatMessage) error
	GetBySession(ctx context.Context, sessionID string, skip, limit int) ([]*models.ChatMessage, error)
}

// LLMClient — внешний сервис дополнения текста, см. internal/llm
type LLMClient interface {
	Chat(ctx context.Context, messages []llm.Message) (*llm.ChatResponse, error)
}

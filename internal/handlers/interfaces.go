package handlers

import (
	"context"

	"github.com/long2333z/ai-time-menagement/internal/models"
	"github.com/long2333z/ai-time-menagement/internal/parser"
	"github.com/long2333z/ai-time-menagement/internal/repository"
	"github.com/long2333z/ai-time-menagement/internal/service"
)

type TaskService interface {
	HealthCheck(ctx context.Context) error
	ExtractFromTranscript(ctx context.Context, transcript string, locale parser.Locale) (*service.ExtractResult, error)
	CreateTask(ctx context.Context, task *models.Task) (*models.Task, error)
	GetTasks(ctx context.Context, page, limit int) ([]*models.Task, error)
	GetTaskByID(ctx context.Context, id string) (*models.Task, error)
	UpdateTask(ctx context.Context, id string, opts ...service.TaskOption) (*models.Task, error)
	DeleteTask(ctx context.Context, id string) error
}

type InsightService interface {
	AnalyzeBlocks(ctx context.Context) ([]models.TimeBlock, error)
	Generate(ctx context.Context, occupation string) ([]*models.Insight, error)
	List(ctx context.Context, filter repository.InsightFilter) ([]*models.Insight, error)
	MarkRead(ctx context.Context, id string) (*models.Insight, error)
	ToggleFavorite(ctx context.Context, id string) (*models.Insight, error)
}

type ChatService interface {
	SendMessage(ctx context.Context, sessionID, content string) (*models.ChatMessage, error)
	GetMessages(ctx context.Context, sessionID string, skip, limit int) ([]*models.ChatMessage, error)
}

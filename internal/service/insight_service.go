package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/long2333z/ai-time-menagement/internal/insights"
	"github.com/long2333z/ai-time-menagement/internal/logger"
	"github.com/long2333z/ai-time-menagement/internal/models"
	"github.com/long2333z/ai-time-menagement/internal/repository"
)

// задач больше не бывает в рамках одного дня, анализ читает одной страницей
const analysisTaskLimit = 500

// InsightService — анализ расписания и генерация инсайтов
type InsightService struct {
	tasks    TaskRepository
	insights InsightRepository
	engine   *insights.Engine
}

func NewInsightService(tasks TaskRepository, repo InsightRepository, engine *insights.Engine) *InsightService {
	return &InsightService{
		tasks:    tasks,
		insights: repo,
		engine:   engine,
	}
}

// AnalyzeBlocks строит временные блоки между задачами текущего расписания
func (s *InsightService) AnalyzeBlocks(ctx context.Context) ([]models.TimeBlock, error) {
	tasks, err := s.loadTasks(ctx)
	if err != nil {
		return nil, err
	}
	return insights.AnalyzeSchedule(tasks), nil
}

// Generate анализирует расписание, выводит профиль пользователя
// и сохраняет свежие инсайты. Поле occupation может быть пустым.
func (s *InsightService) Generate(ctx context.Context, occupation string) ([]*models.Insight, error) {
	tasks, err := s.loadTasks(ctx)
	if err != nil {
		return nil, err
	}

	blocks := insights.AnalyzeSchedule(tasks)
	profile := insights.InferProfile(tasks, occupation)
	generated := s.engine.Generate(tasks, blocks, profile)

	logger.Info("Инсайты сгенерированы",
		zap.Int("tasks", len(tasks)),
		zap.Int("blocks", len(blocks)),
		zap.Int("insights", len(generated)),
		zap.String("identity", profile.Identity),
	)

	saved := make([]*models.Insight, 0, len(generated))
	for i := range generated {
		insight := generated[i]
		if err := s.insights.Create(ctx, &insight); err != nil {
			return nil, fmt.Errorf("сохранение инсайта %s: %w", insight.ID, err)
		}
		saved = append(saved, &insight)
	}
	return saved, nil
}

func (s *InsightService) List(ctx context.Context, filter repository.InsightFilter) ([]*models.Insight, error) {
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 50
	}
	if filter.Skip < 0 {
		filter.Skip = 0
	}
	return s.insights.GetAll(ctx, filter)
}

func (s *InsightService) MarkRead(ctx context.Context, id string) (*models.Insight, error) {
	insight, err := s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}

	insight.IsRead = true
	if err := s.insights.Update(ctx, insight); err != nil {
		return nil, fmt.Errorf("обновление инсайта: %w", err)
	}
	return insight, nil
}

func (s *InsightService) ToggleFavorite(ctx context.Context, id string) (*models.Insight, error) {
	insight, err := s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}

	insight.IsFavorite = !insight.IsFavorite
	if err := s.insights.Update(ctx, insight); err != nil {
		return nil, fmt.Errorf("обновление инсайта: %w", err)
	}
	return insight, nil
}

func (s *InsightService) getByID(ctx context.Context, id string) (*models.Insight, error) {
	insight, err := s.insights.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewNotFound("инсайт", id)
		}
		return nil, fmt.Errorf("получение инсайта: %w", err)
	}
	return insight, nil
}

func (s *InsightService) loadTasks(ctx context.Context) ([]models.Task, error) {
	stored, err := s.tasks.GetAll(ctx, 1, analysisTaskLimit)
	if err != nil {
		return nil, fmt.Errorf("загрузка задач для анализа: %w", err)
	}

	tasks := make([]models.Task, 0, len(stored))
	for _, t := range stored {
		tasks = append(tasks, *t)
	}
	return tasks, nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/long2333z/ai-time-menagement/internal/logger"
	"github.com/long2333z/ai-time-menagement/internal/models"
	"github.com/long2333z/ai-time-menagement/internal/parser"
	"github.com/long2333z/ai-time-menagement/internal/repository"
)

// TaskService — бизнес-логика задач: извлечение из транскрипта и CRUD
type TaskService struct {
	repo          TaskRepository
	parser        *parser.Parser
	defaultLocale parser.Locale
}

func NewTaskService(repo TaskRepository, p *parser.Parser, defaultLocale parser.Locale) *TaskService {
	return &TaskService{
		repo:          repo,
		parser:        p,
		defaultLocale: defaultLocale,
	}
}

func (s *TaskService) HealthCheck(ctx context.Context) error {
	return s.repo.HealthCheck(ctx)
}

// ExtractResult — задачи, извлечённые из транскрипта, и рекомендации по ним
type ExtractResult struct {
	Tasks       []*models.Task
	Suggestions []string
}

// ExtractFromTranscript разбирает транскрипт, сохраняет полученные задачи
// и возвращает их вместе с рекомендациями. Пустой транскрипт — ошибка валидации.
func (s *TaskService) ExtractFromTranscript(ctx context.Context, transcript string, locale parser.Locale) (*ExtractResult, error) {
	if transcript == "" {
		return nil, NewValidationError("transcript", "пустой транскрипт")
	}
	if locale == "" {
		locale = s.defaultLocale
	}

	tasks := s.parser.Extract(transcript, locale)
	logger.Info("Транскрипт разобран",
		zap.String("locale", string(locale)),
		zap.Int("tasks", len(tasks)),
	)

	saved := make([]*models.Task, 0, len(tasks))
	for i := range tasks {
		task := tasks[i]
		if err := s.repo.Create(ctx, &task); err != nil {
			return nil, fmt.Errorf("сохранение задачи %s: %w", task.ID, err)
		}
		saved = append(saved, &task)
	}

	return &ExtractResult{
		Tasks:       saved,
		Suggestions: s.parser.Suggestions(tasks, locale),
	}, nil
}

// CreateTask создаёт задачу вручную, без разбора текста
func (s *TaskService) CreateTask(ctx context.Context, task *models.Task) (*models.Task, error) {
	if task.Title == "" {
		return nil, NewValidationError("title", "не может быть пустым")
	}
	if task.Duration < 0 {
		return nil, NewValidationError("duration", "не может быть отрицательной")
	}

	now := time.Now()
	task.ID = "task-" + uuid.NewString()
	task.CreatedAt = now
	task.UpdatedAt = now
	if task.Status == "" {
		task.Status = models.StatusPending
	}
	if task.Priority == "" {
		task.Priority = models.PriorityMedium
	}
	syncEndTime(task)

	if err := s.repo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("создание задачи: %w", err)
	}
	return task, nil
}

func (s *TaskService) GetTasks(ctx context.Context, page, limit int) ([]*models.Task, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.repo.GetAll(ctx, page, limit)
}

func (s *TaskService) GetTaskByID(ctx context.Context, id string) (*models.Task, error) {
	task, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewNotFound("задача", id)
		}
		return nil, fmt.Errorf("получение задачи: %w", err)
	}
	return task, nil
}

// UpdateTask применяет к задаче набор изменений.
// Nil-опции (не прошедшие валидацию) пропускаются.
func (s *TaskService) UpdateTask(ctx context.Context, id string, opts ...TaskOption) (*models.Task, error) {
	task, err := s.GetTaskByID(ctx, id)
	if err != nil {
		return nil, err
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(task)
	}
	syncEndTime(task)

	if err := s.repo.Update(ctx, task); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewNotFound("задача", id)
		}
		return nil, fmt.Errorf("обновление задачи: %w", err)
	}
	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NewNotFound("задача", id)
		}
		return fmt.Errorf("удаление задачи: %w", err)
	}
	return nil
}

// syncEndTime поддерживает инвариант endTime = startTime + duration
func syncEndTime(task *models.Task) {
	if task.StartTime != nil && task.Duration > 0 {
		end := task.StartTime.Add(time.Duration(task.Duration) * time.Minute)
		task.EndTime = &end
		return
	}
	task.EndTime = nil
}

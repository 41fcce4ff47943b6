package service

import (
	"time"

	"github.com/long2333z/ai-time-menagement/internal/models"
)

// TaskOption — точечное изменение задачи при обновлении
type TaskOption func(*models.Task)

func WithTitle(title string) TaskOption {
	if title == "" {
		return nil
	}
	return func(task *models.Task) {
		task.Title = title
	}
}

func WithDescription(description string) TaskOption {
	return func(task *models.Task) {
		task.Description = description
	}
}

func WithStatus(status models.Status) TaskOption {
	if status == "" {
		return nil
	}
	return func(task *models.Task) {
		task.Status = status
	}
}

func WithPriority(priority models.Priority) TaskOption {
	if priority == "" {
		return nil
	}
	return func(task *models.Task) {
		task.Priority = priority
	}
}

func WithCategory(category string) TaskOption {
	return func(task *models.Task) {
		task.Category = category
	}
}

func WithStartTime(startTime *time.Time) TaskOption {
	return func(task *models.Task) {
		task.StartTime = startTime
	}
}

func WithDuration(duration int) TaskOption {
	if duration < 0 {
		return nil
	}
	return func(task *models.Task) {
		task.Duration = duration
	}
}

func WithTags(tags []string) TaskOption {
	return func(task *models.Task) {
		task.Tags = tags
	}
}

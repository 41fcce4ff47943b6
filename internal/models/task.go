package models

import "time"

type Task struct {
	ID          string     `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Description string     `json:"description,omitempty" db:"description"`
	StartTime   *time.Time `json:"start_time,omitempty" db:"start_time"`
	EndTime     *time.Time `json:"end_time,omitempty" db:"end_time"`
	Duration    int        `json:"duration,omitempty" db:"duration"` // минуты
	Priority    Priority   `json:"priority" db:"priority"`
	Status      Status     `json:"status" db:"status"`
	Category    string     `json:"category,omitempty" db:"category"`
	Tags        []string   `json:"tags,omitempty" db:"tags"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

type Status string
type Priority string

const StatusPending Status = "pending"
const StatusInProgress Status = "in-progress"
const StatusCompleted Status = "completed"
const StatusCancelled Status = "cancelled"

const PriorityHigh Priority = "high"
const PriorityMedium Priority = "medium"
const PriorityLow Priority = "low"

// Scheduled — у задачи заданы обе временные границы,
// только такие задачи участвуют в анализе расписания
func (t *Task) Scheduled() bool {
	return t.StartTime != nil && t.EndTime != nil
}

// SearchText — текст задачи для поиска по ключевым словам
func (t *Task) SearchText() string {
	if t.Description == "" {
		return t.Title
	}
	return t.Title + " " + t.Description
}

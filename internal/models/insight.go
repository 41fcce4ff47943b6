package models

import "time"

type Insight struct {
	ID          string      `json:"id" db:"id"`
	Type        InsightType `json:"type" db:"type"`
	Title       string      `json:"title" db:"title"`
	Description string      `json:"description" db:"description"`
	Priority    Priority    `json:"priority" db:"priority"`
	Actionable  bool        `json:"actionable" db:"actionable"`
	ActionText  string      `json:"action_text,omitempty" db:"action_text"`
	IsRead      bool        `json:"is_read" db:"is_read"`
	IsFavorite  bool        `json:"is_favorite" db:"is_favorite"`
	CreatedAt   time.Time   `json:"created_at" db:"created_at"`
}

type InsightType string

const InsightProductivity InsightType = "productivity"
const InsightTimeManagement InsightType = "time-management"
const InsightEnergy InsightType = "energy"
const InsightHabit InsightType = "habit"
const InsightGoal InsightType = "goal"
const InsightGeneral InsightType = "general"
const InsightHealth InsightType = "health"

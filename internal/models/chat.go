package models

import "time"

type ChatMessage struct {
	ID        string    `json:"id" db:"id"`
	SessionID string    `json:"session_id" db:"session_id"`
	Role      ChatRole  `json:"role" db:"role"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type ChatRole string

const RoleSystem ChatRole = "system"
const RoleUser ChatRole = "user"
const RoleAssistant ChatRole = "assistant"

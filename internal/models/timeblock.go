package models

import "time"

// TimeBlock — свободный интервал дня, результат анализа расписания.
// Не сохраняется в хранилище, живёт только в рамках одного запроса.
type TimeBlock struct {
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Duration    int       `json:"duration"` // минуты
	Type        BlockType `json:"type"`
	Description string    `json:"description"`
}

type BlockType string

const BlockFree BlockType = "free"
const BlockCommute BlockType = "commute"
const BlockBreak BlockType = "break"
const BlockDeepWork BlockType = "deep-work"
const BlockShallowWork BlockType = "shallow-work"

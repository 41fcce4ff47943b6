package parser

import (
	"fmt"
	"time"

	"github.com/long2333z/ai-time-menagement/internal/models"
)

// Parser превращает свободный текст в структурированные задачи.
// Один разборщик на все языки, различия языков описаны таблицами Rules.
type Parser struct {
	rules map[Locale]*Rules
	now   func() time.Time
}

type Option func(*Parser)

// WithNow подменяет источник времени, нужно в тестах
func WithNow(now func() time.Time) Option {
	return func(p *Parser) {
		p.now = now
	}
}

func New(opts ...Option) *Parser {
	p := &Parser{
		rules: map[Locale]*Rules{
			LocaleEN: EnglishRules(),
			LocaleZH: ChineseRules(),
		},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Parser) localeRules(locale Locale) *Rules {
	if r, ok := p.rules[locale]; ok {
		return r
	}
	return p.rules[LocaleEN]
}

// Extract разбирает транскрипт в список задач.
// Пустой или бессодержательный транскрипт даёт пустой список, не ошибку.
func (p *Parser) Extract(transcript string, locale Locale) []models.Task {
	r := p.localeRules(locale)
	now := p.now()

	clauses := segment(r, transcript)
	tasks := make([]models.Task, 0, len(clauses))

	for i, clause := range clauses {
		parsed := extractClause(r, clause, now)
		if parsed == nil {
			continue
		}

		task := models.Task{
			ID:        fmt.Sprintf("task-%d-%d", now.UnixMilli(), i),
			Title:     parsed.title,
			StartTime: parsed.startTime,
			Duration:  parsed.duration,
			Priority:  parsed.priority,
			Status:    models.StatusPending,
			Category:  parsed.category,
			Tags:      parsed.tags,
			CreatedAt: now,
			UpdatedAt: now,
		}

		// инвариант: endTime = startTime + duration, без округлений
		if parsed.startTime != nil && parsed.duration > 0 {
			end := parsed.startTime.Add(time.Duration(parsed.duration) * time.Minute)
			task.EndTime = &end
		}

		tasks = append(tasks, task)
	}

	return tasks
}

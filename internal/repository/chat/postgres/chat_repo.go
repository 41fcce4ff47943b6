package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/long2333z/ai-time-menagement/internal/logger"
	"github.com/long2333z/ai-time-menagement/internal/models"
)

type Storage struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Storage {
	return &Storage{pool: pool}
}

func (s *Storage) Create(ctx context.Context, msg *models.ChatMessage) error {
	start := time.Now()

	query := `INSERT INTO chat_messages (id, session_id, role, content, created_at)
				VALUES ($1, $2, $3, $4, $5)`

	_, err := s.pool.Exec(ctx, query, msg.ID, msg.SessionID, msg.Role, msg.Content, msg.CreatedAt)
	if err != nil {
		logger.Error("Repository: Не удалось сохранить сообщение", err, zap.Duration("ms", time.Since(start)))
		return fmt.Errorf("сохранение сообщения: %w", err)
	}

	return nil
}

func (s *Storage) GetBySession(ctx context.Context, sessionID string, skip, limit int) ([]*models.ChatMessage, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `SELECT id, session_id, role, content, created_at
				FROM chat_messages
				WHERE ($1 = '' OR session_id = $1)
				ORDER BY created_at, id
				LIMIT $2 OFFSET $3`

	rows, err := s.pool.Query(ctx, query, sessionID, limit, skip)
	if err != nil {
		logger.Error("Repository: Не удалось получить сообщения", err)
		return nil, fmt.Errorf("получение сообщений: %w", err)
	}
	defer rows.Close()

	messages := make([]*models.ChatMessage, 0, limit)
	for rows.Next() {
		msg := &models.ChatMessage{}
		if err := rows.Scan(&msg.ID, &msg.SessionID, &msg.Role, &msg.Content, &msg.CreatedAt); err != nil {
			return nil, fmt.Errorf("чтение строки: %w", err)
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("обход строк: %w", err)
	}

	return messages, nil
}

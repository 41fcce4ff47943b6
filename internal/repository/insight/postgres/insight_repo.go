package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/long2333z/ai-time-menagement/internal/logger"
	"github.com/long2333z/ai-time-menagement/internal/models"
	"github.com/long2333z/ai-time-menagement/internal/repository"
)

type Storage struct {
	pool *pgxpool.Pool
}

// New оборачивает общий пул соединений: рекомендации живут
// в той же базе, что и задачи
func New(pool *pgxpool.Pool) *Storage {
	return &Storage{pool: pool}
}

func (s *Storage) Create(ctx context.Context, insight *models.Insight) error {
	start := time.Now()

	query := `INSERT INTO insights
				(id, type, title, description, priority, actionable,
				 action_text, is_read, is_favorite, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := s.pool.Exec(ctx, query,
		insight.ID,
		insight.Type,
		insight.Title,
		insight.Description,
		insight.Priority,
		insight.Actionable,
		insight.ActionText,
		insight.IsRead,
		insight.IsFavorite,
		insight.CreatedAt,
	)
	if err != nil {
		logger.Error("Repository: Не удалось добавить рекомендацию", err, zap.Duration("ms", time.Since(start)))
		return fmt.Errorf("добавление рекомендации: %w", err)
	}

	return nil
}

func (s *Storage) GetByID(ctx context.Context, id string) (*models.Insight, error) {
	query := `SELECT id, type, title, description, priority, actionable,
				action_text, is_read, is_favorite, created_at
				FROM insights
				WHERE id = $1`

	insight := &models.Insight{}
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&insight.ID,
		&insight.Type,
		&insight.Title,
		&insight.Description,
		&insight.Priority,
		&insight.Actionable,
		&insight.ActionText,
		&insight.IsRead,
		&insight.IsFavorite,
		&insight.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		logger.Error("Repository: Не удалось получить рекомендацию", err)
		return nil, fmt.Errorf("получение рекомендации: %w", err)
	}

	return insight, nil
}

func (s *Storage) GetAll(ctx context.Context, filter repository.InsightFilter) ([]*models.Insight, error) {
	start := time.Now()

	query := `SELECT id, type, title, description, priority, actionable,
				action_text, is_read, is_favorite, created_at
				FROM insights
				WHERE ($1::boolean IS NULL OR is_read = $1)
				  AND ($2::boolean IS NULL OR is_favorite = $2)
				ORDER BY created_at DESC, id
				LIMIT $3 OFFSET $4`

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.pool.Query(ctx, query, filter.IsRead, filter.IsFavorite, limit, filter.Skip)
	if err != nil {
		logger.Error("Repository: Не удалось получить рекомендации", err, zap.Duration("ms", time.Since(start)))
		return nil, fmt.Errorf("получение рекомендаций: %w", err)
	}
	defer rows.Close()

	insights := make([]*models.Insight, 0, limit)
	for rows.Next() {
		insight := &models.Insight{}
		err := rows.Scan(
			&insight.ID,
			&insight.Type,
			&insight.Title,
			&insight.Description,
			&insight.Priority,
			&insight.Actionable,
			&insight.ActionText,
			&insight.IsRead,
			&insight.IsFavorite,
			&insight.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("чтение строки: %w", err)
		}
		insights = append(insights, insight)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("обход строк: %w", err)
	}

	return insights, nil
}

func (s *Storage) Update(ctx context.Context, insight *models.Insight) error {
	query := `UPDATE insights
			SET is_read = $1,
				is_favorite = $2
			WHERE id = $3`

	tag, err := s.pool.Exec(ctx, query, insight.IsRead, insight.IsFavorite, insight.ID)
	if err != nil {
		logger.Error("Repository: Не удалось обновить рекомендацию", err)
		return fmt.Errorf("обновление рекомендации: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

package repository

import "errors"

var ErrNotFound = errors.New("запись не найдена")

// InsightFilter — фильтры выборки рекомендаций.
// nil-поле значит «без фильтра по этому признаку».
type InsightFilter struct {
	IsRead     *bool
	IsFavorite *bool
	Skip       int
	Limit      int
}

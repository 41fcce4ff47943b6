package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/long2333z/ai-time-menagement/internal/logger"
	"github.com/long2333z/ai-time-menagement/internal/service"
)

// InsightWorker периодически пересчитывает инсайты по текущему расписанию,
// чтобы рекомендации не отставали от изменений задач
type InsightWorker struct {
	insights *service.InsightService
	interval time.Duration
}

func NewInsightWorker(insights *service.InsightService, interval *time.Duration) *InsightWorker {
	var intervalToSet time.Duration
	if interval == nil {
		intervalToSet = 30 * time.Minute
	} else {
		intervalToSet = *interval
	}
	return &InsightWorker{
		insights: insights,
		interval: intervalToSet,
	}
}

func (w *InsightWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			logger.Info("Worker: Фоновый пересчёт инсайтов", zap.Time("started_at", time.Now()))
			w.Refresh(ctx)
		case <-ctx.Done():
			logger.Info("Worker: Фоновый пересчёт останавливается")
			return
		}
	}
}

func (w *InsightWorker) Refresh(ctx context.Context) {
	start := time.Now()

	generated, err := w.insights.Generate(ctx, "")
	if err != nil {
		logger.Warn("Worker: ошибка генерации инсайтов", zap.Error(err))
		return
	}

	logger.Info(
		"Worker: Завершение пересчёта инсайтов",
		zap.Duration("ms", time.Since(start)),
		zap.Int("generated", len(generated)),
	)
}

package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/long2333z/ai-time-menagement/internal/handlers/dto"
	"github.com/long2333z/ai-time-menagement/internal/logger"
	"github.com/long2333z/ai-time-menagement/internal/repository"
)

type InsightHandler struct {
	InsightService InsightService
}

func NewInsightHandler(insightService InsightService) InsightHandler {
	return InsightHandler{
		InsightService: insightService,
	}
}

// AnalyzeBlocks — GET /analysis/blocks, свободные окна между задачами
func (h *InsightHandler) AnalyzeBlocks(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	blocks, err := h.InsightService.AnalyzeBlocks(r.Context())
	if err != nil {
		logger.Error("HTTP: Ошибка Service", err)
		responseWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	logger.Info("HTTP_OUT: Блоки рассчитаны",
		zap.Duration("ms", time.Since(start)),
		zap.Int("count", len(blocks)),
		zap.Int("http_status", http.StatusOK))

	responseWithJSON(w, http.StatusOK, toPayload("blocks", blocks))
}

// GenerateInsights — POST /insights/generate. Тело запроса опционально.
func (h *InsightHandler) GenerateInsights(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	var request dto.GenerateInsightsRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil && !errors.Is(err, io.EOF) {
		logger.Warn("HTTP: ошибка чтения JSON",
			zap.Error(err),
			zap.String("client_ip", r.RemoteAddr))
		responseWithError(w, http.StatusBadRequest, "неверное тело запроса: "+err.Error())
		return
	}

	insights, err := h.InsightService.Generate(r.Context(), request.Occupation)
	if err != nil {
		logger.Error("HTTP: Ошибка Service", err)
		responseWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	logger.Info("HTTP_OUT: Инсайты сгенерированы",
		zap.Duration("ms", time.Since(start)),
		zap.Int("count", len(insights)),
		zap.Int("http_status", http.StatusOK))

	responseWithJSON(w, http.StatusOK, toPayload("insights", insights))
}

func (h *InsightHandler) GetInsights(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	filter := repository.InsightFilter{
		Skip:  queryInt(r, "skip", 0),
		Limit: queryInt(r, "limit", 50),
	}

	var err error
	if filter.IsRead, err = queryBool(r, "is_read"); err != nil {
		responseWithError(w, http.StatusBadRequest, "неверное значение is_read")
		return
	}
	if filter.IsFavorite, err = queryBool(r, "is_favorite"); err != nil {
		responseWithError(w, http.StatusBadRequest, "неверное значение is_favorite")
		return
	}

	insights, err := h.InsightService.List(r.Context(), filter)
	if err != nil {
		logger.Error("HTTP: Ошибка Service", err)
		responseWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	logger.Info("HTTP_OUT: Инсайты получены",
		zap.Duration("ms", time.Since(start)),
		zap.Int("count", len(insights)),
		zap.Int("http_status", http.StatusOK))

	responseWithJSON(w, http.StatusOK, toPayload("insights", insights))
}

func (h *InsightHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id := chi.URLParam(r, "id")

	insight, err := h.InsightService.MarkRead(r.Context(), id)
	if err != nil {
		if handleBusinessError(w, err) {
			return
		}
		logger.Error("HTTP: Ошибка Service", err)
		responseWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	logger.Info("HTTP_OUT: Инсайт прочитан",
		zap.Duration("ms", time.Since(start)),
		zap.String("insight_id", id),
		zap.Int("http_status", http.StatusOK))

	responseWithJSON(w, http.StatusOK, toPayload("insight", insight))
}

func (h *InsightHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id := chi.URLParam(r, "id")

	insight, err := h.InsightService.ToggleFavorite(r.Context(), id)
	if err != nil {
		if handleBusinessError(w, err) {
			return
		}
		logger.Error("HTTP: Ошибка Service", err)
		responseWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	logger.Info("HTTP_OUT: Избранное переключено",
		zap.Duration("ms", time.Since(start)),
		zap.String("insight_id", id),
		zap.Int("http_status", http.StatusOK))

	responseWithJSON(w, http.StatusOK, toPayload("insight", insight))
}

// queryBool читает трёхзначный фильтр: параметр отсутствует — nil
func queryBool(r *http.Request, name string) (*bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, err
	}
	return &value, nil
}

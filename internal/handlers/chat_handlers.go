package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/long2333z/ai-time-menagement/internal/handlers/dto"
	"github.com/long2333z/ai-time-menagement/internal/logger"
)

type ChatHandler struct {
	ChatService ChatService
}

func NewChatHandler(chatService ChatService) ChatHandler {
	return ChatHandler{
		ChatService: chatService,
	}
}

// PostMessage — POST /chat/messages, сообщение ассистенту
func (h *ChatHandler) PostMessage(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	if !checkContentType(r, "application/json") {
		logger.Warn("HTTP: Неверный тип контента",
			zap.String("received", r.Header.Get("Content-Type")),
			zap.String("client_ip", r.RemoteAddr))
		responseWithError(w, http.StatusUnsupportedMediaType, "Content-Type должен быть application/json")
		return
	}

	var request dto.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		logger.Warn("HTTP: ошибка чтения JSON",
			zap.Error(err),
			zap.String("client_ip", r.RemoteAddr))
		responseWithError(w, http.StatusBadRequest, "неверное тело запроса: "+err.Error())
		return
	}

	reply, err := h.ChatService.SendMessage(r.Context(), request.SessionID, request.Content)
	if err != nil {
		if handleBusinessError(w, err) {
			return
		}
		logger.Error("HTTP: Ошибка Service", err)
		responseWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	logger.Info("HTTP_OUT: Ответ ассистента отправлен",
		zap.Duration("ms", time.Since(start)),
		zap.String("session_id", reply.SessionID),
		zap.Int("http_status", http.StatusOK))

	responseWithJSON(w, http.StatusOK, toPayload("message", reply))
}

func (h *ChatHandler) GetMessages(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	sessionID := r.URL.Query().Get("session_id")
	skip := queryInt(r, "skip", 0)
	limit := queryInt(r, "limit", 50)

	messages, err := h.ChatService.GetMessages(r.Context(), sessionID, skip, limit)
	if err != nil {
		logger.Error("HTTP: Ошибка Service", err)
		responseWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	logger.Info("HTTP_OUT: История получена",
		zap.Duration("ms", time.Since(start)),
		zap.Int("count", len(messages)),
		zap.Int("http_status", http.StatusOK))

	responseWithJSON(w, http.StatusOK, toPayload("messages", messages))
}

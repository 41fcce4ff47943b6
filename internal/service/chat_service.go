package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/long2333z/ai-time-menagement/internal/llm"
	"github.com/long2333z/ai-time-menagement/internal/logger"
	"github.com/long2333z/ai-time-menagement/internal/models"
)

// системный промпт ассистента, общий для всех сессий
const assistantPrompt = "你是一位专业的时间管理助手。" +
	"你帮助用户规划日程、分析时间利用率并提出可执行的改进建议。" +
	"回答要简洁、具体，给出可以立刻落实的步骤。" +
	"如果用户使用英文提问，请用英文回答。"

// история сессии уходит в LLM целиком, но не больше historyLimit сообщений
const historyLimit = 20

// ChatService — диалог с ассистентом, история хранится по сессиям
type ChatService struct {
	repo ChatRepository
	llm  LLMClient
}

func NewChatService(repo ChatRepository, client LLMClient) *ChatService {
	return &ChatService{
		repo: repo,
		llm:  client,
	}
}

// SendMessage сохраняет сообщение пользователя, запрашивает ответ модели
// и сохраняет его в ту же сессию. Пустой sessionID открывает новую сессию.
func (s *ChatService) SendMessage(ctx context.Context, sessionID, content string) (*models.ChatMessage, error) {
	if content == "" {
		return nil, NewValidationError("content", "не может быть пустым")
	}
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	userMsg := &models.ChatMessage{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Role:      models.RoleUser,
		Content:   content,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Create(ctx, userMsg); err != nil {
		return nil, fmt.Errorf("сохранение сообщения: %w", err)
	}

	history, err := s.repo.GetBySession(ctx, sessionID, 0, historyLimit)
	if err != nil {
		return nil, fmt.Errorf("загрузка истории: %w", err)
	}

	messages := make([]llm.Message, 0, len(history)+1)
	messages = append(messages, llm.Message{Role: string(models.RoleSystem), Content: assistantPrompt})
	for _, msg := range history {
		messages = append(messages, llm.Message{Role: string(msg.Role), Content: msg.Content})
	}

	resp, err := s.llm.Chat(ctx, messages)
	if err != nil {
		logger.Error("Ошибка LLM-провайдера", err, zap.String("session_id", sessionID))
		return nil, NewUnavailable("llm", err)
	}
	if resp.Usage != nil {
		logger.Info("Ответ ассистента получен",
			zap.String("session_id", sessionID),
			zap.Int("total_tokens", resp.Usage.TotalTokens),
		)
	}

	reply := &models.ChatMessage{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Role:      models.RoleAssistant,
		Content:   resp.Message,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Create(ctx, reply); err != nil {
		return nil, fmt.Errorf("сохранение ответа: %w", err)
	}
	return reply, nil
}

func (s *ChatService) GetMessages(ctx context.Context, sessionID string, skip, limit int) ([]*models.ChatMessage, error) {
	if limit < 1 || limit > 200 {
		limit = 50
	}
	if skip < 0 {
		skip = 0
	}
	return s.repo.GetBySession(ctx, sessionID, skip, limit)
}

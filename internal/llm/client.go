package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/long2333z/ai-time-menagement/internal/config"
)

// ErrUnavailable — LLM-провайдер не ответил или ответил ошибкой.
// Ретраев здесь нет, повтор — забота вызывающей стороны.
var ErrUnavailable = errors.New("llm: сервис недоступен")

const defaultEndpoint = "https://api.openai.com/v1/chat/completions"
const defaultModel = "gpt-3.5-turbo"
const defaultTemperature = 0.7
const defaultMaxTokens = 2000
const defaultTimeout = 30 * time.Second

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

type ChatResponse struct {
	Message string
	Usage   *Usage
}

// Client — клиент OpenAI-совместимого chat-completions API
type Client struct {
	endpoint    string
	model       string
	apiKey      string
	temperature float64
	maxTokens   int
	httpClient  *http.Client
}

func NewClient(cfg config.LLMConfig) *Client {
	c := &Client{
		endpoint:    cfg.Endpoint,
		model:       cfg.Model,
		apiKey:      cfg.APIKey(),
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
	}

	if c.endpoint == "" {
		c.endpoint = defaultEndpoint
	}
	if c.model == "" {
		c.model = defaultModel
	}
	if c.temperature == 0 {
		c.temperature = defaultTemperature
	}
	if c.maxTokens == 0 {
		c.maxTokens = defaultMaxTokens
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	c.httpClient = &http.Client{Timeout: timeout}

	return c
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

type chatCompletion struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
	Usage *Usage `json:"usage"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Chat отправляет историю сообщений и возвращает ответ модели
func (c *Client) Chat(ctx context.Context, messages []Message) (*ChatResponse, error) {
	body, err := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("сериализация запроса: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("создание запроса: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	var completion chatCompletion
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return nil, fmt.Errorf("%w: разбор ответа: %v", ErrUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		if completion.Error != nil && completion.Error.Message != "" {
			return nil, fmt.Errorf("%w: %s", ErrUnavailable, completion.Error.Message)
		}
		return nil, fmt.Errorf("%w: статус %d", ErrUnavailable, resp.StatusCode)
	}

	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("%w: пустой список choices", ErrUnavailable)
	}

	return &ChatResponse{
		Message: completion.Choices[0].Message.Content,
		Usage:   completion.Usage,
	}, nil
}

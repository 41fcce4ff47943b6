package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/long2333z/ai-time-menagement/internal/handlers"
	"github.com/long2333z/ai-time-menagement/internal/logger"
	"github.com/long2333z/ai-time-menagement/internal/models"
	"github.com/long2333z/ai-time-menagement/internal/parser"
	"github.com/long2333z/ai-time-menagement/internal/repository"
	"github.com/long2333z/ai-time-menagement/internal/service"
)

func TestMain(m *testing.M) {
	if err := logger.Init(true); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// MockTaskService - мок сервиса задач
type MockTaskService struct {
	mock.Mock
}

func (m *MockTaskService) HealthCheck(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTaskService) ExtractFromTranscript(ctx context.Context, transcript string, locale parser.Locale) (*service.ExtractResult, error) {
	args := m.Called(ctx, transcript, locale)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ExtractResult), args.Error(1)
}

func (m *MockTaskService) CreateTask(ctx context.Context, task *models.Task) (*models.Task, error) {
	args := m.Called(ctx, task)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Task), args.Error(1)
}

func (m *MockTaskService) GetTasks(ctx context.Context, page, limit int) ([]*models.Task, error) {
	args := m.Called(ctx, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Task), args.Error(1)
}

func (m *MockTaskService) GetTaskByID(ctx context.Context, id string) (*models.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Task), args.Error(1)
}

func (m *MockTaskService) UpdateTask(ctx context.Context, id string, opts ...service.TaskOption) (*models.Task, error) {
	args := m.Called(ctx, id, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Task), args.Error(1)
}

func (m *MockTaskService) DeleteTask(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ handlers.TaskService = (*MockTaskService)(nil)

// MockInsightService - мок сервиса инсайтов
type MockInsightService struct {
	mock.Mock
}

func (m *MockInsightService) AnalyzeBlocks(ctx context.Context) ([]models.TimeBlock, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TimeBlock), args.Error(1)
}

func (m *MockInsightService) Generate(ctx context.Context, occupation string) ([]*models.Insight, error) {
	args := m.Called(ctx, occupation)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Insight), args.Error(1)
}

func (m *MockInsightService) List(ctx context.Context, filter repository.InsightFilter) ([]*models.Insight, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Insight), args.Error(1)
}

func (m *MockInsightService) MarkRead(ctx context.Context, id string) (*models.Insight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Insight), args.Error(1)
}

func (m *MockInsightService) ToggleFavorite(ctx context.Context, id string) (*models.Insight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Insight), args.Error(1)
}

var _ handlers.InsightService = (*MockInsightService)(nil)

// MockChatService - мок сервиса чата
type MockChatService struct {
	mock.Mock
}

func (m *MockChatService) SendMessage(ctx context.Context, sessionID, content string) (*models.ChatMessage, error) {
	args := m.Called(ctx, sessionID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ChatMessage), args.Error(1)
}

func (m *MockChatService) GetMessages(ctx context.Context, sessionID string, skip, limit int) ([]*models.ChatMessage, error) {
	args := m.Called(ctx, sessionID, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ChatMessage), args.Error(1)
}

var _ handlers.ChatService = (*MockChatService)(nil)

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// TestTaskHandler_Health тестирует проверку здоровья
func TestTaskHandler_Health(t *testing.T) {
	tests := []struct {
		name           string
		setupMock      func(*MockTaskService)
		expectedStatus int
	}{
		{
			name: "success - healthy",
			setupMock: func(m *MockTaskService) {
				m.On("HealthCheck", mock.Anything).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "error - unhealthy",
			setupMock: func(m *MockTaskService) {
				m.On("HealthCheck", mock.Anything).Return(errors.New("storage down"))
			},
			expectedStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockTaskService)
			tt.setupMock(mockService)

			handler := handlers.NewTaskHandler(mockService)

			req := httptest.NewRequest("GET", "/health", nil)
			w := httptest.NewRecorder()

			handler.Health(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

// TestTaskHandler_ExtractTasks тестирует разбор транскрипта
func TestTaskHandler_ExtractTasks(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    string
		contentType    string
		setupMock      func(*MockTaskService)
		expectedStatus int
		checkBody      func(*testing.T, map[string]any)
	}{
		{
			name:        "success - tasks extracted",
			requestBody: `{"transcript": "明天上午9点开会", "locale": "zh"}`,
			contentType: "application/json",
			setupMock: func(m *MockTaskService) {
				m.On("ExtractFromTranscript", mock.Anything, "明天上午9点开会", parser.LocaleZH).
					Return(&service.ExtractResult{
						Tasks: []*models.Task{
							{ID: "task-1", Title: "9点开会", Priority: models.PriorityMedium, Status: models.StatusPending},
						},
						Suggestions: []string{"有1个任务未安排具体时间，建议为它们分配时间块以提高执行率"},
					}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body map[string]any) {
				require.Contains(t, body, "tasks")
				require.Contains(t, body, "suggestions")
				assert.Len(t, body["tasks"], 1)
			},
		},
		{
			name:           "error - invalid content type",
			requestBody:    `{}`,
			contentType:    "text/plain",
			setupMock:      func(m *MockTaskService) {},
			expectedStatus: http.StatusUnsupportedMediaType,
		},
		{
			name:           "error - invalid JSON",
			requestBody:    `{invalid json}`,
			contentType:    "application/json",
			setupMock:      func(m *MockTaskService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "error - empty transcript",
			requestBody: `{"transcript": ""}`,
			contentType: "application/json",
			setupMock: func(m *MockTaskService) {
				m.On("ExtractFromTranscript", mock.Anything, "", parser.Locale("")).
					Return(nil, service.NewValidationError("transcript", "пустой транскрипт"))
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockTaskService)
			tt.setupMock(mockService)

			handler := handlers.NewTaskHandler(mockService)

			req := httptest.NewRequest("POST", "/tasks/extract", bytes.NewBufferString(tt.requestBody))
			req.Header.Set("Content-Type", tt.contentType)
			w := httptest.NewRecorder()

			handler.ExtractTasks(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkBody != nil {
				var body map[string]any
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				tt.checkBody(t, body)
			}
			mockService.AssertExpectations(t)
		})
	}
}

// TestTaskHandler_GetTask тестирует получение задачи по идентификатору
func TestTaskHandler_GetTask(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		taskID         string
		setupMock      func(*MockTaskService)
		expectedStatus int
	}{
		{
			name:   "success - found",
			taskID: "task-1",
			setupMock: func(m *MockTaskService) {
				m.On("GetTaskByID", mock.Anything, "task-1").Return(&models.Task{
					ID:        "task-1",
					Title:     "Встреча",
					StartTime: &start,
					Duration:  60,
				}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "error - not found",
			taskID: "missing",
			setupMock: func(m *MockTaskService) {
				m.On("GetTaskByID", mock.Anything, "missing").
					Return(nil, service.NewNotFound("задача", "missing"))
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockTaskService)
			tt.setupMock(mockService)

			handler := handlers.NewTaskHandler(mockService)

			req := httptest.NewRequest("GET", "/tasks/"+tt.taskID, nil)
			req = withURLParam(req, "id", tt.taskID)
			w := httptest.NewRecorder()

			handler.GetTask(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

// TestInsightHandler_GetInsights тестирует фильтры списка инсайтов
func TestInsightHandler_GetInsights(t *testing.T) {
	mockService := new(MockInsightService)
	mockService.On("List", mock.Anything, mock.MatchedBy(func(f repository.InsightFilter) bool {
		return f.IsRead != nil && *f.IsRead == false && f.IsFavorite == nil
	})).Return([]*models.Insight{{ID: "insight-1"}}, nil)

	handler := handlers.NewInsightHandler(mockService)

	req := httptest.NewRequest("GET", "/insights?is_read=false", nil)
	w := httptest.NewRecorder()

	handler.GetInsights(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

// TestInsightHandler_GetInsights_BadFilter — нечитаемый фильтр отклоняется
func TestInsightHandler_GetInsights_BadFilter(t *testing.T) {
	handler := handlers.NewInsightHandler(new(MockInsightService))

	req := httptest.NewRequest("GET", "/insights?is_read=banana", nil)
	w := httptest.NewRecorder()

	handler.GetInsights(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// TestInsightHandler_GenerateInsights — тело запроса опционально
func TestInsightHandler_GenerateInsights(t *testing.T) {
	mockService := new(MockInsightService)
	mockService.On("Generate", mock.Anything, "").
		Return([]*models.Insight{{ID: "insight-1", Title: "暗时间挖掘：午休时间"}}, nil)

	handler := handlers.NewInsightHandler(mockService)

	req := httptest.NewRequest("POST", "/insights/generate", bytes.NewBufferString(""))
	w := httptest.NewRecorder()

	handler.GenerateInsights(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

// TestInsightHandler_MarkRead тестирует пометку о прочтении
func TestInsightHandler_MarkRead(t *testing.T) {
	mockService := new(MockInsightService)
	mockService.On("MarkRead", mock.Anything, "insight-1").
		Return(&models.Insight{ID: "insight-1", IsRead: true}, nil)

	handler := handlers.NewInsightHandler(mockService)

	req := httptest.NewRequest("POST", "/insights/insight-1/read", nil)
	req = withURLParam(req, "id", "insight-1")
	w := httptest.NewRecorder()

	handler.MarkRead(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"is_read":true`)
}

// TestChatHandler_PostMessage тестирует отправку сообщения ассистенту
func TestChatHandler_PostMessage(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    string
		setupMock      func(*MockChatService)
		expectedStatus int
	}{
		{
			name:        "success - reply returned",
			requestBody: `{"session_id": "session-1", "content": "帮我规划一天"}`,
			setupMock: func(m *MockChatService) {
				m.On("SendMessage", mock.Anything, "session-1", "帮我规划一天").
					Return(&models.ChatMessage{
						ID:        "msg-1",
						SessionID: "session-1",
						Role:      models.RoleAssistant,
						Content:   "建议从深度工作开始",
					}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "error - llm unavailable",
			requestBody: `{"session_id": "session-1", "content": "hi"}`,
			setupMock: func(m *MockChatService) {
				m.On("SendMessage", mock.Anything, "session-1", "hi").
					Return(nil, service.NewUnavailable("llm", errors.New("timeout")))
			},
			expectedStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockChatService)
			tt.setupMock(mockService)

			handler := handlers.NewChatHandler(mockService)

			req := httptest.NewRequest("POST", "/chat/messages", bytes.NewBufferString(tt.requestBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.PostMessage(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

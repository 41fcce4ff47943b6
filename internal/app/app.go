package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"

	"github.com/long2333z/ai-time-menagement/internal/config"
	"github.com/long2333z/ai-time-menagement/internal/handlers"
	"github.com/long2333z/ai-time-menagement/internal/insights"
	"github.com/long2333z/ai-time-menagement/internal/llm"
	"github.com/long2333z/ai-time-menagement/internal/logger"
	"github.com/long2333z/ai-time-menagement/internal/middleware"
	"github.com/long2333z/ai-time-menagement/internal/parser"
	chatinmemory "github.com/long2333z/ai-time-menagement/internal/repository/chat/inmemory"
	chatpostgres "github.com/long2333z/ai-time-menagement/internal/repository/chat/postgres"
	insightinmemory "github.com/long2333z/ai-time-menagement/internal/repository/insight/inmemory"
	insightpostgres "github.com/long2333z/ai-time-menagement/internal/repository/insight/postgres"
	taskinmemory "github.com/long2333z/ai-time-menagement/internal/repository/task/inmemory"
	taskpostgres "github.com/long2333z/ai-time-menagement/internal/repository/task/postgres"
	"github.com/long2333z/ai-time-menagement/internal/service"
	"github.com/long2333z/ai-time-menagement/internal/worker"
	"github.com/long2333z/ai-time-menagement/migrations"
)

// App собирает зависимости сервиса и управляет их жизненным циклом
type App struct {
	config    *config.Config
	server    *http.Server
	worker    *worker.InsightWorker
	shutdowns []func() // функции для graceful shutdown, вызываются в обратном порядке
}

func New(cfg *config.Config) *App {
	return &App{
		config:    cfg,
		shutdowns: make([]func(), 0),
	}
}

func (a *App) Init(ctx context.Context) error {
	// .env опционален, в проде переменные приходят из окружения
	_ = godotenv.Load()

	if err := logger.Init(a.config.Logging.Development); err != nil {
		return fmt.Errorf("инициализация логгера: %w", err)
	}
	a.shutdowns = append(a.shutdowns, func() {
		logger.Info("Завершение работы логгирования...")
		logger.Sync()
	})

	taskRepo, insightRepo, chatRepo, err := a.initRepositories(ctx)
	if err != nil {
		return err
	}

	taskService := service.NewTaskService(taskRepo, parser.New(), parser.Locale(a.config.Parser.DefaultLocale))
	insightService := service.NewInsightService(taskRepo, insightRepo, insights.NewEngine())
	chatService := service.NewChatService(chatRepo, llm.NewClient(a.config.LLM))

	if a.config.Worker.Enabled {
		var interval *time.Duration
		if a.config.Worker.Interval > 0 {
			interval = &a.config.Worker.Interval
		}
		a.worker = worker.NewInsightWorker(insightService, interval)
	}

	a.server = &http.Server{
		Addr:    a.config.GetServerAddr(),
		Handler: a.buildRouter(taskService, insightService, chatService),
	}

	return nil
}

func (a *App) initRepositories(ctx context.Context) (service.TaskRepository, service.InsightRepository, service.ChatRepository, error) {
	if a.config.Repository.Type != "postgres" {
		logger.Info("Хранилище: inmemory")
		return taskinmemory.NewStorage(), insightinmemory.NewStorage(), chatinmemory.NewStorage(), nil
	}

	db := a.config.Database
	taskRepo, err := taskpostgres.New(ctx, db.URL, db.MaxConnections, db.MinConnections, db.IdleTimeout)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("подключение к postgres: %w", err)
	}
	a.shutdowns = append(a.shutdowns, func() {
		logger.Info("Закрытие пула соединений...")
		taskRepo.Close()
	})

	if err := runMigrations(db.URL); err != nil {
		return nil, nil, nil, fmt.Errorf("миграции: %w", err)
	}

	logger.Info("Хранилище: postgres")
	// инсайты и чат работают через общий пул задачного хранилища
	return taskRepo, insightpostgres.New(taskRepo.Pool()), chatpostgres.New(taskRepo.Pool()), nil
}

func runMigrations(databaseURL string) error {
	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("чтение встроенных миграций: %w", err)
	}

	// драйвер migrate для pgx/v5 регистрируется под схемой pgx5
	migrateURL := databaseURL
	if rest, ok := strings.CutPrefix(migrateURL, "postgres://"); ok {
		migrateURL = "pgx5://" + rest
	} else if rest, ok := strings.CutPrefix(migrateURL, "postgresql://"); ok {
		migrateURL = "pgx5://" + rest
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, migrateURL)
	if err != nil {
		return fmt.Errorf("инициализация мигратора: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("применение миграций: %w", err)
	}
	return nil
}

func (a *App) buildRouter(taskService handlers.TaskService, insightService handlers.InsightService, chatService handlers.ChatService) *chi.Mux {
	taskHandler := handlers.NewTaskHandler(taskService)
	insightHandler := handlers.NewInsightHandler(insightService)
	chatHandler := handlers.NewChatHandler(chatService)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.RateLimit(100))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Route("/tasks", func(r chi.Router) {
		r.Get("/", taskHandler.GetTasks)         // GET /tasks
		r.Post("/", taskHandler.PostTask)        // POST /tasks
		r.Post("/extract", taskHandler.ExtractTasks) // POST /tasks/extract

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", taskHandler.GetTask)       // GET /tasks/{id}
			r.Patch("/", taskHandler.PatchTask)   // PATCH /tasks/{id}
			r.Delete("/", taskHandler.DeleteTask) // DELETE /tasks/{id}
		})
	})

	r.Route("/insights", func(r chi.Router) {
		r.Get("/", insightHandler.GetInsights)            // GET /insights
		r.Post("/generate", insightHandler.GenerateInsights) // POST /insights/generate

		r.Route("/{id}", func(r chi.Router) {
			r.Post("/read", insightHandler.MarkRead)           // POST /insights/{id}/read
			r.Post("/favorite", insightHandler.ToggleFavorite) // POST /insights/{id}/favorite
		})
	})

	r.Get("/analysis/blocks", insightHandler.AnalyzeBlocks) // GET /analysis/blocks

	r.Route("/chat", func(r chi.Router) {
		r.Post("/messages", chatHandler.PostMessage) // POST /chat/messages
		r.Get("/messages", chatHandler.GetMessages)  // GET /chat/messages
	})

	r.Get("/health", taskHandler.Health)

	return r
}

// Run запускает HTTP-сервер и воркер, блокируется до отмены контекста
func (a *App) Run(ctx context.Context) error {
	if a.worker != nil {
		go a.worker.Start(ctx)
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Сервер запущен", zap.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http-сервер: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	logger.Info("Остановка сервера...")
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Ошибка остановки сервера", err)
	}

	for i := len(a.shutdowns) - 1; i >= 0; i-- {
		a.shutdowns[i]()
	}
	return nil
}

package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"devboard/internal/config"
	"devboard/internal/handler"
	"devboard/internal/middleware"
	"devboard/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Server struct {
	Engine *gin.Engine
	DB     *gorm.DB
	Config *config.Config
	Logger *zap.Logger
}

func Init(cfg *config.Config, logger *zap.Logger) (*Server, error) {
	var (
		projectRepo repository.ProjectRepositoryInterface
		taskRepo    repository.TaskRepositoryInterface
		db          *gorm.DB
	)

	if cfg.IsDevelopment() {
		// Mock backend: seeded in-memory collections with simulated latency.
		log.Println("🛠️  Mock API enabled")
		projectRepo = repository.NewMemoryProjectRepository(repository.MockLatency, repository.SeedProjects())
		taskRepo = repository.NewMemoryTaskRepository(repository.MockLatency, repository.SeedTasks())
	} else {
		if err := runMigrations(cfg); err != nil {
			return nil, fmt.Errorf("❌ failed to run migrations: %w", err)
		}

		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
		)
		var err error
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("❌ failed to connect to DB: %w", err)
		}
		log.Println("✅ Connected to database")

		projectRepo = repository.NewProjectRepository(db)
		taskRepo = repository.NewTaskRepository(db)
	}

	// Setup Gin
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(logger))

	// Initialize handlers
	projectHandler := handler.NewProjectHandler(projectRepo)
	taskHandler := handler.NewTaskHandler(taskRepo)
	oauthHandler := handler.NewOAuthHandler(cfg)

	// Project routes
	r.GET("/projects", projectHandler.GetAll)
	r.POST("/projects", projectHandler.Create)
	r.PUT("/projects/:slug", projectHandler.Update)
	r.DELETE("/projects/:slug", projectHandler.Delete)

	// Task routes
	r.GET("/tasks", taskHandler.GetAll)
	r.POST("/tasks", taskHandler.Create)
	r.PUT("/tasks/:id", taskHandler.Update)
	r.DELETE("/tasks/:id", taskHandler.Delete)

	// OAuth routes
	r.GET("/oauth/exchange", oauthHandler.Exchange)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return &Server{
		Engine: r,
		DB:     db,
		Config: cfg,
		Logger: logger,
	}, nil
}

func runMigrations(cfg *config.Config) error {
	m, err := migrate.New(
		"file://"+cfg.MigrationsPath,
		fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
			cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName,
		),
	)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

func (s *Server) Run() {
	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: s.Engine,
	}

	go func() {
		log.Printf("🚀 Server running on port %s\n", s.Config.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %s", err)
	}

	log.Println("✅ Server exited properly")
}

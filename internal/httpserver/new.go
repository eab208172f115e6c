package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"todo-list/internal/middleware"
	"todo-list/internal/todo"
	"todo-list/pkg/log"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Task domain
	todoUC     todo.UseCase
	middleware middleware.Config
}

// Config is the dependency bag passed to New().
type Config struct {
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	// Task domain
	TodoUseCase todo.UseCase
	Middleware  middleware.Config
}

// New creates a new HTTPServer instance and mounts every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		todoUC:          cfg.TodoUseCase,
		middleware:      cfg.Middleware,
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = defaultShutdownTimeout
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.todoUC == nil {
		return errors.New("todo usecase is required")
	}
	return nil
}

// Handler exposes the mounted engine, used by tests and embedding callers.
func (srv HTTPServer) Handler() *gin.Engine {
	return srv.gin
}

package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	emailHTTP "rag-assistant/internal/email/delivery/http"
	"rag-assistant/internal/middleware"
	promptHTTP "rag-assistant/internal/orchestrator/delivery/http"
	"rag-assistant/pkg/log"
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

	mw middleware.Middleware

	// Domains
	promptHandler promptHTTP.Handler
	emailHandler  emailHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	CORSOrigins    []string
	RequestsPerMin int

	PromptHandler promptHTTP.Handler
	// EmailHandler is optional; without it the mail routes are not mounted.
	EmailHandler emailHTTP.Handler
}

// New creates a new HTTPServer instance and maps its routes.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		mw: middleware.New(logger, middleware.Config{
			CORSOrigins:    cfg.CORSOrigins,
			RequestsPerMin: cfg.RequestsPerMin,
		}),
		promptHandler: cfg.PromptHandler,
		emailHandler:  cfg.EmailHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers()
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
	if srv.promptHandler == nil {
		return errors.New("prompt handler is required")
	}
	return nil
}

// Handler exposes the routed engine, mainly for tests.
func (srv HTTPServer) Handler() *gin.Engine {
	return srv.gin
}

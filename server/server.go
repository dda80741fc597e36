package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"
	"github.com/microcosm-cc/bluemonday"

	"github.com/umputun/nudger/pkg/domain"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/gater.go -pkg mocks -skip-ensure -fmt goimports . Gater
//go:generate moq -out mocks/subjects.go -pkg mocks -skip-ensure -fmt goimports . SubjectProvider
//go:generate moq -out mocks/viewers.go -pkg mocks -skip-ensure -fmt goimports . ViewerResolver

// Server represents HTTP server instance
type Server struct {
	config   ConfigProvider
	subjects SubjectProvider
	gate     Gater
	viewers  ViewerResolver
	version  string
	debug    bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
	sanitizer  *bluemonday.Policy
}

// Gater makes show/hide decisions and applies viewer responses
type Gater interface {
	CanShow(ctx context.Context, subj *domain.Subject, viewer, screen string) (bool, error)
	Dispatch(ctx context.Context, subj *domain.Subject, viewer, screen string, action domain.Action) error
}

// SubjectProvider gives access to registered subjects
type SubjectProvider interface {
	Get(slug string) (*domain.Subject, bool)
	All() []*domain.Subject
}

// ViewerResolver extracts the viewer id from a request, empty if unresolvable
type ViewerResolver interface {
	Viewer(r *http.Request) string
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// New initializes a new server instance
func New(cfg ConfigProvider, subjects SubjectProvider, gate Gater, viewers ViewerResolver, version string, debug bool) *Server {
	s := &Server{
		config:    cfg,
		subjects:  subjects,
		gate:      gate,
		viewers:   viewers,
		version:   version,
		debug:     debug,
		router:    routegroup.New(http.NewServeMux()),
		sanitizer: bluemonday.UGCPolicy(),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("nudger", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /nudges", s.listHandler)
		r.HandleFunc("GET /nudges/{slug}", s.nudgeHandler)
		r.HandleFunc("POST /nudges/{slug}/action", s.actionHandler)
	})
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}

package httpserver

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"careerbot/backend/internal/config"
	"careerbot/backend/internal/logging"
	authusecase "careerbot/backend/internal/usecase/auth"
	chatusecase "careerbot/backend/internal/usecase/chat"
	userusecase "careerbot/backend/internal/usecase/user"
)

// Services bundles the use cases the HTTP layer dispatches to.
type Services struct {
	Auth *authusecase.Service
	User *userusecase.Service
	Chat *chatusecase.Service
}

// Server wraps the HTTP server lifecycle.
type Server struct {
	httpServer  *http.Server
	router      *http.ServeMux
	handler     http.Handler
	authService *authusecase.Service
	userService *userusecase.Service
	chatService *chatusecase.Service
	sessions    sessionManager
	pages       *pages
	publicPaths map[string]struct{}
	apiPaths    map[string]struct{}
	log         logging.Logger
	addr        string
}

// NewServer constructs a new Server with configured dependencies.
func NewServer(cfg config.Config, services Services, log logging.Logger) (*Server, error) {
	if log == nil {
		log = logging.Discard()
	}
	pg, err := loadPages()
	if err != nil {
		return nil, fmt.Errorf("load pages: %w", err)
	}

	addr := cfg.HTTPPort
	if !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	srv := &Server{
		router:      http.NewServeMux(),
		authService: services.Auth,
		userService: services.User,
		chatService: services.Chat,
		sessions:    sessionManager{cookieName: cfg.SessionCookie, secure: cfg.SecureCookies},
		pages:       pg,
		publicPaths: pathSet(cfg.PublicPaths),
		apiPaths:    pathSet(cfg.APIPaths),
		log:         log,
		addr:        addr,
	}
	srv.registerRoutes()

	srv.handler = withLogging(withCORS(srv.loadSession(srv.authGate(srv.router)), cfg.AllowedOrigins), log)
	srv.httpServer = &http.Server{
		Addr:         addr,
		Handler:      srv.handler,
		ReadTimeout:  time.Duration(cfg.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeoutSec) * time.Second,
		IdleTimeout:  time.Duration(cfg.IdleTimeoutSec) * time.Second,
	}
	return srv, nil
}

// Start serves until Shutdown is called.
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// Handler returns the fully wrapped handler chain.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Addr returns the configured network address for the HTTP server.
func (s *Server) Addr() string {
	return s.addr
}

func pathSet(paths []string) map[string]struct{} {
	set := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		set[p] = struct{}{}
	}
	return set
}

// Package httpapi exposes the authentication service over HTTP. Every
// request passes the origin gate first; protected routes additionally
// require a valid session cookie.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/loginkeeper/internal/logging"
	"github.com/dmitrijs2005/loginkeeper/internal/server/auth"
	"github.com/dmitrijs2005/loginkeeper/internal/server/users"
)

type Server struct {
	address string
	logger  logging.Logger
	users   *users.Service
	issuer  *auth.Issuer
	engine  *gin.Engine
}

func NewServer(address string, l logging.Logger, us *users.Service, issuer *auth.Issuer, allowedOrigins []string) *Server {
	s := &Server{
		address: address,
		logger:  l.With("module", "http_server"),
		users:   us,
		issuer:  issuer,
	}
	s.engine = s.buildRouter(allowedOrigins)
	return s
}

// Handler returns the fully wired HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) buildRouter(allowedOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	// Origin gate: requests without an Origin header pass (same-origin and
	// server-to-server calls), listed origins pass, everything else is
	// rejected here before any handler runs. Exact matches only.
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = allowedOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	router.Use(cors.New(corsConfig))

	router.GET("/", s.handleRoot)
	router.POST("/register", s.handleRegister)
	router.POST("/login", s.handleLogin)
	router.POST("/logout", s.handleLogout)
	router.GET("/me", s.RequireSession(), s.handleMe)

	return router
}

// Run starts the HTTP server and shuts it down gracefully when ctx is
// cancelled.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.engine,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

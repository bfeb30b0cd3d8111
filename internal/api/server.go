package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/daan/miniblog/internal/api/handler"
	"github.com/daan/miniblog/internal/api/middleware"
	"github.com/daan/miniblog/internal/api/session"
	"github.com/daan/miniblog/internal/core/service"
	"github.com/daan/miniblog/pkg/config"
	"github.com/gin-gonic/gin"
)

type Server struct {
	router *gin.Engine
	srv    *http.Server
	config *config.Config
}

// NewServer creates a new API server
func NewServer(
	cfg *config.Config,
	authService *service.AuthService,
	postService *service.PostService,
	sessions *session.Manager,
) *Server {
	// Set Gin mode
	if !cfg.IsDevMode() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandlerMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, sessions)
	postHandler := handler.NewPostHandler(postService)

	authMiddleware := middleware.AuthMiddleware(authService, sessions)

	RegisterRoutes(router, authMiddleware, authHandler, postHandler)

	return &Server{
		router: router,
		config: cfg,
	}
}

// RegisterRoutes wires the endpoint contract onto the router.
func RegisterRoutes(
	router *gin.Engine,
	authMiddleware gin.HandlerFunc,
	authHandler *handler.AuthHandler,
	postHandler *handler.PostHandler,
) {
	// Public routes (no auth required)
	router.POST("/signup", authHandler.Signup)
	router.POST("/login", authHandler.Login)
	router.POST("/token", authHandler.Token)

	// Reading posts is public
	router.GET("/posts", postHandler.ListPosts)
	router.GET("/posts/:id", postHandler.GetPost)

	// Protected routes (auth required)
	router.GET("/logout", authMiddleware, authHandler.Logout)
	router.POST("/posts", authMiddleware, postHandler.CreatePost)
	router.PUT("/posts/:id", authMiddleware, postHandler.UpdatePost)
	router.DELETE("/posts/:id", authMiddleware, postHandler.DeletePost)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})
}

// Start starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.APIHost, s.config.APIPort)

	s.srv = &http.Server{
		Addr:           addr,
		Handler:        s.router,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20, // 1 MB
	}

	// Start with or without SSL
	if s.config.SSLCert != "" && s.config.SSLKey != "" {
		fmt.Printf("Starting HTTPS server on %s\n", addr)
		return s.srv.ListenAndServeTLS(s.config.SSLCert, s.config.SSLKey)
	}

	fmt.Printf("Starting HTTP server on %s\n", addr)
	return s.srv.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv != nil {
		return s.srv.Shutdown(ctx)
	}
	return nil
}

// Package api hosts the HTTP server: session setup, route groups and the
// wiring between page controllers and services.
package api

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/lingolog/lingolog/api/auth"
	"github.com/lingolog/lingolog/api/handler"
	"github.com/lingolog/lingolog/catalog"
	"github.com/lingolog/lingolog/config"
	"github.com/lingolog/lingolog/database"
	"github.com/lingolog/lingolog/progress"
)

type Server struct {
	cfg       *config.Config
	ginEngine *gin.Engine
	db        database.DB
	catalog   *catalog.Service
	progress  *progress.Service
}

func New(cfg *config.Config, db database.DB, debug bool) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if !debug {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		cfg:       cfg,
		ginEngine: gin.Default(),
		db:        db,
		catalog:   catalog.New(db),
		progress:  progress.New(db, cfg.DefaultDailyTarget),
	}
	s.setupRoutes()
	return s, nil
}

func (s *Server) setupSession() {
	store := cookie.NewStore([]byte(s.cfg.SessionKey))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   s.cfg.SessionMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	s.ginEngine.Use(sessions.Sessions("lingolog_session", store))
}

func (s *Server) setupRoutes() {
	s.setupSession()
	s.ginEngine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := auth.New(s.db)
	h := handler.New(s.catalog, s.progress)

	authGroup := s.ginEngine.Group("/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	authGroup.POST("/logout", authHandler.Logout)

	api := s.ginEngine.Group("/api")
	api.Use(authHandler.RequireAuth())

	api.GET("/me", h.Me)
	api.GET("/videos", h.ListVideos)
	api.POST("/videos/:id/watch", h.MarkWatched)
	api.GET("/progress", h.Progress)
	api.GET("/progress/calendar", h.Calendar)
	api.POST("/progress/manual", h.LogManualTime)
	api.GET("/progress/target", h.GetTarget)
	api.POST("/progress/target", h.SetTarget)

	adminHandler := handler.NewAdmin(s.db, s.catalog, s.progress)
	admin := s.ginEngine.Group("/admin")
	admin.Use(authHandler.RequireAuth(), authHandler.RequireAdmin())

	admin.POST("/videos", adminHandler.AddVideo)
	admin.GET("/users", adminHandler.ListUsers)
	admin.POST("/users/:id/target", adminHandler.SetUserTarget)
}

func (s *Server) Run() error {
	return s.ginEngine.Run(s.cfg.Listen)
}

// Router exposes the gin engine, used by tests.
func (s *Server) Router() http.Handler {
	return s.ginEngine
}

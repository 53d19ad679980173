// Package server exposes the task collection over HTTP. Every route is a
// credential check, a gateway round trip, an optional in-memory projection
// and a JSON response; the server itself holds no task state.
package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/vishant-raz/notion-gpt-api/internal/config"
	"github.com/vishant-raz/notion-gpt-api/internal/logger"
	"github.com/vishant-raz/notion-gpt-api/internal/notion"
)

// Server is the HTTP façade over the task collection
type Server struct {
	cfg     *config.Config
	gateway notion.Gateway
	echo    *echo.Echo
}

// New creates a new server backed by the given gateway
func New(cfg *config.Config, gateway notion.Gateway) *Server {
	s := &Server{
		cfg:     cfg,
		gateway: gateway,
	}
	s.setupEcho()
	return s
}

func (s *Server) setupEcho() {
	e := echo.New()
	e.HideBanner = true

	// Custom logging middleware
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()

			logger.Debug("HTTP Request",
				logger.F("method", req.Method),
				logger.F("uri", req.RequestURI),
				logger.F("remote", req.RemoteAddr))

			err := next(c)

			res := c.Response()
			duration := time.Since(start)

			logger.Info("HTTP Response",
				logger.F("method", req.Method),
				logger.F("uri", req.RequestURI),
				logger.F("status", res.Status),
				logger.F("size", res.Size),
				logger.F("duration", duration.String()))

			if s.cfg.Debug {
				fmt.Printf("REQUEST: %s %s  status=%d  size=%d  duration=%s\n",
					req.Method, req.RequestURI, res.Status, res.Size, duration)
			}

			return err
		}
	})

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORS())

	// Liveness check, the only unauthenticated route
	e.GET("/", s.handleHome)

	protected := e.Group("")
	protected.Use(s.requireAPIKey)

	// CRUD endpoints
	protected.POST("/create", s.handleCreate)
	protected.GET("/fetch", s.handleFetch)
	protected.POST("/update", s.handleUpdate)
	protected.POST("/delete", s.handleDelete)

	// Smart endpoints
	protected.GET("/search", s.handleSearch)
	protected.GET("/filter", s.handleFilter)
	protected.GET("/grouped", s.handleGrouped)
	protected.GET("/get-task", s.handleGetTask)
	protected.GET("/status-counts", s.handleStatusCounts)
	protected.POST("/duplicate", s.handleDuplicate)
	protected.POST("/complete", s.handleComplete)
	protected.GET("/daily-summary", s.handleDailySummary)

	s.echo = e
}

// Router returns the HTTP handler
func (s *Server) Router() http.Handler {
	return s.echo
}

// Start starts the server
func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

func (s *Server) handleHome(c echo.Context) error {
	return c.String(http.StatusOK, "🚀 Notion GPT API is running!")
}

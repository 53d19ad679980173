package server

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/vishant-raz/notion-gpt-api/internal/logger"
)

// requireAPIKey checks the shared-secret header before any route logic runs
func (s *Server) requireAPIKey(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		key := c.Request().Header.Get("X-API-Key")
		if subtle.ConstantTimeCompare([]byte(key), []byte(s.cfg.APIKey)) != 1 {
			logger.Warn("Rejected request with bad API key",
				logger.F("uri", c.Request().RequestURI),
				logger.F("remote", c.Request().RemoteAddr))
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
		}
		return next(c)
	}
}

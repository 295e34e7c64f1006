package transport

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/Rogue-Bear-Innovations/bookmarks-api/internal/service"
)

// AuthMiddleware lets a request through only when the second word of its Authorization
// header equals the configured API token.
func (s *HTTPServer) AuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !s.authorized(c.Request().Header.Get(echo.HeaderAuthorization)) {
			s.logger.Errorf("Unauthorized request to path: %s", c.Request().URL.Path)
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized request"})
		}
		return next(c)
	}
}

func (s *HTTPServer) authorized(header string) bool {
	parts := strings.Split(header, " ")
	if len(parts) < 2 || parts[1] == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(parts[1]), []byte(s.cfg.APIToken)) == 1
}

// LoadBookmark resolves the :id path param and stores the bookmark on the request context.
func (s *HTTPServer) LoadBookmark(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Param("id")
		bookmark, err := s.store.GetByID(c.Request().Context(), id)
		if errors.Is(err, service.ErrBookmarkNotFound) {
			return s.bookmarkNotFound(c, id)
		}
		if err != nil {
			return errors.Wrap(err, "get bookmark")
		}

		c.Set(bookmarkContextKey, bookmark)
		return next(c)
	}
}

// RequestLogger writes one access log line per request. Handler errors are not yet written
// when this runs, so their status is taken from the error itself.
func (s *HTTPServer) RequestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogError:   true,
		LogLatency: true,
		LogMethod:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			status := v.Status
			if v.Error != nil {
				status = http.StatusInternalServerError
				var he *echo.HTTPError
				if errors.As(v.Error, &he) {
					status = he.Code
				}
			}

			fields := []interface{}{
				"method", v.Method,
				"uri", v.URI,
				"status", status,
				"latency", v.Latency,
			}
			if !s.cfg.IsProduction() {
				fields = append(fields, "ip", c.RealIP(), "user_agent", c.Request().UserAgent())
			}

			switch {
			case status >= http.StatusInternalServerError:
				s.logger.Errorw("request", append(fields, "error", v.Error)...)
			case status >= http.StatusBadRequest:
				s.logger.Warnw("request", fields...)
			default:
				s.logger.Infow("request", fields...)
			}
			return nil
		},
	})
}

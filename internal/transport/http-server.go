package transport

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Rogue-Bear-Innovations/bookmarks-api/internal/config"
	"github.com/Rogue-Bear-Innovations/bookmarks-api/internal/models"
	"github.com/Rogue-Bear-Innovations/bookmarks-api/internal/validation"
)

type (
	// BookmarkStore is the data-access contract the handlers depend on.
	BookmarkStore interface {
		List(ctx context.Context) ([]models.Bookmark, error)
		GetByID(ctx context.Context, id string) (*models.Bookmark, error)
		Insert(ctx context.Context, b *models.Bookmark) error
		Delete(ctx context.Context, id string) error
	}

	HTTPServer struct {
		cfg    *config.Config
		store  BookmarkStore
		logger *zap.SugaredLogger
		newID  func() string
	}
)

// NewRouter builds the echo instance with every route and middleware attached.
func NewRouter(cfg *config.Config, store BookmarkStore, logger *zap.SugaredLogger) *echo.Echo {
	return newRouter(newInstance(cfg, store, logger))
}

func newRouter(instance *HTTPServer) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(instance.RequestLogger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.Secure())
	e.Use(instance.AuthMiddleware)

	e.Validator = validation.New()
	e.HTTPErrorHandler = instance.ErrorHandler

	e.GET("/", func(c echo.Context) error { return c.String(http.StatusOK, "Hello, world!") })

	bookmarkG := e.Group("/bookmarks")
	bookmarkG.GET("", instance.BookmarkList)
	bookmarkG.POST("", instance.BookmarkCreate)
	bookmarkG.GET("/:id", instance.BookmarkGet, instance.LoadBookmark)
	bookmarkG.DELETE("/:id", instance.BookmarkDelete, instance.LoadBookmark)

	return e
}

// RunHTTPServer serves the router on the configured address for the lifetime of the app.
func RunHTTPServer(lc fx.Lifecycle, cfg *config.Config, e *echo.Echo, logger *zap.SugaredLogger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				listen := cfg.Listen()
				logger.Infow("Starting HTTP server.", "listen", listen, "env", cfg.Env)
				if err := e.Start(listen); err != nil && err != http.ErrServerClosed {
					logger.Fatalw("shutting down the server", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping HTTP server.")
			return e.Shutdown(ctx)
		},
	})
}

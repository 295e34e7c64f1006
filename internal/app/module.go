package app

import (
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/Rogue-Bear-Innovations/bookmarks-api/internal/config"
	"github.com/Rogue-Bear-Innovations/bookmarks-api/internal/db"
	"github.com/Rogue-Bear-Innovations/bookmarks-api/internal/logger"
	"github.com/Rogue-Bear-Innovations/bookmarks-api/internal/service"
	"github.com/Rogue-Bear-Innovations/bookmarks-api/internal/transport"
)

var (
	Module = fx.Options(
		fx.Provide(
			config.NewConfig,
			logger.New,
			logger.NewSugared,
			db.NewGormClient,
			fx.Annotate(service.NewBookmarks, fx.As(new(transport.BookmarkStore))),
			transport.NewRouter,
		),
		fx.WithLogger(func(l *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: l.Named("fx")}
		}),
	)
)

// New wires the HTTP service. Extra options are appended, which lets tests swap providers.
func New(opts ...fx.Option) *fx.App {
	return fx.New(append([]fx.Option{
		Module,
		fx.Invoke(transport.RunHTTPServer),
	}, opts...)...)
}

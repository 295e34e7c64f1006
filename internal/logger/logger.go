package logger

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Rogue-Bear-Innovations/bookmarks-api/internal/config"
)

// New builds the process logger: JSON at info level in production, console at debug level
// otherwise. LOG_FILE, when set, receives the same stream as stderr.
func New(cfg *config.Config) (*zap.Logger, error) {
	zc := zap.NewDevelopmentConfig()
	if cfg.IsProduction() {
		zc = zap.NewProductionConfig()
	}

	if cfg.LogFile != "" {
		zc.OutputPaths = append(zc.OutputPaths, cfg.LogFile)
	}

	l, err := zc.Build()
	if err != nil {
		return nil, errors.Wrap(err, "build zap logger")
	}
	return l, nil
}

// NewSugared exposes the sugared flavour used by services and handlers.
func NewSugared(l *zap.Logger) *zap.SugaredLogger {
	return l.Sugar()
}

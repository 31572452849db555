package bootstrap

import (
	"log/slog"

	"rentalflow/internal/handler/middleware"
	"rentalflow/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
		func(l *middleware.Logger) *slog.Logger {
			return l.GetSlogLogger()
		},
	),
)

// NewLogger builds the application logger from config. Constructed once here;
// everything else receives the resulting *slog.Logger through DI.
func NewLogger(cfg config.Config) *middleware.Logger {
	return middleware.NewLogger(cfg.Log)
}

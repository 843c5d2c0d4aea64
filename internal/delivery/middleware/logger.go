package middleware

import (
	"log/slog"
	"time"

	"tube/config"
	deliverycontext "tube/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware controllable logging middleware
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

// Handle logs one line per request when debug is enabled.
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.debug {
			return next(c)
		}

		start := time.Now()
		err := next(c)
		if err != nil {
			// Resolve the status before logging, the error handler runs after the chain.
			c.Error(err)
		}
		m.logRequest(c, start, err)

		return nil
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, err error) {
	req := c.Request()
	res := c.Response()
	latency := time.Since(start)

	fields := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.Int("status", res.Status),
		slog.Duration("latency", latency),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}

	if userID := deliverycontext.GetUserIDFromContext(req.Context()); userID != "" {
		fields = append(fields, slog.String("user_id", userID))
	}
	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	logLevel := slog.LevelInfo
	if res.Status >= 400 {
		logLevel = slog.LevelWarn
	}
	if res.Status >= 500 {
		logLevel = slog.LevelError
	}

	deliverycontext.GetLoggerOrDefault(req.Context(), m.logger).LogAttrs(req.Context(), logLevel, "HTTP Request", fields...)
}

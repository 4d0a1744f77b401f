package logger

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// FromContext returns the request-scoped logger set by the request ID
// middleware. Falls back to the global logger, tagged with the request
// ID when one is available.
func FromContext(c echo.Context) *zap.Logger {
	if log, ok := c.Get("logger").(*zap.Logger); ok {
		return log
	}

	log := GetLogger()
	if requestID, ok := c.Get("request_id").(string); ok && requestID != "" {
		log = log.With(zap.String("request_id", requestID))
	}
	return log
}

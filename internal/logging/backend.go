package logging

import (
	"net/url"
	"time"

	"go.uber.org/zap"
)

// LogBackendCall writes one debug line per outbound backend request. Query
// values are dropped from the logged URL since they carry customer names.
func LogBackendCall(logger *zap.Logger, method string, u *url.URL, status int, duration time.Duration) {
	logged := *u
	logged.RawQuery = ""

	logger.Debug("backend call",
		zap.String("method", method),
		zap.String("url", logged.String()),
		zap.Int("status", status),
		zap.Duration("duration", duration),
	)
}

package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AccessLogger appends one line per failed request to a plain-text log file.
// Successful responses (200/201) are not logged.
type AccessLogger struct {
	mu   sync.Mutex
	file *os.File
}

// NewAccessLogger opens (or creates) the log file at path for appending.
func NewAccessLogger(path string) (*AccessLogger, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open access log file: %w", err)
	}
	return &AccessLogger{file: f}, nil
}

// Close releases the underlying file handle.
func (al *AccessLogger) Close() error {
	return al.file.Close()
}

// Handler is the gin middleware. It also assigns a request id, returned in
// the X-Request-ID header, so failed requests can be correlated with traces.
func (al *AccessLogger) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		c.Next()
		duration := time.Since(start)

		status := c.Writer.Status()
		if status == http.StatusOK || status == http.StatusCreated {
			return
		}

		line := fmt.Sprintf("(%s) %s - %s %s %d (%s) (%.4fs)\n",
			start.Format("2006-01-02 15:04:05"),
			c.ClientIP(),
			c.Request.Method,
			c.Request.URL.Path,
			status,
			reason(status),
			duration.Seconds(),
		)

		al.mu.Lock()
		_, err := al.file.WriteString(line)
		al.mu.Unlock()
		if err != nil {
			// A broken log sink must not fail the request.
			slog.Error("failed to write access log line", "error", err, "request_id", requestID)
		}
	}
}

func reason(status int) string {
	switch {
	case status == http.StatusBadRequest:
		return "BAD REQUEST"
	case status == http.StatusUnauthorized:
		return "UNAUTHORIZED"
	case status == http.StatusForbidden:
		return "FORBIDDEN"
	case status == http.StatusNotFound:
		return "NOT FOUND"
	case status >= http.StatusInternalServerError:
		return "SERVER ERROR"
	default:
		return "OTHER ERROR"
	}
}

package transport

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portidem "github.com/quartermill/reviewdesk/internal/port/idempotency"
)

// noisyPaths are high-frequency read paths logged at Debug to keep Info clean.
var noisyPaths = map[string]bool{
	"/api/products":          true,
	"/api/agents":            true,
	"/api/reports/available": true,
}

func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		if c.Request.Method == "OPTIONS" {
			return
		}
		if c.Request.Method == "GET" && noisyPaths[c.Request.URL.Path] {
			return
		}

		slog.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS, PUT")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Idempotency-Key")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}

// storedResponse is the envelope persisted per idempotency key: the original
// status plus the response body, so a replay is byte-and-status identical.
type storedResponse struct {
	Status int             `json:"status"`
	Body   json.RawMessage `json:"body,omitempty"`
}

// IdempotencyMiddleware replays the stored response for POSTs that repeat an
// Idempotency-Key. Only successful (2xx) responses are recorded; a failed
// operation may be retried with the same key.
func IdempotencyMiddleware(store portidem.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost {
			c.Next()
			return
		}
		key := c.GetHeader("Idempotency-Key")
		if key == "" {
			c.Next()
			return
		}

		stored, found, err := store.Check(c.Request.Context(), key)
		if err != nil {
			slog.ErrorContext(c.Request.Context(), "idempotency check failed", "key", key, "error", err)
			c.Next()
			return
		}
		if found {
			var env storedResponse
			if err := json.Unmarshal(stored, &env); err != nil || env.Status == 0 {
				env = storedResponse{Status: http.StatusOK, Body: stored}
			}
			c.Header("Idempotency-Replayed", "true")
			if len(env.Body) == 0 {
				c.Status(env.Status)
			} else {
				c.Data(env.Status, "application/json", env.Body)
			}
			c.Abort()
			return
		}

		rec := &recordingWriter{ResponseWriter: c.Writer}
		c.Writer = rec
		c.Next()

		if status := c.Writer.Status(); status >= 200 && status < 300 {
			env := storedResponse{Status: status}
			if b := rec.body.Bytes(); len(b) > 0 {
				env.Body = b
			}
			payload, err := json.Marshal(env)
			if err != nil {
				slog.ErrorContext(c.Request.Context(), "idempotency encode failed", "key", key, "error", err)
				return
			}
			if err := store.Store(c.Request.Context(), key, c.FullPath(), payload); err != nil {
				slog.ErrorContext(c.Request.Context(), "idempotency store failed", "key", key, "error", err)
			}
		}
	}
}

type recordingWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *recordingWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *recordingWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

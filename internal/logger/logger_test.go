package logger_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Keoroanthony/go-cornerstore/internal/logger"
)

func setupLoggerTestRouter(t *testing.T) (*gin.Engine, *observer.ObservedLogs) {
	gin.SetMode(gin.TestMode)

	core, logs := observer.New(zapcore.DebugLevel)
	original := logger.Log
	logger.SetLogger(zap.New(core))
	t.Cleanup(func() {
		logger.SetLogger(original)
	})

	r := gin.New()
	r.Use(logger.RequestLogger())
	r.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": logger.RequestID(c)})
	})
	r.GET("/missing", func(c *gin.Context) {
		c.Status(http.StatusNotFound)
	})

	return r, logs
}

func TestRequestLogger(t *testing.T) {
	router, logs := setupLoggerTestRouter(t)

	t.Run("Generates a request id and logs at info level", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/ok", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
		requestID := recorder.Header().Get("X-Request-ID")
		assert.NotEmpty(t, requestID)
		assert.Contains(t, recorder.Body.String(), requestID)

		entries := logs.TakeAll()
		require.Len(t, entries, 1)
		assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
		assert.Equal(t, requestID, entries[0].ContextMap()["request_id"])
	})

	t.Run("Reuses an incoming request id", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ok", nil)
		req.Header.Set("X-Request-ID", "abc-123")
		router.ServeHTTP(recorder, req)

		assert.Equal(t, "abc-123", recorder.Header().Get("X-Request-ID"))
		logs.TakeAll()
	})

	t.Run("Logs client errors at warn level", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/missing", nil))

		entries := logs.TakeAll()
		require.Len(t, entries, 1)
		assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
		assert.Equal(t, int64(http.StatusNotFound), entries[0].ContextMap()["status"])
	})
}

func TestRequestIDOutsideGin(t *testing.T) {
	assert.Equal(t, "unknown", logger.RequestID(context.Background()))
}

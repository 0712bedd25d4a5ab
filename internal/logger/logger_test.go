package logger

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInit(t *testing.T) {
	originalLog := log
	defer func() { log = originalLog }()

	t.Run("Production", func(t *testing.T) {
		Init("production")
		assert.NotNil(t, log)
	})

	t.Run("Development", func(t *testing.T) {
		Init("development")
		assert.NotNil(t, log)
	})

	t.Run("Test", func(t *testing.T) {
		Init("test")
		assert.NotNil(t, log)
		assert.False(t, log.Core().Enabled(zapcore.ErrorLevel))
	})
}

func TestL(t *testing.T) {
	originalLog := log
	defer func() { log = originalLog }()

	// Force nil to test lazy initialization
	log = nil
	t.Setenv("APP_ENV", "test")

	l := L()
	assert.NotNil(t, l)
	assert.NotNil(t, log)
}

func TestReplace(t *testing.T) {
	originalLog := log
	nop := zap.NewNop()

	restore := Replace(nop)
	assert.Same(t, nop, L())

	restore()
	assert.Same(t, originalLog, log)
}

func TestContextFunctions(t *testing.T) {
	ctx := context.Background()

	t.Run("RequestID", func(t *testing.T) {
		newCtx := WithRequestID(ctx, "req-1")
		assert.Equal(t, "req-1", RequestIDFrom(newCtx))
		assert.Equal(t, "", RequestIDFrom(ctx))
	})

	t.Run("VisitorID", func(t *testing.T) {
		newCtx := WithVisitorID(ctx, "visitor-1")
		assert.Equal(t, "visitor-1", VisitorIDFrom(newCtx))
		assert.Equal(t, "", VisitorIDFrom(ctx))
	})
}

func TestFromCtx(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	defer Replace(zap.New(core))()

	t.Run("WithIDs", func(t *testing.T) {
		ctx := WithRequestID(context.Background(), "req-abc-123")
		ctx = WithVisitorID(ctx, "visitor-9")

		FromCtx(ctx).Info("test message with ids")

		logs := observed.TakeAll()
		assert.Len(t, logs, 1)
		fields := logs[0].ContextMap()
		assert.Equal(t, "req-abc-123", fields["request_id"])
		assert.Equal(t, "visitor-9", fields["visitor_id"])
	})

	t.Run("WithoutIDs", func(t *testing.T) {
		FromCtx(context.Background()).Info("test message without id")

		logs := observed.TakeAll()
		assert.Len(t, logs, 1)
		_, ok := logs[0].ContextMap()["request_id"]
		assert.False(t, ok)
	})
}

func TestSync(t *testing.T) {
	assert.NotPanics(t, func() {
		Sync()
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, RequestIDFrom(r.Context()))
	})

	handler := RequestIDMiddleware(nextHandler)

	t.Run("Generates ID when missing", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/test", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
	})

	t.Run("Preserves existing ID", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set(RequestIDHeader, "test-id-123")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, "test-id-123", w.Header().Get(RequestIDHeader))
	})
}

func TestLoggingMiddleware(t *testing.T) {
	tests := []struct {
		name  string
		code  int
		level zapcore.Level
	}{
		{name: "Success", code: http.StatusOK, level: zapcore.InfoLevel},
		{name: "Client error", code: http.StatusTeapot, level: zapcore.WarnLevel},
		{name: "Server error", code: http.StatusBadGateway, level: zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, observed := observer.New(zapcore.InfoLevel)
			defer Replace(zap.New(core))()

			handler := LoggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.code)
				_, _ = w.Write([]byte("body"))
			}))
			req := httptest.NewRequest("GET", "/test", nil)

			handler.ServeHTTP(httptest.NewRecorder(), req)

			logs := observed.TakeAll()
			require.Len(t, logs, 1)
			assert.Equal(t, "request served", logs[0].Message)
			assert.Equal(t, tt.level, logs[0].Level)
			assert.Equal(t, "/test", logs[0].ContextMap()["path"])
			assert.Equal(t, int64(tt.code), logs[0].ContextMap()["status"])
			assert.Equal(t, int64(4), logs[0].ContextMap()["bytes"])
		})
	}
}

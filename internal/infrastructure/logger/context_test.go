package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWithContext(t *testing.T) {
	logger, err := NewForEnvironment("development")
	require.NoError(t, err)

	ctx := context.Background()
	ctxWithLogger := WithContext(ctx, logger)

	retrievedLogger := FromContext(ctxWithLogger)
	assert.NotNil(t, retrievedLogger)
}

func TestFromContext_NotFound(t *testing.T) {
	ctx := context.Background()
	logger := FromContext(ctx)

	// Should return a no-op logger
	assert.NotNil(t, logger)
}

func TestWithRequestID(t *testing.T) {
	logger, err := NewForEnvironment("development")
	require.NoError(t, err)

	ctx := context.Background()
	requestID := "req-123"

	newCtx, newLogger := WithRequestID(ctx, logger, requestID)

	assert.NotNil(t, newLogger)
	assert.Equal(t, requestID, GetRequestID(newCtx))
}

func TestWithEmployeeID(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()
	employeeID := "emp-456"

	newCtx, newLogger := WithEmployeeID(ctx, logger, employeeID)

	assert.NotNil(t, newLogger)
	assert.Equal(t, employeeID, GetEmployeeID(newCtx))
}

func TestGetRequestID_NotFound(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetRequestID(ctx))
}

func TestGetEmployeeID_NotFound(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetEmployeeID(ctx))
}

func TestChainedContext(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	ctx, logger = WithRequestID(ctx, logger, "req-1")
	ctx, logger = WithEmployeeID(ctx, logger, "emp-1")

	assert.NotNil(t, logger)
	assert.Equal(t, "req-1", GetRequestID(ctx))
	assert.Equal(t, "emp-1", GetEmployeeID(ctx))
}

func TestContextKeys_Distinct(t *testing.T) {
	assert.NotEqual(t, RequestIDKey, EmployeeIDKey)
	assert.NotEqual(t, LoggerKey, RequestIDKey)
}

func TestContextLogger_EnrichesFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	ctx := context.Background()
	ctx, _ = WithRequestID(ctx, zap.NewNop(), "req-observe")
	ctx = WithContext(ctx, logger)

	L(ctx).Info("hello")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "req-observe", entries[0].ContextMap()["request_id"])
}

func TestContextLogger_NilSafe(t *testing.T) {
	cl := &ContextLogger{ctx: context.Background()}
	assert.NotPanics(t, func() {
		cl.Info("no logger attached")
	})
}

func TestWithLogger(t *testing.T) {
	logger := zap.NewNop()
	cl := WithLogger(context.Background(), logger)

	assert.NotNil(t, cl)
	assert.NotNil(t, cl.Zap())
}

func TestContextLogger_With(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	cl := WithLogger(context.Background(), logger).With(zap.String("component", "pipeline"))
	cl.Info("tagged")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "pipeline", entries[0].ContextMap()["component"])
}

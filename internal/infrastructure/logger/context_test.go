package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestWithContext_FromContext(t *testing.T) {
	t.Run("round trips logger through context", func(t *testing.T) {
		log := zap.NewNop()
		ctx := WithContext(context.Background(), log)
		assert.Same(t, log, FromContext(ctx))
	})

	t.Run("returns noop logger when absent", func(t *testing.T) {
		log := FromContext(context.Background())
		assert.NotNil(t, log)
		// Must not panic
		log.Info("ignored")
	})
}

func TestWithRequestID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	log := zap.New(core)

	ctx, enriched := WithRequestID(context.Background(), log, "req-123")
	enriched.Info("hello")

	assert.Equal(t, "req-123", GetRequestID(ctx))
	entries := logs.All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, "req-123", entries[0].ContextMap()["request_id"])
	}
}

func TestWithUserID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	log := zap.New(core)

	ctx, enriched := WithUserID(context.Background(), log, "user-42")
	enriched.Warn("careful")

	assert.Equal(t, "user-42", GetUserID(ctx))
	entries := logs.All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, "user-42", entries[0].ContextMap()["user_id"])
	}
}

func TestGetRequestID_Missing(t *testing.T) {
	assert.Empty(t, GetRequestID(context.Background()))
	assert.Empty(t, GetUserID(context.Background()))
}

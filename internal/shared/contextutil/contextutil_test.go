package contextutil_test

import (
	"context"
	"testing"

	"go-leave/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestMetadata(t *testing.T) {
	ctx := contextutil.WithRequestID(context.Background(), "rid-1")
	ctx = contextutil.WithUserID(ctx, "user-1")

	md := contextutil.ExtractMetadata(ctx)

	assert.Equal(t, "rid-1", md.RequestID)
	assert.Equal(t, "user-1", md.UserID)
	assert.Len(t, md.Fields(), 2)
	assert.Empty(t, contextutil.GetRequestID(context.Background()))
	assert.Empty(t, contextutil.ExtractMetadata(context.Background()).Fields())
}

func TestScopedLogger(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	base := zap.New(core).Named("request.service")

	ctx := contextutil.WithRequestID(context.Background(), "rid-1")
	ctx = contextutil.WithUserID(ctx, "user-1")

	contextutil.ScopedLogger(ctx, base).Info("request submitted")
	contextutil.ScopedLogger(context.Background(), base).Info("no metadata")

	entries := logs.All()
	require.Len(t, entries, 2)

	assert.Equal(t, "request.service", entries[0].LoggerName)
	fields := entries[0].ContextMap()
	assert.Equal(t, "rid-1", fields["request_id"])
	assert.Equal(t, "user-1", fields["user_id"])

	assert.Empty(t, entries[1].ContextMap())
}

func TestScopedLogger_NilBase(t *testing.T) {
	assert.NotNil(t, contextutil.ScopedLogger(context.Background(), nil))
}

package payment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestGateway_SandboxAcceptsRefund(t *testing.T) {
	g := NewGateway(true, newTestLogger(t))

	ok, err := g.Refund(context.Background(), "RES20260901120000ABCDEF", 20.0, "reservation refund")

	require.NoError(t, err)
	assert.True(t, ok)
}

func TestGateway_LiveModeRejectsUntilProviderWired(t *testing.T) {
	g := NewGateway(false, newTestLogger(t))

	ok, err := g.Refund(context.Background(), "RES20260901120000ABCDEF", 20.0, "reservation refund")

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGateway_CancelledContext(t *testing.T) {
	g := NewGateway(true, newTestLogger(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ok, err := g.Refund(ctx, "RES20260901120000ABCDEF", 20.0, "reservation refund")

	require.Error(t, err)
	assert.False(t, ok)
}

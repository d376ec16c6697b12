package contextutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRequestID(t *testing.T) {
	ctx := WithRequestID(context.Background(), "REQ-1")

	assert.Equal(t, "REQ-1", GetRequestID(ctx))
	assert.Equal(t, "", GetRequestID(context.Background()))
}

func TestGetLogger(t *testing.T) {
	scoped := zap.NewExample()
	fallback := zap.NewNop()

	assert.Same(t, scoped, GetLogger(WithLogger(context.Background(), scoped), fallback))
	assert.Same(t, fallback, GetLogger(context.Background(), fallback))
	assert.NotNil(t, GetLogger(context.Background(), nil))
}

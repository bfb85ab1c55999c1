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

func TestGetLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, getLevel("debug"))
	assert.Equal(t, zapcore.InfoLevel, getLevel("info"))
	assert.Equal(t, zapcore.WarnLevel, getLevel("warning"))
	assert.Equal(t, zapcore.WarnLevel, getLevel("warn"))
	assert.Equal(t, zapcore.ErrorLevel, getLevel("error"))
	assert.Equal(t, zapcore.DebugLevel, getLevel("verbose"))
}

func TestContextKeepsLogID(t *testing.T) {
	l := New("error")

	ctx := l.Context(context.Background())
	first := getAttrs(ctx)
	assert.Len(t, first, 1)

	again := l.Context(ctx)
	assert.Equal(t, first, getAttrs(again))
}

func TestWithRequestID(t *testing.T) {
	l := New("error")
	assert.Empty(t, RequestID(context.Background()))

	ctx := l.Context(context.Background())
	logID := getAttrs(ctx)[0]

	ctx = l.WithRequestID(ctx, "2Xk9")
	assert.Equal(t, "2Xk9", RequestID(ctx))

	attrs := getAttrs(ctx)
	assert.Len(t, attrs, 2)
	assert.Equal(t, logID, attrs[0])
	assert.Equal(t, requestKey, attrs[1].Key)
}

func TestContextWithCaptureLogsDuration(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := &logger{lg: zap.New(core).Sugar(), idGenerator: defaultIDGenerator()}

	ctx := l.WithRequestID(l.Context(context.Background()), "2Xk9")
	logID := getAttrs(ctx)[0]

	ctx, capture := l.ContextWithCapture(ctx, "upstream.branches")
	assert.Equal(t, "2Xk9", RequestID(ctx))
	capture(zap.Int("status", 200))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "upstream.branches", entries[0].Message)

	fields := entries[0].ContextMap()
	assert.Equal(t, logID.String, fields[logIDKey])
	assert.Equal(t, "2Xk9", fields[requestKey])
	assert.Contains(t, fields, durationKey)
	assert.EqualValues(t, 200, fields["status"])
}

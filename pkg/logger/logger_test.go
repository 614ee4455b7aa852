package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestHelpersWriteToGlobalLogger(t *testing.T) {
	prev := Log
	defer Set(prev)

	core, logs := observer.New(zapcore.DebugLevel)
	Set(zap.New(core))

	Debug("debug", zap.Int("n", 1))
	Info("info")
	Warn("warn")
	Error("error", zap.String("key", "tx.fee"))

	entries := logs.All()
	assert.Len(t, entries, 4)
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
	assert.Equal(t, "tx.fee", entries[3].ContextMap()["key"])
}

func TestInit(t *testing.T) {
	prev := Log
	defer Set(prev)

	for _, env := range []string{"production", "development"} {
		assert.NotPanics(t, func() { Init(env) }, env)
		assert.NotNil(t, Log)
	}
}

package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestInitializeSilentByDefault(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")
	require.NoError(t, Initialize(""))
	assert.False(t, L().Core().Enabled(zapcore.ErrorLevel))
}

func TestInitializeFromEnv(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "warn")
	require.NoError(t, Initialize(""))
	assert.True(t, L().Core().Enabled(zapcore.WarnLevel))
	assert.False(t, L().Core().Enabled(zapcore.InfoLevel))
	Set(nil)
}

func TestInitializeRejectsUnknownLevel(t *testing.T) {
	err := Initialize("chatty")
	assert.Error(t, err)
}

func TestSetNilInstallsNop(t *testing.T) {
	Set(zap.NewExample())
	Set(nil)
	assert.NotNil(t, L())
	assert.False(t, L().Core().Enabled(zapcore.ErrorLevel))
}

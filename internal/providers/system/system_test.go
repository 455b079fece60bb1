package system

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemInfo(t *testing.T) {
	p := NewProvider()

	result, err := p.Execute(context.Background(), "system.info", nil, nil)
	require.NoError(t, err)
	require.True(t, result.Success)

	assert.NotNil(t, result.Data["go_version"])
	assert.NotNil(t, result.Data["uptime_seconds"])
}

func TestSystemTime(t *testing.T) {
	p := NewProvider()

	result, err := p.Execute(context.Background(), "system.time", nil, nil)
	require.NoError(t, err)
	require.True(t, result.Success)

	assert.NotNil(t, result.Data["timestamp"])
	assert.NotNil(t, result.Data["iso"])
}

func TestSystemLogAndGetLogs(t *testing.T) {
	p := NewProvider()
	ctx := context.Background()

	logged, err := p.Execute(ctx, "system.log", map[string]interface{}{
		"message": "first entry",
		"level":   "warn",
	}, nil)
	require.NoError(t, err)
	require.True(t, logged.Success)

	result, err := p.Execute(ctx, "system.getLogs", map[string]interface{}{}, nil)
	require.NoError(t, err)
	require.True(t, result.Success)

	logs, ok := result.Data["logs"].([]LogEntry)
	require.True(t, ok)
	require.Len(t, logs, 1)
	assert.Equal(t, "first entry", logs[0].Message)
	assert.Equal(t, "warn", logs[0].Level)
}

func TestSystemGetLogsLevelFilter(t *testing.T) {
	p := NewProvider()
	ctx := context.Background()

	for _, level := range []string{"info", "error", "info"} {
		_, err := p.Execute(ctx, "system.log", map[string]interface{}{
			"message": "entry",
			"level":   level,
		}, nil)
		require.NoError(t, err)
	}

	result, err := p.Execute(ctx, "system.getLogs", map[string]interface{}{"level": "error"}, nil)
	require.NoError(t, err)

	logs := result.Data["logs"].([]LogEntry)
	assert.Len(t, logs, 1)
}

func TestSystemLogRequiresMessage(t *testing.T) {
	p := NewProvider()

	result, err := p.Execute(context.Background(), "system.log", map[string]interface{}{}, nil)
	require.NoError(t, err)
	assert.False(t, result.Success)
}

func TestSystemPing(t *testing.T) {
	p := NewProvider()

	result, err := p.Execute(context.Background(), "system.ping", nil, nil)
	require.NoError(t, err)
	require.True(t, result.Success)
	assert.Equal(t, true, result.Data["pong"])
}

func TestSystemUnknownTool(t *testing.T) {
	p := NewProvider()

	result, err := p.Execute(context.Background(), "system.bogus", nil, nil)
	require.NoError(t, err)
	assert.False(t, result.Success)
}

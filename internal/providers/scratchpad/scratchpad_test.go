package scratchpad

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/Scratchpad/backend/internal/sandbox"
	"github.com/GriffinCanCode/Scratchpad/backend/internal/types"
)

func newTestProvider(t *testing.T) *Provider {
	t.Helper()
	resolver, err := sandbox.New(t.TempDir(), zap.NewNop())
	require.NoError(t, err)
	return NewProvider(resolver, zap.NewNop())
}

func execute(t *testing.T, p *Provider, toolID string, params map[string]interface{}) *types.Result {
	t.Helper()
	result, err := p.Execute(context.Background(), toolID, params, nil)
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}

func mustCreate(t *testing.T, p *Provider, path, content string) {
	t.Helper()
	result := execute(t, p, "scratchpad.create_file", map[string]interface{}{
		"path":    path,
		"content": content,
	})
	require.True(t, result.Success, "create %s: %s", path, result.Message())
}

func mustCreateFolder(t *testing.T, p *Provider, path string) {
	t.Helper()
	result := execute(t, p, "scratchpad.create_folder", map[string]interface{}{
		"path": path,
	})
	require.True(t, result.Success, "create folder %s: %s", path, result.Message())
}

package scratchpad

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindByExtension(t *testing.T) {
	p := newTestProvider(t)
	mustCreate(t, p, "a.txt", "")
	mustCreate(t, p, "b.md", "")
	mustCreate(t, p, "sub/c.txt", "")

	result := execute(t, p, "scratchpad.find", map[string]interface{}{"pattern": "*.txt"})

	require.True(t, result.Success)
	assert.Equal(t, "a.txt\nsub/c.txt", result.Message())
}

func TestFindNoMatches(t *testing.T) {
	p := newTestProvider(t)
	mustCreate(t, p, "a.txt", "")

	result := execute(t, p, "scratchpad.find", map[string]interface{}{"pattern": "*.md"})

	require.True(t, result.Success)
	assert.Equal(t, "No files found", result.Message())
}

func TestFindInvalidPattern(t *testing.T) {
	p := newTestProvider(t)

	result := execute(t, p, "scratchpad.find", map[string]interface{}{"pattern": "[a-"})

	assert.False(t, result.Success)
}

func TestFindIgnoresFolders(t *testing.T) {
	p := newTestProvider(t)
	mustCreateFolder(t, p, "match.txt")
	mustCreate(t, p, "real.txt", "")

	result := execute(t, p, "scratchpad.find", map[string]interface{}{"pattern": "*.txt"})

	require.True(t, result.Success)
	assert.Equal(t, "real.txt", result.Message())
}

func TestGlobRecursive(t *testing.T) {
	p := newTestProvider(t)
	mustCreate(t, p, "notes/2026/jan.md", "")
	mustCreate(t, p, "notes/feb.md", "")
	mustCreate(t, p, "other.md", "")

	result := execute(t, p, "scratchpad.glob", map[string]interface{}{"pattern": "notes/**/*.md"})

	require.True(t, result.Success)
	assert.Equal(t, "notes/2026/jan.md\nnotes/feb.md", result.Message())
}

func TestGlobNoMatches(t *testing.T) {
	p := newTestProvider(t)
	mustCreate(t, p, "a.txt", "")

	result := execute(t, p, "scratchpad.glob", map[string]interface{}{"pattern": "**/*.md"})

	require.True(t, result.Success)
	assert.Equal(t, "No files found", result.Message())
}

func TestGlobInvalidPattern(t *testing.T) {
	p := newTestProvider(t)

	result := execute(t, p, "scratchpad.glob", map[string]interface{}{"pattern": "[!"})

	assert.False(t, result.Success)
}

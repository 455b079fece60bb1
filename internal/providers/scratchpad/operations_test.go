package scratchpad

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenameFile(t *testing.T) {
	p := newTestProvider(t)
	mustCreate(t, p, "draft.txt", "content")

	result := execute(t, p, "scratchpad.rename", map[string]interface{}{
		"old_path": "draft.txt",
		"new_path": "final.txt",
	})

	require.True(t, result.Success)
	assert.Equal(t, "Successfully renamed/moved 'draft.txt' to 'final.txt'", result.Message())

	read := execute(t, p, "scratchpad.read_file", map[string]interface{}{"path": "final.txt"})
	require.True(t, read.Success)
	assert.Equal(t, "content", read.Data["content"])

	old := execute(t, p, "scratchpad.read_file", map[string]interface{}{"path": "draft.txt"})
	assert.False(t, old.Success)
}

func TestRenameMovesIntoNewFolder(t *testing.T) {
	p := newTestProvider(t)
	mustCreate(t, p, "draft.txt", "content")

	result := execute(t, p, "scratchpad.rename", map[string]interface{}{
		"old_path": "draft.txt",
		"new_path": "archive/2026/draft.txt",
	})

	require.True(t, result.Success)

	read := execute(t, p, "scratchpad.read_file", map[string]interface{}{"path": "archive/2026/draft.txt"})
	assert.True(t, read.Success)
}

func TestRenameFolder(t *testing.T) {
	p := newTestProvider(t)
	mustCreate(t, p, "old/a.txt", "a")
	mustCreate(t, p, "old/sub/b.txt", "b")

	result := execute(t, p, "scratchpad.rename", map[string]interface{}{
		"old_path": "old",
		"new_path": "new",
	})

	require.True(t, result.Success)

	read := execute(t, p, "scratchpad.read_file", map[string]interface{}{"path": "new/sub/b.txt"})
	require.True(t, read.Success)
	assert.Equal(t, "b", read.Data["content"])
}

func TestRenameSourceMissing(t *testing.T) {
	p := newTestProvider(t)

	result := execute(t, p, "scratchpad.rename", map[string]interface{}{
		"old_path": "ghost.txt",
		"new_path": "real.txt",
	})

	assert.False(t, result.Success)
	assert.Equal(t, "Error: Source path 'ghost.txt' does not exist", result.Message())
}

func TestRenameDestinationExists(t *testing.T) {
	p := newTestProvider(t)
	mustCreate(t, p, "a.txt", "a")
	mustCreate(t, p, "b.txt", "b")

	result := execute(t, p, "scratchpad.rename", map[string]interface{}{
		"old_path": "a.txt",
		"new_path": "b.txt",
	})

	assert.False(t, result.Success)
	assert.Equal(t, "Error: Destination path 'b.txt' already exists", result.Message())

	// Neither side is touched on refusal.
	read := execute(t, p, "scratchpad.read_file", map[string]interface{}{"path": "b.txt"})
	assert.Equal(t, "b", read.Data["content"])
}

func TestRenameFolderIntoItself(t *testing.T) {
	p := newTestProvider(t)
	mustCreate(t, p, "a/keep.txt", "content")

	result := execute(t, p, "scratchpad.rename", map[string]interface{}{
		"old_path": "a",
		"new_path": "a/b",
	})

	assert.False(t, result.Success)
	assert.Equal(t, "Error: Cannot move 'a' into itself", result.Message())

	// No copy may have started; the folder holds only its original file.
	listed := execute(t, p, "scratchpad.list_files_with_extensions", nil)
	assert.Equal(t, "a/keep.txt", listed.Message())
}

func TestRenameRejectsTraversal(t *testing.T) {
	p := newTestProvider(t)
	mustCreate(t, p, "a.txt", "a")

	result := execute(t, p, "scratchpad.rename", map[string]interface{}{
		"old_path": "a.txt",
		"new_path": "../outside.txt",
	})

	assert.False(t, result.Success)
}

package scratchpad

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/Scratchpad/backend/internal/sandbox"
)

func TestCreateFile(t *testing.T) {
	p := newTestProvider(t)

	result := execute(t, p, "scratchpad.create_file", map[string]interface{}{
		"path":    "notes.txt",
		"content": "hello",
	})

	require.True(t, result.Success)
	assert.Equal(t, "Created notes.txt", result.Message())
	assert.Equal(t, true, result.Data["created"])
}

func TestCreateFileNested(t *testing.T) {
	p := newTestProvider(t)

	result := execute(t, p, "scratchpad.create_file", map[string]interface{}{
		"path":    "projects/ideas/app.md",
		"content": "# App",
	})

	require.True(t, result.Success)
	assert.Equal(t, "Created projects/ideas/app.md", result.Message())
}

func TestCreateFileAlreadyExists(t *testing.T) {
	p := newTestProvider(t)
	mustCreate(t, p, "notes.txt", "original")

	result := execute(t, p, "scratchpad.create_file", map[string]interface{}{
		"path":    "notes.txt",
		"content": "clobber",
	})

	require.True(t, result.Success)
	assert.Equal(t, "File notes.txt already exists", result.Message())
	assert.Equal(t, false, result.Data["created"])

	// Existing content must be untouched.
	read := execute(t, p, "scratchpad.read_file", map[string]interface{}{"path": "notes.txt"})
	assert.Equal(t, "original", read.Data["content"])
}

func TestCreateFileRejectsTraversal(t *testing.T) {
	p := newTestProvider(t)

	result := execute(t, p, "scratchpad.create_file", map[string]interface{}{
		"path":    "../escape.txt",
		"content": "x",
	})

	assert.False(t, result.Success)
}

func TestCreateFileRejectsDanglingSymlinkTarget(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink creation requires privileges on windows")
	}

	resolver, err := sandbox.New(t.TempDir(), zap.NewNop())
	require.NoError(t, err)
	p := NewProvider(resolver, zap.NewNop())

	outside := filepath.Join(t.TempDir(), "escaped.txt")
	require.NoError(t, os.Symlink(outside, filepath.Join(resolver.Root(), "evil")))

	result := execute(t, p, "scratchpad.create_file", map[string]interface{}{
		"path":    "evil",
		"content": "pwned",
	})

	assert.False(t, result.Success)
	_, statErr := os.Stat(outside)
	assert.True(t, os.IsNotExist(statErr), "write must not follow the link outside the sandbox")
}

func TestCreateFileMissingParams(t *testing.T) {
	p := newTestProvider(t)

	result := execute(t, p, "scratchpad.create_file", map[string]interface{}{"path": "x.txt"})
	assert.False(t, result.Success)

	result = execute(t, p, "scratchpad.create_file", map[string]interface{}{"content": "x"})
	assert.False(t, result.Success)
}

func TestReadFile(t *testing.T) {
	p := newTestProvider(t)
	mustCreate(t, p, "notes.txt", "hello world")

	result := execute(t, p, "scratchpad.read_file", map[string]interface{}{"path": "notes.txt"})

	require.True(t, result.Success)
	assert.Equal(t, "Contents of notes.txt:\nhello world", result.Message())
	assert.Equal(t, "hello world", result.Data["content"])
}

func TestReadFileNotFound(t *testing.T) {
	p := newTestProvider(t)

	result := execute(t, p, "scratchpad.read_file", map[string]interface{}{"path": "missing.txt"})

	assert.False(t, result.Success)
	assert.Equal(t, "File missing.txt not found.", result.Message())
}

func TestReadFileOnFolder(t *testing.T) {
	p := newTestProvider(t)
	mustCreateFolder(t, p, "docs")

	result := execute(t, p, "scratchpad.read_file", map[string]interface{}{"path": "docs"})

	assert.False(t, result.Success)
	assert.Equal(t, "Path docs is not a file.", result.Message())
}

func TestUpdateFile(t *testing.T) {
	p := newTestProvider(t)
	mustCreate(t, p, "notes.txt", "v1")

	result := execute(t, p, "scratchpad.update_file", map[string]interface{}{
		"path":    "notes.txt",
		"content": "v2",
	})

	require.True(t, result.Success)
	assert.Equal(t, "Updated notes.txt", result.Message())

	read := execute(t, p, "scratchpad.read_file", map[string]interface{}{"path": "notes.txt"})
	assert.Equal(t, "v2", read.Data["content"])
}

func TestUpdateFileNotFound(t *testing.T) {
	p := newTestProvider(t)

	result := execute(t, p, "scratchpad.update_file", map[string]interface{}{
		"path":    "missing.txt",
		"content": "x",
	})

	assert.False(t, result.Success)
	assert.Equal(t, "File missing.txt not found", result.Message())
}

func TestDeleteFile(t *testing.T) {
	p := newTestProvider(t)
	mustCreate(t, p, "notes.txt", "bye")

	result := execute(t, p, "scratchpad.delete_file", map[string]interface{}{"path": "notes.txt"})

	require.True(t, result.Success)
	assert.Equal(t, "Deleted notes.txt", result.Message())

	read := execute(t, p, "scratchpad.read_file", map[string]interface{}{"path": "notes.txt"})
	assert.False(t, read.Success)
	assert.Equal(t, "File notes.txt not found.", read.Message())
}

func TestDeleteFileOnFolder(t *testing.T) {
	p := newTestProvider(t)
	mustCreateFolder(t, p, "docs")

	result := execute(t, p, "scratchpad.delete_file", map[string]interface{}{"path": "docs"})

	assert.False(t, result.Success)
	assert.Equal(t, "Path docs is not a file", result.Message())
}

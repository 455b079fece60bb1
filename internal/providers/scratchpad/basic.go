package scratchpad

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/GriffinCanCode/Scratchpad/backend/internal/types"
	"go.uber.org/zap"
)

// BasicOps handles single-file operations
type BasicOps struct {
	*ScratchOps
}

// GetTools returns file operation tool definitions
func (b *BasicOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "scratchpad.create_file",
			Name:        "Create File",
			Description: "Create a new text file with specified content",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "Relative path including subdirectories", Required: true},
				{Name: "content", Type: "string", Description: "Text content to write to the file", Required: true},
			},
			Returns: "string",
		},
		{
			ID:          "scratchpad.read_file",
			Name:        "Read File",
			Description: "Read contents of a specific file including subdirectories",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "Relative path of the file to read", Required: true},
			},
			Returns: "string",
		},
		{
			ID:          "scratchpad.update_file",
			Name:        "Update File",
			Description: "Update content of an existing file",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "Relative path of file to update", Required: true},
				{Name: "content", Type: "string", Description: "New content to write", Required: true},
			},
			Returns: "string",
		},
		{
			ID:          "scratchpad.delete_file",
			Name:        "Delete File",
			Description: "Delete a specific file",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "Relative path of file to delete", Required: true},
			},
			Returns: "string",
		},
	}
}

// CreateFile creates a new text file, never overwriting an existing one.
// Parent directories are created as needed.
func (b *BasicOps) CreateFile(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := params["path"].(string)
	if !ok || path == "" {
		return Failure("path parameter required")
	}
	content, ok := params["content"].(string)
	if !ok {
		return Failure("content parameter required")
	}

	resolved, err := b.Resolver.Resolve(path)
	if err != nil {
		b.Logger.Warn("Create rejected", zap.String("path", path), zap.Error(err))
		return Failure(fmt.Sprintf("Error creating %s: %s", path, reason(err)))
	}

	if info, err := os.Stat(resolved); err == nil {
		if info.IsDir() {
			return Failure(fmt.Sprintf("Path %s is a directory, cannot create file here", path))
		}
		return Success(map[string]interface{}{
			"message": fmt.Sprintf("File %s already exists", path),
			"path":    path,
			"created": false,
		})
	} else if !errors.Is(err, fs.ErrNotExist) {
		return Failure(fmt.Sprintf("Error creating %s: %v", path, err))
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return Failure(fmt.Sprintf("Error creating %s: %v", path, err))
	}
	if err := os.WriteFile(resolved, []byte(content), 0o644); err != nil {
		return Failure(fmt.Sprintf("Error creating %s: %v", path, err))
	}

	return Success(map[string]interface{}{
		"message": fmt.Sprintf("Created %s", path),
		"path":    path,
		"created": true,
		"size":    len(content),
	})
}

// ReadFile returns a file's contents prefixed with its path.
func (b *BasicOps) ReadFile(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := params["path"].(string)
	if !ok || path == "" {
		return Failure("path parameter required")
	}

	resolved, err := b.Resolver.Resolve(path)
	if err != nil {
		b.Logger.Warn("Read rejected", zap.String("path", path), zap.Error(err))
		return Failure(fmt.Sprintf("Could not read %s: %s", path, reason(err)))
	}

	info, err := os.Stat(resolved)
	if errors.Is(err, fs.ErrNotExist) {
		return Failure(fmt.Sprintf("File %s not found.", path))
	}
	if err != nil {
		return Failure(fmt.Sprintf("Could not read %s: %v", path, err))
	}
	if info.IsDir() {
		return Failure(fmt.Sprintf("Path %s is not a file.", path))
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		return Failure(fmt.Sprintf("Could not read %s: %v", path, err))
	}

	return Success(map[string]interface{}{
		"message": fmt.Sprintf("Contents of %s:\n%s", path, string(data)),
		"path":    path,
		"content": string(data),
		"size":    len(data),
	})
}

// UpdateFile overwrites the content of an existing file.
func (b *BasicOps) UpdateFile(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := params["path"].(string)
	if !ok || path == "" {
		return Failure("path parameter required")
	}
	content, ok := params["content"].(string)
	if !ok {
		return Failure("content parameter required")
	}

	resolved, err := b.Resolver.Resolve(path)
	if err != nil {
		b.Logger.Warn("Update rejected", zap.String("path", path), zap.Error(err))
		return Failure(fmt.Sprintf("Failed to update %s: %s", path, reason(err)))
	}

	info, err := os.Stat(resolved)
	if errors.Is(err, fs.ErrNotExist) {
		return Failure(fmt.Sprintf("File %s not found", path))
	}
	if err != nil {
		return Failure(fmt.Sprintf("Failed to update %s: %v", path, err))
	}
	if info.IsDir() {
		return Failure(fmt.Sprintf("Path %s is not a file", path))
	}

	if err := os.WriteFile(resolved, []byte(content), 0o644); err != nil {
		return Failure(fmt.Sprintf("Failed to update %s: %v", path, err))
	}

	return Success(map[string]interface{}{
		"message": fmt.Sprintf("Updated %s", path),
		"path":    path,
		"size":    len(content),
	})
}

// DeleteFile removes a single file.
func (b *BasicOps) DeleteFile(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := params["path"].(string)
	if !ok || path == "" {
		return Failure("path parameter required")
	}

	resolved, err := b.Resolver.Resolve(path)
	if err != nil {
		b.Logger.Warn("Delete rejected", zap.String("path", path), zap.Error(err))
		return Failure(fmt.Sprintf("Failed to delete %s: %s", path, reason(err)))
	}

	info, err := os.Stat(resolved)
	if errors.Is(err, fs.ErrNotExist) {
		return Failure(fmt.Sprintf("File %s not found", path))
	}
	if err != nil {
		return Failure(fmt.Sprintf("Failed to delete %s: %v", path, err))
	}
	if info.IsDir() {
		return Failure(fmt.Sprintf("Path %s is not a file", path))
	}

	if err := os.Remove(resolved); err != nil {
		return Failure(fmt.Sprintf("Failed to delete %s: %v", path, err))
	}

	return Success(map[string]interface{}{
		"message": fmt.Sprintf("Deleted %s", path),
		"path":    path,
		"deleted": true,
	})
}

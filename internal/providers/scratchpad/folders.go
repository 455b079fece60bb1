package scratchpad

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/GriffinCanCode/Scratchpad/backend/internal/types"
	"go.uber.org/zap"
)

// FolderOps handles folder operations
type FolderOps struct {
	*ScratchOps
}

// GetTools returns folder operation tool definitions
func (f *FolderOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "scratchpad.create_folder",
			Name:        "Create Folder",
			Description: "Create a new folder, optionally replacing an existing one",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "Relative folder path including subdirectories", Required: true},
				{Name: "overwrite", Type: "boolean", Description: "Overwrite existing folder", Required: false},
			},
			Returns: "string",
		},
		{
			ID:          "scratchpad.delete_folder",
			Name:        "Delete Folder",
			Description: "Delete a folder and its contents",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "Relative path of folder to delete", Required: true},
			},
			Returns: "string",
		},
	}
}

// CreateFolder creates a folder with parents. With overwrite set, an
// existing folder is removed and recreated; a file in the way is always
// an error.
func (f *FolderOps) CreateFolder(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := params["path"].(string)
	if !ok || path == "" {
		return Failure("path parameter required")
	}
	overwrite, _ := params["overwrite"].(bool)

	resolved, err := f.Resolver.Resolve(path)
	if err != nil {
		f.Logger.Warn("Create folder rejected", zap.String("path", path), zap.Error(err))
		return Failure(fmt.Sprintf("Failed to create folder %s: %s", path, reason(err)))
	}

	if info, err := os.Stat(resolved); err == nil {
		if !info.IsDir() {
			return Failure(fmt.Sprintf("Path %s is a file, cannot create folder here.", path))
		}
		if !overwrite {
			return Success(map[string]interface{}{
				"message": fmt.Sprintf("Folder %s already exists", path),
				"path":    path,
				"created": false,
			})
		}
		if err := os.RemoveAll(resolved); err != nil {
			return Failure(fmt.Sprintf("Failed to create folder %s: %v", path, err))
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return Failure(fmt.Sprintf("Failed to create folder %s: %v", path, err))
	}

	if err := os.MkdirAll(resolved, 0o755); err != nil {
		return Failure(fmt.Sprintf("Failed to create folder %s: %v", path, err))
	}

	return Success(map[string]interface{}{
		"message": fmt.Sprintf("Created folder %s", path),
		"path":    path,
		"created": true,
	})
}

// DeleteFolder recursively removes a folder and everything under it.
func (f *FolderOps) DeleteFolder(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := params["path"].(string)
	if !ok || path == "" {
		return Failure("path parameter required")
	}

	resolved, err := f.Resolver.Resolve(path)
	if err != nil {
		f.Logger.Warn("Delete folder rejected", zap.String("path", path), zap.Error(err))
		return Failure(fmt.Sprintf("Failed to delete folder %s: %s", path, reason(err)))
	}

	info, err := os.Stat(resolved)
	if errors.Is(err, fs.ErrNotExist) {
		return Failure(fmt.Sprintf("Folder %s not found", path))
	}
	if err != nil {
		return Failure(fmt.Sprintf("Failed to delete folder %s: %v", path, err))
	}
	if !info.IsDir() {
		return Failure(fmt.Sprintf("Path %s is not a directory", path))
	}

	if err := os.RemoveAll(resolved); err != nil {
		return Failure(fmt.Sprintf("Failed to delete folder %s: %v", path, err))
	}

	return Success(map[string]interface{}{
		"message": fmt.Sprintf("Deleted folder %s", path),
		"path":    path,
		"deleted": true,
	})
}

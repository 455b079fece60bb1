package scratchpad

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/GriffinCanCode/Scratchpad/backend/internal/types"
	"github.com/gabriel-vasile/mimetype"
)

// MetadataOps handles entry metadata operations
type MetadataOps struct {
	*ScratchOps
}

// GetTools returns metadata tool definitions
func (m *MetadataOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "scratchpad.stat",
			Name:        "Entry Info",
			Description: "Get file or folder metadata",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "Relative path of the entry", Required: true},
			},
			Returns: "string",
		},
		{
			ID:          "scratchpad.mime_type",
			Name:        "MIME Type",
			Description: "Detect a file's MIME type",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "Relative path of the file", Required: true},
			},
			Returns: "string",
		},
	}
}

// Stat returns metadata for a file or folder.
func (m *MetadataOps) Stat(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := params["path"].(string)
	if !ok || path == "" {
		return Failure("path parameter required")
	}

	resolved, err := m.Resolver.Resolve(path)
	if err != nil {
		return Failure(fmt.Sprintf("Could not stat %s: %s", path, reason(err)))
	}

	info, err := os.Stat(resolved)
	if errors.Is(err, fs.ErrNotExist) {
		return Failure(fmt.Sprintf("Path %s not found", path))
	}
	if err != nil {
		return Failure(fmt.Sprintf("Could not stat %s: %v", path, err))
	}

	kind := "file"
	if info.IsDir() {
		kind = "folder"
	}

	return Success(map[string]interface{}{
		"message":   fmt.Sprintf("%s: %s, %d bytes, modified %s", path, kind, info.Size(), info.ModTime().Format(timeFormat)),
		"path":      path,
		"name":      info.Name(),
		"size":      info.Size(),
		"is_dir":    info.IsDir(),
		"mode":      info.Mode().String(),
		"modified":  info.ModTime().Unix(),
		"extension": filepath.Ext(path),
	})
}

// MimeType detects a file's MIME type from its content.
func (m *MetadataOps) MimeType(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := params["path"].(string)
	if !ok || path == "" {
		return Failure("path parameter required")
	}

	resolved, err := m.Resolver.Resolve(path)
	if err != nil {
		return Failure(fmt.Sprintf("Could not detect type of %s: %s", path, reason(err)))
	}

	info, err := os.Stat(resolved)
	if errors.Is(err, fs.ErrNotExist) {
		return Failure(fmt.Sprintf("File %s not found", path))
	}
	if err != nil {
		return Failure(fmt.Sprintf("Could not detect type of %s: %v", path, err))
	}
	if info.IsDir() {
		return Failure(fmt.Sprintf("Path %s is not a file", path))
	}

	mtype, err := mimetype.DetectFile(resolved)
	if err != nil {
		return Failure(fmt.Sprintf("Could not detect type of %s: %v", path, err))
	}

	return Success(map[string]interface{}{
		"message":   fmt.Sprintf("%s is %s", path, mtype.String()),
		"path":      path,
		"mime":      mtype.String(),
		"extension": mtype.Extension(),
	})
}

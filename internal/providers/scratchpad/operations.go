package scratchpad

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/GriffinCanCode/Scratchpad/backend/internal/types"
	"go.uber.org/zap"
)

// OperationsOps handles rename and move operations
type OperationsOps struct {
	*ScratchOps
}

// GetTools returns rename/move tool definitions
func (o *OperationsOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "scratchpad.rename",
			Name:        "Rename or Move",
			Description: "Rename or move a file/folder",
			Parameters: []types.Parameter{
				{Name: "old_path", Type: "string", Description: "Current relative path", Required: true},
				{Name: "new_path", Type: "string", Description: "New relative path", Required: true},
			},
			Returns: "string",
		},
	}
}

// Rename moves an entry to a new path inside the sandbox. The source must
// exist, the destination must not, and the destination may not lie inside
// the source; destination parents are created. Rename is atomic on the
// same filesystem, with a copy+delete fallback for cross-device moves.
func (o *OperationsOps) Rename(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	oldPath, ok := params["old_path"].(string)
	if !ok || oldPath == "" {
		return Failure("old_path parameter required")
	}
	newPath, ok := params["new_path"].(string)
	if !ok || newPath == "" {
		return Failure("new_path parameter required")
	}

	src, err := o.Resolver.Resolve(oldPath)
	if err != nil {
		o.Logger.Warn("Rename rejected", zap.String("path", oldPath), zap.Error(err))
		return Failure(fmt.Sprintf("Failed to rename '%s': %s", oldPath, reason(err)))
	}
	dest, err := o.Resolver.Resolve(newPath)
	if err != nil {
		o.Logger.Warn("Rename rejected", zap.String("path", newPath), zap.Error(err))
		return Failure(fmt.Sprintf("Failed to rename '%s': %s", oldPath, reason(err)))
	}

	if _, err := os.Stat(src); errors.Is(err, fs.ErrNotExist) {
		return Failure(fmt.Sprintf("Error: Source path '%s' does not exist", oldPath))
	} else if err != nil {
		return Failure(fmt.Sprintf("Failed to rename '%s': %v", oldPath, err))
	}
	if _, err := os.Lstat(dest); err == nil {
		return Failure(fmt.Sprintf("Error: Destination path '%s' already exists", newPath))
	} else if !errors.Is(err, fs.ErrNotExist) {
		return Failure(fmt.Sprintf("Failed to rename '%s': %v", oldPath, err))
	}
	if dest == src || strings.HasPrefix(dest, src+string(os.PathSeparator)) {
		return Failure(fmt.Sprintf("Error: Cannot move '%s' into itself", oldPath))
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return Failure(fmt.Sprintf("Failed to rename '%s': %v", oldPath, err))
	}

	if err := os.Rename(src, dest); err != nil {
		// Only a cross-device rename falls back to copy+delete; any
		// other rename error is final.
		if !errors.Is(err, syscall.EXDEV) {
			return Failure(fmt.Sprintf("Failed to rename '%s': %v", oldPath, err))
		}
		if err := moveByCopy(src, dest); err != nil {
			return Failure(fmt.Sprintf("Failed to rename '%s': %v", oldPath, err))
		}
	}

	return Success(map[string]interface{}{
		"message":  fmt.Sprintf("Successfully renamed/moved '%s' to '%s'", oldPath, newPath),
		"old_path": oldPath,
		"new_path": newPath,
	})
}

// moveByCopy replicates src at dest and removes src afterwards. Content is
// fully written before the source is touched, so a failed copy leaves the
// source intact.
func moveByCopy(src, dest string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}

	if info.IsDir() {
		err = copyTree(src, dest)
	} else {
		err = copyFile(src, dest, info.Mode())
	}
	if err != nil {
		os.RemoveAll(dest)
		return err
	}

	return os.RemoveAll(src)
}

func copyFile(src, dest string, mode fs.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode.Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func copyTree(src, dest string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dest, rel)

		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		return copyFile(path, target, info.Mode())
	})
}

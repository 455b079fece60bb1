package scratchpad

import (
	"errors"

	"github.com/GriffinCanCode/Scratchpad/backend/internal/sandbox"
	"github.com/GriffinCanCode/Scratchpad/backend/internal/types"
	"go.uber.org/zap"
)

// Sentinel messages for empty listings.
const (
	noFilesMessage   = "No files found"
	noEntriesMessage = "No files or folders found"
)

// timeFormat renders a spoken-word friendly local timestamp.
const timeFormat = "Monday, January 02, 2006 at 03:04 PM"

// folderMarker tags directory entries in combined listings.
const folderMarker = " (Folder)"

// ScratchOps provides the shared dependencies for all operation groups
type ScratchOps struct {
	Resolver *sandbox.Resolver
	Logger   *zap.Logger
}

// Success helper
func Success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

// Failure helper
func Failure(message string) (*types.Result, error) {
	msg := message
	return &types.Result{Success: false, Error: &msg}, nil
}

// reason unwraps a sandbox path error to its core cause for message text.
func reason(err error) string {
	var pathErr *sandbox.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err.Error()
	}
	return err.Error()
}

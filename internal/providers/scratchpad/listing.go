package scratchpad

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/GriffinCanCode/Scratchpad/backend/internal/types"
	"github.com/charlievieth/fastwalk"
)

// ListingOps handles recursive listing operations
type ListingOps struct {
	*ScratchOps
}

// GetTools returns listing tool definitions
func (l *ListingOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "scratchpad.list_files",
			Name:        "List Files",
			Description: "List all files (without extensions)",
			Parameters:  []types.Parameter{},
			Returns:     "string",
		},
		{
			ID:          "scratchpad.list_files_with_extensions",
			Name:        "List Files With Extensions",
			Description: "List all files with full paths and extensions",
			Parameters:  []types.Parameter{},
			Returns:     "string",
		},
		{
			ID:          "scratchpad.list_all",
			Name:        "List All",
			Description: "List all files and folders with type indicators",
			Parameters:  []types.Parameter{},
			Returns:     "string",
		},
	}
}

// walkEntry is one enumerated entry, relative to the sandbox root.
type walkEntry struct {
	relPath string
	isDir   bool
}

// walkAll enumerates every entry under the sandbox root, excluding the
// root itself. Any traversal error aborts the walk and is reported for
// the operation as a whole rather than silently omitting entries. The
// walk callback runs on multiple goroutines, so appends are locked.
func (l *ListingOps) walkAll(ctx context.Context) ([]walkEntry, error) {
	root := l.Resolver.Root()
	entries := []walkEntry{}
	var mu sync.Mutex
	conf := fastwalk.Config{Follow: false}

	err := fastwalk.Walk(&conf, root, func(path string, d os.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil {
			return err
		}
		if path == root {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		mu.Lock()
		entries = append(entries, walkEntry{relPath: rel, isDir: d.IsDir()})
		mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// ListFiles lists every file recursively, with the final extension
// stripped, sorted lexicographically.
func (l *ListingOps) ListFiles(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	entries, err := l.walkAll(ctx)
	if err != nil {
		return Failure(fmt.Sprintf("Error listing files: %v", err))
	}

	files := []string{}
	for _, e := range entries {
		if e.isDir {
			continue
		}
		files = append(files, strings.TrimSuffix(e.relPath, filepath.Ext(e.relPath)))
	}
	sort.Strings(files)

	message := noFilesMessage
	if len(files) > 0 {
		message = strings.Join(files, "\n")
	}

	return Success(map[string]interface{}{
		"message": message,
		"files":   files,
		"count":   len(files),
	})
}

// ListFilesWithExtensions lists every file recursively with its full
// relative path, sorted lexicographically.
func (l *ListingOps) ListFilesWithExtensions(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	entries, err := l.walkAll(ctx)
	if err != nil {
		return Failure(fmt.Sprintf("Error listing files: %v", err))
	}

	files := []string{}
	for _, e := range entries {
		if !e.isDir {
			files = append(files, e.relPath)
		}
	}
	sort.Strings(files)

	message := noFilesMessage
	if len(files) > 0 {
		message = strings.Join(files, "\n")
	}

	return Success(map[string]interface{}{
		"message": message,
		"files":   files,
		"count":   len(files),
	})
}

// ListAll lists every file and folder recursively. Folder entries carry
// the folder marker suffix and sort before files; within each group the
// order is lexicographic by the displayed string.
func (l *ListingOps) ListAll(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	entries, err := l.walkAll(ctx)
	if err != nil {
		return Failure(fmt.Sprintf("Error listing files and folders: %v", err))
	}

	type item struct {
		display string
		isDir   bool
	}
	items := make([]item, 0, len(entries))
	for _, e := range entries {
		display := e.relPath
		if e.isDir {
			display += folderMarker
		}
		items = append(items, item{display: display, isDir: e.isDir})
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].isDir != items[j].isDir {
			return items[i].isDir
		}
		return items[i].display < items[j].display
	})

	displayed := make([]string, len(items))
	for i, it := range items {
		displayed[i] = it.display
	}

	message := noEntriesMessage
	if len(displayed) > 0 {
		message = strings.Join(displayed, "\n")
	}

	return Success(map[string]interface{}{
		"message": message,
		"entries": displayed,
		"count":   len(displayed),
	})
}

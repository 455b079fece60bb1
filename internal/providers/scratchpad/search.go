package scratchpad

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/GriffinCanCode/Scratchpad/backend/internal/types"
	"github.com/bmatcuk/doublestar/v4"
)

// SearchOps handles pattern search operations
type SearchOps struct {
	*ListingOps
}

// GetTools returns search tool definitions
func (s *SearchOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "scratchpad.find",
			Name:        "Find Files",
			Description: "Find files by name pattern (e.g., '*.txt')",
			Parameters: []types.Parameter{
				{Name: "pattern", Type: "string", Description: "File name pattern", Required: true},
			},
			Returns: "string",
		},
		{
			ID:          "scratchpad.glob",
			Name:        "Glob Files",
			Description: "Find files by glob with ** patterns (e.g., 'notes/**/*.md')",
			Parameters: []types.Parameter{
				{Name: "pattern", Type: "string", Description: "Glob pattern", Required: true},
			},
			Returns: "string",
		},
	}
}

// Find matches file base names against a shell pattern.
func (s *SearchOps) Find(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	pattern, ok := params["pattern"].(string)
	if !ok || pattern == "" {
		return Failure("pattern parameter required")
	}
	if _, err := filepath.Match(pattern, ""); err != nil {
		return Failure(fmt.Sprintf("Invalid pattern '%s': %v", pattern, err))
	}

	entries, err := s.walkAll(ctx)
	if err != nil {
		return Failure(fmt.Sprintf("Error searching files: %v", err))
	}

	matches := []string{}
	for _, e := range entries {
		if e.isDir {
			continue
		}
		if ok, _ := filepath.Match(pattern, filepath.Base(e.relPath)); ok {
			matches = append(matches, e.relPath)
		}
	}
	sort.Strings(matches)

	message := noFilesMessage
	if len(matches) > 0 {
		message = strings.Join(matches, "\n")
	}

	return Success(map[string]interface{}{
		"message": message,
		"matches": matches,
		"count":   len(matches),
	})
}

// Glob matches full relative paths against a doublestar pattern.
func (s *SearchOps) Glob(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	pattern, ok := params["pattern"].(string)
	if !ok || pattern == "" {
		return Failure("pattern parameter required")
	}
	if !doublestar.ValidatePattern(pattern) {
		return Failure(fmt.Sprintf("Invalid pattern '%s'", pattern))
	}

	entries, err := s.walkAll(ctx)
	if err != nil {
		return Failure(fmt.Sprintf("Error searching files: %v", err))
	}

	matches := []string{}
	for _, e := range entries {
		if e.isDir {
			continue
		}
		if ok, _ := doublestar.Match(pattern, filepath.ToSlash(e.relPath)); ok {
			matches = append(matches, e.relPath)
		}
	}
	sort.Strings(matches)

	message := noFilesMessage
	if len(matches) > 0 {
		message = strings.Join(matches, "\n")
	}

	return Success(map[string]interface{}{
		"message": message,
		"matches": matches,
		"count":   len(matches),
	})
}

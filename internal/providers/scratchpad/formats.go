package scratchpad

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/GriffinCanCode/Scratchpad/backend/internal/types"
	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
)

// FormatsOps handles structured file format operations
type FormatsOps struct {
	*ScratchOps
}

// GetTools returns format tool definitions
func (f *FormatsOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "scratchpad.read_json",
			Name:        "Read JSON",
			Description: "Read and parse a JSON file",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "Relative path of the file", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "scratchpad.write_json",
			Name:        "Write JSON",
			Description: "Write data as a JSON file",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "Relative path of the file", Required: true},
				{Name: "data", Type: "object", Description: "Data to write", Required: true},
			},
			Returns: "string",
		},
		{
			ID:          "scratchpad.read_yaml",
			Name:        "Read YAML",
			Description: "Read and parse a YAML file",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "Relative path of the file", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "scratchpad.write_yaml",
			Name:        "Write YAML",
			Description: "Write data as a YAML file",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "Relative path of the file", Required: true},
				{Name: "data", Type: "object", Description: "Data to write", Required: true},
			},
			Returns: "string",
		},
	}
}

// readFile resolves and reads a regular file for parsing.
func (f *FormatsOps) readFile(path string) ([]byte, *types.Result) {
	resolved, err := f.Resolver.Resolve(path)
	if err != nil {
		res, _ := Failure(fmt.Sprintf("Could not read %s: %s", path, reason(err)))
		return nil, res
	}

	info, err := os.Stat(resolved)
	if errors.Is(err, fs.ErrNotExist) {
		res, _ := Failure(fmt.Sprintf("File %s not found", path))
		return nil, res
	}
	if err != nil {
		res, _ := Failure(fmt.Sprintf("Could not read %s: %v", path, err))
		return nil, res
	}
	if info.IsDir() {
		res, _ := Failure(fmt.Sprintf("Path %s is not a file", path))
		return nil, res
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		res, _ := Failure(fmt.Sprintf("Could not read %s: %v", path, err))
		return nil, res
	}
	return data, nil
}

// writeFile resolves and writes serialized content, creating parents.
func (f *FormatsOps) writeFile(path string, data []byte) *types.Result {
	resolved, err := f.Resolver.Resolve(path)
	if err != nil {
		res, _ := Failure(fmt.Sprintf("Failed to write %s: %s", path, reason(err)))
		return res
	}
	if info, err := os.Stat(resolved); err == nil && info.IsDir() {
		res, _ := Failure(fmt.Sprintf("Path %s is not a file", path))
		return res
	}
	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		res, _ := Failure(fmt.Sprintf("Failed to write %s: %v", path, err))
		return res
	}
	if err := os.WriteFile(resolved, data, 0o644); err != nil {
		res, _ := Failure(fmt.Sprintf("Failed to write %s: %v", path, err))
		return res
	}
	return nil
}

// ReadJSON parses a JSON file.
func (f *FormatsOps) ReadJSON(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := params["path"].(string)
	if !ok || path == "" {
		return Failure("path parameter required")
	}

	data, failRes := f.readFile(path)
	if failRes != nil {
		return failRes, nil
	}

	var parsed interface{}
	if err := sonic.Unmarshal(data, &parsed); err != nil {
		return Failure(fmt.Sprintf("Invalid JSON in %s: %v", path, err))
	}

	return Success(map[string]interface{}{
		"message": fmt.Sprintf("Parsed %s", path),
		"path":    path,
		"data":    parsed,
	})
}

// WriteJSON writes data as indented JSON.
func (f *FormatsOps) WriteJSON(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := params["path"].(string)
	if !ok || path == "" {
		return Failure("path parameter required")
	}
	data, ok := params["data"]
	if !ok {
		return Failure("data parameter required")
	}

	serialized, err := sonic.MarshalIndent(data, "", "  ")
	if err != nil {
		return Failure(fmt.Sprintf("Failed to serialize JSON for %s: %v", path, err))
	}

	if failRes := f.writeFile(path, serialized); failRes != nil {
		return failRes, nil
	}

	return Success(map[string]interface{}{
		"message": fmt.Sprintf("Wrote %s", path),
		"path":    path,
		"size":    len(serialized),
	})
}

// ReadYAML parses a YAML file.
func (f *FormatsOps) ReadYAML(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := params["path"].(string)
	if !ok || path == "" {
		return Failure("path parameter required")
	}

	data, failRes := f.readFile(path)
	if failRes != nil {
		return failRes, nil
	}

	var parsed interface{}
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return Failure(fmt.Sprintf("Invalid YAML in %s: %v", path, err))
	}

	return Success(map[string]interface{}{
		"message": fmt.Sprintf("Parsed %s", path),
		"path":    path,
		"data":    parsed,
	})
}

// WriteYAML writes data as YAML.
func (f *FormatsOps) WriteYAML(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := params["path"].(string)
	if !ok || path == "" {
		return Failure("path parameter required")
	}
	data, ok := params["data"]
	if !ok {
		return Failure("data parameter required")
	}

	serialized, err := yaml.Marshal(data)
	if err != nil {
		return Failure(fmt.Sprintf("Failed to serialize YAML for %s: %v", path, err))
	}

	if failRes := f.writeFile(path, serialized); failRes != nil {
		return failRes, nil
	}

	return Success(map[string]interface{}{
		"message": fmt.Sprintf("Wrote %s", path),
		"path":    path,
		"size":    len(serialized),
	})
}

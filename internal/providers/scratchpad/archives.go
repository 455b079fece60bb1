package scratchpad

import (
	"archive/tar"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/GriffinCanCode/Scratchpad/backend/internal/types"
	"github.com/klauspost/compress/gzip"
)

// ArchiveOps handles tar.gz pack and unpack operations
type ArchiveOps struct {
	*ScratchOps
}

// GetTools returns archive tool definitions
func (a *ArchiveOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "scratchpad.archive_folder",
			Name:        "Archive Folder",
			Description: "Pack a folder into a tar.gz archive",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "Relative path of the folder to pack", Required: true},
				{Name: "archive_path", Type: "string", Description: "Relative path of the archive to create", Required: true},
			},
			Returns: "string",
		},
		{
			ID:          "scratchpad.extract_archive",
			Name:        "Extract Archive",
			Description: "Unpack a tar.gz archive into a folder",
			Parameters: []types.Parameter{
				{Name: "archive_path", Type: "string", Description: "Relative path of the archive", Required: true},
				{Name: "dest", Type: "string", Description: "Relative path of the destination folder", Required: true},
			},
			Returns: "string",
		},
	}
}

// ArchiveFolder packs a folder into a tar.gz archive inside the sandbox.
func (a *ArchiveOps) ArchiveFolder(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := params["path"].(string)
	if !ok || path == "" {
		return Failure("path parameter required")
	}
	archivePath, ok := params["archive_path"].(string)
	if !ok || archivePath == "" {
		return Failure("archive_path parameter required")
	}

	src, err := a.Resolver.Resolve(path)
	if err != nil {
		return Failure(fmt.Sprintf("Failed to archive %s: %s", path, reason(err)))
	}
	dest, err := a.Resolver.Resolve(archivePath)
	if err != nil {
		return Failure(fmt.Sprintf("Failed to archive %s: %s", path, reason(err)))
	}

	info, err := os.Stat(src)
	if errors.Is(err, fs.ErrNotExist) {
		return Failure(fmt.Sprintf("Folder %s not found", path))
	}
	if err != nil {
		return Failure(fmt.Sprintf("Failed to archive %s: %v", path, err))
	}
	if !info.IsDir() {
		return Failure(fmt.Sprintf("Path %s is not a directory", path))
	}
	if _, err := os.Lstat(dest); err == nil {
		return Failure(fmt.Sprintf("Error: Destination path '%s' already exists", archivePath))
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return Failure(fmt.Sprintf("Failed to archive %s: %v", path, err))
	}

	count, err := writeTarGz(src, dest)
	if err != nil {
		os.Remove(dest)
		return Failure(fmt.Sprintf("Failed to archive %s: %v", path, err))
	}

	return Success(map[string]interface{}{
		"message": fmt.Sprintf("Archived %s to %s (%d files)", path, archivePath, count),
		"path":    path,
		"archive": archivePath,
		"files":   count,
	})
}

// ExtractArchive unpacks a tar.gz archive into a sandbox folder. Entry
// names are validated against the destination so a crafted archive cannot
// write outside it.
func (a *ArchiveOps) ExtractArchive(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	archivePath, ok := params["archive_path"].(string)
	if !ok || archivePath == "" {
		return Failure("archive_path parameter required")
	}
	destPath, ok := params["dest"].(string)
	if !ok || destPath == "" {
		return Failure("dest parameter required")
	}

	src, err := a.Resolver.Resolve(archivePath)
	if err != nil {
		return Failure(fmt.Sprintf("Failed to extract %s: %s", archivePath, reason(err)))
	}
	dest, err := a.Resolver.Resolve(destPath)
	if err != nil {
		return Failure(fmt.Sprintf("Failed to extract %s: %s", archivePath, reason(err)))
	}

	info, err := os.Stat(src)
	if errors.Is(err, fs.ErrNotExist) {
		return Failure(fmt.Sprintf("File %s not found", archivePath))
	}
	if err != nil {
		return Failure(fmt.Sprintf("Failed to extract %s: %v", archivePath, err))
	}
	if info.IsDir() {
		return Failure(fmt.Sprintf("Path %s is not a file", archivePath))
	}

	count, err := readTarGz(src, dest)
	if err != nil {
		return Failure(fmt.Sprintf("Failed to extract %s: %v", archivePath, err))
	}

	return Success(map[string]interface{}{
		"message": fmt.Sprintf("Extracted %s to %s (%d files)", archivePath, destPath, count),
		"archive": archivePath,
		"dest":    destPath,
		"files":   count,
	})
}

func writeTarGz(src, dest string) (int, error) {
	out, err := os.Create(dest)
	if err != nil {
		return 0, err
	}
	defer out.Close()

	gw := gzip.NewWriter(out)
	tw := tar.NewWriter(gw)

	count := 0
	err = filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		hdr, err := tar.FileInfoHeader(info, "")
		if err != nil {
			return err
		}
		hdr.Name = filepath.ToSlash(rel)
		if err := tw.WriteHeader(hdr); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		in, err := os.Open(path)
		if err != nil {
			return err
		}
		defer in.Close()
		if _, err := io.Copy(tw, in); err != nil {
			return err
		}
		count++
		return nil
	})
	if err != nil {
		return 0, err
	}

	if err := tw.Close(); err != nil {
		return 0, err
	}
	return count, gw.Close()
}

func readTarGz(src, dest string) (int, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	gr, err := gzip.NewReader(in)
	if err != nil {
		return 0, err
	}
	defer gr.Close()

	tr := tar.NewReader(gr)
	count := 0
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return count, err
		}

		name := filepath.Clean(filepath.FromSlash(hdr.Name))
		if filepath.IsAbs(name) || name == ".." || strings.HasPrefix(name, ".."+string(os.PathSeparator)) {
			return count, fmt.Errorf("archive entry %q escapes destination", hdr.Name)
		}
		target := filepath.Join(dest, name)

		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0o755); err != nil {
				return count, err
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
				return count, err
			}
			out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fs.FileMode(hdr.Mode).Perm())
			if err != nil {
				return count, err
			}
			if _, err := io.Copy(out, tr); err != nil {
				out.Close()
				return count, err
			}
			if err := out.Close(); err != nil {
				return count, err
			}
			count++
		default:
			// Symlinks and special files are not extracted into the sandbox.
		}
	}

	return count, nil
}

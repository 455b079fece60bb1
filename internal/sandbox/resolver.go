package sandbox

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Resolver validates caller-supplied relative paths against a fixed
// sandbox root. The root is established once at construction and never
// changes for the lifetime of the resolver.
type Resolver struct {
	root   string
	logger *zap.Logger
}

// New creates a resolver rooted at dir. The directory is created (with
// parents) if it does not exist, then canonicalized so all later ancestry
// checks compare against the real path.
func New(dir string, logger *zap.Logger) (*Resolver, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &PathError{Op: "init", Path: dir, Err: err}
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, &PathError{Op: "init", Path: dir, Err: err}
	}
	root, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return nil, &PathError{Op: "init", Path: dir, Err: err}
	}

	logger.Info("Sandbox root initialized", zap.String("root", root))
	return &Resolver{root: root, logger: logger}, nil
}

// Root returns the canonical sandbox root.
func (r *Resolver) Root() string {
	return r.root
}

// Resolve turns an untrusted relative path into a canonical absolute path
// inside the sandbox root. It fails with ErrInvalidPath when the input has
// no path segments (empty, or normalizing to the root itself) and with
// ErrPathTraversal when the canonical result falls outside the root.
//
// Canonicalization happens on the joined absolute path, not the raw input:
// the deepest existing ancestor is resolved through EvalSymlinks and the
// untraversed remainder re-appended, so symlinked intermediate directories
// cannot smuggle a path out of the sandbox.
//
// Join folds ".." segments lexically before any symlink resolution, so
// "link/../x" addresses "x" under the root rather than a sibling of the
// link's target. Parent hops therefore never traverse through links and
// the result stays inside the root.
func (r *Resolver) Resolve(relPath string) (string, error) {
	trimmed := strings.TrimSpace(relPath)
	if trimmed == "" {
		return "", &PathError{Op: "resolve", Path: relPath, Err: ErrInvalidPath}
	}
	if filepath.IsAbs(trimmed) {
		r.logger.Warn("Rejected absolute path", zap.String("path", relPath))
		return "", &PathError{Op: "resolve", Path: relPath, Err: ErrPathTraversal}
	}
	if filepath.Clean(trimmed) == "." {
		return "", &PathError{Op: "resolve", Path: relPath, Err: ErrInvalidPath}
	}

	joined := filepath.Join(r.root, trimmed)
	resolved, err := canonicalize(joined)
	if err != nil {
		return "", &PathError{Op: "resolve", Path: relPath, Err: err}
	}

	if resolved == r.root {
		return "", &PathError{Op: "resolve", Path: relPath, Err: ErrInvalidPath}
	}
	if !isWithin(resolved, r.root) {
		r.logger.Warn("Path traversal attempt rejected",
			zap.String("path", relPath),
			zap.String("resolved", resolved),
			zap.String("root", r.root),
		)
		return "", &PathError{Op: "resolve", Path: relPath, Err: ErrPathTraversal}
	}

	return resolved, nil
}

// Rel returns the sandbox-relative form of a previously resolved path.
func (r *Resolver) Rel(resolved string) (string, error) {
	return filepath.Rel(r.root, resolved)
}

// maxLinkHops bounds dangling-symlink chains during canonicalization.
const maxLinkHops = 40

// canonicalize resolves path to its real, symlink-free form. The target
// itself may not exist yet (create operations); in that case the deepest
// existing ancestor is resolved and the remaining segments re-appended.
//
// EvalSymlinks reports ErrNotExist for a dangling symlink as well as for
// a genuinely missing name. The two must not be conflated: a dangling
// link is followed to its target so a link pointing outside the root
// canonicalizes to that outside path and fails the ancestry check,
// instead of passing as a plain new file that later writes would follow.
func canonicalize(path string) (string, error) {
	remainder := make([]string, 0, 4)
	current := path
	hops := 0

	for {
		resolved, err := filepath.EvalSymlinks(current)
		if err == nil {
			for i := len(remainder) - 1; i >= 0; i-- {
				resolved = filepath.Join(resolved, remainder[i])
			}
			return resolved, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}

		if info, lerr := os.Lstat(current); lerr == nil && info.Mode()&fs.ModeSymlink != 0 {
			hops++
			if hops > maxLinkHops {
				return "", ErrInvalidPath
			}
			target, rerr := os.Readlink(current)
			if rerr != nil {
				return "", rerr
			}
			if !filepath.IsAbs(target) {
				target = filepath.Join(filepath.Dir(current), target)
			}
			current = target
			continue
		}

		parent := filepath.Dir(current)
		if parent == current {
			// Walked off the top without finding an existing ancestor.
			return "", err
		}
		remainder = append(remainder, filepath.Base(current))
		current = parent
	}
}

// isWithin reports whether path equals base or is a descendant of it.
func isWithin(path, base string) bool {
	return path == base || strings.HasPrefix(path, base+string(os.PathSeparator))
}

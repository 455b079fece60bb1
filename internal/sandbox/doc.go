// Package sandbox provides path resolution confined to a single root
// directory. Every caller-supplied relative path is joined against the
// root and canonicalized (symlinks included) before use, so no resolved
// path can escape the sandbox via `..` segments or symlink tricks.
package sandbox

/*
Package scratchpad implements the sandboxed scratchpad service provider.

All operations address entries by sandbox-relative paths and are exposed
as callable tools. Each operation resolves its path arguments through the
sandbox resolver before touching the filesystem, and converts every
validation or I/O failure into a failure Result, so nothing propagates
past the Execute boundary.

Operations are grouped by concern:
  - basic.go      file create/read/update/delete
  - folders.go    folder create/delete
  - operations.go rename and move
  - listing.go    recursive listings
  - search.go     pattern and glob search
  - metadata.go   stat and MIME detection
  - formats.go    JSON and YAML read/write
  - archives.go   tar.gz pack/unpack
  - utility.go    clock
*/
package scratchpad

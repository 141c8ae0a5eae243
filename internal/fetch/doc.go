// Package fetch materializes a remote template repository into a local
// directory. The default Tarball fetcher downloads a GitHub tarball and
// extracts it; the Git fetcher shallow-clones with the git binary. Both
// bypass any local cache and overwrite files already present at the
// destination.
package fetch

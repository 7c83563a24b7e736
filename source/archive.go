package source

import (
	"archive/zip"
	"fmt"
	"io"
	"path"
	"strings"
)

// WalkFunc is the type of the function called for each file in archive
// visited by WalkArchive. The archive argument contains path to archive passed
// to WalkArchive. If an error is returned, processing stops.
type WalkFunc func(archive string, file *zip.File) error

// WalkArchive calls walkFn for every file in the archive with name starting
// with prefix. Archives with entries having absolute paths or path traversal
// components ("..") are refused.
func WalkArchive(archive, prefix string, walkFn WalkFunc) error {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return err
	}
	defer r.Close()

	prefix = toSlash(prefix)
	for _, f := range r.File {
		name := f.FileHeader.Name
		if !isSafePath(name) {
			return fmt.Errorf("zip entry %q: unsafe path (absolute or contains path traversal)", name)
		}
		if f.FileInfo().IsDir() || !strings.HasPrefix(name, prefix) {
			continue
		}
		if err := walkFn(archive, f); err != nil {
			return err
		}
	}
	return nil
}

func toSlash(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}

// isSafePath returns false for paths that could escape the extraction
// directory: absolute paths and those containing ".." components.
func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, `\`) {
		return false
	}
	for part := range strings.SplitSeq(toSlash(name), "/") {
		if part == ".." {
			return false
		}
	}
	return true
}

func readArchived(f *zip.File, limit int64) ([]byte, error) {
	r, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer r.Close()

	if limit > 0 {
		return readHead(io.LimitReader(r, limit))
	}
	return io.ReadAll(r)
}

// ArchivedReference names file inside archive the way images inside archives
// are referenced in produced pages.
func ArchivedReference(archive string, f *zip.File) string {
	return path.Join(path.Base(toSlash(archive)), f.Name)
}

// Package archive builds Walk abstraction on top of "archive/zip".
package archive

import (
	"archive/zip"
	"fmt"
	"path"
	"path/filepath"
	"strings"
)

// WalkFunc is the type of the function called for each file in archive
// visited by Walk. The archive argument contains path to archive passed to
// Walk. The file argument is the zip.File structure for file in archive which
// satisfies match condition. If an error is returned, processing stops.
type WalkFunc func(archive string, file *zip.File) error

// Walk walks all files in the archive located under pattern and having one
// of the requested extensions, calling walkFn for each item. Empty extension
// list matches any file. Archives with absolute entries or entries containing
// ".." (with either separator) are rejected to prevent Zip Slip attacks.
func Walk(archive, pattern string, exts []string, walkFn WalkFunc) error {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		name := f.FileHeader.Name
		if !isSafePath(name) {
			return fmt.Errorf("zip entry %q: unsafe path (absolute or contains path traversal)", name)
		}
		if f.FileInfo().IsDir() || !strings.HasPrefix(name, pattern) || !HasExtension(name, exts) {
			continue
		}
		if err := walkFn(archive, f); err != nil {
			return err
		}
	}
	return nil
}

// HasExtension reports whether name ends with one of exts, ignoring case.
func HasExtension(name string, exts []string) bool {
	if len(exts) == 0 {
		return true
	}
	ext := path.Ext(strings.ReplaceAll(name, `\`, "/"))
	for _, e := range exts {
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}

// isSafePath returns false for paths that could escape the extraction
// directory: absolute paths, paths with drive letter and those containing
// ".." components. Either separator counts.
func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, `\`) || hasVolume(name) {
		return false
	}
	for part := range strings.FieldsFuncSeq(name, isSeparator) {
		if part == ".." {
			return false
		}
	}
	return true
}

// IsLocalName reports whether name (slash or backslash separated) stays
// inside the directory it is joined to.
func IsLocalName(name string) bool {
	return isSafePath(name) && filepath.IsLocal(filepath.FromSlash(strings.ReplaceAll(name, `\`, "/")))
}

func isSeparator(r rune) bool {
	return r == '/' || r == '\\'
}

func hasVolume(name string) bool {
	return len(name) >= 2 && name[1] == ':' &&
		(('a' <= name[0] && name[0] <= 'z') || ('A' <= name[0] && name[0] <= 'Z'))
}

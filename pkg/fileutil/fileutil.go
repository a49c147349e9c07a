package fileutil

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rohmanhakim/fixturegen/pkg/failure"
)

// GetFileExtension extracts the file extension from a path, or empty string if none
func GetFileExtension(path string) string {
	ext := filepath.Ext(path)
	if ext == "" {
		return ""
	}
	// Remove the leading dot
	return strings.TrimPrefix(ext, ".")
}

// SwapExtension replaces the extension of path with newExt (which must
// include the leading dot, e.g. ".png"). A path without an extension
// gets newExt appended.
func SwapExtension(path string, newExt string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + newExt
}

// EnsureDir check if a given directory plus the following path exist, then create one if not
func EnsureDir(dir string, path ...string) failure.ClassifiedError {
	targetPath := []string{dir}
	targetPath = append(targetPath, path...)

	target := filepath.Join(targetPath...)
	if err := os.MkdirAll(target, 0755); err != nil {
		return &FileError{
			Message:   fmt.Sprintf("%v", err),
			Retryable: false,
			Cause:     ErrCausePathError,
			Path:      target,
		}
	}
	return nil
}

// WriteFileAtomic writes content to path with write-to-temp-then-rename
// discipline: either the full content lands at path or the previous
// file (if any) is left untouched. The temp file lives next to the
// destination so the rename never crosses filesystems.
func WriteFileAtomic(path string, content []byte) failure.ClassifiedError {
	dir := filepath.Dir(path)
	if err := EnsureDir(dir); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return &FileError{
			Message:   err.Error(),
			Retryable: false,
			Cause:     ErrCauseWriteFailure,
			Path:      path,
		}
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &FileError{
			Message:   err.Error(),
			Retryable: false,
			Cause:     ErrCauseWriteFailure,
			Path:      path,
		}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &FileError{
			Message:   err.Error(),
			Retryable: false,
			Cause:     ErrCauseWriteFailure,
			Path:      path,
		}
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return &FileError{
			Message:   err.Error(),
			Retryable: false,
			Cause:     ErrCauseWriteFailure,
			Path:      path,
		}
	}
	return nil
}

// CopyFile copies src to dst, creating dst's parent directories as
// needed. An existing dst is overwritten.
func CopyFile(src string, dst string) failure.ClassifiedError {
	content, err := os.ReadFile(src)
	if err != nil {
		return &FileError{
			Message:   err.Error(),
			Retryable: false,
			Cause:     ErrCauseReadFailure,
			Path:      src,
		}
	}
	return WriteFileAtomic(dst, content)
}

// SameContent reports whether both files exist and hold identical bytes.
func SameContent(a string, b string) (bool, failure.ClassifiedError) {
	contentA, err := os.ReadFile(a)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, &FileError{
			Message:   err.Error(),
			Retryable: false,
			Cause:     ErrCauseReadFailure,
			Path:      a,
		}
	}
	contentB, err := os.ReadFile(b)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, &FileError{
			Message:   err.Error(),
			Retryable: false,
			Cause:     ErrCauseReadFailure,
			Path:      b,
		}
	}
	return bytes.Equal(contentA, contentB), nil
}

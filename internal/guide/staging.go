package guide

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// StageDocument copies r into dir as "<unixnano>-<basename of name>" and returns
// the new path. The staged copy belongs to BuildGuide, which deletes it.
func StageDocument(dir string, name string, r io.Reader) (string, error) {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if base == "." || base == "/" || base == "" {
		return "", fmt.Errorf("invalid document name %q", name)
	}

	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", fmt.Errorf("creating staging directory: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("%d-%s", time.Now().UnixNano(), base))
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		return "", fmt.Errorf("creating staged document: %w", err)
	}

	_, copyErr := io.Copy(f, r)
	closeErr := f.Close()
	if err := errors.Join(copyErr, closeErr); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("writing staged document: %w", err)
	}
	return path, nil
}

// StagingDir is the directory both surfaces stage uploads in: dirName under the
// system temp dir.
func StagingDir(dirName string) string {
	return filepath.Join(os.TempDir(), dirName)
}

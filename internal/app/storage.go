package app

import (
	"fmt"
	"os"

	"github.com/klabast/yearplan/internal/surface"
)

// SaveSurface writes the finished surface to path. The document is written to
// a temp file next to path first and renamed over path on success, so a
// failed save never leaves a partial file behind.
func SaveSurface(path string, s surface.Surface) (err error) {
	tmpFile := path + TmpSuffix

	file, err := os.OpenFile(tmpFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, FilePermissions)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmpFile)
		}
	}()

	if err = s.Save(file); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err = file.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmpFile, err)
	}

	// Rename temp file to actual file
	if err = os.Rename(tmpFile, path); err != nil {
		return fmt.Errorf("failed to move output into place: %w", err)
	}
	return nil
}

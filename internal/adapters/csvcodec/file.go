package csvcodec

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const (
	exportFileMode  = 0o644
	tempFilePattern = ".mlm-export-*.csv.tmp"
)

// WriteFileAtomic runs write against a temporary file next to path and
// renames it into place only when write and the final close both succeed.
// On any failure path the temporary file is removed and path is untouched.
func WriteFileAtomic(path string, write func(io.Writer) error) error {
	dir := filepath.Dir(path)
	tempFile, err := os.CreateTemp(dir, tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp export file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	buffered := bufio.NewWriter(tempFile)
	if err := write(buffered); err != nil {
		_ = tempFile.Close()
		return err
	}

	if err := buffered.Flush(); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("flush export file: %w", err)
	}

	if err := tempFile.Chmod(exportFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod export file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close export file: %w", err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace export file: %w", err)
	}

	cleanup = false
	return nil
}

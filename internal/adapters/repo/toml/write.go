package toml

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/matchy/internal/domain"
	toml "github.com/pelletier/go-toml/v2"
)

// writeTOMLFile encodes file to a temporary sibling of path and renames it
// into place, so readers only ever see a complete document.
func writeTOMLFile(path string, file any) error {
	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode state file: %w: %w", domain.ErrSchemaValidation, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), stateDirMode); err != nil {
		return fmt.Errorf("create state directory: %w: %w", domain.ErrStorageIO, err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp state file: %w: %w", domain.ErrStorageIO, err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp state file: %w: %w", domain.ErrStorageIO, err)
	}

	if err := tempFile.Chmod(stateFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp state file: %w: %w", domain.ErrStorageIO, err)
	}

	if err := tempFile.Sync(); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("sync temp state file: %w: %w", domain.ErrStorageIO, err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp state file: %w: %w", domain.ErrStorageIO, err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace state file: %w: %w", domain.ErrStorageIO, err)
	}

	cleanup = false
	return nil
}

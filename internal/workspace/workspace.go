// Package workspace implements the file operations the Inkfinite desktop
// shell invokes: listing document directories, renaming and deleting
// files, and picking a workspace folder through a native dialog.
package workspace

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Picker summons the platform's folder-selection dialog. Implementations
// return the chosen absolute path, or an empty string when the user
// dismisses the dialog without choosing.
type Picker interface {
	PickFolder(title string) (string, error)
}

// Service exposes the workspace file operations. It holds no cross-call
// state, so concurrent use is safe to the extent the underlying file
// system tolerates it.
type Service struct {
	picker Picker
}

// NewService creates a Service using the given folder picker.
func NewService(picker Picker) *Service {
	return &Service{picker: picker}
}

// List enumerates the immediate children of directory. Subdirectories
// are always included; files are filtered by pattern (DefaultPattern
// when empty). The result is ordered directories first, then files,
// each group sorted case-insensitively by name.
func (s *Service) List(directory, pattern string) ([]Entry, error) {
	info, err := os.Stat(directory)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: directory does not exist: %s", ErrNotFound, directory)
		}
		return nil, fmt.Errorf("failed to stat directory %s: %w", directory, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: path is not a directory: %s", ErrNotADirectory, directory)
	}

	dirEntries, err := os.ReadDir(directory)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", directory, err)
	}

	if pattern == "" {
		pattern = DefaultPattern
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		// A stat failure on any child aborts the whole listing; the
		// caller gets either a complete result or an error.
		fi, err := de.Info()
		if err != nil {
			return nil, fmt.Errorf("failed to read metadata for %s: %w", de.Name(), err)
		}

		if !fi.IsDir() && !matchPattern(de.Name(), pattern) {
			continue
		}

		entries = append(entries, Entry{
			Path:  filepath.Join(directory, de.Name()),
			Name:  de.Name(),
			IsDir: fi.IsDir(),
		})
	}

	sortEntries(entries)
	return entries, nil
}

// Rename moves oldPath to newPath. An existing target is replaced
// according to the OS rename semantics; no overwrite check is made here.
func (s *Service) Rename(oldPath, newPath string) error {
	if _, err := os.Stat(oldPath); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: source file does not exist: %s", ErrNotFound, oldPath)
		}
		return fmt.Errorf("failed to stat %s: %w", oldPath, err)
	}

	if err := os.Rename(oldPath, newPath); err != nil {
		return fmt.Errorf("failed to rename %s to %s: %w", oldPath, newPath, err)
	}
	return nil
}

// Delete removes a single file. Directories are rejected.
func (s *Service) Delete(filePath string) error {
	info, err := os.Stat(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: file does not exist: %s", ErrNotFound, filePath)
		}
		return fmt.Errorf("failed to stat %s: %w", filePath, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: path is a directory, not a file: %s", ErrIsADirectory, filePath)
	}

	if err := os.Remove(filePath); err != nil {
		return fmt.Errorf("failed to delete %s: %w", filePath, err)
	}
	return nil
}

// PickDirectory opens the native folder dialog and returns the chosen
// path, or an empty string if the user cancelled. Dialog subsystem
// failures are logged and reported as no selection; the shell offers
// the same recovery for both (pick again).
func (s *Service) PickDirectory() string {
	path, err := s.picker.PickFolder("Select Workspace Folder")
	if err != nil {
		log.Printf("Warning: folder dialog failed: %v", err)
		return ""
	}
	return path
}

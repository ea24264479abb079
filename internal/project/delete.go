package project

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/firefly-engineering/scaffold/internal/errors"
	"github.com/firefly-engineering/scaffold/internal/history"
)

// DeleteOutcome is the result of a Delete call that did not fail.
type DeleteOutcome int

const (
	// DeleteCancelled means the operator declined; nothing was touched.
	DeleteCancelled DeleteOutcome = iota
	// Deleted means the project directory is gone.
	Deleted
)

func (o DeleteOutcome) String() string {
	if o == Deleted {
		return "deleted"
	}
	return "cancelled"
}

// DeleteQuestion is the confirmation asked before deleting name.
func DeleteQuestion(name string) string {
	return fmt.Sprintf("Are you sure you want to delete the project '%s'? This cannot be undone.", name)
}

// Delete removes a project directory and everything in it after the
// operator confirms.
func (m *Manager) Delete(ctx context.Context, name string) (DeleteOutcome, error) {
	path, err := m.ProjectPath(name)
	if err != nil {
		return DeleteCancelled, err
	}

	if !m.fs.Exists(path) {
		return DeleteCancelled, errors.ProjectNotFound(name)
	}

	ok, err := m.prompter.Confirm(DeleteQuestion(name))
	if err != nil {
		return DeleteCancelled, err
	}
	if !ok {
		m.log.Debug("delete declined", "name", name)
		return DeleteCancelled, nil
	}

	m.log.Debug("deleting project", "name", name, "path", path)

	if err := m.removeTree(path, path); err != nil {
		m.log.Error("failed to delete project", "path", path, "error", err)
		return DeleteCancelled, errors.FilesystemError("deleting project", err)
	}

	m.record(history.EventDelete, name, "")
	return Deleted, nil
}

// removeTree removes path and everything below it without following
// symlinks. top bounds the permission repair: directories above it are
// never touched.
func (m *Manager) removeTree(path, top string) error {
	info, err := m.fs.Lstat(path)
	if errors.Is(err, fs.ErrPermission) && path != top {
		// The parent is readable but not searchable.
		if rerr := m.grantAccess(filepath.Dir(path), top, false); rerr != nil {
			return rerr
		}
		info, err = m.fs.Lstat(path)
	}
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}

	if info.IsDir() {
		entries, err := m.fs.ReadDir(path)
		if errors.Is(err, fs.ErrPermission) {
			if rerr := m.grantAccess(path, top, false); rerr != nil {
				return rerr
			}
			entries, err = m.fs.ReadDir(path)
		}
		if err != nil {
			return err
		}

		for _, entry := range entries {
			if err := m.removeTree(filepath.Join(path, entry.Name()), top); err != nil {
				return err
			}
		}
	}

	err = m.fs.Remove(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if !errors.Is(err, fs.ErrPermission) {
		return err
	}

	m.log.Debug("permission denied during removal, retrying", "path", path)
	if err := m.grantAccess(path, top, info.Mode()&fs.ModeSymlink != 0); err != nil {
		return err
	}
	return m.fs.Remove(path)
}

// grantAccess gives full permissions to path and owner access to its
// parent directory when the parent lies inside top. Symlinks are not
// chmodded since that would change their target.
func (m *Manager) grantAccess(path, top string, symlink bool) error {
	if !symlink {
		if err := m.fs.Chmod(path, 0777); err != nil {
			return fmt.Errorf("failed to grant access to %s: %w", path, err)
		}
	}

	if path == top {
		return nil
	}
	parent := filepath.Dir(path)
	if err := m.fs.Chmod(parent, 0700); err != nil {
		return fmt.Errorf("failed to grant access to %s: %w", parent, err)
	}
	return nil
}

package project

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/firefly-engineering/scaffold/internal/errors"
)

// Project is a directory under the projects root.
type Project struct {
	Name string
	Path string

	// Activate is the detected environment's activation script, if any.
	Activate string
}

// HasEnvironment reports whether an environment was detected.
func (p Project) HasEnvironment() bool {
	return p.Activate != ""
}

// List returns the projects under the root sorted by name. Entries whose
// name starts with a dot are skipped. Each project is annotated with its
// detected environment.
func (m *Manager) List() ([]Project, error) {
	entries, err := m.fs.ReadDir(m.root)
	if err != nil {
		return nil, errors.FilesystemError("listing projects", err)
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if !entry.IsDir() && !m.fs.IsDir(filepath.Join(m.root, name)) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	projects := make([]Project, 0, len(names))
	for _, name := range names {
		p := Project{Name: name, Path: filepath.Join(m.root, name)}
		if activate, ok := m.DetectEnvironment(p.Path); ok {
			p.Activate = activate
		}
		projects = append(projects, p)
	}

	m.log.Debug("listed projects", "root", m.root, "count", len(projects))
	return projects, nil
}

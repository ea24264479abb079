package system

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"syscall"
	"time"
)

// MockFS implements FileSystem for testing.
type MockFS struct {
	mu    sync.RWMutex
	files map[string]*mockFile
	dirs  map[string]fs.FileMode

	// locked paths fail Remove with a permission error until chmodded.
	locked map[string]bool

	// unsearchable directories fail Lstat of their children until chmodded.
	unsearchable map[string]bool

	// Chmods records every Chmod call in order.
	Chmods []string

	// Error injection
	ReadFileErr  error
	WriteFileErr error
	RemoveErr    error
	StatErr      error
	MkdirAllErr  error
	ChmodErr     error
	ReadDirErr   error
}

type mockFile struct {
	data []byte
	mode fs.FileMode
}

// NewMockFS creates a new MockFS with an empty filesystem.
func NewMockFS() *MockFS {
	return &MockFS{
		files:        make(map[string]*mockFile),
		dirs:         make(map[string]fs.FileMode),
		locked:       make(map[string]bool),
		unsearchable: make(map[string]bool),
	}
}

// AddFile adds a file to the mock filesystem.
func (m *MockFS) AddFile(path string, data []byte, mode fs.FileMode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[path] = &mockFile{data: data, mode: mode}
	m.addParents(path)
}

// AddDir adds a directory to the mock filesystem.
func (m *MockFS) AddDir(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dirs[path] = 0755
	m.addParents(path)
}

// Lock makes Remove of path fail with a permission error until Chmod is
// called on it, the way a read-only entry behaves.
func (m *MockFS) Lock(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.locked[path] = true
}

// Unsearchable makes Lstat of entries inside the directory path fail with
// a permission error until Chmod is called on it, the way a directory
// without the execute bit behaves. ReadDir keeps working.
func (m *MockFS) Unsearchable(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.unsearchable[path] = true
}

// GetFile returns the contents of a file in the mock filesystem.
func (m *MockFS) GetFile(path string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	f, ok := m.files[path]
	if !ok {
		return nil, false
	}
	return f.data, true
}

// Mode returns the mode of a file or directory in the mock filesystem.
func (m *MockFS) Mode(path string) (fs.FileMode, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if f, ok := m.files[path]; ok {
		return f.mode, true
	}
	if mode, ok := m.dirs[path]; ok {
		return mode, true
	}
	return 0, false
}

func (m *MockFS) addParents(path string) {
	dir := filepath.Dir(path)
	for dir != "." && dir != "/" {
		if _, ok := m.dirs[dir]; !ok {
			m.dirs[dir] = 0755
		}
		dir = filepath.Dir(dir)
	}
}

func (m *MockFS) ReadFile(path string) ([]byte, error) {
	if m.ReadFileErr != nil {
		return nil, m.ReadFileErr
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	f, ok := m.files[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return f.data, nil
}

func (m *MockFS) WriteFile(path string, data []byte, perm fs.FileMode) error {
	if m.WriteFileErr != nil {
		return m.WriteFileErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.dirs[filepath.Dir(path)]; !ok {
		return &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	m.files[path] = &mockFile{data: data, mode: perm}
	return nil
}

func (m *MockFS) Remove(path string) error {
	if m.RemoveErr != nil {
		return m.RemoveErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.locked[path] {
		return &fs.PathError{Op: "remove", Path: path, Err: fs.ErrPermission}
	}
	if _, ok := m.files[path]; ok {
		delete(m.files, path)
		return nil
	}
	if _, ok := m.dirs[path]; ok {
		if m.hasChildren(path) {
			return &fs.PathError{Op: "remove", Path: path, Err: syscall.ENOTEMPTY}
		}
		delete(m.dirs, path)
		return nil
	}
	return &fs.PathError{Op: "remove", Path: path, Err: fs.ErrNotExist}
}

func (m *MockFS) hasChildren(path string) bool {
	for p := range m.files {
		if hasPathPrefix(p, path) {
			return true
		}
	}
	for p := range m.dirs {
		if hasPathPrefix(p, path) {
			return true
		}
	}
	return false
}

func (m *MockFS) Stat(path string) (fs.FileInfo, error) {
	if m.StatErr != nil {
		return nil, m.StatErr
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	if f, ok := m.files[path]; ok {
		return &mockFileInfo{name: filepath.Base(path), size: int64(len(f.data)), mode: f.mode}, nil
	}
	if mode, ok := m.dirs[path]; ok {
		return &mockFileInfo{name: filepath.Base(path), isDir: true, mode: fs.ModeDir | mode}, nil
	}
	return nil, &fs.PathError{Op: "stat", Path: path, Err: fs.ErrNotExist}
}

// Lstat behaves like Stat; MockFS has no symlinks.
func (m *MockFS) Lstat(path string) (fs.FileInfo, error) {
	m.mu.RLock()
	denied := m.unsearchable[filepath.Dir(path)]
	m.mu.RUnlock()
	if denied {
		return nil, &fs.PathError{Op: "lstat", Path: path, Err: fs.ErrPermission}
	}
	return m.Stat(path)
}

func (m *MockFS) MkdirAll(path string, perm fs.FileMode) error {
	if m.MkdirAllErr != nil {
		return m.MkdirAllErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.files[path]; ok {
		return &fs.PathError{Op: "mkdir", Path: path, Err: syscall.ENOTDIR}
	}

	current := path
	for current != "." && current != "/" {
		if _, ok := m.dirs[current]; !ok {
			m.dirs[current] = perm
		}
		current = filepath.Dir(current)
	}
	return nil
}

func (m *MockFS) Chmod(path string, mode fs.FileMode) error {
	if m.ChmodErr != nil {
		return m.ChmodErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Chmods = append(m.Chmods, fmt.Sprintf("%s %o", path, mode))

	if f, ok := m.files[path]; ok {
		f.mode = mode
	} else if _, ok := m.dirs[path]; ok {
		m.dirs[path] = mode
	} else {
		return &fs.PathError{Op: "chmod", Path: path, Err: fs.ErrNotExist}
	}
	delete(m.locked, path)
	delete(m.unsearchable, path)
	return nil
}

func (m *MockFS) Exists(path string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, fileOk := m.files[path]
	_, dirOk := m.dirs[path]
	return fileOk || dirOk
}

func (m *MockFS) IsDir(path string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.dirs[path]
	return ok
}

func (m *MockFS) ReadDir(path string) ([]fs.DirEntry, error) {
	if m.ReadDirErr != nil {
		return nil, m.ReadDirErr
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	if _, ok := m.dirs[path]; !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}

	var result []fs.DirEntry
	for p, f := range m.files {
		if filepath.Dir(p) == path {
			result = append(result, &mockDirEntry{name: filepath.Base(p), mode: f.mode})
		}
	}
	for p, mode := range m.dirs {
		if filepath.Dir(p) == path && p != path {
			result = append(result, &mockDirEntry{name: filepath.Base(p), isDir: true, mode: fs.ModeDir | mode})
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name() < result[j].Name()
	})
	return result, nil
}

// hasPathPrefix checks if path has the given prefix as a path component.
func hasPathPrefix(path, prefix string) bool {
	return strings.HasPrefix(path, strings.TrimSuffix(prefix, "/")+"/")
}

// mockFileInfo implements fs.FileInfo for testing.
type mockFileInfo struct {
	name  string
	size  int64
	mode  fs.FileMode
	isDir bool
}

func (m *mockFileInfo) Name() string       { return m.name }
func (m *mockFileInfo) Size() int64        { return m.size }
func (m *mockFileInfo) Mode() fs.FileMode  { return m.mode }
func (m *mockFileInfo) ModTime() time.Time { return time.Now() }
func (m *mockFileInfo) IsDir() bool        { return m.isDir }
func (m *mockFileInfo) Sys() interface{}   { return nil }

// mockDirEntry implements fs.DirEntry for testing.
type mockDirEntry struct {
	name  string
	mode  fs.FileMode
	isDir bool
}

func (m *mockDirEntry) Name() string      { return m.name }
func (m *mockDirEntry) IsDir() bool       { return m.isDir }
func (m *mockDirEntry) Type() fs.FileMode { return m.mode.Type() }
func (m *mockDirEntry) Info() (fs.FileInfo, error) {
	return &mockFileInfo{name: m.name, mode: m.mode, isDir: m.isDir}, nil
}

// MockExecutor implements CommandExecutor for testing.
type MockExecutor struct {
	mu sync.Mutex

	// Commands records all executed commands for verification.
	Commands []MockCommand

	// Responses maps command patterns to responses.
	// Key format: "command arg1"
	Responses map[string]MockResponse

	// DefaultResponse is used when no matching response is found.
	DefaultResponse MockResponse

	// OnExecute, if set, runs after the command is recorded and before the
	// response is returned. Tests use it to simulate side effects.
	OnExecute func(cmd MockCommand)
}

// MockCommand records an executed command.
type MockCommand struct {
	Name string
	Args []string
}

// String returns the command line joined by spaces.
func (c MockCommand) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// MockResponse defines the response for a command.
type MockResponse struct {
	Output []byte
	Err    error
}

// NewMockExecutor creates a new MockExecutor.
func NewMockExecutor() *MockExecutor {
	return &MockExecutor{
		Commands:  make([]MockCommand, 0),
		Responses: make(map[string]MockResponse),
	}
}

// AddResponse adds a response for a specific command pattern.
func (m *MockExecutor) AddResponse(pattern string, output []byte, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Responses[pattern] = MockResponse{Output: output, Err: err}
}

func (m *MockExecutor) Execute(ctx context.Context, name string, args ...string) ([]byte, error) {
	m.mu.Lock()
	cmd := MockCommand{Name: name, Args: args}
	m.Commands = append(m.Commands, cmd)

	resp := m.DefaultResponse
	key := name
	if len(args) > 0 {
		key = name + " " + args[0]
	}
	if r, ok := m.Responses[key]; ok {
		resp = r
	} else if r, ok := m.Responses[name]; ok {
		resp = r
	}
	hook := m.OnExecute
	m.mu.Unlock()

	if hook != nil {
		hook(cmd)
	}
	return resp.Output, resp.Err
}

// LastCommand returns the most recently executed command.
func (m *MockExecutor) LastCommand() (MockCommand, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Commands) == 0 {
		return MockCommand{}, false
	}
	return m.Commands[len(m.Commands)-1], true
}

// Reset clears all recorded commands.
func (m *MockExecutor) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Commands = make([]MockCommand, 0)
}

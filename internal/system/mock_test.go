package system

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"syscall"
	"testing"
)

func TestMockFS_ReadWriteFile(t *testing.T) {
	mockFS := NewMockFS()
	mockFS.AddDir("/test")

	if err := mockFS.WriteFile("/test/file.txt", []byte("hello world"), 0644); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	data, err := mockFS.ReadFile("/test/file.txt")
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}

	if string(data) != "hello world" {
		t.Errorf("ReadFile = %q, want %q", string(data), "hello world")
	}
}

func TestMockFS_WriteFile_MissingParent(t *testing.T) {
	mockFS := NewMockFS()

	err := mockFS.WriteFile("/missing/file.txt", []byte("x"), 0644)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("WriteFile error = %v, want fs.ErrNotExist", err)
	}
}

func TestMockFS_Stat(t *testing.T) {
	mockFS := NewMockFS()
	mockFS.AddFile("/test/file.txt", []byte("content"), 0644)
	mockFS.AddDir("/test/dir")

	info, err := mockFS.Stat("/test/file.txt")
	if err != nil {
		t.Fatalf("Stat file error: %v", err)
	}
	if info.IsDir() {
		t.Error("File should not be a directory")
	}
	if info.Name() != "file.txt" {
		t.Errorf("Name = %q, want %q", info.Name(), "file.txt")
	}

	info, err = mockFS.Lstat("/test/dir")
	if err != nil {
		t.Fatalf("Lstat dir error: %v", err)
	}
	if !info.IsDir() {
		t.Error("Dir should be a directory")
	}

	if _, err := mockFS.Stat("/nope"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Stat error = %v, want fs.ErrNotExist", err)
	}
}

func TestMockFS_ExistsAndIsDir(t *testing.T) {
	mockFS := NewMockFS()
	mockFS.AddFile("/file.txt", []byte("x"), 0644)
	mockFS.AddDir("/dir")

	if !mockFS.Exists("/file.txt") || !mockFS.Exists("/dir") {
		t.Error("File and dir should exist")
	}
	if mockFS.Exists("/nonexistent") {
		t.Error("Nonexistent should not exist")
	}
	if mockFS.IsDir("/file.txt") {
		t.Error("File should not be a directory")
	}
	if !mockFS.IsDir("/dir") {
		t.Error("Dir should be a directory")
	}
}

func TestMockFS_Remove(t *testing.T) {
	mockFS := NewMockFS()
	mockFS.AddFile("/dir/file.txt", []byte("x"), 0644)

	err := mockFS.Remove("/dir")
	if !errors.Is(err, syscall.ENOTEMPTY) {
		t.Errorf("Remove non-empty dir error = %v, want ENOTEMPTY", err)
	}

	if err := mockFS.Remove("/dir/file.txt"); err != nil {
		t.Fatalf("Remove file error: %v", err)
	}
	if err := mockFS.Remove("/dir"); err != nil {
		t.Fatalf("Remove empty dir error: %v", err)
	}
	if mockFS.Exists("/dir") {
		t.Error("Dir should be removed")
	}
}

func TestMockFS_LockUntilChmod(t *testing.T) {
	mockFS := NewMockFS()
	mockFS.AddFile("/ro.txt", []byte("x"), 0444)
	mockFS.Lock("/ro.txt")

	if err := mockFS.Remove("/ro.txt"); !errors.Is(err, fs.ErrPermission) {
		t.Fatalf("Remove locked error = %v, want fs.ErrPermission", err)
	}

	if err := mockFS.Chmod("/ro.txt", 0777); err != nil {
		t.Fatalf("Chmod error: %v", err)
	}
	if mode, _ := mockFS.Mode("/ro.txt"); mode != 0777 {
		t.Errorf("Mode = %o, want 777", mode)
	}
	if err := mockFS.Remove("/ro.txt"); err != nil {
		t.Errorf("Remove after chmod error: %v", err)
	}
	if len(mockFS.Chmods) != 1 || mockFS.Chmods[0] != "/ro.txt 777" {
		t.Errorf("Chmods = %v", mockFS.Chmods)
	}
}

func TestMockFS_MkdirAll(t *testing.T) {
	mockFS := NewMockFS()

	if err := mockFS.MkdirAll("/a/b/c", 0755); err != nil {
		t.Fatalf("MkdirAll error: %v", err)
	}

	for _, dir := range []string{"/a", "/a/b", "/a/b/c"} {
		if !mockFS.IsDir(dir) {
			t.Errorf("%s should be a directory", dir)
		}
	}
}

func TestMockFS_ReadDirSorted(t *testing.T) {
	mockFS := NewMockFS()
	mockFS.AddDir("/root/beta")
	mockFS.AddDir("/root/alpha")
	mockFS.AddFile("/root/notes.txt", []byte("x"), 0644)
	mockFS.AddFile("/root/alpha/deep.txt", []byte("x"), 0644)

	entries, err := mockFS.ReadDir("/root")
	if err != nil {
		t.Fatalf("ReadDir error: %v", err)
	}

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	if got := fmt.Sprint(names); got != "[alpha beta notes.txt]" {
		t.Errorf("ReadDir names = %s, want [alpha beta notes.txt]", got)
	}
	if !entries[0].IsDir() || entries[2].IsDir() {
		t.Error("IsDir mismatch on entries")
	}
}

func TestMockFS_ErrorInjection(t *testing.T) {
	mockFS := NewMockFS()
	mockFS.ReadFileErr = fs.ErrPermission

	if _, err := mockFS.ReadFile("/anything"); err != fs.ErrPermission {
		t.Errorf("ReadFile error = %v, want ErrPermission", err)
	}
}

func TestMockExecutor_Execute(t *testing.T) {
	exec := NewMockExecutor()
	exec.AddResponse("echo", []byte("hello\n"), nil)

	output, err := exec.Execute(context.Background(), "echo", "hello")
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	if string(output) != "hello\n" {
		t.Errorf("Output = %q, want %q", string(output), "hello\n")
	}

	cmd, ok := exec.LastCommand()
	if !ok {
		t.Fatal("No command recorded")
	}
	if cmd.String() != "echo hello" {
		t.Errorf("Command = %q, want %q", cmd.String(), "echo hello")
	}
}

func TestMockExecutor_PatternMatch(t *testing.T) {
	exec := NewMockExecutor()
	exec.AddResponse("python3 -m", []byte("boom"), fmt.Errorf("exit status 1"))

	out, err := exec.Execute(context.Background(), "python3", "-m", "venv", "/x")
	if err == nil || string(out) != "boom" {
		t.Errorf("Execute = (%q, %v), want (boom, error)", out, err)
	}
}

func TestMockExecutor_OnExecute(t *testing.T) {
	exec := NewMockExecutor()
	var seen string
	exec.OnExecute = func(cmd MockCommand) { seen = cmd.String() }

	_, _ = exec.Execute(context.Background(), "true")

	if seen != "true" {
		t.Errorf("OnExecute saw %q, want %q", seen, "true")
	}
}

func TestMockExecutor_Reset(t *testing.T) {
	exec := NewMockExecutor()
	exec.Execute(context.Background(), "cmd1")
	exec.Execute(context.Background(), "cmd2")

	if len(exec.Commands) != 2 {
		t.Errorf("Commands length = %d, want 2", len(exec.Commands))
	}

	exec.Reset()

	if len(exec.Commands) != 0 {
		t.Errorf("Commands length after reset = %d, want 0", len(exec.Commands))
	}
}

func TestMockFS_UnsearchableUntilChmod(t *testing.T) {
	mockFS := NewMockFS()
	mockFS.AddFile("/dir/file.txt", []byte("x"), 0644)
	mockFS.Unsearchable("/dir")

	if _, err := mockFS.Lstat("/dir/file.txt"); !errors.Is(err, fs.ErrPermission) {
		t.Fatalf("Lstat error = %v, want fs.ErrPermission", err)
	}
	if _, err := mockFS.Lstat("/dir"); err != nil {
		t.Errorf("Lstat of the directory itself error: %v", err)
	}
	entries, err := mockFS.ReadDir("/dir")
	if err != nil || len(entries) != 1 {
		t.Errorf("ReadDir = %v, %v; want one entry", entries, err)
	}

	if err := mockFS.Chmod("/dir", 0777); err != nil {
		t.Fatalf("Chmod error: %v", err)
	}
	if _, err := mockFS.Lstat("/dir/file.txt"); err != nil {
		t.Errorf("Lstat after chmod error: %v", err)
	}
}

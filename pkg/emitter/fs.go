package emitter

import (
	iofs "io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// FileSystem is the write side the generator needs
type FileSystem interface {
	MkdirAll(path string, perm iofs.FileMode) error
	WriteFile(path string, data []byte, perm iofs.FileMode) error
}

// OSFileSystem writes to disk
type OSFileSystem struct{}

func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

func (fs *OSFileSystem) MkdirAll(path string, perm iofs.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (fs *OSFileSystem) WriteFile(path string, data []byte, perm iofs.FileMode) error {
	return os.WriteFile(path, data, perm)
}

// MemoryFS keeps generated files in memory. Used for dry runs and tests.
type MemoryFS struct {
	mu    sync.RWMutex
	files map[string][]byte
	dirs  map[string]bool
}

func NewMemoryFS() *MemoryFS {
	return &MemoryFS{
		files: make(map[string][]byte),
		dirs:  make(map[string]bool),
	}
}

func (fs *MemoryFS) MkdirAll(path string, perm iofs.FileMode) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	for dir := filepath.Clean(path); ; dir = filepath.Dir(dir) {
		fs.dirs[dir] = true
		if parent := filepath.Dir(dir); parent == dir {
			break
		}
	}
	return nil
}

func (fs *MemoryFS) WriteFile(path string, data []byte, perm iofs.FileMode) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	path = filepath.Clean(path)
	if dir := filepath.Dir(path); dir != "." && !fs.dirs[dir] {
		return &iofs.PathError{Op: "open", Path: path, Err: iofs.ErrNotExist}
	}

	fs.files[path] = append([]byte(nil), data...)
	return nil
}

// ReadFile returns the content written to path
func (fs *MemoryFS) ReadFile(path string) ([]byte, bool) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	data, ok := fs.files[filepath.Clean(path)]
	return data, ok
}

// Files returns every written path in sorted order
func (fs *MemoryFS) Files() []string {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	paths := make([]string, 0, len(fs.files))
	for path := range fs.files {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

package testutil

import (
	"fmt"
	"io/fs"

	"github.com/arthur-debert/dotfiles/pkg/types"
)

// RecordingFS wraps a types.FS and records every mutating call. Calls can
// be made to fail with Fail.
type RecordingFS struct {
	base      types.FS
	mutations []string
	failures  map[string]error
}

// NewRecordingFS wraps base
func NewRecordingFS(base types.FS) *RecordingFS {
	return &RecordingFS{base: base, failures: make(map[string]error)}
}

// Mutations returns the recorded mutating calls, e.g. "symlink /h/x -> ../x"
func (r *RecordingFS) Mutations() []string {
	return append([]string(nil), r.mutations...)
}

// Reset clears the recorded calls
func (r *RecordingFS) Reset() {
	r.mutations = nil
}

// Fail makes every later call of op ("lstat", "symlink", "rename", ...)
// return err without reaching the wrapped filesystem. A nil err restores
// normal behaviour. Failed mutations are not recorded.
func (r *RecordingFS) Fail(op string, err error) {
	if err == nil {
		delete(r.failures, op)
		return
	}
	r.failures[op] = err
}

func (r *RecordingFS) failure(op, path string) error {
	if err, ok := r.failures[op]; ok {
		return &fs.PathError{Op: op, Path: path, Err: err}
	}
	return nil
}

func (r *RecordingFS) record(format string, args ...interface{}) {
	r.mutations = append(r.mutations, fmt.Sprintf(format, args...))
}

func (r *RecordingFS) Stat(name string) (fs.FileInfo, error) {
	if err := r.failure("stat", name); err != nil {
		return nil, err
	}
	return r.base.Stat(name)
}

func (r *RecordingFS) Lstat(name string) (fs.FileInfo, error) {
	if err := r.failure("lstat", name); err != nil {
		return nil, err
	}
	return r.base.Lstat(name)
}

func (r *RecordingFS) ReadDir(name string) ([]fs.DirEntry, error) {
	if err := r.failure("readdir", name); err != nil {
		return nil, err
	}
	return r.base.ReadDir(name)
}

func (r *RecordingFS) Readlink(name string) (string, error) {
	if err := r.failure("readlink", name); err != nil {
		return "", err
	}
	return r.base.Readlink(name)
}

func (r *RecordingFS) EvalSymlinks(path string) (string, error) {
	return r.base.EvalSymlinks(path)
}

func (r *RecordingFS) Rename(oldpath, newpath string) error {
	if err := r.failure("rename", oldpath); err != nil {
		return err
	}
	r.record("rename %s -> %s", oldpath, newpath)
	return r.base.Rename(oldpath, newpath)
}

func (r *RecordingFS) Remove(name string) error {
	if err := r.failure("remove", name); err != nil {
		return err
	}
	r.record("remove %s", name)
	return r.base.Remove(name)
}

func (r *RecordingFS) Mkdir(path string, perm fs.FileMode) error {
	if err := r.failure("mkdir", path); err != nil {
		return err
	}
	r.record("mkdir %s", path)
	return r.base.Mkdir(path, perm)
}

func (r *RecordingFS) MkdirAll(path string, perm fs.FileMode) error {
	if err := r.failure("mkdirall", path); err != nil {
		return err
	}
	r.record("mkdirall %s", path)
	return r.base.MkdirAll(path, perm)
}

func (r *RecordingFS) Symlink(oldname, newname string) error {
	if err := r.failure("symlink", newname); err != nil {
		return err
	}
	r.record("symlink %s -> %s", newname, oldname)
	return r.base.Symlink(oldname, newname)
}

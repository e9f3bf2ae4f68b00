//
//  Copyright 2021 The FakeFS authors
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//  	http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.
//

// Package memfs implements an in-memory file system.
//
// The file system emulates POSIX-like semantics without touching real
// storage : paths, directories, files, symbolic links, permission bits
// and a per-instance current directory, all backed by a single
// path-keyed node table. It supports :
//   - permission checks on every mutating or content-reading operation
//   - symbolic links, resolved dynamically with cycle detection
//   - multiple handles sharing one file system (see Clone)
//   - scoped temporary directories
package memfs

import (
	"io"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/fakefs/fakefs"
)

// abs joins path against the current directory if it is relative.
// It must be called with the file system lock held so that the current
// directory cannot change before the ensuing operation completes.
func (vfs *MemFS) abs(path string) string {
	if fakefs.IsAbs(path) {
		return path
	}

	dir, err := vfs.reg.currentDir()
	if err != nil {
		dir = string(fakefs.PathSeparator)
	}

	return fakefs.Join(dir, path)
}

// Getwd returns a rooted path name corresponding to the current
// directory of the file system instance.
func (vfs *MemFS) Getwd() (dir string, err error) {
	const op = "getwd"

	vfs.mu.Lock()
	defer vfs.mu.Unlock()

	dir, err = vfs.reg.currentDir()
	if err != nil {
		return "", &fs.PathError{Op: op, Path: dir, Err: err}
	}

	return dir, nil
}

// Chdir changes the current working directory to the named directory.
// If there is an error, it will be of type *PathError.
func (vfs *MemFS) Chdir(dir string) error {
	const op = "chdir"

	vfs.mu.Lock()
	defer vfs.mu.Unlock()

	err := vfs.reg.setCurrentDir(vfs.abs(dir))
	if err != nil {
		return &fs.PathError{Op: op, Path: dir, Err: err}
	}

	return nil
}

// IsDir reports whether the named path resolves to an existing
// directory. It follows symbolic links and never returns an error.
func (vfs *MemFS) IsDir(name string) bool {
	vfs.mu.Lock()
	defer vfs.mu.Unlock()

	return vfs.reg.isDir(vfs.abs(name))
}

// IsFile reports whether the named path resolves to an existing file.
// It follows symbolic links and never returns an error.
func (vfs *MemFS) IsFile(name string) bool {
	vfs.mu.Lock()
	defer vfs.mu.Unlock()

	return vfs.reg.isFile(vfs.abs(name))
}

// Mkdir creates a new directory with the default permissions.
// If there is an error, it will be of type *PathError.
func (vfs *MemFS) Mkdir(name string) error {
	const op = "mkdir"

	vfs.mu.Lock()
	defer vfs.mu.Unlock()

	err := vfs.reg.createDir(vfs.abs(name))
	if err != nil {
		return &fs.PathError{Op: op, Path: name, Err: err}
	}

	return nil
}

// MkdirAll creates a directory named path, along with any necessary
// parents. If path is already a directory, MkdirAll does nothing and
// returns nil.
func (vfs *MemFS) MkdirAll(name string) error {
	const op = "mkdir"

	vfs.mu.Lock()
	defer vfs.mu.Unlock()

	err := vfs.reg.createDirAll(vfs.abs(name))
	if err != nil {
		return &fs.PathError{Op: op, Path: name, Err: err}
	}

	return nil
}

// RemoveDir removes the named empty directory.
// If there is an error, it will be of type *PathError.
func (vfs *MemFS) RemoveDir(name string) error {
	const op = "remove"

	vfs.mu.Lock()
	defer vfs.mu.Unlock()

	err := vfs.reg.removeDir(vfs.abs(name))
	if err != nil {
		return &fs.PathError{Op: op, Path: name, Err: err}
	}

	return nil
}

// RemoveAll removes the named directory and any children it contains.
// Every entry of the subtree must be readable, otherwise nothing is
// removed. If there is an error, it will be of type *PathError.
func (vfs *MemFS) RemoveAll(name string) error {
	const op = "remove"

	vfs.mu.Lock()
	defer vfs.mu.Unlock()

	err := vfs.reg.removeDirAll(vfs.abs(name))
	if err != nil {
		return &fs.PathError{Op: op, Path: name, Err: err}
	}

	return nil
}

// ReadDir reads the named directory, returning all its directory
// entries sorted by filename.
// If there is an error, it will be of type *PathError.
func (vfs *MemFS) ReadDir(name string) ([]fs.DirEntry, error) {
	const op = "readdir"

	vfs.mu.Lock()
	defer vfs.mu.Unlock()

	entries, err := vfs.reg.readDir(vfs.abs(name))
	if err != nil {
		return nil, &fs.PathError{Op: op, Path: name, Err: err}
	}

	return entries, nil
}

// CreateFile creates the named file with the given content.
// The file must not exist and the parent directory must be writable.
// If there is an error, it will be of type *PathError.
func (vfs *MemFS) CreateFile(name string, data []byte) error {
	const op = "create"

	vfs.mu.Lock()
	defer vfs.mu.Unlock()

	err := vfs.reg.createFile(vfs.abs(name), data)
	if err != nil {
		return &fs.PathError{Op: op, Path: name, Err: err}
	}

	return nil
}

// WriteFile writes data to the named file, creating it if necessary.
// If the file exists, it must be writable and its content is replaced.
// If there is an error, it will be of type *PathError.
func (vfs *MemFS) WriteFile(name string, data []byte) error {
	const op = "write"

	vfs.mu.Lock()
	defer vfs.mu.Unlock()

	err := vfs.reg.writeFile(vfs.abs(name), data)
	if err != nil {
		return &fs.PathError{Op: op, Path: name, Err: err}
	}

	return nil
}

// OverwriteFile replaces the content of the named file, which must
// already exist. If there is an error, it will be of type *PathError.
func (vfs *MemFS) OverwriteFile(name string, data []byte) error {
	const op = "write"

	vfs.mu.Lock()
	defer vfs.mu.Unlock()

	err := vfs.reg.overwriteFile(vfs.abs(name), data)
	if err != nil {
		return &fs.PathError{Op: op, Path: name, Err: err}
	}

	return nil
}

// ReadFile reads the named file and returns the contents.
// If there is an error, it will be of type *PathError.
func (vfs *MemFS) ReadFile(name string) ([]byte, error) {
	const op = "read"

	vfs.mu.Lock()
	defer vfs.mu.Unlock()

	data, err := vfs.reg.readFile(vfs.abs(name))
	if err != nil {
		return nil, &fs.PathError{Op: op, Path: name, Err: err}
	}

	return data, nil
}

// ReadFileString reads the named file and returns the contents as a
// string. The content must be valid UTF-8.
// If there is an error, it will be of type *PathError.
func (vfs *MemFS) ReadFileString(name string) (string, error) {
	const op = "read"

	vfs.mu.Lock()
	defer vfs.mu.Unlock()

	data, err := vfs.reg.readFile(vfs.abs(name))
	if err != nil {
		return "", &fs.PathError{Op: op, Path: name, Err: err}
	}

	if !utf8.Valid(data) {
		return "", &fs.PathError{Op: op, Path: name, Err: fakefs.ErrInvalidData}
	}

	return string(data), nil
}

// ReadFileInto reads the named file and writes the contents to w.
// It returns the number of bytes written.
// If there is an error, it will be of type *PathError.
func (vfs *MemFS) ReadFileInto(name string, w io.Writer) (int64, error) {
	const op = "read"

	vfs.mu.Lock()
	data, err := vfs.reg.readFile(vfs.abs(name))
	vfs.mu.Unlock()

	if err != nil {
		return 0, &fs.PathError{Op: op, Path: name, Err: err}
	}

	n, err := w.Write(data)

	return int64(n), err
}

// RemoveFile removes the named file or symbolic link.
// A symbolic link is removed, not its target.
// If there is an error, it will be of type *PathError.
func (vfs *MemFS) RemoveFile(name string) error {
	const op = "remove"

	vfs.mu.Lock()
	defer vfs.mu.Unlock()

	err := vfs.reg.removeFile(vfs.abs(name))
	if err != nil {
		return &fs.PathError{Op: op, Path: name, Err: err}
	}

	return nil
}

// CopyFile copies the content of the file from to the file to,
// following symbolic links on both sides.
// If there is an error, it will be of type *PathError.
func (vfs *MemFS) CopyFile(from, to string) error {
	const op = "copy"

	vfs.mu.Lock()
	defer vfs.mu.Unlock()

	err := vfs.reg.copyFile(vfs.abs(from), vfs.abs(to))
	if err != nil {
		return &fs.PathError{Op: op, Path: from, Err: err}
	}

	return nil
}

// Open opens the named file for reading.
// The returned handle observes live mutations of the underlying file.
// If there is an error, it will be of type *PathError.
func (vfs *MemFS) Open(name string) (fakefs.File, error) {
	const op = "open"

	vfs.mu.Lock()
	defer vfs.mu.Unlock()

	if err := vfs.reg.access(vfs.abs(name)); err != nil {
		return nil, &fs.PathError{Op: op, Path: name, Err: err}
	}

	return &MemFile{vfs: vfs, name: name}, nil
}

// Rename renames (moves) oldname to newname.
// Symbolic links are moved, not their targets.
// If there is an error, it will be of type *LinkError.
func (vfs *MemFS) Rename(oldname, newname string) error {
	const op = "rename"

	vfs.mu.Lock()
	defer vfs.mu.Unlock()

	err := vfs.reg.rename(vfs.abs(oldname), vfs.abs(newname))
	if err != nil {
		return &os.LinkError{Op: op, Old: oldname, New: newname, Err: err}
	}

	return nil
}

// Readonly reports whether the named path has all its write permission
// bits clear. If there is an error, it will be of type *PathError.
func (vfs *MemFS) Readonly(name string) (bool, error) {
	const op = "stat"

	vfs.mu.Lock()
	defer vfs.mu.Unlock()

	ro, err := vfs.reg.readonly(vfs.abs(name))
	if err != nil {
		return false, &fs.PathError{Op: op, Path: name, Err: err}
	}

	return ro, nil
}

// SetReadonly clears (readonly true) or sets (readonly false) all the
// write permission bits of the named path.
// If there is an error, it will be of type *PathError.
func (vfs *MemFS) SetReadonly(name string, readonly bool) error {
	const op = "chmod"

	vfs.mu.Lock()
	defer vfs.mu.Unlock()

	err := vfs.reg.setReadonly(vfs.abs(name), readonly)
	if err != nil {
		return &fs.PathError{Op: op, Path: name, Err: err}
	}

	return nil
}

// Size returns the size of the named path : the content length for a
// file, a fixed sentinel for directories and symbolic links, and 0 if
// the path does not exist.
func (vfs *MemFS) Size(name string) int64 {
	vfs.mu.Lock()
	defer vfs.mu.Unlock()

	return vfs.reg.size(vfs.abs(name))
}

// Mode returns the raw permission mode of the named path.
// If there is an error, it will be of type *PathError.
func (vfs *MemFS) Mode(name string) (fs.FileMode, error) {
	const op = "stat"

	vfs.mu.Lock()
	defer vfs.mu.Unlock()

	mode, err := vfs.reg.mode(vfs.abs(name))
	if err != nil {
		return 0, &fs.PathError{Op: op, Path: name, Err: err}
	}

	return mode, nil
}

// SetMode replaces the raw permission mode of the named path.
// If there is an error, it will be of type *PathError.
func (vfs *MemFS) SetMode(name string, mode fs.FileMode) error {
	const op = "chmod"

	vfs.mu.Lock()
	defer vfs.mu.Unlock()

	err := vfs.reg.setMode(vfs.abs(name), mode)
	if err != nil {
		return &fs.PathError{Op: op, Path: name, Err: err}
	}

	return nil
}

// Symlink creates newname as a symbolic link to oldname.
// The target oldname is stored verbatim and resolved on use, so a link
// may be created before its target exists.
// If there is an error, it will be of type *LinkError.
func (vfs *MemFS) Symlink(oldname, newname string) error {
	const op = "symlink"

	vfs.mu.Lock()
	defer vfs.mu.Unlock()

	err := vfs.reg.symlink(oldname, vfs.abs(newname))
	if err != nil {
		return &os.LinkError{Op: op, Old: oldname, New: newname, Err: err}
	}

	return nil
}

// Readlink returns the destination of the named symbolic link without
// following it. If there is an error, it will be of type *PathError.
func (vfs *MemFS) Readlink(name string) (string, error) {
	const op = "readlink"

	vfs.mu.Lock()
	defer vfs.mu.Unlock()

	target, err := vfs.reg.readLink(vfs.abs(name))
	if err != nil {
		return "", &fs.PathError{Op: op, Path: name, Err: err}
	}

	return target, nil
}

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

// Package osfs implements a file system backed by the real file system
// of the operating system.
//
// Every operation delegates to the os package, so the current directory
// is the one of the process and permission checks are performed by the
// kernel, not emulated. OsFS and memfs.MemFS implement the same
// interfaces and are interchangeable in code written against fakefs.VFS.
package osfs

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/fakefs/fakefs"
)

// Getwd returns a rooted path name corresponding to the current
// directory of the process.
func (vfs *OsFS) Getwd() (dir string, err error) {
	return os.Getwd()
}

// Chdir changes the current working directory of the process to the
// named directory. If there is an error, it will be of type *PathError.
func (vfs *OsFS) Chdir(dir string) error {
	return os.Chdir(dir)
}

// IsDir reports whether the named path resolves to an existing
// directory. It follows symbolic links and never returns an error.
func (vfs *OsFS) IsDir(name string) bool {
	info, err := os.Stat(name)

	return err == nil && info.IsDir()
}

// IsFile reports whether the named path resolves to an existing regular
// file. It follows symbolic links and never returns an error.
func (vfs *OsFS) IsFile(name string) bool {
	info, err := os.Stat(name)

	return err == nil && info.Mode().IsRegular()
}

// Mkdir creates a new directory with the default permissions.
// If there is an error, it will be of type *PathError.
func (vfs *OsFS) Mkdir(name string) error {
	return os.Mkdir(name, fakefs.DefaultOsDirPerm)
}

// MkdirAll creates a directory named path, along with any necessary
// parents. If path is already a directory, MkdirAll does nothing and
// returns nil.
func (vfs *OsFS) MkdirAll(name string) error {
	return os.MkdirAll(name, fakefs.DefaultOsDirPerm)
}

// RemoveDir removes the named empty directory.
// If there is an error, it will be of type *PathError.
func (vfs *OsFS) RemoveDir(name string) error {
	const op = "remove"

	info, err := os.Lstat(name)
	if err != nil {
		return err
	}

	if !info.IsDir() {
		return &fs.PathError{Op: op, Path: name, Err: fakefs.ErrNotADirectory}
	}

	return os.Remove(name)
}

// RemoveAll removes path and any children it contains.
func (vfs *OsFS) RemoveAll(name string) error {
	return os.RemoveAll(name)
}

// ReadDir reads the named directory, returning all its directory
// entries sorted by filename.
// If there is an error, it will be of type *PathError.
func (vfs *OsFS) ReadDir(name string) ([]fs.DirEntry, error) {
	return os.ReadDir(name)
}

// CreateFile creates the named file with the given content.
// The file must not exist.
// If there is an error, it will be of type *PathError.
func (vfs *OsFS) CreateFile(name string, data []byte) error {
	f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, fakefs.DefaultFilePerm)
	if err != nil {
		return err
	}

	_, err = f.Write(data)
	if err != nil {
		f.Close()

		return err
	}

	return f.Close()
}

// WriteFile writes data to the named file, creating it if necessary.
// If the file exists, its content is replaced.
// If there is an error, it will be of type *PathError.
func (vfs *OsFS) WriteFile(name string, data []byte) error {
	return os.WriteFile(name, data, fakefs.DefaultFilePerm)
}

// OverwriteFile replaces the content of the named file, which must
// already exist. If there is an error, it will be of type *PathError.
func (vfs *OsFS) OverwriteFile(name string, data []byte) error {
	f, err := os.OpenFile(name, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return err
	}

	_, err = f.Write(data)
	if err != nil {
		f.Close()

		return err
	}

	return f.Close()
}

// ReadFile reads the named file and returns the contents.
// If there is an error, it will be of type *PathError.
func (vfs *OsFS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// ReadFileString reads the named file and returns the contents as a
// string. The content must be valid UTF-8.
// If there is an error, it will be of type *PathError.
func (vfs *OsFS) ReadFileString(name string) (string, error) {
	const op = "read"

	data, err := os.ReadFile(name)
	if err != nil {
		return "", err
	}

	if !utf8.Valid(data) {
		return "", &fs.PathError{Op: op, Path: name, Err: fakefs.ErrInvalidData}
	}

	return string(data), nil
}

// ReadFileInto reads the named file and writes the contents to w.
// It returns the number of bytes written.
// If there is an error, it will be of type *PathError.
func (vfs *OsFS) ReadFileInto(name string, w io.Writer) (int64, error) {
	f, err := os.Open(name)
	if err != nil {
		return 0, err
	}

	defer f.Close()

	return io.Copy(w, f)
}

// RemoveFile removes the named file or symbolic link.
// A symbolic link is removed, not its target.
// If there is an error, it will be of type *PathError.
func (vfs *OsFS) RemoveFile(name string) error {
	const op = "remove"

	info, err := os.Lstat(name)
	if err != nil {
		return err
	}

	if info.IsDir() {
		return &fs.PathError{Op: op, Path: name, Err: fakefs.ErrIsADirectory}
	}

	return os.Remove(name)
}

// CopyFile copies the content of the file from to the file to,
// following symbolic links on both sides.
// If there is an error, it will be of type *PathError.
func (vfs *OsFS) CopyFile(from, to string) error {
	const op = "copy"

	src, err := os.Open(from)
	if err != nil {
		return err
	}

	defer src.Close()

	info, err := src.Stat()
	if err != nil {
		return err
	}

	if info.IsDir() {
		return &fs.PathError{Op: op, Path: from, Err: fakefs.ErrInvalidArgument}
	}

	dst, err := os.OpenFile(to, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fakefs.DefaultFilePerm)
	if err != nil {
		return err
	}

	_, err = io.Copy(dst, src)
	if err != nil {
		dst.Close()

		return err
	}

	return dst.Close()
}

// Open opens the named file for reading.
// If there is an error, it will be of type *PathError.
func (vfs *OsFS) Open(name string) (fakefs.File, error) {
	return os.Open(name)
}

// Rename renames (moves) oldname to newname.
// If there is an error, it will be of type *LinkError.
func (vfs *OsFS) Rename(oldname, newname string) error {
	return os.Rename(oldname, newname)
}

// Readonly reports whether the named path has all its write permission
// bits clear. If there is an error, it will be of type *PathError.
func (vfs *OsFS) Readonly(name string) (bool, error) {
	info, err := os.Stat(name)
	if err != nil {
		return false, err
	}

	return info.Mode().Perm()&0o222 == 0, nil
}

// SetReadonly clears (readonly true) or sets (readonly false) the write
// permission bits of the named path.
// If there is an error, it will be of type *PathError.
func (vfs *OsFS) SetReadonly(name string, readonly bool) error {
	info, err := os.Stat(name)
	if err != nil {
		return err
	}

	mode := info.Mode().Perm()
	if readonly {
		mode &^= 0o222
	} else {
		mode |= 0o200
	}

	return os.Chmod(name, mode)
}

// Size returns the size of the named path as reported by Lstat,
// or 0 if the path does not exist.
func (vfs *OsFS) Size(name string) int64 {
	info, err := os.Lstat(name)
	if err != nil {
		return 0
	}

	return info.Size()
}

// Mode returns the raw permission mode of the named path.
// If there is an error, it will be of type *PathError.
func (vfs *OsFS) Mode(name string) (fs.FileMode, error) {
	info, err := os.Stat(name)
	if err != nil {
		return 0, err
	}

	return info.Mode().Perm(), nil
}

// SetMode replaces the raw permission mode of the named path.
// If there is an error, it will be of type *PathError.
func (vfs *OsFS) SetMode(name string, mode fs.FileMode) error {
	return os.Chmod(name, mode.Perm())
}

// Symlink creates newname as a symbolic link to oldname.
// If there is an error, it will be of type *LinkError.
func (vfs *OsFS) Symlink(oldname, newname string) error {
	return os.Symlink(oldname, newname)
}

// Readlink returns the destination of the named symbolic link without
// following it. If there is an error, it will be of type *PathError.
func (vfs *OsFS) Readlink(name string) (string, error) {
	return os.Readlink(name)
}

// TempDir creates a uniquely named directory using prefix under the
// temporary directory of the operating system and returns a handle to
// it. Closing the handle removes the directory and all its content.
func (vfs *OsFS) TempDir(prefix string) (fakefs.TempDirer, error) {
	parent := filepath.Join(os.TempDir(), prefix)

	err := os.MkdirAll(parent, fakefs.DefaultOsDirPerm)
	if err != nil {
		return nil, err
	}

	path, err := os.MkdirTemp(parent, prefix+"_")
	if err != nil {
		return nil, err
	}

	return &OsTempDir{path: path}, nil
}

// OsTempDir is a temporary directory handle backed by the real file
// system. Closing the handle removes the directory and everything
// below it.
type OsTempDir struct {
	path   string // path is the absolute path of the directory.
	closed bool   // closed reports whether Close has been called.
}

// Path returns the absolute path of the temporary directory.
func (td *OsTempDir) Path() string {
	return td.path
}

// Close removes the temporary directory and all of its content.
// Close is idempotent : calling it twice is a no-op.
func (td *OsTempDir) Close() error {
	if td.closed {
		return nil
	}

	td.closed = true

	return os.RemoveAll(td.path)
}

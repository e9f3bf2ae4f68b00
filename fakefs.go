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

// Package fakefs defines the interfaces, error types and path helpers
// shared by all file system implementations.
package fakefs

import (
	"io"
	"io/fs"
)

const (
	DefaultFilePerm  = fs.FileMode(0o644) // DefaultFilePerm is the default permission for files.
	DefaultDirPerm   = fs.FileMode(0o644) // DefaultDirPerm is the default permission for virtual directories.
	DefaultOsDirPerm = fs.FileMode(0o755) // DefaultOsDirPerm is the permission used to create real directories.

	// PathSeparator is the only path separator recognized by the virtual file systems.
	PathSeparator = '/'
)

// VFS is the file system interface.
// Any simulated or real file system should implement this interface.
type VFS interface {
	Namer
	Typer

	// Getwd returns a rooted path name corresponding to the current directory.
	// For a virtual file system this is the instance's own current directory,
	// not the current directory of the process.
	Getwd() (dir string, err error)

	// Chdir changes the current working directory to the named directory,
	// which must resolve to a directory.
	// If there is an error, it will be of type *PathError.
	Chdir(dir string) error

	// IsDir reports whether the named path resolves to an existing directory.
	// It follows symbolic links and never returns an error :
	// a failed resolution reports false.
	IsDir(name string) bool

	// IsFile reports whether the named path resolves to an existing file.
	// It follows symbolic links and never returns an error :
	// a failed resolution reports false.
	IsFile(name string) bool

	// Mkdir creates a new directory with the default permissions.
	// The parent directory must exist and be writable.
	// If there is an error, it will be of type *PathError.
	Mkdir(name string) error

	// MkdirAll creates a directory named path, along with any necessary
	// parents, and returns nil, or else returns an error.
	// If path is already a directory, MkdirAll does nothing and returns nil.
	MkdirAll(name string) error

	// RemoveDir removes the named empty directory.
	// If there is an error, it will be of type *PathError.
	RemoveDir(name string) error

	// RemoveAll removes path and any children it contains.
	// Every entry of the subtree must be readable, otherwise nothing
	// is removed and the error is of kind ErrPermDenied.
	RemoveAll(name string) error

	// ReadDir reads the named directory, returning all its directory
	// entries sorted by filename.
	// If there is an error, it will be of type *PathError.
	ReadDir(name string) ([]fs.DirEntry, error)

	// CreateFile creates the named file with the given content.
	// The file must not exist and the parent directory must be writable.
	// If there is an error, it will be of type *PathError.
	CreateFile(name string, data []byte) error

	// WriteFile writes data to the named file, creating it if necessary.
	// If the file exists it must be writable; its content is replaced.
	// If there is an error, it will be of type *PathError.
	WriteFile(name string, data []byte) error

	// OverwriteFile replaces the content of the named file.
	// Unlike WriteFile the file must already exist.
	// If there is an error, it will be of type *PathError.
	OverwriteFile(name string, data []byte) error

	// ReadFile reads the named file and returns the contents.
	// The file must be readable.
	// If there is an error, it will be of type *PathError.
	ReadFile(name string) ([]byte, error)

	// ReadFileString reads the named file and returns the contents as a
	// string. The content must be valid UTF-8, otherwise the error is of
	// kind ErrInvalidData.
	ReadFileString(name string) (string, error)

	// ReadFileInto reads the named file and writes the contents to w.
	// It returns the number of bytes written.
	ReadFileInto(name string, w io.Writer) (int64, error)

	// RemoveFile removes the named file or symbolic link.
	// A symbolic link is removed, not its target.
	// If there is an error, it will be of type *PathError.
	RemoveFile(name string) error

	// CopyFile copies the content of the file from to the file to,
	// following symbolic links on both sides.
	// If there is an error, it will be of type *PathError.
	CopyFile(from, to string) error

	// Open opens the named file for reading. If successful, methods on
	// the returned file can be used for incremental reading; the handle
	// observes live mutations of the underlying file.
	// If there is an error, it will be of type *PathError.
	Open(name string) (File, error)

	// Rename renames (moves) oldname to newname.
	// Symbolic links are moved, not their targets.
	// If there is an error, it will be of type *LinkError.
	Rename(oldname, newname string) error

	// Readonly reports whether the named path has all its write
	// permission bits clear.
	// If there is an error, it will be of type *PathError.
	Readonly(name string) (bool, error)

	// SetReadonly clears (readonly true) or sets (readonly false) all the
	// write permission bits of the named path.
	// If there is an error, it will be of type *PathError.
	SetReadonly(name string, readonly bool) error

	// Size returns the size of the named path : the content length for a
	// file, a fixed sentinel for directories and symbolic links, and 0 if
	// the path does not exist.
	Size(name string) int64

	// Symlink creates newname as a symbolic link to oldname.
	// The target oldname is stored verbatim and resolved on use, so a
	// link may be created before its target exists.
	// If there is an error, it will be of type *LinkError.
	Symlink(oldname, newname string) error

	// Readlink returns the destination of the named symbolic link
	// without following it.
	// If there is an error, it will be of type *PathError.
	Readlink(name string) (string, error)
}

// UnixVFS is the interface implemented by file systems exposing the raw
// POSIX permission mode.
type UnixVFS interface {
	VFS

	// Mode returns the raw permission mode of the named path.
	// If there is an error, it will be of type *PathError.
	Mode(name string) (fs.FileMode, error)

	// SetMode replaces the raw permission mode of the named path.
	// If there is an error, it will be of type *PathError.
	SetMode(name string, mode fs.FileMode) error
}

// TempVFS is the interface implemented by file systems able to provision
// temporary directories.
type TempVFS interface {
	VFS

	// TempDir creates a uniquely named directory using prefix under the
	// file system's temporary area and returns a handle to it.
	// Closing the handle removes the directory and everything under it.
	TempDir(prefix string) (TempDirer, error)
}

// TempDirer is a scoped temporary directory.
type TempDirer interface {
	// Path returns the path of the temporary directory.
	Path() string

	// Close removes the temporary directory and all its content.
	// It is safe to call Close more than once.
	Close() error
}

// File represents an open file handle used for incremental reads.
// Read observes the live content of the underlying file : interleaved
// writers can change content between two reads on the same handle, and a
// file that has shrunk past the handle's offset yields io.EOF.
type File interface {
	io.ReadCloser

	// Name returns the name of the file as presented to Open.
	Name() string
}

// Cloner is the interface that wraps the Clone method.
type Cloner interface {
	// Clone returns a shallow copy of the file system sharing the same
	// underlying state : all clones observe each other's mutations.
	Clone() VFS
}

// Namer is the interface that wraps the Name method.
type Namer interface {
	Name() string
}

// Typer is the interface that wraps the Type method.
type Typer interface {
	// Type returns the type of the file system.
	Type() string
}

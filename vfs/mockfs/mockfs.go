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

// Package mockfs implements a call-recording file system test double.
//
// MockFS embeds mock.Mock from github.com/stretchr/testify : every
// method records its call and returns whatever the test programmed with
// On(...).Return(...). Unprogrammed calls panic, which keeps tests
// honest about the file system surface they actually exercise.
package mockfs

import (
	"io"
	"io/fs"

	"github.com/stretchr/testify/mock"

	"github.com/fakefs/fakefs"
)

// MockFS is a mock implementation of the file system interfaces.
type MockFS struct {
	mock.Mock

	name string // name is the name of the file system.
}

// Option defines the option function used for initializing MockFS.
type Option func(*MockFS)

// New returns a new mock file system (MockFS).
func New(opts ...Option) *MockFS {
	vfs := &MockFS{}

	for _, opt := range opts {
		opt(vfs)
	}

	return vfs
}

// WithName returns an option function which sets the name of the file system.
func WithName(name string) Option {
	return func(vfs *MockFS) {
		vfs.name = name
	}
}

// Name returns the name of the file system.
func (vfs *MockFS) Name() string {
	return vfs.name
}

// Type returns the type of the file system.
func (vfs *MockFS) Type() string {
	return "MockFS"
}

// Getwd is a mock method recording its call.
func (vfs *MockFS) Getwd() (dir string, err error) {
	args := vfs.Called()

	return args.String(0), args.Error(1)
}

// Chdir is a mock method recording its call.
func (vfs *MockFS) Chdir(dir string) error {
	args := vfs.Called(dir)

	return args.Error(0)
}

// IsDir is a mock method recording its call.
func (vfs *MockFS) IsDir(name string) bool {
	args := vfs.Called(name)

	return args.Bool(0)
}

// IsFile is a mock method recording its call.
func (vfs *MockFS) IsFile(name string) bool {
	args := vfs.Called(name)

	return args.Bool(0)
}

// Mkdir is a mock method recording its call.
func (vfs *MockFS) Mkdir(name string) error {
	args := vfs.Called(name)

	return args.Error(0)
}

// MkdirAll is a mock method recording its call.
func (vfs *MockFS) MkdirAll(name string) error {
	args := vfs.Called(name)

	return args.Error(0)
}

// RemoveDir is a mock method recording its call.
func (vfs *MockFS) RemoveDir(name string) error {
	args := vfs.Called(name)

	return args.Error(0)
}

// RemoveAll is a mock method recording its call.
func (vfs *MockFS) RemoveAll(name string) error {
	args := vfs.Called(name)

	return args.Error(0)
}

// ReadDir is a mock method recording its call.
func (vfs *MockFS) ReadDir(name string) ([]fs.DirEntry, error) {
	args := vfs.Called(name)

	entries, _ := args.Get(0).([]fs.DirEntry)

	return entries, args.Error(1)
}

// CreateFile is a mock method recording its call.
func (vfs *MockFS) CreateFile(name string, data []byte) error {
	args := vfs.Called(name, data)

	return args.Error(0)
}

// WriteFile is a mock method recording its call.
func (vfs *MockFS) WriteFile(name string, data []byte) error {
	args := vfs.Called(name, data)

	return args.Error(0)
}

// OverwriteFile is a mock method recording its call.
func (vfs *MockFS) OverwriteFile(name string, data []byte) error {
	args := vfs.Called(name, data)

	return args.Error(0)
}

// ReadFile is a mock method recording its call.
func (vfs *MockFS) ReadFile(name string) ([]byte, error) {
	args := vfs.Called(name)

	data, _ := args.Get(0).([]byte)

	return data, args.Error(1)
}

// ReadFileString is a mock method recording its call.
func (vfs *MockFS) ReadFileString(name string) (string, error) {
	args := vfs.Called(name)

	return args.String(0), args.Error(1)
}

// ReadFileInto is a mock method recording its call.
func (vfs *MockFS) ReadFileInto(name string, w io.Writer) (int64, error) {
	args := vfs.Called(name, w)

	return args.Get(0).(int64), args.Error(1)
}

// RemoveFile is a mock method recording its call.
func (vfs *MockFS) RemoveFile(name string) error {
	args := vfs.Called(name)

	return args.Error(0)
}

// CopyFile is a mock method recording its call.
func (vfs *MockFS) CopyFile(from, to string) error {
	args := vfs.Called(from, to)

	return args.Error(0)
}

// Open is a mock method recording its call.
func (vfs *MockFS) Open(name string) (fakefs.File, error) {
	args := vfs.Called(name)

	f, _ := args.Get(0).(fakefs.File)

	return f, args.Error(1)
}

// Rename is a mock method recording its call.
func (vfs *MockFS) Rename(oldname, newname string) error {
	args := vfs.Called(oldname, newname)

	return args.Error(0)
}

// Readonly is a mock method recording its call.
func (vfs *MockFS) Readonly(name string) (bool, error) {
	args := vfs.Called(name)

	return args.Bool(0), args.Error(1)
}

// SetReadonly is a mock method recording its call.
func (vfs *MockFS) SetReadonly(name string, readonly bool) error {
	args := vfs.Called(name, readonly)

	return args.Error(0)
}

// Size is a mock method recording its call.
func (vfs *MockFS) Size(name string) int64 {
	args := vfs.Called(name)

	return args.Get(0).(int64)
}

// Mode is a mock method recording its call.
func (vfs *MockFS) Mode(name string) (fs.FileMode, error) {
	args := vfs.Called(name)

	return args.Get(0).(fs.FileMode), args.Error(1)
}

// SetMode is a mock method recording its call.
func (vfs *MockFS) SetMode(name string, mode fs.FileMode) error {
	args := vfs.Called(name, mode)

	return args.Error(0)
}

// Symlink is a mock method recording its call.
func (vfs *MockFS) Symlink(oldname, newname string) error {
	args := vfs.Called(oldname, newname)

	return args.Error(0)
}

// Readlink is a mock method recording its call.
func (vfs *MockFS) Readlink(name string) (string, error) {
	args := vfs.Called(name)

	return args.String(0), args.Error(1)
}

// TempDir is a mock method recording its call.
func (vfs *MockFS) TempDir(prefix string) (fakefs.TempDirer, error) {
	args := vfs.Called(prefix)

	td, _ := args.Get(0).(fakefs.TempDirer)

	return td, args.Error(1)
}

// MockTempDir is a mock implementation of the temporary directory
// handle.
type MockTempDir struct {
	mock.Mock
}

// Path is a mock method recording its call.
func (td *MockTempDir) Path() string {
	args := td.Called()

	return args.String(0)
}

// Close is a mock method recording its call.
func (td *MockTempDir) Close() error {
	args := td.Called()

	return args.Error(0)
}

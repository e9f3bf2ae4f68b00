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

// Package test provides a common test suite exercised by every file
// system implementation. The suite only relies on behavior shared by
// the memory and OS backed file systems and runs each test inside its
// own temporary directory.
package test

import (
	"bytes"
	"sort"
	"testing"

	"github.com/fakefs/fakefs"
)

// SuiteFS is a test suite for a file system implementation.
type SuiteFS struct {
	vfs fakefs.TempVFS // vfs is the file system under test.
}

// NewSuiteFS returns a new test suite for the given file system.
func NewSuiteFS(vfs fakefs.TempVFS) *SuiteFS {
	return &SuiteFS{vfs: vfs}
}

// TestAll runs all the tests of the suite.
func (sfs *SuiteFS) TestAll(t *testing.T) {
	t.Run("Dir", sfs.TestDir)
	t.Run("File", sfs.TestFile)
	t.Run("Remove", sfs.TestRemove)
	t.Run("Rename", sfs.TestRename)
	t.Run("CopyFile", sfs.TestCopyFile)
	t.Run("Symlink", sfs.TestSymlink)
	t.Run("Open", sfs.TestOpen)
	t.Run("Readonly", sfs.TestReadonly)
	t.Run("TempDir", sfs.TestTempDir)
}

// tmpDir creates a temporary directory for one test and registers its
// removal.
func (sfs *SuiteFS) tmpDir(t *testing.T) string {
	t.Helper()

	td, err := sfs.vfs.TempDir("testfs")
	if err != nil {
		t.Fatalf("TempDir : want error to be nil, got %v", err)
	}

	t.Cleanup(func() { _ = td.Close() })

	return td.Path()
}

// TestDir tests directory creation and listing.
func (sfs *SuiteFS) TestDir(t *testing.T) {
	vfs := sfs.vfs
	root := sfs.tmpDir(t)

	dir := fakefs.Join(root, "adir")

	if err := vfs.Mkdir(dir); err != nil {
		t.Fatalf("Mkdir %s : want error to be nil, got %v", dir, err)
	}

	if !vfs.IsDir(dir) {
		t.Errorf("IsDir %s : want true, got false", dir)
	}

	if vfs.IsFile(dir) {
		t.Errorf("IsFile %s : want false, got true", dir)
	}

	deep := fakefs.Join(root, "one/two/three")

	if err := vfs.MkdirAll(deep); err != nil {
		t.Fatalf("MkdirAll %s : want error to be nil, got %v", deep, err)
	}

	if err := vfs.MkdirAll(deep); err != nil {
		t.Errorf("MkdirAll %s : want error to be nil, got %v", deep, err)
	}

	if !vfs.IsDir(deep) {
		t.Errorf("IsDir %s : want true, got false", deep)
	}

	for _, name := range []string{"c", "a", "b"} {
		if err := vfs.Mkdir(fakefs.Join(dir, name)); err != nil {
			t.Fatalf("Mkdir %s : want error to be nil, got %v", name, err)
		}
	}

	entries, err := vfs.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir %s : want error to be nil, got %v", dir, err)
	}

	if len(entries) != 3 {
		t.Fatalf("ReadDir %s : want 3 entries, got %d", dir, len(entries))
	}

	if !sort.SliceIsSorted(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	}) {
		t.Errorf("ReadDir %s : want entries to be sorted by name", dir)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			t.Errorf("ReadDir %s : want entry %s to be a directory", dir, entry.Name())
		}
	}
}

// TestFile tests file creation, write and read operations.
func (sfs *SuiteFS) TestFile(t *testing.T) {
	vfs := sfs.vfs
	root := sfs.tmpDir(t)

	file := fakefs.Join(root, "afile.txt")
	data := []byte("the quick brown fox")

	if err := vfs.CreateFile(file, data); err != nil {
		t.Fatalf("CreateFile %s : want error to be nil, got %v", file, err)
	}

	if err := vfs.CreateFile(file, data); err == nil {
		t.Errorf("CreateFile %s : want an error, got nil", file)
	}

	if !vfs.IsFile(file) {
		t.Errorf("IsFile %s : want true, got false", file)
	}

	got, err := vfs.ReadFile(file)
	if err != nil {
		t.Fatalf("ReadFile %s : want error to be nil, got %v", file, err)
	}

	if !bytes.Equal(got, data) {
		t.Errorf("ReadFile %s : want %q, got %q", file, data, got)
	}

	if size := vfs.Size(file); size != int64(len(data)) {
		t.Errorf("Size %s : want %d, got %d", file, len(data), size)
	}

	next := []byte("jumps over the lazy dog")

	if err = vfs.WriteFile(file, next); err != nil {
		t.Fatalf("WriteFile %s : want error to be nil, got %v", file, err)
	}

	s, err := vfs.ReadFileString(file)
	if err != nil {
		t.Fatalf("ReadFileString %s : want error to be nil, got %v", file, err)
	}

	if s != string(next) {
		t.Errorf("ReadFileString %s : want %q, got %q", file, next, s)
	}

	buf := new(bytes.Buffer)

	n, err := vfs.ReadFileInto(file, buf)
	if err != nil {
		t.Fatalf("ReadFileInto %s : want error to be nil, got %v", file, err)
	}

	if n != int64(len(next)) || buf.String() != string(next) {
		t.Errorf("ReadFileInto %s : want %q, got %q", file, next, buf.String())
	}

	missing := fakefs.Join(root, "missing.txt")

	if err = vfs.OverwriteFile(missing, data); err == nil {
		t.Errorf("OverwriteFile %s : want an error, got nil", missing)
	}

	if err = vfs.OverwriteFile(file, data); err != nil {
		t.Errorf("OverwriteFile %s : want error to be nil, got %v", file, err)
	}
}

// TestRemove tests file and directory removal.
func (sfs *SuiteFS) TestRemove(t *testing.T) {
	vfs := sfs.vfs
	root := sfs.tmpDir(t)

	dir := fakefs.Join(root, "dir")
	file := fakefs.Join(dir, "file.txt")

	if err := vfs.Mkdir(dir); err != nil {
		t.Fatalf("Mkdir %s : want error to be nil, got %v", dir, err)
	}

	if err := vfs.CreateFile(file, []byte("data")); err != nil {
		t.Fatalf("CreateFile %s : want error to be nil, got %v", file, err)
	}

	if err := vfs.RemoveDir(dir); err == nil {
		t.Errorf("RemoveDir %s : want an error for a non empty directory, got nil", dir)
	}

	if err := vfs.RemoveFile(dir); err == nil {
		t.Errorf("RemoveFile %s : want an error for a directory, got nil", dir)
	}

	if err := vfs.RemoveFile(file); err != nil {
		t.Fatalf("RemoveFile %s : want error to be nil, got %v", file, err)
	}

	if vfs.IsFile(file) {
		t.Errorf("IsFile %s : want false, got true", file)
	}

	if err := vfs.RemoveDir(dir); err != nil {
		t.Fatalf("RemoveDir %s : want error to be nil, got %v", dir, err)
	}

	deep := fakefs.Join(root, "a/b/c")

	if err := vfs.MkdirAll(deep); err != nil {
		t.Fatalf("MkdirAll %s : want error to be nil, got %v", deep, err)
	}

	if err := vfs.CreateFile(fakefs.Join(deep, "f.txt"), nil); err != nil {
		t.Fatalf("CreateFile : want error to be nil, got %v", err)
	}

	all := fakefs.Join(root, "a")

	if err := vfs.RemoveAll(all); err != nil {
		t.Fatalf("RemoveAll %s : want error to be nil, got %v", all, err)
	}

	if vfs.IsDir(all) {
		t.Errorf("IsDir %s : want false, got true", all)
	}
}

// TestRename tests file and directory renames.
func (sfs *SuiteFS) TestRename(t *testing.T) {
	vfs := sfs.vfs
	root := sfs.tmpDir(t)

	from := fakefs.Join(root, "from.txt")
	to := fakefs.Join(root, "to.txt")
	data := []byte("content")

	if err := vfs.CreateFile(from, data); err != nil {
		t.Fatalf("CreateFile %s : want error to be nil, got %v", from, err)
	}

	if err := vfs.Rename(from, to); err != nil {
		t.Fatalf("Rename %s %s : want error to be nil, got %v", from, to, err)
	}

	if vfs.IsFile(from) {
		t.Errorf("IsFile %s : want false, got true", from)
	}

	got, err := vfs.ReadFile(to)
	if err != nil || !bytes.Equal(got, data) {
		t.Errorf("ReadFile %s : want %q, got %q, %v", to, data, got, err)
	}

	srcDir := fakefs.Join(root, "srcdir")
	dstDir := fakefs.Join(root, "dstdir")

	if err = vfs.MkdirAll(fakefs.Join(srcDir, "sub")); err != nil {
		t.Fatalf("MkdirAll : want error to be nil, got %v", err)
	}

	if err = vfs.CreateFile(fakefs.Join(srcDir, "sub", "f.txt"), data); err != nil {
		t.Fatalf("CreateFile : want error to be nil, got %v", err)
	}

	if err = vfs.Rename(srcDir, dstDir); err != nil {
		t.Fatalf("Rename %s %s : want error to be nil, got %v", srcDir, dstDir, err)
	}

	moved := fakefs.Join(dstDir, "sub", "f.txt")

	if !vfs.IsFile(moved) {
		t.Errorf("IsFile %s : want true, got false", moved)
	}

	if vfs.IsDir(srcDir) {
		t.Errorf("IsDir %s : want false, got true", srcDir)
	}
}

// TestCopyFile tests file copies.
func (sfs *SuiteFS) TestCopyFile(t *testing.T) {
	vfs := sfs.vfs
	root := sfs.tmpDir(t)

	from := fakefs.Join(root, "src.txt")
	to := fakefs.Join(root, "dst.txt")
	data := []byte("copy me")

	if err := vfs.CreateFile(from, data); err != nil {
		t.Fatalf("CreateFile %s : want error to be nil, got %v", from, err)
	}

	if err := vfs.CopyFile(from, to); err != nil {
		t.Fatalf("CopyFile %s %s : want error to be nil, got %v", from, to, err)
	}

	got, err := vfs.ReadFile(to)
	if err != nil || !bytes.Equal(got, data) {
		t.Errorf("ReadFile %s : want %q, got %q, %v", to, data, got, err)
	}

	if err = vfs.CopyFile(root, to); err == nil {
		t.Errorf("CopyFile %s %s : want an error for a directory source, got nil", root, to)
	}
}

// TestSymlink tests symbolic link creation and resolution.
func (sfs *SuiteFS) TestSymlink(t *testing.T) {
	vfs := sfs.vfs
	root := sfs.tmpDir(t)

	file := fakefs.Join(root, "target.txt")
	link := fakefs.Join(root, "link")
	data := []byte("through the link")

	if err := vfs.CreateFile(file, data); err != nil {
		t.Fatalf("CreateFile %s : want error to be nil, got %v", file, err)
	}

	if err := vfs.Symlink(file, link); err != nil {
		t.Fatalf("Symlink %s %s : want error to be nil, got %v", file, link, err)
	}

	target, err := vfs.Readlink(link)
	if err != nil {
		t.Fatalf("Readlink %s : want error to be nil, got %v", link, err)
	}

	if target != file {
		t.Errorf("Readlink %s : want %s, got %s", link, file, target)
	}

	if !vfs.IsFile(link) {
		t.Errorf("IsFile %s : want true, got false", link)
	}

	got, err := vfs.ReadFile(link)
	if err != nil || !bytes.Equal(got, data) {
		t.Errorf("ReadFile %s : want %q, got %q, %v", link, data, got, err)
	}

	if err = vfs.RemoveFile(link); err != nil {
		t.Fatalf("RemoveFile %s : want error to be nil, got %v", link, err)
	}

	if !vfs.IsFile(file) {
		t.Errorf("IsFile %s : want true, got false", file)
	}
}

// TestOpen tests incremental reads on an open file.
func (sfs *SuiteFS) TestOpen(t *testing.T) {
	vfs := sfs.vfs
	root := sfs.tmpDir(t)

	file := fakefs.Join(root, "open.txt")
	data := []byte("0123456789")

	if err := vfs.CreateFile(file, data); err != nil {
		t.Fatalf("CreateFile %s : want error to be nil, got %v", file, err)
	}

	f, err := vfs.Open(file)
	if err != nil {
		t.Fatalf("Open %s : want error to be nil, got %v", file, err)
	}

	buf := make([]byte, 4)

	n, err := f.Read(buf)
	if err != nil || n != 4 {
		t.Fatalf("Read %s : want 4 bytes, got %d, %v", file, n, err)
	}

	if string(buf) != "0123" {
		t.Errorf("Read %s : want %q, got %q", file, "0123", buf)
	}

	n, err = f.Read(buf)
	if err != nil || n != 4 {
		t.Fatalf("Read %s : want 4 bytes, got %d, %v", file, n, err)
	}

	if string(buf) != "4567" {
		t.Errorf("Read %s : want %q, got %q", file, "4567", buf)
	}

	if err = f.Close(); err != nil {
		t.Errorf("Close %s : want error to be nil, got %v", file, err)
	}

	if _, err = vfs.Open(fakefs.Join(root, "missing.txt")); err == nil {
		t.Errorf("Open : want an error for a missing file, got nil")
	}
}

// TestReadonly tests the readonly flag round-trip.
func (sfs *SuiteFS) TestReadonly(t *testing.T) {
	vfs := sfs.vfs
	root := sfs.tmpDir(t)

	file := fakefs.Join(root, "ro.txt")

	if err := vfs.CreateFile(file, []byte("data")); err != nil {
		t.Fatalf("CreateFile %s : want error to be nil, got %v", file, err)
	}

	ro, err := vfs.Readonly(file)
	if err != nil {
		t.Fatalf("Readonly %s : want error to be nil, got %v", file, err)
	}

	if ro {
		t.Errorf("Readonly %s : want false, got true", file)
	}

	if err = vfs.SetReadonly(file, true); err != nil {
		t.Fatalf("SetReadonly %s : want error to be nil, got %v", file, err)
	}

	ro, err = vfs.Readonly(file)
	if err != nil || !ro {
		t.Errorf("Readonly %s : want true, got %t, %v", file, ro, err)
	}

	if err = vfs.SetReadonly(file, false); err != nil {
		t.Fatalf("SetReadonly %s : want error to be nil, got %v", file, err)
	}

	ro, err = vfs.Readonly(file)
	if err != nil || ro {
		t.Errorf("Readonly %s : want false, got %t, %v", file, ro, err)
	}
}

// TestTempDir tests temporary directory provisioning.
func (sfs *SuiteFS) TestTempDir(t *testing.T) {
	vfs := sfs.vfs

	td, err := vfs.TempDir("suite")
	if err != nil {
		t.Fatalf("TempDir : want error to be nil, got %v", err)
	}

	if !vfs.IsDir(td.Path()) {
		t.Errorf("IsDir %s : want true, got false", td.Path())
	}

	other, err := vfs.TempDir("suite")
	if err != nil {
		t.Fatalf("TempDir : want error to be nil, got %v", err)
	}

	if td.Path() == other.Path() {
		t.Errorf("TempDir : want distinct paths, got %s twice", td.Path())
	}

	if err = vfs.CreateFile(fakefs.Join(td.Path(), "f.txt"), nil); err != nil {
		t.Fatalf("CreateFile : want error to be nil, got %v", err)
	}

	if err = td.Close(); err != nil {
		t.Fatalf("Close %s : want error to be nil, got %v", td.Path(), err)
	}

	if vfs.IsDir(td.Path()) {
		t.Errorf("IsDir %s : want false, got true", td.Path())
	}

	if err = td.Close(); err != nil {
		t.Errorf("Close %s : want error to be nil on second call, got %v", td.Path(), err)
	}

	if err = other.Close(); err != nil {
		t.Errorf("Close %s : want error to be nil, got %v", other.Path(), err)
	}
}

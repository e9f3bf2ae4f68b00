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

package memfs_test

import (
	"io"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fakefs/fakefs"
	"github.com/fakefs/fakefs/test"
	"github.com/fakefs/fakefs/vfs/memfs"
)

var (
	// MemFS implements the file system interfaces.
	_ fakefs.VFS     = &memfs.MemFS{}
	_ fakefs.UnixVFS = &memfs.MemFS{}
	_ fakefs.TempVFS = &memfs.MemFS{}
	_ fakefs.Cloner  = &memfs.MemFS{}

	// MemFile and MemTempDir implement the handle interfaces.
	_ fakefs.File      = &memfs.MemFile{}
	_ fakefs.TempDirer = &memfs.MemTempDir{}

	// MemInfo implements the fs entry interfaces.
	_ fs.FileInfo = &memfs.MemInfo{}
	_ fs.DirEntry = &memfs.MemInfo{}
)

// TestSuite runs the common file system test suite.
func TestSuite(t *testing.T) {
	sfs := test.NewSuiteFS(memfs.New())
	sfs.TestAll(t)
}

func TestNew(t *testing.T) {
	vfs := memfs.New(memfs.WithName("mem"))

	assert.Equal(t, "mem", vfs.Name())
	assert.Equal(t, "MemFS", vfs.Type())

	dir, err := vfs.Getwd()
	require.NoError(t, err)
	assert.Equal(t, "/", dir)

	assert.True(t, vfs.IsDir("/"))
	assert.False(t, vfs.IsFile("/"))
}

func TestChdir(t *testing.T) {
	vfs := memfs.New()

	require.NoError(t, vfs.MkdirAll("/home/user"))

	require.NoError(t, vfs.Chdir("/home/user"))

	dir, err := vfs.Getwd()
	require.NoError(t, err)
	assert.Equal(t, "/home/user", dir)

	// Relative paths are interpreted against the current directory.
	require.NoError(t, vfs.CreateFile("note.txt", []byte("hi")))
	assert.True(t, vfs.IsFile("/home/user/note.txt"))

	err = vfs.Chdir("/nonexistent")
	require.Error(t, err)
	assert.ErrorIs(t, err, fakefs.ErrNoSuchFileOrDir)

	err = vfs.Chdir("/home/user/note.txt")
	require.Error(t, err)
	assert.ErrorIs(t, err, fakefs.ErrNotADirectory)

	// A failed Chdir leaves the current directory untouched.
	dir, err = vfs.Getwd()
	require.NoError(t, err)
	assert.Equal(t, "/home/user", dir)
}

func TestMkdir(t *testing.T) {
	vfs := memfs.New()

	require.NoError(t, vfs.Mkdir("/a"))

	err := vfs.Mkdir("/a")
	require.Error(t, err)
	assert.ErrorIs(t, err, fakefs.ErrFileExists)

	err = vfs.Mkdir("/missing/b")
	require.Error(t, err)
	assert.ErrorIs(t, err, fakefs.ErrNoSuchFileOrDir)

	require.NoError(t, vfs.CreateFile("/a/f.txt", nil))

	err = vfs.Mkdir("/a/f.txt/sub")
	require.Error(t, err)
	assert.ErrorIs(t, err, fakefs.ErrNotADirectory)
}

func TestDotSegments(t *testing.T) {
	vfs := memfs.New()

	require.NoError(t, vfs.Mkdir("/a"))

	// "." and ".." path segments are not supported.
	err := vfs.Mkdir("/a/../b")
	require.Error(t, err)
	assert.ErrorIs(t, err, fakefs.ErrInvalidArgument)

	err = vfs.Mkdir("/a/./b")
	require.Error(t, err)
	assert.ErrorIs(t, err, fakefs.ErrInvalidArgument)
}

func TestRemoveDir(t *testing.T) {
	vfs := memfs.New()

	require.NoError(t, vfs.MkdirAll("/a/b"))

	err := vfs.RemoveDir("/a")
	require.Error(t, err)
	assert.ErrorIs(t, err, fakefs.ErrDirNotEmpty)

	require.NoError(t, vfs.RemoveDir("/a/b"))
	require.NoError(t, vfs.RemoveDir("/a"))

	err = vfs.RemoveDir("/a")
	require.Error(t, err)
	assert.ErrorIs(t, err, fakefs.ErrNoSuchFileOrDir)

	require.NoError(t, vfs.CreateFile("/f.txt", nil))

	err = vfs.RemoveDir("/f.txt")
	require.Error(t, err)
	assert.ErrorIs(t, err, fakefs.ErrNotADirectory)
}

func TestRemoveAllUnreadable(t *testing.T) {
	vfs := memfs.New()

	require.NoError(t, vfs.MkdirAll("/a/b"))
	require.NoError(t, vfs.CreateFile("/a/b/f.txt", []byte("data")))
	require.NoError(t, vfs.SetMode("/a/b/f.txt", 0o200))

	// Nothing is removed when any entry of the subtree is unreadable.
	err := vfs.RemoveAll("/a")
	require.Error(t, err)
	assert.ErrorIs(t, err, fakefs.ErrPermDenied)

	assert.True(t, vfs.IsDir("/a/b"))

	require.NoError(t, vfs.SetMode("/a/b/f.txt", 0o644))
	require.NoError(t, vfs.RemoveAll("/a"))
	assert.False(t, vfs.IsDir("/a"))

	// The root directory itself is never removed.
	require.NoError(t, vfs.RemoveAll("/"))
	assert.True(t, vfs.IsDir("/"))
}

func TestPermissions(t *testing.T) {
	vfs := memfs.New()

	require.NoError(t, vfs.Mkdir("/dir"))
	require.NoError(t, vfs.CreateFile("/dir/f.txt", []byte("data")))

	// An unwritable parent rejects entry creation.
	require.NoError(t, vfs.SetReadonly("/dir", true))

	err := vfs.CreateFile("/dir/g.txt", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, fakefs.ErrPermDenied)

	err = vfs.Mkdir("/dir/sub")
	require.Error(t, err)
	assert.ErrorIs(t, err, fakefs.ErrPermDenied)

	require.NoError(t, vfs.SetReadonly("/dir", false))

	// A readonly file rejects content replacement but not reads.
	require.NoError(t, vfs.SetReadonly("/dir/f.txt", true))

	err = vfs.WriteFile("/dir/f.txt", []byte("new"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fakefs.ErrPermDenied)

	data, err := vfs.ReadFile("/dir/f.txt")
	require.NoError(t, err)
	assert.Equal(t, []byte("data"), data)

	// Clearing the readonly flag makes the same write succeed.
	require.NoError(t, vfs.SetReadonly("/dir/f.txt", false))
	require.NoError(t, vfs.WriteFile("/dir/f.txt", []byte("new")))
	require.NoError(t, vfs.WriteFile("/dir/f.txt", []byte("new")))

	// Writing replaces content, it does not append.
	data, err = vfs.ReadFile("/dir/f.txt")
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), data)

	// A write-only file rejects reads.
	require.NoError(t, vfs.SetMode("/dir/f.txt", 0o200))

	_, err = vfs.ReadFile("/dir/f.txt")
	require.Error(t, err)
	assert.ErrorIs(t, err, fakefs.ErrPermDenied)
}

func TestMode(t *testing.T) {
	vfs := memfs.New()

	require.NoError(t, vfs.CreateFile("/f.txt", nil))

	mode, err := vfs.Mode("/f.txt")
	require.NoError(t, err)
	assert.Equal(t, fakefs.DefaultFilePerm, mode)

	require.NoError(t, vfs.SetMode("/f.txt", 0o444))

	mode, err = vfs.Mode("/f.txt")
	require.NoError(t, err)
	assert.Equal(t, fs.FileMode(0o444), mode)

	ro, err := vfs.Readonly("/f.txt")
	require.NoError(t, err)
	assert.True(t, ro)

	_, err = vfs.Mode("/missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, fakefs.ErrNoSuchFileOrDir)
}

func TestSymlinkResolution(t *testing.T) {
	vfs := memfs.New()

	require.NoError(t, vfs.MkdirAll("/data"))
	require.NoError(t, vfs.CreateFile("/data/f.txt", []byte("data")))

	// A link in the middle of a path is followed.
	require.NoError(t, vfs.Symlink("/data", "/alias"))

	got, err := vfs.ReadFile("/alias/f.txt")
	require.NoError(t, err)
	assert.Equal(t, []byte("data"), got)

	// A link may be created before its target exists.
	require.NoError(t, vfs.Symlink("/later", "/early"))
	assert.False(t, vfs.IsFile("/early"))

	_, err = vfs.ReadFile("/early")
	require.Error(t, err)
	assert.ErrorIs(t, err, fakefs.ErrNoSuchFileOrDir)

	require.NoError(t, vfs.CreateFile("/later", []byte("now")))
	assert.True(t, vfs.IsFile("/early"))

	// Removing the target breaks the link again.
	require.NoError(t, vfs.RemoveFile("/later"))
	assert.False(t, vfs.IsFile("/early"))
	assert.False(t, vfs.IsDir("/early"))

	// Readlink does not follow the link.
	target, err := vfs.Readlink("/early")
	require.NoError(t, err)
	assert.Equal(t, "/later", target)

	_, err = vfs.Readlink("/data/f.txt")
	require.Error(t, err)
	assert.ErrorIs(t, err, fakefs.ErrInvalidArgument)
}

func TestSymlinkCycle(t *testing.T) {
	vfs := memfs.New()

	require.NoError(t, vfs.Symlink("/b", "/a"))
	require.NoError(t, vfs.Symlink("/a", "/b"))

	_, err := vfs.ReadFile("/a")
	require.Error(t, err)
	assert.ErrorIs(t, err, fakefs.ErrTooManySymlinks)

	assert.False(t, vfs.IsFile("/a"))
	assert.False(t, vfs.IsDir("/a"))
}

func TestSymlinkChain(t *testing.T) {
	vfs := memfs.New()

	require.NoError(t, vfs.CreateFile("/f.txt", []byte("deep")))
	require.NoError(t, vfs.Symlink("/f.txt", "/l1"))
	require.NoError(t, vfs.Symlink("/l1", "/l2"))
	require.NoError(t, vfs.Symlink("/l2", "/l3"))

	got, err := vfs.ReadFile("/l3")
	require.NoError(t, err)
	assert.Equal(t, []byte("deep"), got)

	assert.Equal(t, int64(34), vfs.Size("/l3"))
}

func TestRenameMatrix(t *testing.T) {
	newFS := func(t *testing.T) *memfs.MemFS {
		t.Helper()

		vfs := memfs.New()
		require.NoError(t, vfs.CreateFile("/file", []byte("src")))
		require.NoError(t, vfs.Mkdir("/dir"))

		return vfs
	}

	t.Run("FileOverFile", func(t *testing.T) {
		vfs := newFS(t)
		require.NoError(t, vfs.CreateFile("/other", []byte("dst")))

		require.NoError(t, vfs.Rename("/file", "/other"))

		got, err := vfs.ReadFile("/other")
		require.NoError(t, err)
		assert.Equal(t, []byte("src"), got)
		assert.False(t, vfs.IsFile("/file"))
	})

	t.Run("FileOverDir", func(t *testing.T) {
		vfs := newFS(t)

		err := vfs.Rename("/file", "/dir")
		require.Error(t, err)
		assert.ErrorIs(t, err, fakefs.ErrIsADirectory)
	})

	t.Run("DirOverFile", func(t *testing.T) {
		vfs := newFS(t)

		err := vfs.Rename("/dir", "/file")
		require.Error(t, err)
		assert.ErrorIs(t, err, fakefs.ErrNotADirectory)
	})

	t.Run("DirOverEmptyDir", func(t *testing.T) {
		vfs := newFS(t)
		require.NoError(t, vfs.CreateFile("/dir/f.txt", []byte("in")))
		require.NoError(t, vfs.Mkdir("/empty"))

		require.NoError(t, vfs.Rename("/dir", "/empty"))
		assert.True(t, vfs.IsFile("/empty/f.txt"))
		assert.False(t, vfs.IsDir("/dir"))
	})

	t.Run("DirOverNonEmptyDir", func(t *testing.T) {
		vfs := newFS(t)
		require.NoError(t, vfs.CreateFile("/dir/src.txt", nil))
		require.NoError(t, vfs.Mkdir("/full"))
		require.NoError(t, vfs.CreateFile("/full/f.txt", nil))

		err := vfs.Rename("/dir", "/full")
		require.Error(t, err)
		assert.ErrorIs(t, err, fakefs.ErrIO)

		// Neither side is mutated by the failure.
		assert.True(t, vfs.IsFile("/dir/src.txt"))
		assert.True(t, vfs.IsFile("/full/f.txt"))
	})

	t.Run("MissingSource", func(t *testing.T) {
		vfs := newFS(t)

		err := vfs.Rename("/missing", "/dest")
		require.Error(t, err)
		assert.ErrorIs(t, err, fakefs.ErrNoSuchFileOrDir)
	})
}

func TestRenameMovesLink(t *testing.T) {
	vfs := memfs.New()

	require.NoError(t, vfs.CreateFile("/f.txt", []byte("data")))
	require.NoError(t, vfs.Symlink("/f.txt", "/link"))

	// The link entry moves, not its target.
	require.NoError(t, vfs.Rename("/link", "/moved"))

	target, err := vfs.Readlink("/moved")
	require.NoError(t, err)
	assert.Equal(t, "/f.txt", target)
	assert.True(t, vfs.IsFile("/f.txt"))
}

func TestReadFileString(t *testing.T) {
	vfs := memfs.New()

	require.NoError(t, vfs.CreateFile("/utf8.txt", []byte("héllo")))

	s, err := vfs.ReadFileString("/utf8.txt")
	require.NoError(t, err)
	assert.Equal(t, "héllo", s)

	require.NoError(t, vfs.CreateFile("/bin", []byte{0xff, 0xfe, 0xfd}))

	_, err = vfs.ReadFileString("/bin")
	require.Error(t, err)
	assert.ErrorIs(t, err, fakefs.ErrInvalidData)
}

func TestOpenLiveContent(t *testing.T) {
	vfs := memfs.New()

	require.NoError(t, vfs.CreateFile("/f.txt", []byte("0123456789")))

	f, err := vfs.Open("/f.txt")
	require.NoError(t, err)

	buf := make([]byte, 5)

	n, err := f.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, "01234", string(buf[:n]))

	// The handle observes writes made after Open.
	require.NoError(t, vfs.OverwriteFile("/f.txt", []byte("abcdefghij")))

	n, err = f.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, "fghij", string(buf[:n]))

	// A file shrunk past the offset yields io.EOF.
	require.NoError(t, vfs.OverwriteFile("/f.txt", []byte("ab")))

	n, err = f.Read(buf)
	assert.Equal(t, 0, n)
	assert.ErrorIs(t, err, io.EOF)

	require.NoError(t, f.Close())

	_, err = f.Read(buf)
	require.Error(t, err)
	assert.ErrorIs(t, err, fakefs.ErrFileClosing)

	err = f.Close()
	require.Error(t, err)
	assert.ErrorIs(t, err, fakefs.ErrFileClosing)
}

func TestOpenRemovedFile(t *testing.T) {
	vfs := memfs.New()

	require.NoError(t, vfs.CreateFile("/f.txt", []byte("data")))

	f, err := vfs.Open("/f.txt")
	require.NoError(t, err)

	defer f.Close()

	require.NoError(t, vfs.RemoveFile("/f.txt"))

	// The handle holds a path, not the node.
	_, err = f.Read(make([]byte, 4))
	require.Error(t, err)
	assert.ErrorIs(t, err, fakefs.ErrNoSuchFileOrDir)
}

func TestClone(t *testing.T) {
	vfs := memfs.New(memfs.WithName("origin"))
	cl := vfs.Clone()

	// Clones share the node table.
	require.NoError(t, vfs.CreateFile("/shared.txt", []byte("data")))
	assert.True(t, cl.IsFile("/shared.txt"))

	require.NoError(t, cl.RemoveFile("/shared.txt"))
	assert.False(t, vfs.IsFile("/shared.txt"))

	// Clones also share the current directory.
	require.NoError(t, vfs.Mkdir("/work"))
	require.NoError(t, cl.Chdir("/work"))

	dir, err := vfs.Getwd()
	require.NoError(t, err)
	assert.Equal(t, "/work", dir)
}

func TestTempDir(t *testing.T) {
	vfs := memfs.New(memfs.WithTmpDir("/var/tmp"))

	td, err := vfs.TempDir("run")
	require.NoError(t, err)

	assert.True(t, vfs.IsDir(td.Path()))
	assert.Equal(t, "/var/tmp/run", fakefs.Dir(td.Path()))

	other, err := vfs.TempDir("run")
	require.NoError(t, err)
	assert.NotEqual(t, td.Path(), other.Path())

	require.NoError(t, vfs.CreateFile(fakefs.Join(td.Path(), "f.txt"), nil))

	require.NoError(t, td.Close())
	assert.False(t, vfs.IsDir(td.Path()))
	require.NoError(t, td.Close())

	require.NoError(t, other.Close())
}

func TestCopyFile(t *testing.T) {
	vfs := memfs.New()

	require.NoError(t, vfs.CreateFile("/src", []byte("data")))
	require.NoError(t, vfs.Mkdir("/dir"))

	// Copy to a fresh destination.
	require.NoError(t, vfs.CopyFile("/src", "/dst"))

	got, err := vfs.ReadFile("/dst")
	require.NoError(t, err)
	assert.Equal(t, []byte("data"), got)

	// Copy over an existing readonly destination is rejected.
	require.NoError(t, vfs.SetReadonly("/dst", true))

	err = vfs.CopyFile("/src", "/dst")
	require.Error(t, err)
	assert.ErrorIs(t, err, fakefs.ErrPermDenied)

	// A directory is not a valid source nor destination.
	err = vfs.CopyFile("/dir", "/dst2")
	require.Error(t, err)
	assert.ErrorIs(t, err, fakefs.ErrInvalidArgument)

	err = vfs.CopyFile("/src", "/dir")
	require.Error(t, err)
	assert.ErrorIs(t, err, fakefs.ErrIsADirectory)
}

func TestReadDirEntries(t *testing.T) {
	vfs := memfs.New()

	require.NoError(t, vfs.MkdirAll("/d/sub"))
	require.NoError(t, vfs.CreateFile("/d/f.txt", []byte("1234")))
	require.NoError(t, vfs.Symlink("/d/f.txt", "/d/link"))

	entries, err := vfs.ReadDir("/d")
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// Entries are sorted by name : f.txt, link, sub.
	assert.Equal(t, "f.txt", entries[0].Name())
	assert.True(t, entries[0].Type().IsRegular())

	info, err := entries[0].Info()
	require.NoError(t, err)
	assert.Equal(t, int64(4), info.Size())

	assert.Equal(t, "link", entries[1].Name())
	assert.Equal(t, fs.ModeSymlink, entries[1].Type())

	assert.Equal(t, "sub", entries[2].Name())
	assert.True(t, entries[2].IsDir())

	// Entries below a nested directory do not leak into the parent.
	require.NoError(t, vfs.CreateFile("/d/sub/deep.txt", nil))

	entries, err = vfs.ReadDir("/d")
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

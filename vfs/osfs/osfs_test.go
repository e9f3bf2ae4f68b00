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

package osfs_test

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fakefs/fakefs"
	"github.com/fakefs/fakefs/test"
	"github.com/fakefs/fakefs/vfs/osfs"
)

var (
	// OsFS implements the file system interfaces.
	_ fakefs.VFS     = &osfs.OsFS{}
	_ fakefs.UnixVFS = &osfs.OsFS{}
	_ fakefs.TempVFS = &osfs.OsFS{}
	_ fakefs.Cloner  = &osfs.OsFS{}

	_ fakefs.TempDirer = &osfs.OsTempDir{}
)

// TestSuite runs the common file system test suite against the real
// file system.
func TestSuite(t *testing.T) {
	sfs := test.NewSuiteFS(osfs.New())
	sfs.TestAll(t)
}

func TestNew(t *testing.T) {
	vfs := osfs.New(osfs.WithName("os"))

	assert.Equal(t, "os", vfs.Name())
	assert.Equal(t, "OsFS", vfs.Type())

	cl := vfs.Clone()
	assert.Equal(t, "os", cl.Name())
}

func TestGetwd(t *testing.T) {
	vfs := osfs.New()

	dir, err := vfs.Getwd()
	require.NoError(t, err)
	assert.True(t, fakefs.IsAbs(dir))
	assert.True(t, vfs.IsDir(dir))
}

func TestRemoveErrors(t *testing.T) {
	vfs := osfs.New()

	td, err := vfs.TempDir("osfs")
	require.NoError(t, err)

	defer td.Close()

	dir := fakefs.Join(td.Path(), "dir")
	require.NoError(t, vfs.Mkdir(dir))

	err = vfs.RemoveFile(dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, fakefs.ErrIsADirectory)

	file := fakefs.Join(td.Path(), "f.txt")
	require.NoError(t, vfs.CreateFile(file, nil))

	err = vfs.RemoveDir(file)
	require.Error(t, err)
	assert.ErrorIs(t, err, fakefs.ErrNotADirectory)
}

func TestModeRoundTrip(t *testing.T) {
	vfs := osfs.New()

	td, err := vfs.TempDir("osfs")
	require.NoError(t, err)

	defer td.Close()

	file := fakefs.Join(td.Path(), "f.txt")
	require.NoError(t, vfs.CreateFile(file, []byte("data")))

	require.NoError(t, vfs.SetMode(file, 0o600))

	mode, err := vfs.Mode(file)
	require.NoError(t, err)
	assert.Equal(t, fs.FileMode(0o600), mode)

	assert.Equal(t, int64(4), vfs.Size(file))
}

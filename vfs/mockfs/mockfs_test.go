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

package mockfs_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fakefs/fakefs"
	"github.com/fakefs/fakefs/vfs/mockfs"
)

var (
	// MockFS implements the file system interfaces.
	_ fakefs.VFS     = &mockfs.MockFS{}
	_ fakefs.UnixVFS = &mockfs.MockFS{}
	_ fakefs.TempVFS = &mockfs.MockFS{}

	_ fakefs.TempDirer = &mockfs.MockTempDir{}
)

func TestNew(t *testing.T) {
	vfs := mockfs.New(mockfs.WithName("mocked"))

	assert.Equal(t, "mocked", vfs.Name())
	assert.Equal(t, "MockFS", vfs.Type())
}

func TestRecordedCalls(t *testing.T) {
	vfs := mockfs.New()

	vfs.On("CreateFile", "/f.txt", []byte("data")).Return(nil).Once()
	vfs.On("ReadFile", "/f.txt").Return([]byte("data"), nil).Once()
	vfs.On("IsFile", "/f.txt").Return(true)
	vfs.On("RemoveFile", "/missing").
		Return(fakefs.ErrNoSuchFileOrDir).Once()

	require.NoError(t, vfs.CreateFile("/f.txt", []byte("data")))

	data, err := vfs.ReadFile("/f.txt")
	require.NoError(t, err)
	assert.Equal(t, []byte("data"), data)

	assert.True(t, vfs.IsFile("/f.txt"))

	err = vfs.RemoveFile("/missing")
	assert.ErrorIs(t, err, fakefs.ErrNoSuchFileOrDir)

	vfs.AssertExpectations(t)
}

func TestReadFileInto(t *testing.T) {
	vfs := mockfs.New()
	buf := new(bytes.Buffer)

	vfs.On("ReadFileInto", "/f.txt", mock.Anything).
		Run(func(args mock.Arguments) {
			w, _ := args.Get(1).(*bytes.Buffer)
			w.WriteString("data")
		}).
		Return(int64(4), nil)

	n, err := vfs.ReadFileInto("/f.txt", buf)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
	assert.Equal(t, "data", buf.String())

	vfs.AssertExpectations(t)
}

func TestTempDir(t *testing.T) {
	vfs := mockfs.New()
	td := &mockfs.MockTempDir{}

	td.On("Path").Return("/tmp/mock/mock_0123456789")
	td.On("Close").Return(nil).Once()

	vfs.On("TempDir", "mock").Return(td, nil).Once()

	got, err := vfs.TempDir("mock")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/mock/mock_0123456789", got.Path())
	require.NoError(t, got.Close())

	vfs.AssertExpectations(t)
	td.AssertExpectations(t)
}

func TestUnprogrammedCallPanics(t *testing.T) {
	vfs := mockfs.New()

	assert.Panics(t, func() { vfs.IsDir("/") })
}

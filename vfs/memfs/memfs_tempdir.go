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

package memfs

import (
	"github.com/fakefs/fakefs"
	"github.com/valyala/fastrand"
)

// MemTempDir is a temporary directory handle.
// Closing the handle removes the directory and everything below it.
type MemTempDir struct {
	vfs    *MemFS // vfs is the memory file system of the directory.
	path   string // path is the absolute path of the directory.
	closed bool   // closed reports whether Close has been called.
}

// TempDir creates a uniquely named directory below the temporary
// directory of the file system, along with a parent directory named
// after the prefix alone, and returns a handle to it.
func (vfs *MemFS) TempDir(prefix string) (fakefs.TempDirer, error) {
	path := fakefs.Join(vfs.tmpDir, prefix, prefix+"_"+rndSuffix())

	for vfs.IsDir(path) || vfs.IsFile(path) {
		path = fakefs.Join(vfs.tmpDir, prefix, prefix+"_"+rndSuffix())
	}

	err := vfs.MkdirAll(path)
	if err != nil {
		return nil, err
	}

	return &MemTempDir{vfs: vfs, path: path}, nil
}

// Path returns the absolute path of the temporary directory.
func (td *MemTempDir) Path() string {
	return td.path
}

// Close removes the temporary directory and all of its content.
// Close is idempotent : calling it twice is a no-op.
func (td *MemTempDir) Close() error {
	if td.closed {
		return nil
	}

	td.closed = true

	return td.vfs.RemoveAll(td.path)
}

// rndSuffix returns a fixed length random string of lower case letters
// and digits.
func rndSuffix() string {
	const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

	b := make([]byte, tmpSuffixLen)
	for i := range b {
		b[i] = alphabet[fastrand.Uint32n(uint32(len(alphabet)))]
	}

	return string(b)
}

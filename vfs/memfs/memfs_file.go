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
	"io"
	"io/fs"

	"github.com/fakefs/fakefs"
)

// MemFile is an open file handle used for incremental reads.
//
// The handle holds the path and a byte offset, not a snapshot : the
// live file content is re-read under the file system lock on every
// call, so interleaved writers are observed between two reads. A file
// that has shrunk past the handle's offset yields io.EOF rather than
// an error.
type MemFile struct {
	vfs  *MemFS // vfs is the memory file system of the file.
	name string // name is the name of the file as presented to Open.
	at   int64  // at is the current read offset in the file.

	closed bool // closed reports whether Close has been called.
}

// Name returns the name of the file as presented to Open.
func (f *MemFile) Name() string {
	return f.name
}

// Read reads up to len(p) bytes from the current content of the file.
// At end of content, Read returns 0, io.EOF.
// If there is an error, it will be of type *PathError.
func (f *MemFile) Read(p []byte) (int, error) {
	const op = "read"

	f.vfs.mu.Lock()
	defer f.vfs.mu.Unlock()

	if f.closed {
		return 0, &fs.PathError{Op: op, Path: f.name, Err: fakefs.ErrFileClosing}
	}

	data, err := f.vfs.reg.readFileRef(f.vfs.abs(f.name))
	if err != nil {
		return 0, &fs.PathError{Op: op, Path: f.name, Err: err}
	}

	if f.at >= int64(len(data)) {
		return 0, io.EOF
	}

	n := copy(p, data[f.at:])
	f.at += int64(n)

	return n, nil
}

// Close closes the file handle. Further reads fail.
// If there is an error, it will be of type *PathError.
func (f *MemFile) Close() error {
	const op = "close"

	f.vfs.mu.Lock()
	defer f.vfs.mu.Unlock()

	if f.closed {
		return &fs.PathError{Op: op, Path: f.name, Err: fakefs.ErrFileClosing}
	}

	f.closed = true

	return nil
}

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
	"sync"

	"github.com/fakefs/fakefs"
)

// New returns a new memory file system (MemFS) holding only the root
// directory, with the current directory set to the root.
func New(opts ...Option) *MemFS {
	vfs := &MemFS{
		reg:    newRegistry(),
		mu:     new(sync.Mutex),
		tmpDir: DefaultTmpDir,
	}

	for _, opt := range opts {
		opt(vfs)
	}

	return vfs
}

// Clone returns a shallow copy of the file system sharing the same
// underlying node table and lock : all clones observe each other's
// mutations, modelling multiple handles to the same file system.
func (vfs *MemFS) Clone() fakefs.VFS {
	cl := *vfs

	return &cl
}

// Name returns the name of the file system.
func (vfs *MemFS) Name() string {
	return vfs.name
}

// Type returns the type of the file system.
func (vfs *MemFS) Type() string {
	return "MemFS"
}

// Options

// WithName returns an option function which sets the name of the file system.
func WithName(name string) Option {
	return func(vfs *MemFS) {
		vfs.name = name
	}
}

// WithTmpDir returns an option function which sets the base directory
// used by TempDir.
func WithTmpDir(path string) Option {
	return func(vfs *MemFS) {
		vfs.tmpDir = path
	}
}

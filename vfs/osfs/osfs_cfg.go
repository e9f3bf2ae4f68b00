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

package osfs

import "github.com/fakefs/fakefs"

// OsFS implements the file system interfaces on top of the file system
// of the operating system.
type OsFS struct {
	name string // name is the name of the file system.
}

// Option defines the option function used for initializing OsFS.
type Option func(*OsFS)

// New returns a new OS file system (OsFS).
func New(opts ...Option) *OsFS {
	vfs := &OsFS{}

	for _, opt := range opts {
		opt(vfs)
	}

	return vfs
}

// Clone returns a shallow copy of the file system.
// All copies operate on the same real file system.
func (vfs *OsFS) Clone() fakefs.VFS {
	cl := *vfs

	return &cl
}

// Name returns the name of the file system.
func (vfs *OsFS) Name() string {
	return vfs.name
}

// Type returns the type of the file system.
func (vfs *OsFS) Type() string {
	return "OsFS"
}

// WithName returns an option function which sets the name of the file system.
func WithName(name string) Option {
	return func(vfs *OsFS) {
		vfs.name = name
	}
}

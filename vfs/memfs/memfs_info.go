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
	"io/fs"
	"time"
)

// MemInfo is the implementation of fs.DirEntry and fs.FileInfo returned
// by ReadDir. Directory and symbolic link sizes are fixed sentinels,
// not computed values.
type MemInfo struct {
	name string      // name is the name of the file.
	size int64       // size is the size of the file.
	mode fs.FileMode // mode represents the file's mode and permission bits.
}

// Name returns the base name of the file.
func (info *MemInfo) Name() string {
	return info.name
}

// Size returns the length in bytes for files and a fixed sentinel for
// directories and symbolic links.
func (info *MemInfo) Size() int64 {
	return info.size
}

// Mode returns the file mode bits.
func (info *MemInfo) Mode() fs.FileMode {
	return info.mode
}

// ModTime returns the zero time : the file system does not track
// modification times.
func (info *MemInfo) ModTime() time.Time {
	return time.Time{}
}

// IsDir reports whether the entry describes a directory.
func (info *MemInfo) IsDir() bool {
	return info.mode.IsDir()
}

// Sys returns nil.
func (info *MemInfo) Sys() any {
	return nil
}

// Type returns the type bits of the entry's mode.
func (info *MemInfo) Type() fs.FileMode {
	return info.mode.Type()
}

// Info returns the entry itself as fs.FileInfo.
func (info *MemInfo) Info() (fs.FileInfo, error) {
	return info, nil
}

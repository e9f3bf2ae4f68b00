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
	"sync"

	"github.com/fakefs/fakefs"
)

const (
	// DefaultTmpDir is the default base directory for temporary directories.
	DefaultTmpDir = "/tmp"

	// dirSize and symlinkSize are the sizes reported for directories and
	// symbolic links. They are documented stand-ins, not computed values.
	dirSize     = 4096
	symlinkSize = 34

	// tmpSuffixLen is the length of the random suffix of a temporary directory name.
	tmpSuffixLen = 10
)

// MemFS implements an in-memory file system using the fakefs.VFS interface.
type MemFS struct {
	reg    *registry   // reg is the node registry, shared by all clones.
	mu     *sync.Mutex // mu guards every operation on the registry, shared by all clones.
	name   string      // name is the name of the file system.
	tmpDir string      // tmpDir is the base directory for temporary directories.
}

// Option defines the option function used for initializing MemFS.
type Option func(*MemFS)

// registry is the canonical path to node table.
// Keys are unique absolute slash-separated paths; the root path "/"
// always maps to a directory.
type registry struct {
	nodes  map[string]node // nodes is the path to node table.
	curDir string          // curDir is the current directory.
}

// node is the interface implemented by dirNode, fileNode and symlinkNode.
type node interface {
	// base returns the baseNode common to all node kinds.
	base() *baseNode

	// fillStatFrom returns a *MemInfo (implementation of fs.FileInfo and
	// fs.DirEntry) from a node named name.
	fillStatFrom(name string) *MemInfo

	// size returns the size of the node.
	size() int64
}

// baseNode is the common structure of directories, files and symbolic links.
type baseNode struct {
	mode fs.FileMode // mode represents the node's permission bits.
}

// dirNode is the structure for a directory.
// Directory membership is not stored : it is derived by scanning the
// registry for entries whose parent path equals the directory's path.
type dirNode struct {
	baseNode
}

// fileNode is the structure for a file.
type fileNode struct {
	baseNode
	data []byte // data is the file content.
}

// symlinkNode is the structure for a symbolic link.
type symlinkNode struct {
	baseNode
	target string // target is the link value, stored verbatim and resolved on use.
}

// newRegistry returns a new registry holding only the root directory.
func newRegistry() *registry {
	return &registry{
		nodes: map[string]node{
			string(fakefs.PathSeparator): newDirNode(),
		},
		curDir: string(fakefs.PathSeparator),
	}
}

func newDirNode() *dirNode {
	return &dirNode{baseNode: baseNode{mode: fakefs.DefaultDirPerm}}
}

func newFileNode(data []byte) *fileNode {
	return &fileNode{
		baseNode: baseNode{mode: fakefs.DefaultFilePerm},
		data:     append([]byte(nil), data...),
	}
}

func newSymlinkNode(target string) *symlinkNode {
	return &symlinkNode{
		baseNode: baseNode{mode: fakefs.DefaultFilePerm},
		target:   target,
	}
}

func (bn *baseNode) base() *baseNode {
	return bn
}

// isWritable returns true if at least one write permission bit is set.
func (bn *baseNode) isWritable() bool {
	return bn.mode&0o222 != 0
}

// isReadable returns true if at least one read permission bit is set.
func (bn *baseNode) isReadable() bool {
	return bn.mode&0o444 != 0
}

func (dn *dirNode) fillStatFrom(name string) *MemInfo {
	return &MemInfo{name: name, size: dn.size(), mode: fs.ModeDir | dn.mode}
}

func (dn *dirNode) size() int64 {
	return dirSize
}

func (fn *fileNode) fillStatFrom(name string) *MemInfo {
	return &MemInfo{name: name, size: fn.size(), mode: fn.mode}
}

func (fn *fileNode) size() int64 {
	return int64(len(fn.data))
}

func (sn *symlinkNode) fillStatFrom(name string) *MemInfo {
	return &MemInfo{name: name, size: sn.size(), mode: fs.ModeSymlink | sn.mode}
}

func (sn *symlinkNode) size() int64 {
	return symlinkSize
}

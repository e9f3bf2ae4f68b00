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
	"errors"
	"io/fs"
	"sort"
	"strings"

	"github.com/fakefs/fakefs"
)

// All registry methods expect absolute paths : the facade joins relative
// paths against the current directory before calling in.

// resolvePath resolves path against the node table and returns the
// canonical path where the node lives or should be created.
// Intermediate symbolic links are always substituted; followLast decides
// whether a symbolic link at the final component is followed to its
// target (read and write semantics) or returned unresolved (remove and
// rename the link semantics).
// It returns :
//
//	ErrInvalidArgument when the path contains a `.` or `..` component
//	ErrNoSuchFileOrDir when an intermediate component does not exist
//	ErrTooManySymlinks when a symbolic link chain revisits a path
//
// A missing final component is not an error : the returned path names
// where the node would be created, its parent chain being resolved.
func (r *registry) resolvePath(path string, followLast bool) (string, error) {
	switch r.nodes[path].(type) {
	case *fileNode, *dirNode:
		return path, nil
	case *symlinkNode:
		if !followLast {
			return path, nil
		}

		_, rp, err := r.recurseSymlink(path)

		return rp, err
	}

	resolved := string(fakefs.PathSeparator)

	isLast := len(path) <= 1
	for start, end := 1, 0; !isLast; start = end + 1 {
		end, isLast = fakefs.SegmentPath(path, start)

		name := path[start:end]
		if name == "" {
			continue
		}

		if name == "." || name == ".." {
			return "", fakefs.ErrInvalidArgument
		}

		if resolved == string(fakefs.PathSeparator) {
			resolved += name
		} else {
			resolved += string(fakefs.PathSeparator) + name
		}

		switch r.nodes[resolved].(type) {
		case *fileNode, *dirNode:
		case *symlinkNode:
			if !followLast && isLast {
				return resolved, nil
			}

			_, rp, err := r.recurseSymlink(resolved)
			if err != nil {
				return "", err
			}

			resolved = rp
		default:
			if isLast {
				return resolved, nil
			}

			return "", fakefs.ErrNoSuchFileOrDir
		}
	}

	return resolved, nil
}

// recurseSymlink follows the symbolic link chain starting at path until
// a file or a directory is reached, tracking visited paths to detect
// cycles. It returns the final node and its canonical path.
func (r *registry) recurseSymlink(path string) (node, string, error) {
	visited := make(map[string]struct{})

	for {
		nd, ok := r.nodes[path]
		if !ok {
			return nil, "", fakefs.ErrNoSuchFileOrDir
		}

		sn, ok := nd.(*symlinkNode)
		if !ok {
			return nd, path, nil
		}

		if _, seen := visited[path]; seen {
			return nil, "", fakefs.ErrTooManySymlinks
		}

		visited[path] = struct{}{}
		path = sn.target
	}
}

// currentDir returns the current directory.
// It fails if the current directory no longer resolves to a directory.
func (r *registry) currentDir() (string, error) {
	if _, err := r.getDir(r.curDir); err != nil {
		return "", err
	}

	return r.curDir, nil
}

// setCurrentDir sets the current directory, which must resolve to a
// directory.
func (r *registry) setCurrentDir(path string) error {
	if _, err := r.getDir(path); err != nil {
		return err
	}

	r.curDir = path

	return nil
}

// isDir returns true if path resolves to a directory, false otherwise
// (including when resolution itself fails).
func (r *registry) isDir(path string) bool {
	rp, err := r.resolvePath(path, true)
	if err != nil {
		return false
	}

	_, ok := r.nodes[rp].(*dirNode)

	return ok
}

// isFile returns true if path resolves to a file, false otherwise
// (including when resolution itself fails).
func (r *registry) isFile(path string) bool {
	rp, err := r.resolvePath(path, true)
	if err != nil {
		return false
	}

	_, ok := r.nodes[rp].(*fileNode)

	return ok
}

// createDir creates a new directory.
// The path must not exist and its parent must be a writable directory.
func (r *registry) createDir(path string) error {
	return r.insert(path, newDirNode())
}

// createDirAll creates the directory path and all missing parents,
// top-down. An intermediate directory that already exists is not an
// error, so calling createDirAll on an existing directory succeeds.
func (r *registry) createDirAll(path string) error {
	if path == "" {
		return nil
	}

	err := r.createDir(path)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, fakefs.ErrNoSuchFileOrDir):
	case r.isDir(path):
		return nil
	default:
		return err
	}

	parent := fakefs.Dir(path)
	if parent == path {
		return fakefs.ErrIO
	}

	if err = r.createDirAll(parent); err != nil {
		return err
	}

	return r.createDirAll(path)
}

// removeDir removes the directory at path, which must be empty.
// A symbolic link at the final component is not followed.
func (r *registry) removeDir(path string) error {
	rp, err := r.resolvePath(path, false)
	if err != nil {
		return err
	}

	switch r.nodes[rp].(type) {
	case nil:
		return fakefs.ErrNoSuchFileOrDir
	case *dirNode:
		if len(r.descendants(rp)) != 0 {
			return fakefs.ErrDirNotEmpty
		}

		delete(r.nodes, rp)

		return nil
	default:
		return fakefs.ErrNotADirectory
	}
}

// removeDirAll removes the directory at path and every descendant.
// The directory must be writable and every descendant readable,
// otherwise nothing is removed. A symbolic link at the final component
// is followed : the resolved tree and the link entry are both removed.
func (r *registry) removeDirAll(path string) error {
	rp, err := r.resolvePath(path, false)
	if err != nil {
		return err
	}

	nd, ok := r.nodes[rp]
	if !ok {
		return fakefs.ErrNoSuchFileOrDir
	}

	dirPath := rp

	if _, isLink := nd.(*symlinkNode); isLink {
		tn, tp, err := r.recurseSymlink(rp)
		if err != nil {
			return err
		}

		nd, dirPath = tn, tp
	}

	dn, ok := nd.(*dirNode)
	if !ok {
		return fakefs.ErrNotADirectory
	}

	if !dn.isWritable() {
		return fakefs.ErrPermDenied
	}

	// Check every descendant before mutating anything so that a
	// permission failure leaves the whole tree untouched.
	ds := r.descendants(dirPath)
	for _, p := range ds {
		if !r.nodes[p].base().isReadable() {
			return fakefs.ErrPermDenied
		}
	}

	for _, p := range ds {
		delete(r.nodes, p)
	}

	// The root directory always exists.
	if dirPath != string(fakefs.PathSeparator) {
		delete(r.nodes, dirPath)
	}

	if rp != dirPath {
		delete(r.nodes, rp)
	}

	return nil
}

// readDir returns the entries of the directory path resolves to,
// sorted by name.
func (r *registry) readDir(path string) ([]fs.DirEntry, error) {
	rp, err := r.resolvePath(path, true)
	if err != nil {
		return nil, err
	}

	if _, err = r.getDir(rp); err != nil {
		return nil, err
	}

	var entries []fs.DirEntry

	for p, nd := range r.nodes {
		if p == rp || fakefs.Dir(p) != rp {
			continue
		}

		entries = append(entries, nd.fillStatFrom(fakefs.Base(p)))
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	return entries, nil
}

// createFile creates a new file with the given content.
// The path must not exist and its parent must be a writable directory.
func (r *registry) createFile(path string, data []byte) error {
	rp, err := r.resolvePath(path, true)
	if err != nil {
		return err
	}

	return r.insert(rp, newFileNode(data))
}

// writeFile replaces the content of the file at path, creating the file
// if it does not exist. An existing file must be writable.
func (r *registry) writeFile(path string, data []byte) error {
	rp, err := r.resolvePath(path, true)
	if err != nil {
		return err
	}

	fn, err := r.getFileWritable(rp)
	if err == nil {
		fn.data = append([]byte(nil), data...)

		return nil
	}

	if errors.Is(err, fakefs.ErrNoSuchFileOrDir) {
		return r.createFile(rp, data)
	}

	return err
}

// overwriteFile replaces the content of the file at path, which must
// already exist and be writable.
func (r *registry) overwriteFile(path string, data []byte) error {
	rp, err := r.resolvePath(path, true)
	if err != nil {
		return err
	}

	fn, err := r.getFileWritable(rp)
	if err != nil {
		return err
	}

	fn.data = append([]byte(nil), data...)

	return nil
}

// readFile returns a copy of the content of the file path resolves to.
// The file must be readable.
func (r *registry) readFile(path string) ([]byte, error) {
	data, err := r.readFileRef(path)
	if err != nil {
		return nil, err
	}

	return append([]byte(nil), data...), nil
}

// readFileRef returns the live content of the file path resolves to,
// without copying. The file must be readable.
func (r *registry) readFileRef(path string) ([]byte, error) {
	rp, err := r.resolvePath(path, true)
	if err != nil {
		return nil, err
	}

	fn, err := r.getFile(rp)
	if err != nil {
		return nil, err
	}

	if !fn.isReadable() {
		return nil, fakefs.ErrPermDenied
	}

	return fn.data, nil
}

// removeFile removes the file or symbolic link at path.
// A symbolic link at the final component is not followed : the link
// itself is removed, not its target.
func (r *registry) removeFile(path string) error {
	rp, err := r.resolvePath(path, false)
	if err != nil {
		return err
	}

	switch r.nodes[rp].(type) {
	case nil:
		return fakefs.ErrNoSuchFileOrDir
	case *dirNode:
		return fakefs.ErrIsADirectory
	default:
		delete(r.nodes, rp)

		return nil
	}
}

// copyFile reads the file from resolves to and writes its content to to.
// The destination must not resolve to a directory and, when it exists,
// must be writable.
func (r *registry) copyFile(from, to string) error {
	rfrom, err := r.resolvePath(from, true)
	if err != nil {
		return err
	}

	rto, err := r.resolvePath(to, true)
	if err != nil {
		return err
	}

	data, err := r.readFile(rfrom)
	if err != nil {
		if errors.Is(err, fakefs.ErrIsADirectory) {
			return fakefs.ErrInvalidArgument
		}

		return err
	}

	switch nd := r.nodes[rto].(type) {
	case nil:
		return r.writeFile(rto, data)
	case *dirNode:
		return fakefs.ErrIsADirectory
	default:
		if !nd.base().isWritable() {
			return fakefs.ErrPermDenied
		}

		return r.writeFile(rto, data)
	}
}

// readLink returns the stored target of the symbolic link at path,
// without following it.
func (r *registry) readLink(path string) (string, error) {
	rp, err := r.resolvePath(path, false)
	if err != nil {
		return "", err
	}

	switch nd := r.nodes[rp].(type) {
	case nil:
		return "", fakefs.ErrNoSuchFileOrDir
	case *symlinkNode:
		return nd.target, nil
	default:
		return "", fakefs.ErrInvalidArgument
	}
}

// symlink creates a symbolic link at path pointing to target.
// The target is stored verbatim : it may not exist yet and later
// changes to it are observed dynamically.
func (r *registry) symlink(target, path string) error {
	return r.insert(path, newSymlinkNode(target))
}

// nodeKind is the effective kind of a rename operand.
type nodeKind int

const (
	kindFile nodeKind = iota + 1
	kindDir
)

// effKind returns the effective kind of the node nd at path : symbolic
// links are followed to determine the kind of their final target, and
// the canonical path of the effective node is returned alongside.
func (r *registry) effKind(path string, nd node) (nodeKind, string, error) {
	if _, isLink := nd.(*symlinkNode); isLink {
		tn, tp, err := r.recurseSymlink(path)
		if err != nil {
			return 0, "", err
		}

		nd, path = tn, tp
	}

	if _, ok := nd.(*dirNode); ok {
		return kindDir, path, nil
	}

	return kindFile, path, nil
}

// rename moves the entry at from to to. Both paths are resolved without
// following a final symbolic link, so a link itself is relocated, never
// its target. The allowed combinations are dispatched on the effective
// kinds of both sides : a file may replace a file or nothing, a
// directory may replace an empty directory or nothing, and any
// file/directory mismatch fails.
func (r *registry) rename(from, to string) error {
	rfrom, err := r.resolvePath(from, false)
	if err != nil {
		return fakefs.ErrNoSuchFileOrDir
	}

	rto, err := r.resolvePath(to, false)
	if err != nil {
		return fakefs.ErrNoSuchFileOrDir
	}

	fn, ok := r.nodes[rfrom]
	if !ok {
		return fakefs.ErrNoSuchFileOrDir
	}

	tn, ok := r.nodes[rto]
	if !ok {
		if _, isDir := fn.(*dirNode); isDir {
			return r.moveDir(rfrom, rto)
		}

		return r.renamePath(rfrom, rto)
	}

	fromKind, _, err := r.effKind(rfrom, fn)
	if err != nil {
		return err
	}

	toKind, toDirPath, err := r.effKind(rto, tn)
	if err != nil {
		return err
	}

	switch {
	case fromKind == kindFile && toKind == kindFile:
		delete(r.nodes, rto)

		return r.renamePath(rfrom, rto)

	case fromKind == kindFile && toKind == kindDir:
		return fakefs.ErrIsADirectory

	case fromKind == kindDir && toKind == kindFile:
		return fakefs.ErrNotADirectory

	default: // directory over directory
		if len(r.descendants(toDirPath)) != 0 {
			return fakefs.ErrIO
		}

		delete(r.nodes, rto)

		if _, isDir := fn.(*dirNode); isDir {
			return r.moveDir(rfrom, rto)
		}

		return r.renamePath(rfrom, rto)
	}
}

// renamePath rewrites the key of a single entry from from to to,
// preserving its node unchanged. The original entry is restored if the
// destination cannot be inserted.
func (r *registry) renamePath(from, to string) error {
	nd, ok := r.nodes[from]
	if !ok {
		return fakefs.ErrNoSuchFileOrDir
	}

	delete(r.nodes, from)

	if err := r.insert(to, nd); err != nil {
		r.nodes[from] = nd

		return err
	}

	return nil
}

// moveDir moves the directory at from and every descendant by rewriting
// each path prefix from from to to. Descendant keys are rewritten
// directly : they are already canonical and their parent entry is gone
// once the directory itself has moved.
func (r *registry) moveDir(from, to string) error {
	ds := r.descendants(from)

	if err := r.renamePath(from, to); err != nil {
		return err
	}

	for _, p := range ds {
		nd := r.nodes[p]
		delete(r.nodes, p)
		r.nodes[to+p[len(from):]] = nd
	}

	return nil
}

// readonly reports whether all write permission bits of the entry at
// path are clear. The path is not resolved : a symbolic link reports
// its own bits.
func (r *registry) readonly(path string) (bool, error) {
	nd, ok := r.nodes[path]
	if !ok {
		return false, fakefs.ErrNoSuchFileOrDir
	}

	return !nd.base().isWritable(), nil
}

// setReadonly clears (readonly true) or sets (readonly false) all write
// permission bits of the entry at path.
func (r *registry) setReadonly(path string, readonly bool) error {
	nd, ok := r.nodes[path]
	if !ok {
		return fakefs.ErrNoSuchFileOrDir
	}

	bn := nd.base()
	if readonly {
		bn.mode &^= 0o222
	} else {
		bn.mode |= 0o222
	}

	return nil
}

// mode returns the raw permission mode of the entry at path.
func (r *registry) mode(path string) (fs.FileMode, error) {
	nd, ok := r.nodes[path]
	if !ok {
		return 0, fakefs.ErrNoSuchFileOrDir
	}

	return nd.base().mode, nil
}

// setMode replaces the raw permission mode of the entry at path.
func (r *registry) setMode(path string, mode fs.FileMode) error {
	nd, ok := r.nodes[path]
	if !ok {
		return fakefs.ErrNoSuchFileOrDir
	}

	nd.base().mode = mode & fs.ModePerm

	return nil
}

// size returns the size of the entry at path : the content length for a
// file, fixed sentinels for directories and symbolic links, 0 when the
// entry does not exist.
func (r *registry) size(path string) int64 {
	nd, ok := r.nodes[path]
	if !ok {
		return 0
	}

	return nd.size()
}

// access checks that path resolves to a readable file, as required to
// open it for reading.
func (r *registry) access(path string) error {
	_, err := r.readFileRef(path)

	return err
}

// getDir returns the directory path resolves to, following a symbolic
// link chain at path if needed.
func (r *registry) getDir(path string) (*dirNode, error) {
	nd, ok := r.nodes[path]
	if !ok {
		return nil, fakefs.ErrNoSuchFileOrDir
	}

	if _, isLink := nd.(*symlinkNode); isLink {
		tn, _, err := r.recurseSymlink(path)
		if err != nil {
			return nil, err
		}

		nd = tn
	}

	dn, ok := nd.(*dirNode)
	if !ok {
		return nil, fakefs.ErrNotADirectory
	}

	return dn, nil
}

// getFile returns the file path points to, following a symbolic link
// chain at path if needed.
func (r *registry) getFile(path string) (*fileNode, error) {
	nd, ok := r.nodes[path]
	if !ok {
		return nil, fakefs.ErrNoSuchFileOrDir
	}

	if _, isLink := nd.(*symlinkNode); isLink {
		tn, _, err := r.recurseSymlink(path)
		if err != nil {
			return nil, err
		}

		nd = tn
	}

	fn, ok := nd.(*fileNode)
	if !ok {
		return nil, fakefs.ErrIsADirectory
	}

	return fn, nil
}

// getFileWritable returns the file path points to, which must have a
// write permission bit set.
func (r *registry) getFileWritable(path string) (*fileNode, error) {
	fn, err := r.getFile(path)
	if err != nil {
		return nil, err
	}

	if !fn.isWritable() {
		return nil, fakefs.ErrPermDenied
	}

	return fn, nil
}

// insert adds a node at path. The resolved path must not exist and its
// parent must be a writable directory.
func (r *registry) insert(path string, nd node) error {
	rp, err := r.resolvePath(path, false)
	if err != nil {
		return err
	}

	if _, ok := r.nodes[rp]; ok {
		return fakefs.ErrFileExists
	}

	parent := fakefs.Dir(rp)

	pn, ok := r.nodes[parent]
	if !ok {
		return fakefs.ErrNoSuchFileOrDir
	}

	pd, ok := pn.(*dirNode)
	if !ok {
		return fakefs.ErrNotADirectory
	}

	if !pd.isWritable() {
		return fakefs.ErrPermDenied
	}

	r.nodes[rp] = nd

	return nil
}

// descendants returns the paths of every entry whose canonical path is
// a strict extension of path.
func (r *registry) descendants(path string) []string {
	prefix := path
	if prefix != string(fakefs.PathSeparator) {
		prefix += string(fakefs.PathSeparator)
	}

	var ds []string

	for p := range r.nodes {
		if p != path && strings.HasPrefix(p, prefix) {
			ds = append(ds, p)
		}
	}

	return ds
}

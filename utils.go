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

package fakefs

import "strings"

// IsAbs reports whether the path is absolute.
func IsAbs(path string) bool {
	return strings.HasPrefix(path, string(PathSeparator))
}

// Join joins any number of path elements into a single path, adding a
// separating slash if necessary and collapsing duplicate slashes at the
// element boundaries. All empty strings are ignored.
//
// Unlike path.Join the result is not cleaned : `.` and `..` elements are
// kept verbatim so that the path resolver can reject them.
func Join(elem ...string) string {
	var sb strings.Builder

	for _, e := range elem {
		if e == "" {
			continue
		}

		if sb.Len() == 0 {
			sb.WriteString(e)

			continue
		}

		cur := sb.String()
		switch {
		case strings.HasSuffix(cur, string(PathSeparator)):
			sb.WriteString(strings.TrimPrefix(e, string(PathSeparator)))
		case strings.HasPrefix(e, string(PathSeparator)):
			sb.WriteString(e)
		default:
			sb.WriteByte(PathSeparator)
			sb.WriteString(e)
		}
	}

	return sb.String()
}

// Dir returns all but the last element of path.
// If the path contains no separator, Dir returns ".".
// The returned path does not end in a separator unless it is the root
// directory.
func Dir(path string) string {
	i := strings.LastIndexByte(path, PathSeparator)
	switch {
	case i < 0:
		return "."
	case i == 0:
		return string(PathSeparator)
	default:
		return path[:i]
	}
}

// Base returns the last element of path.
// If the path is empty, Base returns ".".
// If the path consists entirely of separators, Base returns a single
// separator.
func Base(path string) string {
	if path == "" {
		return "."
	}

	for len(path) > 1 && path[len(path)-1] == PathSeparator {
		path = path[:len(path)-1]
	}

	if path == string(PathSeparator) {
		return path
	}

	i := strings.LastIndexByte(path, PathSeparator)
	if i < 0 {
		return path
	}

	return path[i+1:]
}

// SegmentPath returns the end position of the path segment starting at
// position start and isLast true if the segment is the last one.
func SegmentPath(path string, start int) (end int, isLast bool) {
	pos := strings.IndexByte(path[start:], PathSeparator)
	if pos != -1 {
		return start + pos, false
	}

	return len(path), true
}

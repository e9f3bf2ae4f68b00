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

import (
	"errors"
	"strconv"
)

var (
	// ErrNegativeOffset is the Error negative offset.
	ErrNegativeOffset = errors.New("negative offset")

	// ErrFileClosing is returned when a file handle is used after it has been closed.
	ErrFileClosing = errors.New("use of closed file")
)

// Errno replaces syscall.Errno for the virtual file systems.
// Every failure returned by an operation wraps one of the Errno
// constants below; callers are expected to branch on the constant with
// errors.Is, not on the message text.
type Errno uint32 //nolint:errname // the type name `Errno` should conform to the `XxxError` format.

func (en Errno) Error() string {
	s, ok := errText[en]
	if ok {
		return s
	}

	return "errno " + strconv.Itoa(int(en))
}

const (
	// Error numbers as defined on Linux operating systems.
	// Most of the errors below can be found there :
	// https://github.com/torvalds/linux/blob/master/tools/include/uapi/asm-generic/errno-base.h

	ErrDirNotEmpty     = errENOTEMPTY // Directory not empty.
	ErrFileExists      = errEEXIST    // File exists.
	ErrInvalidArgument = errEINVAL    // Invalid argument.
	ErrInvalidData     = errEILSEQ    // Invalid or incomplete data.
	ErrIO              = errEIO       // Input/output error (catch-all).
	ErrIsADirectory    = errEISDIR    // File is a directory.
	ErrNoSuchFileOrDir = errENOENT    // No such file or directory.
	ErrNotADirectory   = errENOTDIR   // Not a directory.
	ErrPermDenied      = errEACCES    // Permission denied.
	ErrTooManySymlinks = errELOOP     // Too many levels of symbolic links.

	errEACCES    = Errno(0xd)
	errEEXIST    = Errno(0x11)
	errEILSEQ    = Errno(0x54)
	errEINVAL    = Errno(0x16)
	errEIO       = Errno(0x5)
	errEISDIR    = Errno(0x15)
	errELOOP     = Errno(0x28)
	errENOENT    = Errno(0x2)
	errENOTDIR   = Errno(0x14)
	errENOTEMPTY = Errno(0x27)
)

// errText translates an error number to text.
var errText = map[Errno]string{
	ErrDirNotEmpty:     "directory not empty",
	ErrFileExists:      "file exists",
	ErrInvalidArgument: "invalid argument",
	ErrInvalidData:     "invalid or incomplete multibyte or wide character",
	ErrIO:              "input/output error",
	ErrIsADirectory:    "is a directory",
	ErrNoSuchFileOrDir: "no such file or directory",
	ErrNotADirectory:   "not a directory",
	ErrPermDenied:      "permission denied",
	ErrTooManySymlinks: "too many levels of symbolic links",
}

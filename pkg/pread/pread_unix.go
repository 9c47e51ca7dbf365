// Copyright 2026 The hostio Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build !windows

package pread

import "golang.org/x/sys/unix"

// Pread reads up to len(p) bytes from fd into p, starting at absolute byte
// offset off. It returns the number of bytes read; 0 with a nil error means
// off is at or past end-of-file. On failure it returns -1 and the host
// error (a unix.Errno).
func Pread(fd uintptr, p []byte, off int64) (int, error) {
	n, err := unix.Pread(int(fd), p, off)
	if err != nil {
		return -1, err
	}
	return n, nil
}

// Pwrite writes len(p) bytes from p to fd at absolute byte offset off,
// returning the number of bytes written. On failure it returns -1 and the
// host error.
func Pwrite(fd uintptr, p []byte, off int64) (int, error) {
	n, err := unix.Pwrite(int(fd), p, off)
	if err != nil {
		return -1, err
	}
	return n, nil
}

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

//go:build windows

package pread

import (
	"errors"

	"golang.org/x/sys/windows"
)

// Windows has no pread(2), but ReadFile and WriteFile accept an OVERLAPPED
// record whose Offset/OffsetHigh fields name the file position for this one
// call. On a handle opened without FILE_FLAG_OVERLAPPED the call completes
// synchronously, which gives the positioned single-shot semantics this
// package promises.
//
// Reduced fidelity versus POSIX pread: on such synchronous handles the
// kernel may still advance the handle's file pointer after a positioned
// call. Callers that interleave positioned and plain sequential I/O on the
// same Windows handle must not rely on the sequential cursor afterwards.
// (The standard library's os.File.ReadAt hides this by seeking and
// restoring under a lock, at the cost of serializing all I/O on the file;
// this package keeps positioned calls lock-free instead.)

// Pread reads up to len(p) bytes from the handle fd into p, starting at
// absolute byte offset off. It returns the number of bytes read; 0 with a
// nil error means off is at or past end-of-file. On failure it returns -1
// and the host error.
func Pread(fd uintptr, p []byte, off int64) (int, error) {
	var (
		ov   windows.Overlapped
		done uint32
	)
	ov.Offset = uint32(off)
	ov.OffsetHigh = uint32(off >> 32)
	if err := windows.ReadFile(windows.Handle(fd), p, &done, &ov); err != nil {
		// Reads at or past end-of-file fail with ERROR_HANDLE_EOF
		// instead of transferring zero bytes. POSIX pread reports a
		// plain zero count there; match it.
		if errors.Is(err, windows.ERROR_HANDLE_EOF) {
			return int(done), nil
		}
		return -1, err
	}
	return int(done), nil
}

// Pwrite writes len(p) bytes from p to the handle fd at absolute byte
// offset off, returning the number of bytes written. On failure it returns
// -1 and the host error.
func Pwrite(fd uintptr, p []byte, off int64) (int, error) {
	var (
		ov   windows.Overlapped
		done uint32
	)
	ov.Offset = uint32(off)
	ov.OffsetHigh = uint32(off >> 32)
	if err := windows.WriteFile(windows.Handle(fd), p, &done, &ov); err != nil {
		return -1, err
	}
	return int(done), nil
}

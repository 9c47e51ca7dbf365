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

package fd

import (
	"fmt"

	"golang.org/x/sys/unix"
)

var errBadFD error = unix.EBADF

// Open opens path with open(2) semantics and returns an FD owning the new
// descriptor. O_LARGEFILE is ORed into flags on platforms that require it.
func Open(path string, flags int, mode uint32) (*FD, error) {
	raw, err := unix.Open(path, flags|O_LARGEFILE, mode)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return New(uintptr(raw)), nil
}

func dupRaw(raw uintptr) (uintptr, error) {
	nfd, err := unix.Dup(int(raw))
	if err != nil {
		return 0, err
	}
	return uintptr(nfd), nil
}

func rawRead(raw uintptr, p []byte) (int, error) {
	return unix.Read(int(raw), p)
}

func rawWrite(raw uintptr, p []byte) (int, error) {
	return unix.Write(int(raw), p)
}

func rawClose(raw uintptr) error {
	return unix.Close(int(raw))
}

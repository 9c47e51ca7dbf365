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

package fd

import (
	"fmt"

	"golang.org/x/sys/windows"
)

var errBadFD error = windows.ERROR_INVALID_HANDLE

// Open opens path and returns an FD owning the new handle. flags and mode
// are interpreted as for os.OpenFile.
func Open(path string, flags int, mode uint32) (*FD, error) {
	h, err := windows.Open(path, flags, mode)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return New(uintptr(h)), nil
}

func dupRaw(raw uintptr) (uintptr, error) {
	proc := windows.CurrentProcess()
	var dup windows.Handle
	err := windows.DuplicateHandle(proc, windows.Handle(raw), proc, &dup, 0, false, windows.DUPLICATE_SAME_ACCESS)
	if err != nil {
		return 0, err
	}
	return uintptr(dup), nil
}

func rawRead(raw uintptr, p []byte) (int, error) {
	return windows.Read(windows.Handle(raw), p)
}

func rawWrite(raw uintptr, p []byte) (int, error) {
	return windows.Write(windows.Handle(raw), p)
}

func rawClose(raw uintptr) error {
	return windows.CloseHandle(windows.Handle(raw))
}

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

// Package fd wraps raw host file descriptors in a type implementing the
// standard io interfaces, with positioned I/O from pkg/pread underneath.
package fd

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"github.com/walteh/hostio/pkg/pread"
)

// FD owns a host file descriptor.
//
// The descriptor is held behind an atomic and replaced with -1 on Close or
// Release, so I/O racing with teardown fails with an invalid-descriptor
// error rather than touching a recycled descriptor number.
//
// FD implements io.Reader, io.Writer, io.ReaderAt, io.WriterAt and
// io.Closer. The positioned methods do not consult the descriptor's
// sequential cursor, so they are safe to call concurrently with each other
// and with independent Readers on the same FD. See pkg/pread for the
// cursor caveat on Windows.
type FD struct {
	raw atomic.Int64
}

// New creates an FD owning raw. raw is a value of the kind returned by
// (*os.File).Fd: an integer file descriptor on unix, a HANDLE on Windows.
func New(raw uintptr) *FD {
	fd := &FD{}
	fd.raw.Store(int64(raw))
	return fd
}

// NewFromFile creates an FD from f by duplicating its descriptor. The FD
// and f have independent lifetimes: closing one, or f being finalized,
// does not invalidate the other.
func NewFromFile(f *os.File) (*FD, error) {
	raw, err := dupRaw(f.Fd())
	if err != nil {
		return nil, fmt.Errorf("duplicating descriptor for %s: %w", f.Name(), err)
	}
	return New(raw), nil
}

func (f *FD) get() (uintptr, error) {
	raw := f.raw.Load()
	if raw < 0 {
		return 0, errBadFD
	}
	return uintptr(raw), nil
}

// FD returns the raw descriptor, or false if the FD has been closed or
// released.
func (f *FD) FD() (uintptr, bool) {
	raw := f.raw.Load()
	if raw < 0 {
		return 0, false
	}
	return uintptr(raw), true
}

// Release relinquishes ownership of the descriptor without closing it and
// returns it, or false if the FD was already closed or released.
func (f *FD) Release() (uintptr, bool) {
	raw := f.raw.Swap(-1)
	if raw < 0 {
		return 0, false
	}
	return uintptr(raw), true
}

// Close closes the descriptor. Further operations on the FD fail with an
// invalid-descriptor error.
func (f *FD) Close() error {
	raw := f.raw.Swap(-1)
	if raw < 0 {
		return errBadFD
	}
	return rawClose(uintptr(raw))
}

// ReadAt implements io.ReaderAt. Unlike the single-shot pread.Pread it
// loops over short transfers, and it returns io.EOF if the file ends
// before len(p) bytes could be read.
func (f *FD) ReadAt(p []byte, off int64) (int, error) {
	raw, err := f.get()
	if err != nil {
		return 0, err
	}
	var n int
	for n < len(p) {
		m, err := pread.Pread(raw, p[n:], off+int64(n))
		if err != nil {
			return n, err
		}
		if m == 0 {
			return n, io.EOF
		}
		n += m
	}
	return n, nil
}

// WriteAt implements io.WriterAt.
func (f *FD) WriteAt(p []byte, off int64) (int, error) {
	raw, err := f.get()
	if err != nil {
		return 0, err
	}
	var n int
	for n < len(p) {
		m, err := pread.Pwrite(raw, p[n:], off+int64(n))
		if err != nil {
			return n, err
		}
		if m == 0 {
			return n, io.ErrShortWrite
		}
		n += m
	}
	return n, nil
}

// Read implements io.Reader. It advances the descriptor's sequential
// cursor; use a Reader to stream without touching it.
func (f *FD) Read(p []byte) (int, error) {
	raw, err := f.get()
	if err != nil {
		return 0, err
	}
	n, err := rawRead(raw, p)
	if err != nil {
		return n, err
	}
	if n == 0 && len(p) > 0 {
		return 0, io.EOF
	}
	return n, nil
}

// Write implements io.Writer, advancing the sequential cursor.
func (f *FD) Write(p []byte) (int, error) {
	raw, err := f.get()
	if err != nil {
		return 0, err
	}
	return rawWrite(raw, p)
}

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

// Package aio queues positioned I/O on host file descriptors.
//
// The primitives in pkg/pread are synchronous and block the calling
// goroutine for the duration of the host call. A queue accepts positioned
// requests and completes them in the background, letting a caller keep
// many independent reads in flight on one descriptor. Requests carry their
// own offsets, so in-flight operations never contend on the descriptor's
// sequential cursor.
package aio

import "fmt"

// Op selects the host operation a Request performs.
type Op uint8

const (
	// OpRead reads len(Buf) bytes into Buf from offset Off.
	OpRead Op = iota

	// OpWrite writes len(Buf) bytes from Buf at offset Off.
	OpWrite
)

// String implements fmt.Stringer.
func (op Op) String() string {
	switch op {
	case OpRead:
		return "read"
	case OpWrite:
		return "write"
	default:
		return fmt.Sprintf("Op(%d)", op)
	}
}

// Request is one positioned I/O operation.
type Request struct {
	// ID is copied to the corresponding Completion and not otherwise
	// interpreted.
	ID uint64

	// Op is the operation to perform.
	Op Op

	// FD is the host file descriptor, as returned by (*os.File).Fd.
	FD uintptr

	// Buf is the destination (OpRead) or source (OpWrite) buffer. The
	// queue retains Buf until the Completion is delivered.
	Buf []byte

	// Off is the absolute byte offset in the file.
	Off int64
}

// Completion is the result of one Request.
type Completion struct {
	// ID is the value from the originating Request.
	ID uint64

	// Result is the number of bytes transferred, or -1 if the operation
	// failed.
	Result int64

	// Err is nil on success.
	Err error
}

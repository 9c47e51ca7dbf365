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

package fd

// Reader is a sequential io.Reader over an FD. It tracks its own offset
// and reads with positioned calls, so it never moves the descriptor's
// kernel cursor and any number of Readers can stream from the same FD
// concurrently.
//
// A Reader is not safe for concurrent use by multiple goroutines; create
// one Reader per goroutine instead.
type Reader struct {
	fd  *FD
	off int64
}

// NewReader returns a Reader over fd starting at byte offset off. The
// Reader does not own fd; closing fd invalidates the Reader.
func NewReader(fd *FD, off int64) *Reader {
	return &Reader{fd: fd, off: off}
}

// Read implements io.Reader.
func (r *Reader) Read(p []byte) (int, error) {
	n, err := r.fd.ReadAt(p, r.off)
	r.off += int64(n)
	return n, err
}

// Offset returns the offset the next Read will start at.
func (r *Reader) Offset() int64 {
	return r.off
}

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

// Package pread provides positioned reads and writes on raw host file
// descriptors.
//
// A positioned call names its own starting byte offset and does not
// consult the descriptor's sequential cursor, so concurrent callers using
// distinct offsets on the same descriptor need no locking. On POSIX
// platforms the calls map directly to pread(2) and pwrite(2) and leave the
// cursor untouched; on Windows they are emulated with synchronous
// ReadFile/WriteFile carrying the offset in an OVERLAPPED record, with the
// cursor caveat described in the windows implementation.
//
// Descriptors travel as uintptr, the value returned by (*os.File).Fd: an
// integer file descriptor on unix, a HANDLE on Windows. Callers own the
// descriptor; this package never opens, closes or duplicates it.
//
// Both calls are single-shot: a count short of len(p) with a nil error
// means end-of-file or a short transfer and is not an error. Callers that
// need a full buffer must loop themselves (or use pkg/fd, which does).
package pread

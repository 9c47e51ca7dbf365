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

package pread_test

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/walteh/hostio/pkg/pread"
)

// tempFile creates a file containing contents, open for reading and
// writing, closed automatically at the end of the test.
func tempFile(t *testing.T, contents []byte) *os.File {
	t.Helper()
	f, err := os.Create(filepath.Join(t.TempDir(), "data"))
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	_, err = f.Write(contents)
	require.NoError(t, err)
	return f
}

func TestPread(t *testing.T) {
	f := tempFile(t, []byte("ABCDEFGHIJ"))

	for _, tc := range []struct {
		name string
		off  int64
		n    int
		want string
	}{
		{name: "interior", off: 3, n: 4, want: "DEFG"},
		{name: "start", off: 0, n: 4, want: "ABCD"},
		{name: "short read at tail", off: 8, n: 2, want: "IJ"},
		{name: "at EOF", off: 10, n: 0, want: ""},
		{name: "past EOF", off: 25, n: 0, want: ""},
	} {
		t.Run(tc.name, func(t *testing.T) {
			buf := make([]byte, 4)
			n, err := pread.Pread(f.Fd(), buf, tc.off)
			require.NoError(t, err)
			assert.Equal(t, tc.n, n)
			assert.Equal(t, tc.want, string(buf[:n]))
		})
	}
}

func TestPreadLeavesCursorAlone(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("synchronous overlapped I/O may move the file pointer on windows")
	}
	f := tempFile(t, []byte("ABCDEFGHIJ"))
	_, err := f.Seek(0, io.SeekStart)
	require.NoError(t, err)

	head := make([]byte, 3)
	_, err = io.ReadFull(f, head)
	require.NoError(t, err)
	require.Equal(t, "ABC", string(head))

	buf := make([]byte, 4)
	n, err := pread.Pread(f.Fd(), buf, 6)
	require.NoError(t, err)
	require.Equal(t, "GHIJ", string(buf[:n]))

	// The sequential cursor must still sit right after "ABC".
	pos, err := f.Seek(0, io.SeekCurrent)
	require.NoError(t, err)
	assert.Equal(t, int64(3), pos)

	rest, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "DEFGHIJ", string(rest))
}

func TestPreadIdempotent(t *testing.T) {
	f := tempFile(t, []byte("ABCDEFGHIJ"))

	buf := make([]byte, 5)
	for i := 0; i < 10; i++ {
		n, err := pread.Pread(f.Fd(), buf, 2)
		require.NoError(t, err)
		require.Equal(t, 5, n)
		require.Equal(t, "CDEFG", string(buf))
	}
}

func TestPreadInvalidDescriptor(t *testing.T) {
	f := tempFile(t, []byte("ABCDEFGHIJ"))
	raw := f.Fd()
	require.NoError(t, f.Close())

	buf := bytes.Repeat([]byte{0xaa}, 4)
	n, err := pread.Pread(raw, buf, 0)
	assert.Equal(t, -1, n)
	assert.Error(t, err)
	assert.Equal(t, bytes.Repeat([]byte{0xaa}, 4), buf, "buffer must be untouched on failure")
}

func TestPreadConcurrent(t *testing.T) {
	const (
		segments = 16
		segSize  = 4096
	)
	contents := make([]byte, segments*segSize)
	for i := 0; i < segments; i++ {
		seg := contents[i*segSize : (i+1)*segSize]
		for j := range seg {
			seg[j] = byte('A' + i)
		}
	}
	f := tempFile(t, contents)

	var eg errgroup.Group
	for i := 0; i < segments; i++ {
		i := i
		eg.Go(func() error {
			want := contents[i*segSize : (i+1)*segSize]
			buf := make([]byte, segSize)
			for iter := 0; iter < 8; iter++ {
				n, err := pread.Pread(f.Fd(), buf, int64(i*segSize))
				if err != nil {
					return err
				}
				if n != segSize {
					return fmt.Errorf("segment %d: read %d bytes, want %d", i, n, segSize)
				}
				if !bytes.Equal(buf, want) {
					return fmt.Errorf("segment %d: contents cross-contaminated", i)
				}
			}
			return nil
		})
	}
	require.NoError(t, eg.Wait())
}

func TestPwrite(t *testing.T) {
	f := tempFile(t, []byte("ABCDEFGHIJ"))
	_, err := f.Seek(2, io.SeekStart)
	require.NoError(t, err)

	n, err := pread.Pwrite(f.Fd(), []byte("xyz"), 4)
	require.NoError(t, err)
	require.Equal(t, 3, n)

	got, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	assert.Equal(t, "ABCDxyzHIJ", string(got))

	// Positioned writes must not move the cursor either.
	if runtime.GOOS != "windows" {
		pos, err := f.Seek(0, io.SeekCurrent)
		require.NoError(t, err)
		assert.Equal(t, int64(2), pos)
	}
}

func TestPwriteInvalidDescriptor(t *testing.T) {
	f := tempFile(t, nil)
	raw := f.Fd()
	require.NoError(t, f.Close())

	n, err := pread.Pwrite(raw, []byte("nope"), 0)
	assert.Equal(t, -1, n)
	assert.Error(t, err)
}

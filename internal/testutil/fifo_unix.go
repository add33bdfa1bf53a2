// SPDX-License-Identifier: MPL-2.0

//go:build unix

package testutil

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/sys/unix"
)

// fifoReadTimeout bounds how long FIFOReader waits for the expected bytes.
const fifoReadTimeout = 5 * time.Second

// MustMkfifo creates a named pipe in a temporary directory and returns its path.
func MustMkfifo(t testing.TB) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "qutebrowser-userscript-fifo")
	if err := unix.Mkfifo(path, 0o600); err != nil {
		t.Fatalf("failed to create fifo: %v", err)
	}
	return path
}

// FIFOReader plays the host side of a named pipe. It opens path read-write,
// which never blocks and keeps the pipe from reporting EOF between the
// userscript's open/close cycles, then reads exactly n bytes in the
// background. The returned function waits for and returns those bytes.
func FIFOReader(t testing.TB, path string, n int) func() string {
	t.Helper()
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		t.Fatalf("failed to open fifo for reading: %v", err)
	}
	t.Cleanup(func() { _ = f.Close() })

	type result struct {
		data []byte
		err  error
	}
	done := make(chan result, 1)
	go func() {
		buf := make([]byte, n)
		_, err := io.ReadFull(f, buf)
		done <- result{data: buf, err: err}
	}()

	return func() string {
		t.Helper()
		select {
		case r := <-done:
			if r.err != nil {
				t.Fatalf("failed to read fifo: %v", r.err)
			}
			return string(r.data)
		case <-time.After(fifoReadTimeout):
			t.Fatalf("timed out waiting for %d bytes on fifo", n)
			return ""
		}
	}
}

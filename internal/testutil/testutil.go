// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// MustChannelFile creates an empty regular file standing in for the command
// channel on platforms without named pipes, and returns its path.
func MustChannelFile(t testing.TB) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "qutebrowser-userscript-fifo")
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatalf("failed to create channel file: %v", err)
	}
	return path
}

// MustReadFile returns the contents of path.
// The test fails immediately if the file cannot be read.
func MustReadFile(t testing.TB, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}

// SetHostEnv sets every entry of env in the process environment for the
// duration of the test and unsets the launch variables env does not mention.
// It cannot be used in parallel tests.
func SetHostEnv(t *testing.T, env map[string]string, known []string) {
	t.Helper()
	for _, k := range known {
		if _, ok := env[k]; ok {
			continue
		}
		// t.Setenv registers the restore; Unsetenv then removes the value.
		t.Setenv(k, "")
		if err := os.Unsetenv(k); err != nil {
			t.Fatalf("failed to unset env %s: %v", k, err)
		}
	}
	for k, v := range env {
		t.Setenv(k, v)
	}
}

// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

func TestMain(m *testing.M) {
	os.Exit(testscript.RunMain(m, map[string]func() int{
		"qutekit": Main,
	}))
}

// TestCLI runs the scripts in testdata/script against the qutekit binary.
// Each script gets a fresh $WORK with no QUTE_* variables set.
func TestCLI(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: filepath.Join("testdata", "script"),
		Setup: func(env *testscript.Env) error {
			env.Setenv("XDG_CONFIG_HOME", filepath.Join(env.WorkDir, "cfg"))
			return nil
		},
		// Continue running all tests even if one fails
		ContinueOnError: true,
	})
}

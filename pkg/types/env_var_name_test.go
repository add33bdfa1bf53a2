// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"testing"
)

func TestEnvVarName_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   EnvVarName
		wantErr bool
	}{
		{"upper snake", "QUTE_MODE", false},
		{"lower case", "qute_mode", false},
		{"empty", "", true},
		{"contains equals", "QUTE=MODE", true},
		{"contains NUL", "QUTE\x00MODE", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.value.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("EnvVarName(%q).Validate() error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrInvalidEnvVarName) {
				t.Errorf("error should wrap ErrInvalidEnvVarName, got: %v", err)
			}
		})
	}
}

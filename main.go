// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/qutekit/qutekit/cmd/qutekit"

func main() {
	cmd.Execute()
}

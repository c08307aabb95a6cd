// Copyright 2026 LAMB Project
// SPDX-License-Identifier: AGPL-3.0

package main

import "github.com/Lamb-Project/lamb-sub010/cmd"

func main() {
	cmd.Execute()
}

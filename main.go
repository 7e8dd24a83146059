// Copyright 2025 ChurchOps Ltd.
// SPDX-License-Identifier: AGPL-3.0

package main

import "github.com/churchops/appcontext-service/cmd"

func main() {
	cmd.Execute()
}

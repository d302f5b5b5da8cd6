// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import "github.com/noldarim/portfolio/internal/cli"

func main() {
	cli.Execute()
}

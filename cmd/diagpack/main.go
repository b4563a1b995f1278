/*
Copyright © 2025 Diagpack Authors
SPDX-License-Identifier: Apache-2.0
*/
package main

import "github.com/diagpack/diagpack/pkg/cli"

func main() {
	cli.Execute()
}

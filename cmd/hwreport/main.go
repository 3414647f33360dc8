// Package main is the hwreport entrypoint.
package main

import "codeberg.org/mutker/hwreport/internal/cli"

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cli.Execute(version)
}

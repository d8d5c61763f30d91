// Package main is the single-binary entrypoint for Aura.
// Aura is a local-first habit and reward engine — one binary, no accounts.
package main

import "github.com/aura-labs/aura/internal/cli"

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cli.Execute(version)
}

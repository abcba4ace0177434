// Package main is the entry point for the zdex CLI.
package main

import "zdex.dev/pkg/zdex/cmd"

func main() {
	cmd.Execute()
}

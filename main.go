// Package main is the entry point for the snapr CLI.
package main

import "snapr.dev/pkg/snapr/cmd"

func main() {
	cmd.Execute()
}

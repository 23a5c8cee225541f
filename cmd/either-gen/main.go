// Package main provides the CLI entrypoint for either-gen.
//
// either-gen expands struct templates into generated Go files:
//   - gen writes the generated file of every template file
//   - check fails when a generated file is missing or out of date
//   - inspect prints what a template file expands to
//   - watch regenerates template files as they change
package main

import (
	"os"

	"either-generator/cmd/either-gen/commands"
	"either-generator/internal/logger"
)

func main() {
	err := commands.NewRootCmd().Execute()

	logger.Cleanup()

	if err != nil {
		os.Exit(1)
	}
}

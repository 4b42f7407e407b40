package main

import (
	"os"

	"github.com/rshade/poolheat/internal/cli"
	"github.com/rshade/poolheat/pkg/version"
)

func main() {
	os.Exit(run())
}

// run executes the command tree and returns the process exit code.
func run() int {
	root := cli.NewRootCmd(version.GetVersion())
	root.SetVersionTemplate(version.Info() + "\n")
	return extractExitCode(root.Execute())
}

// extractExitCode returns the code carried by a cli.ExitError, 1 for any other
// error and 0 for nil.
func extractExitCode(err error) int {
	return cli.ExitCode(err)
}

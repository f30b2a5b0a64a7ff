package main

import (
	"os"

	"github.com/shuttlehq/shuttle/cmd"
	"github.com/shuttlehq/shuttle/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(errors.GetExitCode(err))
	}
}

package main

import (
	"os"

	"github.com/firefly-engineering/scaffold/cmd"
	"github.com/firefly-engineering/scaffold/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(errors.GetExitCode(err))
	}
}

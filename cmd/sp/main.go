package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/smartpaper/sp/internal/cli"
	"github.com/smartpaper/sp/internal/launcher"
)

func main() {
	err := cli.Execute()
	if err == nil {
		return
	}

	var exitErr *launcher.ExitError
	if errors.As(err, &exitErr) {
		// A nil wrapped error means the child already wrote its own
		// diagnostics; just mirror its exit code.
		if exitErr.Err != nil {
			fmt.Fprintln(os.Stderr, "sp:", exitErr.Err)
		}
		os.Exit(exitErr.Code)
	}

	fmt.Fprintln(os.Stderr, "sp:", err)
	os.Exit(launcher.ExitFailure)
}

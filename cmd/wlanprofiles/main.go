package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	root := newRootCommand(defaultDeps())
	if err := root.Execute(); err != nil {
		var exitErr exitError
		if errors.As(err, &exitErr) {
			if !exitErr.silent && exitErr.message != "" {
				fmt.Fprintln(os.Stderr, exitErr.message)
			}
			os.Exit(exitErr.code)
		}
		fmt.Fprintln(os.Stderr, resultPrefix+err.Error())
		os.Exit(exitFailure)
	}
}

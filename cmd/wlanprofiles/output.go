package main

import (
	"fmt"
	"io"
	"strings"

	"wlanprofiles/internal/domain"
)

const resultPrefix = ">> "

// outputValue is the -o/--output flag; it only accepts the known modes.
type outputValue domain.OutputMode

func (o *outputValue) String() string {
	return string(*o)
}

func (o *outputValue) Set(value string) error {
	mode, err := domain.ParseOutputMode(value)
	if err != nil {
		return fmt.Errorf("must be one of %s", strings.Join(modeNames(), ", "))
	}
	*o = outputValue(mode)
	return nil
}

func (o *outputValue) Type() string {
	return "mode"
}

func modeNames() []string {
	names := make([]string, 0, len(domain.OutputModes))
	for _, mode := range domain.OutputModes {
		names = append(names, string(mode))
	}
	return names
}

func printResult(w io.Writer, result string) {
	fmt.Fprintln(w, resultPrefix+result)
}

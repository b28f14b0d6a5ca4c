package domain

import "errors"

var ErrUnsupportedOS = errors.New("unsupported operating system")
var ErrUnsupportedLocale = errors.New("unsupported locale")
var ErrCommandUnavailable = errors.New("command unavailable")
var ErrProfileCommandFailed = errors.New("profile command failed")
var ErrMalformedLine = errors.New("malformed output line")
var ErrNoProfiles = errors.New("no wireless profiles found")
var ErrProfileNotFound = errors.New("profile not found")
var ErrUnsupportedFormat = errors.New("unsupported export format")

// OutputMode selects how the collected profiles are presented.
type OutputMode string

const (
	OutputCLI  OutputMode = "cli"
	OutputJSON OutputMode = "json"
	OutputTXT  OutputMode = "txt"
)

// OutputModes lists every accepted output mode in display order.
var OutputModes = []OutputMode{OutputCLI, OutputJSON, OutputTXT}

// ParseOutputMode returns the mode named by value.
func ParseOutputMode(value string) (OutputMode, error) {
	for _, mode := range OutputModes {
		if string(mode) == value {
			return mode, nil
		}
	}
	return "", E(CodeInvalidArgument, "domain.ParseOutputMode", "unknown output mode "+value, ErrUnsupportedFormat)
}

// ExportFormat is an output mode that writes a file.
type ExportFormat string

const (
	ExportJSON ExportFormat = "json"
	ExportTXT  ExportFormat = "txt"
)

package netsh

import (
	"strings"

	"wlanprofiles/internal/domain"
)

func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// fieldValue returns what follows the first colon of line, minus one
// leading space.
func fieldValue(line string) (string, error) {
	_, value, ok := strings.Cut(line, ":")
	if !ok {
		return "", domain.E(domain.CodeInvalidArgument, "netsh.fieldValue", "no colon in line "+strings.TrimSpace(line), domain.ErrMalformedLine)
	}
	return strings.TrimPrefix(value, " "), nil
}

// ParseProfileNames returns the value of every line containing marker, in
// output order. Duplicates are kept.
func ParseProfileNames(text, marker string) ([]string, error) {
	var names []string
	for _, line := range splitLines(text) {
		if !strings.Contains(line, marker) {
			continue
		}
		name, err := fieldValue(line)
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}

// ParseKey returns the value of the first line containing marker. found is
// false when no line matches.
func ParseKey(text, marker string) (key string, found bool, err error) {
	for _, line := range splitLines(text) {
		if !strings.Contains(line, marker) {
			continue
		}
		key, err = fieldValue(line)
		if err != nil {
			return "", false, err
		}
		return key, true, nil
	}
	return "", false, nil
}

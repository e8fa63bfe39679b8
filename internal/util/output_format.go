// Package util holds small, dependency-free helpers shared across
// bytesradar's ambient layers.
package util

import (
	"fmt"
	"strings"
)

// ValidOutputFormats defines the formats internal/render and
// cmd/bytesradar's --format flag accept (§6).
var ValidOutputFormats = map[string]bool{
	"text":  true,
	"json":  true,
	"yaml":  true,
	"table": true,
}

// ValidateOutputFormat checks if the given format is one bytesradar knows
// how to render.
func ValidateOutputFormat(format string) error {
	if !ValidOutputFormats[strings.ToLower(format)] {
		return fmt.Errorf("invalid format: %s. Valid formats are: %s", format, strings.Join(GetValidFormats(), ", "))
	}
	return nil
}

// GetValidFormats returns the supported format names.
func GetValidFormats() []string {
	formats := make([]string, 0, len(ValidOutputFormats))
	for format := range ValidOutputFormats {
		formats = append(formats, format)
	}
	return formats
}

// NormalizeFormat lowercases a user-supplied format string.
func NormalizeFormat(format string) string {
	return strings.ToLower(format)
}

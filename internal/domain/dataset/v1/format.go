package v1

import (
	"fmt"
)

// Format is a dataset output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatARFF Format = "arff"
	FormatXLSX Format = "xlsx"
)

// ParseFormat validates a format name from user input.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case FormatJSON, FormatCSV, FormatARFF, FormatXLSX:
		return Format(name), nil
	}
	return "", fmt.Errorf("unknown dataset format %q", name)
}

package output

import (
	"fmt"
	"strings"
)

// Format is the output serialization format
type Format string

// set of supported output formats
const (
	FormatJSON  Format = "json"
	FormatJSONL Format = "jsonl"
	FormatCSV   Format = "csv"
	FormatTSV   Format = "tsv"
	FormatHuman Format = "human"
)

// DefaultFormat is the format used when none is configured
const DefaultFormat = FormatJSON

func (f Format) String() string {
	return string(f)
}

// Type returns the Format type
func (f Format) Type() string { return "format" }

// Set validates and sets the output format value
func (f *Format) Set(val string) error {
	format := Format(val)

	if !isValidFormat(format) {
		allFormats := []string{
			FormatJSON.String(),
			FormatJSONL.String(),
			FormatCSV.String(),
			FormatTSV.String(),
			FormatHuman.String(),
		}
		return fmt.Errorf("unsupported value, use one of [%s] instead", strings.Join(allFormats, ", "))
	}

	*f = format
	return nil
}

func isValidFormat(format Format) bool {
	switch format {
	case
		FormatJSON,
		FormatJSONL,
		FormatCSV,
		FormatTSV,
		FormatHuman:
		return true
	}
	return false
}

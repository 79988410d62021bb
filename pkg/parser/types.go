package parser

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Format selects the decoder used for an input document
type Format string

const (
	FormatAuto Format = "auto"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrNotFound is returned by Load when the input file does not exist
var ErrNotFound = errors.New("file not found")

// ParseFormat converts a flag or config value into a Format. The empty string
// means FormatAuto.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case "":
		return FormatAuto, nil
	case FormatAuto, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported input format: %s (supported: auto, json, yaml)", s)
	}
}

// Detect resolves FormatAuto from the file name. Compression suffixes are
// ignored, so "data.yaml.gz" is YAML.
func (f Format) Detect(path string) Format {
	if f != FormatAuto && f != "" {
		return f
	}
	name := strings.ToLower(path)
	for _, ext := range []string{".gz", ".zst", ".zstd"} {
		name = strings.TrimSuffix(name, ext)
	}
	switch filepath.Ext(name) {
	case ".yml", ".yaml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported format %q, use json or yaml", s)
	}
}

// WriteExport encodes v to w in format.
func WriteExport(w io.Writer, format Format, v any) error {
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(v); err != nil {
			return fmt.Errorf("json.Encode() > %w", err)
		}
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(v); err != nil {
			return fmt.Errorf("yaml.Encode() > %w", err)
		}
		if err := encoder.Close(); err != nil {
			return fmt.Errorf("yaml.Close() > %w", err)
		}
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
	return nil
}

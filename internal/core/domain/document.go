package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Format is the encoding of a task-runner document.
type Format string

const (
	// FormatJSON encodes documents as indented JSON.
	FormatJSON Format = "json"
	// FormatYAML encodes documents as YAML.
	FormatYAML Format = "yaml"
)

// ParseFormat maps a user supplied name to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", zerr.With(zerr.Wrap(ErrUnsupportedFormat, "unknown document format"), "format", s)
	}
}

// Extension returns the file extension used for documents of this format.
func (f Format) Extension() string {
	return string(f)
}

// Document is the configuration handed to the external task runner.
type Document struct {
	// Configuration is the name of the configuration the document was built from.
	Configuration string `json:"configuration" yaml:"configuration"`
	// Config holds one entry per task-runner plugin, keyed by plugin name.
	Config map[string]any `json:"config" yaml:"config"`
	// Tasks maps alias task names to the tasks they run, in order.
	Tasks map[string][]string `json:"tasks" yaml:"tasks"`
}

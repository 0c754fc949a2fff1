package report

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/dailyreport/pkg/fsutil"
)

// InputFormat is the serialization of a report file.
type InputFormat string

// Supported report file formats.
const (
	InputJSON InputFormat = "json"
	InputYAML InputFormat = "yaml"
)

// ErrUnknownInputFormat is returned for report files with an unsupported extension.
var ErrUnknownInputFormat = errors.New("unknown report format")

// FormatFromPath picks the input format from the file extension.
func FormatFromPath(path string) (InputFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return InputJSON, nil
	case ".yaml", ".yml":
		return InputYAML, nil
	default:
		return "", fmt.Errorf("%w: %q (expected .json, .yaml or .yml)", ErrUnknownInputFormat, path)
	}
}

// Decode parses a report serialized by the aggregator.
func Decode(data []byte, format InputFormat) (*Data, error) {
	var d Data

	switch format {
	case InputJSON:
		if err := json.NewDecoder(bytes.NewReader(data)).Decode(&d); err != nil {
			return nil, fmt.Errorf("parse JSON: %w", err)
		}
	case InputYAML:
		if err := yaml.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("parse YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownInputFormat, format)
	}

	d.normalize()
	return &d, nil
}

// Load reads and decodes the report file at path.
func Load(ctx context.Context, path string) (*Data, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	content, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("load report: %w", err)
	}

	d, err := Decode(content, format)
	if err != nil {
		return nil, fmt.Errorf("load report %s: %w", path, err)
	}
	return d, nil
}

package compiler

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Format selects the textual encoding of a tree description.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the format by file extension. Anything that is not
// .json is treated as YAML.
func FormatFromPath(path string) Format {
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		return FormatJSON
	}
	return FormatYAML
}

// ParseFile reads and parses a tree description file.
func ParseFile(path string) (domain.Description, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Description{}, fmt.Errorf("failed to read tree: %w", err)
	}
	return Parse(data, FormatFromPath(path))
}

// Parse decodes raw bytes into a Description.
func Parse(data []byte, format Format) (domain.Description, error) {
	var raw map[string]any
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &raw); err != nil {
			return domain.Description{}, fmt.Errorf("%w: failed to parse json: %v", domain.ErrInvalidDescription, err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return domain.Description{}, fmt.Errorf("%w: failed to parse yaml: %v", domain.ErrInvalidDescription, err)
		}
	default:
		return domain.Description{}, fmt.Errorf("%w: unknown format %q", domain.ErrInvalidDescription, format)
	}
	if raw == nil {
		return domain.Description{}, fmt.Errorf("%w: empty document", domain.ErrInvalidDescription)
	}
	return Decode(raw)
}

// Decode converts a generic map (as produced by any JSON or YAML decoder) into
// a Description. Unknown keys are rejected.
func Decode(raw map[string]any) (domain.Description, error) {
	var desc domain.Description
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:  strategyHook,
		ErrorUnused: true,
		Result:      &desc,
	})
	if err != nil {
		return domain.Description{}, err
	}
	if err := dec.Decode(raw); err != nil {
		return domain.Description{}, fmt.Errorf("%w: %v", domain.ErrInvalidDescription, err)
	}
	return desc, nil
}

var strategyType = reflect.TypeOf(domain.StrategyNone)

func strategyHook(from, to reflect.Type, data any) (any, error) {
	if to != strategyType {
		return data, nil
	}
	switch v := data.(type) {
	case string:
		return domain.ParseStrategy(v)
	case nil:
		return domain.StrategyNone, nil
	default:
		return nil, fmt.Errorf("%w: expected a name, got %T", domain.ErrInvalidStrategy, data)
	}
}

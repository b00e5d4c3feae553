package policyfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/promptfit/promptfit/optimize"
)

// Format identifies a policy file format.
type Format string

// Supported formats.
const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// ErrUnsupportedFormat indicates a file extension with no known decoder.
var ErrUnsupportedFormat = errors.New("unsupported policy file format")

// Load reads a policy file, merging its values over the defaults and
// validating the result. The format is chosen by extension: .yaml/.yml,
// .toml, or .json.
func Load(path string) (optimize.Policy, error) {
	format, err := formatForPath(path)
	if err != nil {
		return optimize.Policy{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return optimize.Policy{}, fmt.Errorf("read policy file: %w", err)
	}

	policy, err := Parse(data, format)
	if err != nil {
		return optimize.Policy{}, fmt.Errorf("%s: %w", path, err)
	}
	return policy, nil
}

// Parse decodes policy data in the given format over the defaults and
// validates the result.
func Parse(data []byte, format Format) (optimize.Policy, error) {
	policy := optimize.DefaultPolicy()
	if len(strings.TrimSpace(string(data))) == 0 {
		return policy, nil
	}

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(strings.NewReader(string(data)))
		dec.KnownFields(true)
		if err := dec.Decode(&policy); err != nil {
			return optimize.Policy{}, fmt.Errorf("parse policy: %w", err)
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &policy)
		if err != nil {
			return optimize.Policy{}, fmt.Errorf("parse policy: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return optimize.Policy{}, fmt.Errorf("parse policy: unknown key %q", undecoded[0].String())
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &policy); err != nil {
			return optimize.Policy{}, fmt.Errorf("parse policy: %w", err)
		}
	default:
		return optimize.Policy{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	if err := policy.Validate(); err != nil {
		return optimize.Policy{}, err
	}
	return policy, nil
}

func formatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Package codec reads and writes cactus data documents as TOML, YAML or JSON.
package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrUnknownKeys       = errors.New("unknown keys")
	ErrTrailingData      = errors.New("unexpected trailing data")
)

type Format string

const (
	TOML Format = "toml"
	YAML Format = "yaml"
	JSON Format = "json"
)

// Formats lists every supported format in preference order.
var Formats = []Format{TOML, YAML, JSON}

// ParseFormat converts a format name (toml, yaml, yml, json) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "toml":
		return TOML, nil
	case "yaml", "yml":
		return YAML, nil
	case "json":
		return JSON, nil
	default:
		return "", fmt.Errorf("%w %q (supported: toml, yaml, json)", ErrUnsupportedFormat, s)
	}
}

// FormatFromPath picks a format from a file extension. Files without an
// extension are TOML.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case "", ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	case ".json":
		return JSON, nil
	default:
		return "", fmt.Errorf("%w %q (supported: .toml, .yaml, .yml, .json)", ErrUnsupportedFormat, ext)
	}
}

// Ext returns the canonical file extension for f, including the dot.
func (f Format) Ext() string {
	return "." + string(f)
}

// Decode strictly decodes a single document from r into v. Keys that do not
// map onto v are an error in every format.
func Decode(r io.Reader, f Format, v any) error {
	switch f {
	case TOML:
		md, err := toml.NewDecoder(r).Decode(v)
		if err != nil {
			return err
		}
		if undec := md.Undecoded(); len(undec) > 0 {
			return fmt.Errorf("%w: %v", ErrUnknownKeys, undec)
		}
		return nil

	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(v); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		var extra yaml.Node
		if err := dec.Decode(&extra); err != io.EOF {
			if err == nil {
				return fmt.Errorf("%w: extra YAML document", ErrTrailingData)
			}
			return err
		}
		return nil

	case JSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(v); err != nil {
			return err
		}
		if _, err := dec.Token(); err != io.EOF {
			return fmt.Errorf("%w: extra content after JSON document", ErrTrailingData)
		}
		return nil

	default:
		return fmt.Errorf("%w %q", ErrUnsupportedFormat, f)
	}
}

// Encode writes v to w as a single document.
func Encode(w io.Writer, f Format, v any) error {
	switch f {
	case TOML:
		return toml.NewEncoder(w).Encode(v)

	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()

	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)

	default:
		return fmt.Errorf("%w %q", ErrUnsupportedFormat, f)
	}
}

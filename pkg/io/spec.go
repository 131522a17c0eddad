package io

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/plan"
)

// Format names a spec file encoding.
type Format string

// Supported spec formats.
const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Formats lists the supported spec formats.
var Formats = []Format{FormatTOML, FormatYAML, FormatJSON}

// ParseFormat validates a format name. "yml" is accepted as YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "invalid spec format: %q (must be one of: toml, yaml, json)", s)
}

// FormatFromPath picks the spec format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", errors.New(errors.ErrCodeInvalidFormat, "cannot infer spec format of %s: no file extension", path)
	}
	return ParseFormat(ext)
}

// ReadSpec decodes a building spec from r.
func ReadSpec(r io.Reader, format Format) (plan.BuildingSpec, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return plan.BuildingSpec{}, fmt.Errorf("read spec: %w", err)
	}
	return ParseSpec(data, format)
}

// ParseSpec decodes a building spec from data.
func ParseSpec(data []byte, format Format) (plan.BuildingSpec, error) {
	var spec plan.BuildingSpec

	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(data), &spec)
		if err != nil {
			return plan.BuildingSpec{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode toml spec")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return plan.BuildingSpec{}, errors.New(errors.ErrCodeInvalidInput, "unknown key %q in toml spec", undecoded[0].String())
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&spec); err != nil {
			return plan.BuildingSpec{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode yaml spec")
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&spec); err != nil {
			return plan.BuildingSpec{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode json spec")
		}
	default:
		return plan.BuildingSpec{}, errors.New(errors.ErrCodeInvalidFormat, "invalid spec format: %q", format)
	}

	return spec, nil
}

// ReadSpecFile reads the spec at path, choosing the format by extension.
func ReadSpecFile(path string) (plan.BuildingSpec, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return plan.BuildingSpec{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return plan.BuildingSpec{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "spec file %s", path)
		}
		return plan.BuildingSpec{}, fmt.Errorf("read %s: %w", path, err)
	}
	spec, err := ParseSpec(data, format)
	if err != nil {
		return plan.BuildingSpec{}, fmt.Errorf("%s: %w", path, err)
	}
	return spec, nil
}

// WriteSpec encodes spec to w in the given format.
func WriteSpec(w io.Writer, spec plan.BuildingSpec, format Format) error {
	switch format {
	case FormatTOML:
		return toml.NewEncoder(w).Encode(spec)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(spec); err != nil {
			return err
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(spec)
	}
	return errors.New(errors.ErrCodeInvalidFormat, "invalid spec format: %q", format)
}

// SPDX-License-Identifier: MIT

// Package modelio: YAML and TOML codecs.

package modelio

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/conedual/model"
)

// Format selects a document encoding.
type Format string

// Supported formats.
const (
	YAML Format = "yaml"
	TOML Format = "toml"
)

// FormatFromPath picks the format from the file extension
// (.yaml, .yml, .toml; case-insensitive).
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	default:
		return "", modelioErrorf(path, ErrUnknownFormat)
	}
}

// ParseFormat accepts "yaml", "yml" or "toml".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "yaml", "yml":
		return YAML, nil
	case "toml":
		return TOML, nil
	default:
		return "", modelioErrorf(s, ErrUnknownFormat)
	}
}

// DecodeDocument reads one document from r.
func DecodeDocument(r io.Reader, f Format) (*Document, error) {
	var d Document
	switch f {
	case YAML:
		if err := yaml.NewDecoder(r).Decode(&d); err != nil && !errors.Is(err, io.EOF) {
			return nil, modelioErrorf("yaml", err)
		}
	case TOML:
		if _, err := toml.NewDecoder(r).Decode(&d); err != nil {
			return nil, modelioErrorf("toml", err)
		}
	default:
		return nil, modelioErrorf(string(f), ErrUnknownFormat)
	}
	return &d, nil
}

// EncodeDocument writes d to w.
func EncodeDocument(w io.Writer, d *Document, f Format) error {
	switch f {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return modelioErrorf("yaml", err)
		}
		if err := enc.Close(); err != nil {
			return modelioErrorf("yaml", err)
		}
	case TOML:
		if err := toml.NewEncoder(w).Encode(d); err != nil {
			return modelioErrorf("toml", err)
		}
	default:
		return modelioErrorf(string(f), ErrUnknownFormat)
	}
	return nil
}

// Decode reads a model from r.
func Decode(r io.Reader, f Format) (*model.Model, error) {
	d, err := DecodeDocument(r, f)
	if err != nil {
		return nil, err
	}
	return d.Build()
}

// Encode writes m to w.
func Encode(w io.Writer, m model.ModelLike, f Format) error {
	d, err := FromModel(m)
	if err != nil {
		return err
	}
	return EncodeDocument(w, d, f)
}

// ReadFile decodes the model stored at path; the format comes from the
// extension.
func ReadFile(path string) (*model.Model, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, modelioErrorf("ReadFile", err)
	}
	m, err := Decode(bytes.NewReader(b), f)
	if err != nil {
		return nil, modelioErrorf(path, err)
	}
	return m, nil
}

// WriteFile encodes m to path (mode 0o644); the format comes from the
// extension.
func WriteFile(path string, m model.ModelLike) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := Encode(&buf, m, f); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return modelioErrorf("WriteFile", err)
	}
	return nil
}

// SPDX-License-Identifier: MIT

// Package codec reads and writes matrix documents.
//
// A document is the triple {rows, cols, data} with data in row-major order,
// the same layout matrix.Dense keeps in memory:
//
//	rows: 2
//	cols: 3
//	data: [1, 2, 3, 4, 5, 6]
//
// Supported formats: YAML (gopkg.in/yaml.v3), JSON (github.com/goccy/go-json),
// CBOR (github.com/fxamacker/cbor/v2) and TOML (github.com/BurntSushi/toml).
// Decoding always validates the shape through matrix.New, so a document whose
// data length disagrees with rows*cols is rejected with matrix.ErrStructure.
package codec

import (
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
)

// Format names a document encoding.
type Format string

// Supported formats.
const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatCBOR Format = "cbor"
	FormatTOML Format = "toml"
)

// Formats lists every supported format in a stable order.
var Formats = []Format{FormatYAML, FormatJSON, FormatCBOR, FormatTOML}

// ErrUnknownFormat is returned for a format name or file extension we do not handle.
var ErrUnknownFormat = errors.New("codec: unknown format")

// ErrDecode wraps every failure of the underlying decoder.
var ErrDecode = errors.New("codec: malformed document")

// ParseFormat maps a case-insensitive name ("yml" is accepted) to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	case "cbor":
		return FormatCBOR, nil
	case "toml":
		return FormatTOML, nil
	}

	return "", errors.Wrapf(ErrUnknownFormat, "%q", name)
}

// FormatFromPath infers the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", errors.Wrapf(ErrUnknownFormat, "no extension in %q", path)
	}

	return ParseFormat(ext)
}

// String implements fmt.Stringer (used by flag help text).
func (f Format) String() string { return string(f) }

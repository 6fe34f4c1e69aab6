// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/linalg/codec"
	"github.com/katalvlaran/linalg/matrix"
)

// stdioPath names stdin (input) or stdout (output).
const stdioPath = "-"

// printPrecision is the number of significant digits of printed scalars.
const printPrecision = 12

// inputFormat resolves --format, falling back to the extension of path.
func (e *env) inputFormat(path string) (codec.Format, error) {
	if e.format != "" {
		return codec.ParseFormat(e.format)
	}
	if path == stdioPath {
		return "", errors.Wrap(codec.ErrUnknownFormat, "--format is required when reading stdin")
	}

	return codec.FormatFromPath(path)
}

// readMatrix decodes the document at path ("-" for stdin) into a validated matrix.
func (e *env) readMatrix(path string) (*matrix.Dense[float64], error) {
	doc, err := e.readDocument(path)
	if err != nil {
		return nil, err
	}
	m, err := doc.Matrix()
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}

	return m, nil
}

// readDocument decodes the document at path without checking its shape.
func (e *env) readDocument(path string) (codec.Document[float64], error) {
	f, err := e.inputFormat(path)
	if err != nil {
		return codec.Document[float64]{}, err
	}

	var r io.Reader = e.stdin
	if path != stdioPath {
		fh, err := os.Open(path)
		if err != nil {
			return codec.Document[float64]{}, errors.Wrapf(err, "open %s", path)
		}
		defer fh.Close()
		r = fh
	}

	doc, err := codec.DecodeDocument[float64](r, f)
	if err != nil {
		return codec.Document[float64]{}, errors.Wrapf(err, "read %s", path)
	}
	e.log.Debug().Str("path", path).Str("format", f.String()).Int("rows", doc.Rows).Int("cols", doc.Cols).Int("len", len(doc.Data)).Msg("matrix loaded")

	return doc, nil
}

// writeMatrix encodes m to path. "-" writes YAML to stdout; otherwise the
// format follows the file extension.
func (e *env) writeMatrix(path string, m *matrix.Dense[float64]) error {
	if path == stdioPath {
		return codec.Encode(e.stdout, m, codec.FormatYAML)
	}
	f, err := codec.FormatFromPath(path)
	if err != nil {
		return err
	}
	fh, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	if err = codec.Encode(fh, m, f); err != nil {
		_ = fh.Close()
		return errors.Wrapf(err, "write %s", path)
	}
	e.log.Info().Str("path", path).Str("format", f.String()).Msg("matrix written")

	return errors.Wrapf(fh.Close(), "close %s", path)
}

// suffixed inserts tag before the extension: "out/f.yaml" + "L" -> "out/f.L.yaml".
func suffixed(path, tag string) string {
	ext := filepath.Ext(path)

	return strings.TrimSuffix(path, ext) + "." + tag + ext
}

// printMatrix writes "name =" followed by the matrix rows.
func (e *env) printMatrix(name string, m *matrix.Dense[float64]) {
	fmt.Fprintf(e.stdout, "%s =\n%v", name, m)
}

// formatVector renders x as "[a b c]" with printPrecision significant digits.
func formatVector(x []float64) string {
	parts := make([]string, len(x))
	for i, v := range x {
		parts[i] = strconv.FormatFloat(v, 'g', printPrecision, 64)
	}

	return "[" + strings.Join(parts, " ") + "]"
}

// SPDX-License-Identifier: MIT

package codec

import (
	"io"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"github.com/fxamacker/cbor/v2"
	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/linalg/algebra"
	"github.com/katalvlaran/linalg/matrix"
)

// Document is the serialized form of a matrix.
type Document[T algebra.Scalar] struct {
	Rows int `yaml:"rows" json:"rows" cbor:"rows" toml:"rows"`
	Cols int `yaml:"cols" json:"cols" cbor:"cols" toml:"cols"`
	Data []T `yaml:"data,flow" json:"data" cbor:"data" toml:"data"`
}

// NewDocument snapshots m into a Document. The data slice is copied.
// Errors: ErrNilMatrix / ErrStructure from matrix validation.
func NewDocument[T algebra.Scalar](m *matrix.Dense[T]) (Document[T], error) {
	if err := matrix.ValidateWellFormed(m); err != nil {
		return Document[T]{}, errors.Wrap(err, "NewDocument")
	}
	data := make([]T, m.Len())
	copy(data, m.Data())

	return Document[T]{Rows: m.Rows(), Cols: m.Cols(), Data: data}, nil
}

// Matrix validates the document and adopts its data as a matrix.
// Errors: matrix.ErrInvalidDimensions, matrix.ErrStructure.
func (d Document[T]) Matrix() (*matrix.Dense[T], error) {
	data := d.Data
	if data == nil {
		data = []T{} // empty documents decode with a nil slice
	}
	m, err := matrix.New(d.Rows, d.Cols, data)
	if err != nil {
		return nil, errors.Wrapf(err, "document %dx%d", d.Rows, d.Cols)
	}

	return m, nil
}

// Encode writes m to w in format f.
func Encode[T algebra.Scalar](w io.Writer, m *matrix.Dense[T], f Format) error {
	doc, err := NewDocument(m)
	if err != nil {
		return err
	}

	switch f {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(doc); err == nil {
			err = enc.Close()
		}
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(doc)
	case FormatCBOR:
		var em cbor.EncMode
		if em, err = cbor.CoreDetEncOptions().EncMode(); err == nil {
			err = em.NewEncoder(w).Encode(doc)
		}
	case FormatTOML:
		err = toml.NewEncoder(w).Encode(doc)
	default:
		return errors.Wrapf(ErrUnknownFormat, "%q", string(f))
	}

	return errors.Wrapf(err, "encode %s", f)
}

// Decode reads one document in format f from r and returns it as a matrix.
// Errors: ErrUnknownFormat, ErrDecode (decoder failure), and the shape errors
// of Document.Matrix.
func Decode[T algebra.Scalar](r io.Reader, f Format) (*matrix.Dense[T], error) {
	doc, err := DecodeDocument[T](r, f)
	if err != nil {
		return nil, err
	}

	return doc.Matrix()
}

// DecodeDocument reads one document in format f from r without checking its
// shape against its data; callers that want the checked matrix surface to
// report malformed storage build from the returned fields themselves.
// Errors: ErrUnknownFormat, ErrDecode.
func DecodeDocument[T algebra.Scalar](r io.Reader, f Format) (Document[T], error) {
	var (
		doc Document[T]
		err error
	)

	switch f {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		err = dec.Decode(&doc)
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		err = dec.Decode(&doc)
	case FormatCBOR:
		err = cbor.NewDecoder(r).Decode(&doc)
	case FormatTOML:
		_, err = toml.NewDecoder(r).Decode(&doc)
	default:
		return Document[T]{}, errors.Wrapf(ErrUnknownFormat, "%q", string(f))
	}
	if err != nil {
		return Document[T]{}, errors.Wrapf(errors.Mark(err, ErrDecode), "decode %s", f)
	}
	if doc.Data == nil {
		doc.Data = []T{} // empty documents decode with a nil slice
	}

	return doc, nil
}

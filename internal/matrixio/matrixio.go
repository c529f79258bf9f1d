// Package matrixio reads and writes matrices as YAML documents:
//
//	rows:
//	  - [1, 2, 3]
//	  - [4, 5]
//
// Decoding goes through matrix.FromRows, so short rows are zero-padded.
package matrixio

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ezvec/matrix"
)

// ErrEmptyDocument is returned when the input holds no YAML document.
var ErrEmptyDocument = errors.New("matrixio: empty document")

// Document is the on-disk form of a matrix.
type Document struct {
	Rows []Row `yaml:"rows"`
}

// Row is one matrix row, written in flow style.
type Row []float64

// MarshalYAML renders the row as a flow sequence with YAML float spellings
// for the IEEE specials.
func (r Row) MarshalYAML() (interface{}, error) {
	n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range r {
		n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: formatFloat(v)})
	}

	return n, nil
}

func formatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return ".nan"
	case math.IsInf(v, 1):
		return ".inf"
	case math.IsInf(v, -1):
		return "-.inf"
	case v == 0:
		return "0"
	}

	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Decode reads one document from r.
// Unknown keys are rejected.
func Decode(r io.Reader, opts ...matrix.Option) (*matrix.Dense, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}
		return nil, fmt.Errorf("matrixio: decode: %w", err)
	}

	rows := make([][]float64, len(doc.Rows))
	for i, row := range doc.Rows {
		rows[i] = row
	}
	m, err := matrix.FromRows(rows, opts...)
	if err != nil {
		return nil, fmt.Errorf("matrixio: %w", err)
	}

	return m, nil
}

// LoadFile decodes the document stored at path.
func LoadFile(path string, opts ...matrix.Option) (*matrix.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("matrixio: %w", err)
	}
	defer f.Close()

	m, err := Decode(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// Encode writes m as one document.
func Encode(w io.Writer, m matrix.Matrix) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("matrixio: %w", err)
	}

	doc := Document{Rows: make([]Row, m.Rows())}
	for i := range doc.Rows {
		doc.Rows[i] = make(Row, m.Cols())
		for j := range doc.Rows[i] {
			v, err := m.At(i, j)
			if err != nil {
				return fmt.Errorf("matrixio: %w", err)
			}
			doc.Rows[i][j] = v
		}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("matrixio: encode: %w", err)
	}

	return enc.Close()
}

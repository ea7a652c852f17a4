package quantsim

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
)

// EncodingEntry is the JSON form of one exported encoding, including the
// derived grid parameters so downstream runtimes need no recomputation.
type EncodingEntry struct {
	BitWidth    int     `json:"bitwidth"`
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
	Scale       float64 `json:"scale"`
	Offset      float64 `json:"offset"`
	IsSymmetric bool    `json:"is_symmetric"`
}

// EncodingDocument maps tensor names to their per-channel encoding lists.
// Per-tensor quantizers export a single-element list.
type EncodingDocument struct {
	Version             string                     `json:"version"`
	ActivationEncodings map[string][]EncodingEntry `json:"activation_encodings"`
	ParamEncodings      map[string][]EncodingEntry `json:"param_encodings"`
}

// ExportVersion identifies the encoding document layout.
const ExportVersion = "0.6.1"

// NewEntry derives the exportable grid parameters from an encoding.
func NewEntry(e Encoding) EncodingEntry {
	c := e.Clamped()
	return EncodingEntry{
		BitWidth:    c.BitWidth,
		Min:         c.Min,
		Max:         c.Max,
		Scale:       c.Delta(),
		Offset:      c.Offset(),
		IsSymmetric: c.Symmetric,
	}
}

// WriteEncodings serializes an encoding document as indented JSON.
func WriteEncodings(w io.Writer, doc *EncodingDocument) error {
	if doc.Version == "" {
		doc.Version = ExportVersion
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode encodings: %w", err)
	}
	return nil
}

// ExportEncodings writes an encoding document to a file.
func ExportEncodings(path string, doc *EncodingDocument) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteEncodings(f, doc)
}

// ReadEncodings parses an encoding document.
func ReadEncodings(r io.Reader) (*EncodingDocument, error) {
	var doc EncodingDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode encodings: %w", err)
	}
	return &doc, nil
}

// LoadEncodings reads an encoding document from a file.
func LoadEncodings(path string) (*EncodingDocument, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadEncodings(f)
}

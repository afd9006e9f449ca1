package mapio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format names a document codec.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatOf picks the codec for a file name by extension.
func FormatOf(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// DecodeJSON reads one JSON document from r. Unknown fields are rejected.
func DecodeJSON(r io.Reader) (*Document, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("mapio: decode json: %w", err)
	}

	return &doc, nil
}

// EncodeJSON writes doc to w as indented JSON followed by a newline.
func EncodeJSON(w io.Writer, doc *Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("mapio: encode json: %w", err)
	}

	return nil
}

// DecodeYAML reads one YAML document from r. Unknown fields are rejected.
func DecodeYAML(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("mapio: decode yaml: %w", err)
	}

	return &doc, nil
}

// EncodeYAML writes doc to w as YAML.
func EncodeYAML(w io.Writer, doc *Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("mapio: encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("mapio: encode yaml: %w", err)
	}

	return nil
}

// Decode reads a document in format f.
func Decode(r io.Reader, f Format) (*Document, error) {
	switch f {
	case FormatJSON:
		return DecodeJSON(r)
	case FormatYAML:
		return DecodeYAML(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// Encode writes doc in format f.
func Encode(w io.Writer, doc *Document, f Format) error {
	switch f {
	case FormatJSON:
		return EncodeJSON(w, doc)
	case FormatYAML:
		return EncodeYAML(w, doc)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// Load reads the document stored at name.
func Load(name string) (*Document, error) {
	f, err := FormatOf(name)
	if err != nil {
		return nil, err
	}
	fh, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("mapio: %w", err)
	}
	defer fh.Close()

	return Decode(fh, f)
}

// Save writes doc to name, replacing any existing file.
func Save(name string, doc *Document) error {
	f, err := FormatOf(name)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := Encode(&buf, doc, f); err != nil {
		return err
	}
	if err := os.WriteFile(name, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("mapio: %w", err)
	}

	return nil
}

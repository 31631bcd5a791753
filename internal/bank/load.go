package bank

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat is returned for bank files with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported bank format")

// Format identifies a bank file encoding.
type Format int

const (
	FormatJSON Format = iota
	FormatXLSX
	FormatSQLite
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatXLSX:
		return "xlsx"
	case FormatSQLite:
		return "sqlite"
	default:
		return "unknown"
	}
}

// FormatOf infers the bank format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".xlsx":
		return FormatXLSX, nil
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Load reads a bank from path, picking the decoder by extension.
func Load(ctx context.Context, path string) (*Bank, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	switch format {
	case FormatXLSX:
		return LoadXLSX(path)
	case FormatSQLite:
		return LoadSQLite(ctx, path)
	default:
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read bank: %w", err)
		}
		return ParseJSON(data)
	}
}

// Write stores b at path in the format implied by its extension.
func Write(ctx context.Context, path string, b *Bank) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}

	switch format {
	case FormatXLSX:
		return WriteXLSX(path, b)
	case FormatSQLite:
		return WriteSQLite(ctx, path, b)
	default:
		var buf bytes.Buffer
		if err := WriteJSON(&buf, b); err != nil {
			return err
		}
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("write bank: %w", err)
		}
		return nil
	}
}

// document is the object form of a JSON bank.
type document struct {
	Meta      map[string]any `json:"_meta,omitempty"`
	Questions []Question     `json:"questions"`
}

// ParseJSON decodes a JSON bank. Both the legacy bare array and the object
// form with "questions" (and optional "_meta") are accepted.
func ParseJSON(data []byte) (*Bank, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse bank JSON: %w", err)
	}
	if err := validateDocument(raw); err != nil {
		return nil, err
	}

	var doc document
	if _, isArray := raw.([]any); isArray {
		if err := json.Unmarshal(data, &doc.Questions); err != nil {
			return nil, fmt.Errorf("decode questions: %w", err)
		}
	} else {
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode bank: %w", err)
		}
	}

	b, err := New(doc.Questions)
	if err != nil {
		return nil, err
	}
	return b.withMeta(doc.Meta), nil
}

// WriteJSON encodes b in the object form, including metadata.
func WriteJSON(w io.Writer, b *Bank) error {
	doc := document{Meta: b.Meta(), Questions: b.Questions()}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode bank: %w", err)
	}
	return nil
}

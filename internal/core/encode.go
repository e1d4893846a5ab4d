package core

// encode.go serializes a Grouped document.
//
// encoding/json writes map keys in sorted order and uses compact
// separators, so the output for the same input is byte-identical
// across runs. Record.MarshalJSON handles the per-profile shape.

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
)

// EncodeOptions controls JSON layout.
type EncodeOptions struct {
	Indent bool // Pretty-print with two-space indentation
}

// Marshal returns the JSON document for g.
// Names are written as UTF-8 with no HTML escaping of &, < and >.
func Marshal(g Grouped, opts EncodeOptions) ([]byte, error) {
	if g == nil {
		g = Grouped{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if opts.Indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(g); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Encode writes the JSON document for g to w.
func Encode(w io.Writer, g Grouped, opts EncodeOptions) error {
	data, err := Marshal(g, opts)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// WriteFile writes the JSON document for g to path.
//
// The document is fully encoded before the file is touched and lands via
// a temp file in the same directory plus rename, so a failure never leaves
// a partial output behind.
func WriteFile(path string, g Grouped, opts EncodeOptions) error {
	data, err := Marshal(g, opts)
	if err != nil {
		return &IOError{Path: path, Op: "encode", Err: err}
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return &IOError{Path: path, Op: "create", Err: err}
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // No-op after successful rename

	if _, err := io.Copy(tmp, bytes.NewReader(data)); err != nil {
		tmp.Close()
		return &IOError{Path: path, Op: "write", Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &IOError{Path: path, Op: "write", Err: err}
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return &IOError{Path: path, Op: "write", Err: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		return &IOError{Path: path, Op: "rename", Err: err}
	}
	return nil
}

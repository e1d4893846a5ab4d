package core

// streaming.go provides reader wrappers applied before CSV parsing:
//
//   - BOMSkippingReader: Removes UTF-8 BOM (0xEF 0xBB 0xBF) from spreadsheet exports
//   - CountingReader: Tracks bytes read for logging
//
// Use WrapForReading to apply both in the correct order.

import (
	"bufio"
	"bytes"
	"io"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// BOMSkippingReader wraps an io.Reader and skips the UTF-8 BOM if present.
type BOMSkippingReader struct {
	reader     *bufio.Reader
	bomChecked bool
}

// NewBOMSkippingReader creates a new BOM-skipping reader.
func NewBOMSkippingReader(r io.Reader) *BOMSkippingReader {
	return &BOMSkippingReader{reader: bufio.NewReader(r)}
}

// Read implements io.Reader. On the first read, it checks for and skips the BOM.
func (r *BOMSkippingReader) Read(p []byte) (int, error) {
	if !r.bomChecked {
		r.bomChecked = true

		head, err := r.reader.Peek(len(utf8BOM))
		if err != nil && err != io.EOF {
			return 0, err
		}
		if bytes.Equal(head, utf8BOM) {
			if _, err := r.reader.Discard(len(utf8BOM)); err != nil {
				return 0, err
			}
		}
	}
	return r.reader.Read(p)
}

// CountingReader wraps an io.Reader to track bytes read.
type CountingReader struct {
	reader    io.Reader
	BytesRead int64
}

// NewCountingReader creates a counting reader.
func NewCountingReader(r io.Reader) *CountingReader {
	return &CountingReader{reader: r}
}

// Read implements io.Reader.
func (r *CountingReader) Read(p []byte) (int, error) {
	n, err := r.reader.Read(p)
	r.BytesRead += int64(n)
	return n, err
}

// WrapForReading wraps a reader with byte counting and BOM skipping.
// Counting sits underneath so the total reflects the bytes on disk.
func WrapForReading(r io.Reader) (io.Reader, *CountingReader) {
	counter := NewCountingReader(r)
	return NewBOMSkippingReader(counter), counter
}

package core

import (
	"bytes"
	"io"
	"testing"
)

func TestBOMSkippingReader(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected string
	}{
		{
			name:     "file with BOM",
			input:    append([]byte{0xEF, 0xBB, 0xBF}, []byte("name,age")...),
			expected: "name,age",
		},
		{
			name:     "file without BOM",
			input:    []byte("name,age"),
			expected: "name,age",
		},
		{
			name:     "empty file",
			input:    []byte{},
			expected: "",
		},
		{
			name:     "only BOM",
			input:    []byte{0xEF, 0xBB, 0xBF},
			expected: "",
		},
		{
			name:     "partial BOM at start",
			input:    []byte{0xEF, 0xBB, 'a', 'b', 'c'},
			expected: string([]byte{0xEF, 0xBB, 'a', 'b', 'c'}),
		},
		{
			name:     "shorter than BOM",
			input:    []byte("a"),
			expected: "a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := NewBOMSkippingReader(bytes.NewReader(tt.input))
			result, err := io.ReadAll(reader)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(result) != tt.expected {
				t.Errorf("got %q, want %q", string(result), tt.expected)
			}
		})
	}
}

func TestWrapForReading_CountsRawBytes(t *testing.T) {
	input := append([]byte{0xEF, 0xBB, 0xBF}, []byte("Player,Season\n")...)

	r, counter := WrapForReading(bytes.NewReader(input))
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if string(out) != "Player,Season\n" {
		t.Errorf("got %q, want BOM stripped", out)
	}
	if counter.BytesRead != int64(len(input)) {
		t.Errorf("BytesRead = %d, want %d", counter.BytesRead, len(input))
	}
}

package bom

import (
	"bytes"
	"errors"
	"testing"

	bomerrors "github.com/FocuswithJustin/bomdoc/core/errors"
)

func TestPreamble(t *testing.T) {
	tests := []struct {
		name     string
		enc      Encoding
		expected []byte
	}{
		{"utf-8", UTF8, []byte{0xEF, 0xBB, 0xBF}},
		{"utf-16be", UTF16BE, []byte{0xFE, 0xFF}},
		{"utf-16le", UTF16LE, []byte{0xFF, 0xFE}},
		{"utf-32be", UTF32BE, []byte{0x00, 0x00, 0xFE, 0xFF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.enc.Preamble(); !bytes.Equal(got, tt.expected) {
				t.Errorf("Preamble() = % X, want % X", got, tt.expected)
			}
		})
	}
}

func TestPreambleIsCopy(t *testing.T) {
	p := UTF8.Preamble()
	p[0] = 0x00
	if !bytes.Equal(UTF8.Preamble(), []byte{0xEF, 0xBB, 0xBF}) {
		t.Errorf("mutating a returned preamble must not affect the table")
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		enc  Encoding
	}{
		{"utf-8", []byte{0xEF, 0xBB, 0xBF, 0x41}, UTF8},
		{"utf-8 bare preamble", []byte{0xEF, 0xBB, 0xBF}, UTF8},
		{"utf-16be", []byte{0xFE, 0xFF, 0x00, 0x41}, UTF16BE},
		{"utf-16le", []byte{0xFF, 0xFE, 0x41, 0x00}, UTF16LE},
		{"utf-32be", []byte{0x00, 0x00, 0xFE, 0xFF, 0x00, 0x00, 0x00, 0x41}, UTF32BE},
		{"utf-32be bare preamble", []byte{0x00, 0x00, 0xFE, 0xFF}, UTF32BE},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc, err := Detect(tt.data)
			if err != nil {
				t.Fatalf("Detect() error = %v", err)
			}
			if enc != tt.enc {
				t.Errorf("Detect() = %v, want %v", enc, tt.enc)
			}
		})
	}
}

func TestDetectMissingPreamble(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"single 0xEF", []byte{0xEF}},
		{"plain ASCII", []byte{0x41, 0x42}},
		{"truncated utf-8 preamble", []byte{0xEF, 0xBB}},
		{"truncated utf-32 preamble", []byte{0x00, 0x00, 0xFE}},
		{"zero bytes", []byte{0x00, 0x00, 0x00, 0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Detect(tt.data)
			if !errors.Is(err, bomerrors.ErrMissingPreamble) {
				t.Errorf("Detect() error = %v, want ErrMissingPreamble", err)
			}
		})
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		enc  Encoding
		name string
	}{
		{UTF8, "utf-8"},
		{UTF16BE, "utf-16be"},
		{UTF16LE, "utf-16le"},
		{UTF32BE, "utf-32be"},
	}

	for _, tt := range tests {
		if got := tt.enc.String(); got != tt.name {
			t.Errorf("String() = %q, want %q", got, tt.name)
		}
	}
}

func TestParseEncoding(t *testing.T) {
	tests := []struct {
		name string
		enc  Encoding
	}{
		{"utf-8", UTF8},
		{"UTF-8", UTF8},
		{"utf8", UTF8},
		{"utf-16be", UTF16BE},
		{"UTF_16BE", UTF16BE},
		{"utf-16", UTF16BE},
		{"utf-16le", UTF16LE},
		{"utf-32be", UTF32BE},
		{"utf-32", UTF32BE},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc, err := ParseEncoding(tt.name)
			if err != nil {
				t.Fatalf("ParseEncoding(%q) error = %v", tt.name, err)
			}
			if enc != tt.enc {
				t.Errorf("ParseEncoding(%q) = %v, want %v", tt.name, enc, tt.enc)
			}
		})
	}

	if _, err := ParseEncoding("latin1"); err == nil {
		t.Errorf("ParseEncoding should reject unknown names")
	}
}

func TestDetectRoundTripsAllPreambles(t *testing.T) {
	for _, enc := range []Encoding{UTF8, UTF16BE, UTF16LE, UTF32BE} {
		detected, err := Detect(enc.Preamble())
		if err != nil {
			t.Fatalf("Detect(%v preamble) error = %v", enc, err)
		}
		if detected != enc {
			t.Errorf("Detect(%v preamble) = %v", enc, detected)
		}
	}
}

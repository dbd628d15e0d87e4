// Package bom defines the supported text encodings and the byte-order-mark
// preambles that make encoded documents self-describing.
//
// Every encoded document begins with the serialization of U+FEFF in its
// encoding scheme. The four preamble byte patterns never share a leading
// byte, so detection is unambiguous regardless of scan order.
package bom

import (
	"bytes"
	"fmt"

	"github.com/FocuswithJustin/bomdoc/core/errors"
)

// Encoding identifies one of the supported byte serialization schemes.
type Encoding byte

const (
	// UTF8 is standard UTF-8
	UTF8 Encoding = iota

	// UTF16BE is big-endian UTF-16
	UTF16BE

	// UTF16LE is little-endian UTF-16
	UTF16LE

	// UTF32BE is big-endian UTF-32
	UTF32BE
)

// preambles maps each encoding to its BOM byte pattern, ordered
// longest-first so prefix matching never shadows a longer candidate.
var preambles = []struct {
	enc Encoding
	bom []byte
}{
	{UTF32BE, []byte{0x00, 0x00, 0xFE, 0xFF}},
	{UTF8, []byte{0xEF, 0xBB, 0xBF}},
	{UTF16BE, []byte{0xFE, 0xFF}},
	{UTF16LE, []byte{0xFF, 0xFE}},
}

// Preamble returns the BOM byte pattern for the encoding.
// The returned slice is a copy and safe to modify.
func (e Encoding) Preamble() []byte {
	for _, p := range preambles {
		if p.enc == e {
			return append([]byte(nil), p.bom...)
		}
	}
	panic(fmt.Sprintf("bom: unknown encoding %d", e))
}

// String returns the canonical lowercase name of the encoding.
func (e Encoding) String() string {
	switch e {
	case UTF8:
		return "utf-8"
	case UTF16BE:
		return "utf-16be"
	case UTF16LE:
		return "utf-16le"
	case UTF32BE:
		return "utf-32be"
	default:
		return fmt.Sprintf("encoding(%d)", byte(e))
	}
}

// ParseEncoding parses an encoding name. It accepts the canonical names
// returned by String plus common spelling variants (case-insensitive,
// with or without the hyphen after "utf").
func ParseEncoding(name string) (Encoding, error) {
	switch normalizeName(name) {
	case "utf8":
		return UTF8, nil
	case "utf16be", "utf16":
		return UTF16BE, nil
	case "utf16le":
		return UTF16LE, nil
	case "utf32be", "utf32":
		return UTF32BE, nil
	default:
		return UTF8, fmt.Errorf("bom: unknown encoding name %q", name)
	}
}

// normalizeName lowercases an encoding name and strips hyphens and
// underscores, so "UTF-16BE", "utf_16be" and "utf16be" all match.
func normalizeName(name string) string {
	out := make([]byte, 0, len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c == '-' || c == '_' {
			continue
		}
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		out = append(out, c)
	}
	return string(out)
}

// Detect inspects the leading bytes of data against the four preamble
// patterns and returns the matching encoding. It returns
// errors.ErrMissingPreamble when no pattern matches, including when data
// is shorter than every pattern.
func Detect(data []byte) (Encoding, error) {
	for _, p := range preambles {
		if bytes.HasPrefix(data, p.bom) {
			return p.enc, nil
		}
	}
	return UTF8, errors.Wrapf(errors.ErrMissingPreamble, "no byte order mark in %d leading bytes", min(len(data), 4))
}

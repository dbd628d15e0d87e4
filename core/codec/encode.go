// Package codec implements the bidirectional codec between text values and
// BOM-prefixed byte sequences.
//
// Encoding logically prepends the code point U+FEFF to the text and
// serializes the result per the chosen scheme; because U+FEFF serializes to
// exactly the preamble bytes in every supported scheme, the output always
// begins with the pattern the decoder detects. Decoding is strict: bytes
// after a recognized preamble either deserialize completely or the whole
// operation fails. There is no replacement-character fallback.
package codec

import (
	"github.com/FocuswithJustin/bomdoc/core/bom"
)

// UTF-16 surrogate pair constants
const (
	highSurrogateMin = 0xD800
	highSurrogateMax = 0xDBFF
	lowSurrogateMin  = 0xDC00
	lowSurrogateMax  = 0xDFFF
	surrogateOffset  = 0x10000
)

// maxCodePoint is the maximum valid Unicode code point (U+10FFFF).
const maxCodePoint = 0x10FFFF

// Encode serializes text into a byte sequence beginning with the preamble
// for enc. Any valid text value encodes successfully in every supported
// encoding; there is no error path.
func Encode(text string, enc bom.Encoding) []byte {
	switch enc {
	case bom.UTF8:
		// Go strings are already UTF-8; the preamble is U+FEFF's 3-byte form.
		out := make([]byte, 0, 3+len(text))
		out = append(out, enc.Preamble()...)
		return append(out, text...)
	case bom.UTF16BE:
		return encodeUTF16(text, enc, true)
	case bom.UTF16LE:
		return encodeUTF16(text, enc, false)
	case bom.UTF32BE:
		out := make([]byte, 0, 4+4*len(text))
		out = append(out, enc.Preamble()...)
		for _, r := range text {
			out = append(out, byte(r>>24), byte(r>>16), byte(r>>8), byte(r))
		}
		return out
	default:
		panic("codec: unknown encoding")
	}
}

// encodeUTF16 serializes text as UTF-16 code units after the preamble.
// Code points at or above U+10000 become surrogate pairs.
func encodeUTF16(text string, enc bom.Encoding, bigEndian bool) []byte {
	out := make([]byte, 0, 2+2*len(text))
	out = append(out, enc.Preamble()...)

	var buf [4]byte
	for _, r := range text {
		n := encodeUnits(buf[:], r, bigEndian)
		out = append(out, buf[:n]...)
	}
	return out
}

// encodeUnits writes the UTF-16 code units for r into buf and returns the
// number of bytes written (2 or 4). buf must be at least 4 bytes long.
func encodeUnits(buf []byte, r rune, bigEndian bool) int {
	if r < surrogateOffset {
		putUint16(buf, uint16(r), bigEndian)
		return 2
	}

	// Encode as surrogate pair
	r -= surrogateOffset
	high := uint16(highSurrogateMin + (r >> 10))
	low := uint16(lowSurrogateMin + (r & 0x3FF))
	putUint16(buf, high, bigEndian)
	putUint16(buf[2:], low, bigEndian)
	return 4
}

func putUint16(buf []byte, v uint16, bigEndian bool) {
	if bigEndian {
		buf[0] = byte(v >> 8)
		buf[1] = byte(v)
	} else {
		buf[0] = byte(v)
		buf[1] = byte(v >> 8)
	}
}

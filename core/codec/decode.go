package codec

import (
	"strings"
	"unicode/utf8"

	"github.com/FocuswithJustin/bomdoc/core/bom"
	"github.com/FocuswithJustin/bomdoc/core/errors"
)

// DetectEncoding inspects the leading bytes of data and returns the
// encoding identified by its preamble. It fails with
// errors.ErrMissingPreamble when no pattern matches.
func DetectEncoding(data []byte) (bom.Encoding, error) {
	return bom.Detect(data)
}

// Decode detects the encoding of data from its preamble and deserializes
// the remaining bytes into a text value. The leading U+FEFF marker is
// preamble metadata, not content, and never appears in the result.
//
// Decode fails with errors.ErrMissingPreamble when no preamble matches and
// with errors.ErrInvalidEncoding (as a DecodeError carrying the byte
// offset) when the post-preamble bytes are not well-formed for the
// detected scheme. Byte offsets in errors are relative to the start of
// data, preamble included.
func Decode(data []byte) (bom.Encoding, string, error) {
	enc, err := bom.Detect(data)
	if err != nil {
		return bom.UTF8, "", err
	}

	// Payload starts immediately after the preamble bytes; nothing is
	// skipped beyond them.
	skip := len(enc.Preamble())
	payload := data[skip:]

	var text string
	switch enc {
	case bom.UTF8:
		text, err = decodeUTF8(payload, skip)
	case bom.UTF16BE:
		text, err = decodeUTF16(payload, skip, enc, true)
	case bom.UTF16LE:
		text, err = decodeUTF16(payload, skip, enc, false)
	case bom.UTF32BE:
		text, err = decodeUTF32(payload, skip, enc)
	}
	if err != nil {
		return enc, "", err
	}
	return enc, text, nil
}

// decodeUTF8 validates payload as well-formed UTF-8 and returns it as a
// text value. base is the byte offset of payload within the full input.
func decodeUTF8(payload []byte, base int) (string, error) {
	for i := 0; i < len(payload); {
		r, size := utf8.DecodeRune(payload[i:])
		if r == utf8.RuneError && size <= 1 {
			return "", errors.NewDecode(bom.UTF8.String(), base+i, "malformed byte sequence")
		}
		i += size
	}
	return string(payload), nil
}

// decodeUTF16 deserializes payload as UTF-16 code units, combining
// surrogate pairs into single code points.
func decodeUTF16(payload []byte, base int, enc bom.Encoding, bigEndian bool) (string, error) {
	if len(payload)%2 != 0 {
		return "", errors.NewDecode(enc.String(), base+len(payload)-1, "odd payload length")
	}

	var b strings.Builder
	b.Grow(len(payload))
	for i := 0; i < len(payload); i += 2 {
		c := getUint16(payload[i:], bigEndian)

		switch {
		case c >= lowSurrogateMin && c <= lowSurrogateMax:
			return "", errors.NewDecode(enc.String(), base+i, "low surrogate without preceding high surrogate")
		case c >= highSurrogateMin && c <= highSurrogateMax:
			if i+4 > len(payload) {
				return "", errors.NewDecode(enc.String(), base+i, "high surrogate at end of input")
			}
			c2 := getUint16(payload[i+2:], bigEndian)
			if c2 < lowSurrogateMin || c2 > lowSurrogateMax {
				return "", errors.NewDecode(enc.String(), base+i+2, "high surrogate not followed by low surrogate")
			}
			r := rune(((c&0x3FF)<<10)+(c2&0x3FF)) + surrogateOffset
			b.WriteRune(r)
			i += 2
		default:
			b.WriteRune(rune(c))
		}
	}
	return b.String(), nil
}

// decodeUTF32 deserializes payload as big-endian 32-bit code points.
// Surrogate values and values beyond U+10FFFF are rejected.
func decodeUTF32(payload []byte, base int, enc bom.Encoding) (string, error) {
	if len(payload)%4 != 0 {
		return "", errors.NewDecode(enc.String(), base+len(payload)-len(payload)%4, "payload length not a multiple of 4")
	}

	var b strings.Builder
	b.Grow(len(payload) / 4 * 3)
	for i := 0; i < len(payload); i += 4 {
		v := uint32(payload[i])<<24 | uint32(payload[i+1])<<16 | uint32(payload[i+2])<<8 | uint32(payload[i+3])
		if v > maxCodePoint {
			return "", errors.NewDecode(enc.String(), base+i, "value beyond U+10FFFF")
		}
		if v >= highSurrogateMin && v <= lowSurrogateMax {
			return "", errors.NewDecode(enc.String(), base+i, "surrogate value")
		}
		b.WriteRune(rune(v))
	}
	return b.String(), nil
}

func getUint16(buf []byte, bigEndian bool) uint32 {
	if bigEndian {
		return uint32(buf[0])<<8 | uint32(buf[1])
	}
	return uint32(buf[0]) | uint32(buf[1])<<8
}

// Package text provides code-point and line oriented views of text values.
//
// Text is treated as an ordered sequence of Unicode scalar values, never
// 16-bit code units: a supplementary-plane character is always one logical
// unit in every view this package exposes.
package text

import (
	"strings"
	"unicode"
	"unicode/utf16"

	"github.com/FocuswithJustin/bomdoc/core/errors"
)

// CodePoints decomposes s into its Unicode scalar values in document order.
func CodePoints(s string) []rune {
	return []rune(s)
}

// FromCodePoints concatenates the scalar values into one text value.
// It fails with a CodePointError (wrapping errors.ErrInvalidCodePoint)
// if any value is negative, a surrogate, or beyond unicode.MaxRune.
func FromCodePoints(cps []rune) (string, error) {
	var b strings.Builder
	b.Grow(len(cps))
	for i, cp := range cps {
		if !ValidCodePoint(cp) {
			return "", errors.NewCodePoint(i, int64(cp))
		}
		b.WriteRune(cp)
	}
	return b.String(), nil
}

// ValidCodePoint reports whether cp is a valid Unicode scalar value.
func ValidCodePoint(cp rune) bool {
	return cp >= 0 && cp <= unicode.MaxRune && !utf16.IsSurrogate(cp)
}

// Package document provides the in-memory document value: a text paired
// with the encoding it serializes to.
//
// A Document owns its text and encoding exclusively; the two fields are
// independent, so replacing one never alters the other. Documents hold no
// external resources and perform no I/O. A single Document is not safe for
// concurrent mutation; distinct Documents need no coordination.
package document

import (
	"github.com/FocuswithJustin/bomdoc/core/bom"
	"github.com/FocuswithJustin/bomdoc/core/codec"
	"github.com/FocuswithJustin/bomdoc/core/text"
)

// Document pairs a text value with an encoding kind.
// The zero value is an empty UTF-8 document.
type Document struct {
	text     string
	encoding bom.Encoding
}

// New creates an empty document with the default UTF-8 encoding.
func New() *Document {
	return &Document{}
}

// NewWith creates a document holding the given text and encoding.
func NewWith(txt string, enc bom.Encoding) *Document {
	return &Document{text: txt, encoding: enc}
}

// FromBytes builds a document by decoding a BOM-prefixed byte sequence.
// Detection and decoding errors from the codec propagate unchanged.
func FromBytes(data []byte) (*Document, error) {
	enc, txt, err := codec.Decode(data)
	if err != nil {
		return nil, err
	}
	return &Document{text: txt, encoding: enc}, nil
}

// Text returns the document text.
func (d *Document) Text() string {
	return d.text
}

// SetText replaces the document text, leaving the encoding untouched.
func (d *Document) SetText(txt string) {
	d.text = txt
}

// Encoding returns the document encoding.
func (d *Document) Encoding() bom.Encoding {
	return d.encoding
}

// SetEncoding replaces the document encoding, leaving the text untouched.
func (d *Document) SetEncoding(enc bom.Encoding) {
	d.encoding = enc
}

// Lines returns the document text split on line feeds.
func (d *Document) Lines() []string {
	return text.SplitLines(d.text)
}

// SetLines replaces the document text with the given lines joined by
// line feeds.
func (d *Document) SetLines(lines []string) {
	d.text = text.JoinLines(lines)
}

// CodePoints returns the document text as Unicode scalar values.
func (d *Document) CodePoints() []rune {
	return text.CodePoints(d.text)
}

// SetCodePoints replaces the document text from a sequence of scalar
// values. It fails with errors.ErrInvalidCodePoint (leaving the document
// unchanged) if any value is not a valid scalar value.
func (d *Document) SetCodePoints(cps []rune) error {
	txt, err := text.FromCodePoints(cps)
	if err != nil {
		return err
	}
	d.text = txt
	return nil
}

// Bytes serializes the document to its BOM-prefixed byte sequence.
func (d *Document) Bytes() []byte {
	return codec.Encode(d.text, d.encoding)
}

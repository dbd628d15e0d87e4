// Package archive provides xz-compressed export and import of encoded
// documents. The compressed payload is the exact BOM-prefixed byte
// sequence produced by the codec, so importing and decompressing always
// yields bytes the decoder can detect.
package archive

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/ulikunitz/xz"
)

// xzMagic is the 6-byte magic number at the start of every xz stream.
var xzMagic = []byte{0xFD, '7', 'z', 'X', 'Z', 0x00}

// ExportXZ writes data to path as an xz-compressed stream.
func ExportXZ(path string, data []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	xw, err := xz.NewWriter(f)
	if err != nil {
		return fmt.Errorf("failed to create xz writer: %w", err)
	}
	if _, err := xw.Write(data); err != nil {
		xw.Close()
		return fmt.Errorf("failed to write compressed data: %w", err)
	}
	if err := xw.Close(); err != nil {
		return fmt.Errorf("failed to finish xz stream: %w", err)
	}
	return f.Close()
}

// ImportXZ reads and decompresses an xz file, returning the raw bytes.
func ImportXZ(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	xr, err := xz.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read xz stream: %w", err)
	}
	data, err := io.ReadAll(xr)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress %s: %w", path, err)
	}
	return data, nil
}

// IsXZ reports whether the file at path starts with the xz magic number.
func IsXZ(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	header := make([]byte, len(xzMagic))
	if _, err := io.ReadFull(f, header); err != nil {
		return false
	}
	return bytes.Equal(header, xzMagic)
}

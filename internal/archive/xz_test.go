package archive

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/FocuswithJustin/bomdoc/core/bom"
	"github.com/FocuswithJustin/bomdoc/core/codec"
)

func TestExportImportRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt.xz")
	data := codec.Encode("line1\nline2 𝔸", bom.UTF16BE)

	if err := ExportXZ(path, data); err != nil {
		t.Fatalf("ExportXZ error = %v", err)
	}

	got, err := ImportXZ(path)
	if err != nil {
		t.Fatalf("ImportXZ error = %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("round trip = % X, want % X", got, data)
	}

	enc, text, err := codec.Decode(got)
	if err != nil {
		t.Fatalf("Decode after import error = %v", err)
	}
	if enc != bom.UTF16BE || text != "line1\nline2 𝔸" {
		t.Errorf("decoded (%v, %q)", enc, text)
	}
}

func TestExportProducesXZStream(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.xz")
	if err := ExportXZ(path, []byte{0xEF, 0xBB, 0xBF}); err != nil {
		t.Fatalf("ExportXZ error = %v", err)
	}
	if !IsXZ(path) {
		t.Errorf("exported file is not recognized as xz")
	}
}

func TestIsXZ(t *testing.T) {
	dir := t.TempDir()

	plain := filepath.Join(dir, "plain.txt")
	if err := os.WriteFile(plain, []byte("not compressed"), 0644); err != nil {
		t.Fatalf("WriteFile error = %v", err)
	}
	if IsXZ(plain) {
		t.Errorf("plain file reported as xz")
	}

	short := filepath.Join(dir, "short")
	if err := os.WriteFile(short, []byte{0xFD}, 0644); err != nil {
		t.Fatalf("WriteFile error = %v", err)
	}
	if IsXZ(short) {
		t.Errorf("truncated file reported as xz")
	}

	if IsXZ(filepath.Join(dir, "missing")) {
		t.Errorf("missing file reported as xz")
	}
}

func TestImportXZRejectsPlainFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.txt")
	if err := os.WriteFile(path, []byte("just text"), 0644); err != nil {
		t.Fatalf("WriteFile error = %v", err)
	}
	if _, err := ImportXZ(path); err == nil {
		t.Errorf("ImportXZ should fail on a non-xz file")
	}
}

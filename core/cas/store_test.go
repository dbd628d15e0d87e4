package cas

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	bomerrors "github.com/FocuswithJustin/bomdoc/core/errors"
)

func TestPutAndGet(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore error = %v", err)
	}

	data := []byte{0xEF, 0xBB, 0xBF, 0x41, 0x42}
	hash, err := store.Put(data)
	if err != nil {
		t.Fatalf("Put error = %v", err)
	}
	if hash != Hash(data) {
		t.Errorf("Put returned hash %q, want %q", hash, Hash(data))
	}

	got, err := store.Get(hash)
	if err != nil {
		t.Fatalf("Get error = %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("Get = % X, want % X", got, data)
	}
}

func TestPutDeduplicates(t *testing.T) {
	root := t.TempDir()
	store, err := NewStore(root)
	if err != nil {
		t.Fatalf("NewStore error = %v", err)
	}

	data := []byte("same bytes")
	h1, err := store.Put(data)
	if err != nil {
		t.Fatalf("first Put error = %v", err)
	}
	h2, err := store.Put(data)
	if err != nil {
		t.Fatalf("second Put error = %v", err)
	}
	if h1 != h2 {
		t.Errorf("duplicate Put returned different hashes: %q vs %q", h1, h2)
	}

	prefixDir := filepath.Join(root, "blobs", "blake3", h1[:2])
	entries, err := os.ReadDir(prefixDir)
	if err != nil {
		t.Fatalf("ReadDir error = %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected one blob file, found %d", len(entries))
	}
}

func TestGetMissing(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore error = %v", err)
	}

	missing := Hash([]byte("never stored"))
	if _, err := store.Get(missing); !errors.Is(err, bomerrors.ErrNotFound) {
		t.Errorf("Get(missing) error = %v, want ErrNotFound", err)
	}
}

func TestGetInvalidHash(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore error = %v", err)
	}

	for _, h := range []string{"", "zzzz", "ABCDEF", Hash([]byte("x"))[:63]} {
		if _, err := store.Get(h); err == nil {
			t.Errorf("Get(%q) should fail", h)
		}
		if store.Exists(h) {
			t.Errorf("Exists(%q) should be false", h)
		}
	}
}

func TestExists(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore error = %v", err)
	}

	hash, err := store.Put([]byte("present"))
	if err != nil {
		t.Fatalf("Put error = %v", err)
	}
	if !store.Exists(hash) {
		t.Errorf("Exists(%q) = false after Put", hash)
	}
	if store.Exists(Hash([]byte("absent"))) {
		t.Errorf("Exists should be false for unstored data")
	}
}

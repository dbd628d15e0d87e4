// Package cas provides content-addressed storage for encoded document
// blobs. Blobs are stored by their BLAKE3 hash, which gives deduplication
// for free: ingesting the same encoded bytes twice stores one file.
package cas

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/zeebo/blake3"

	"github.com/FocuswithJustin/bomdoc/core/errors"
)

// hashPattern matches a valid lowercase BLAKE3-256 hex string (64 characters).
var hashPattern = regexp.MustCompile(`^[a-f0-9]{64}$`)

// Store provides content-addressed storage for blobs using BLAKE3 hashing.
type Store struct {
	root string
}

// NewStore creates a content-addressed store rooted at the given
// directory, creating the blob directory structure if needed.
func NewStore(root string) (*Store, error) {
	blobDir := filepath.Join(root, "blobs", "blake3")
	if err := os.MkdirAll(blobDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create blob directory: %w", err)
	}
	return &Store{root: root}, nil
}

// Put stores the given data and returns its BLAKE3 hash.
// Storing data that already exists is a no-op returning the same hash.
func (s *Store) Put(data []byte) (string, error) {
	hash := Hash(data)

	blobPath := s.pathForHash(hash)
	if _, err := os.Stat(blobPath); err == nil {
		return hash, nil
	}

	prefixDir := filepath.Dir(blobPath)
	if err := os.MkdirAll(prefixDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create prefix directory: %w", err)
	}

	// Write atomically: temp file in the same directory, then rename.
	tempFile, err := os.CreateTemp(prefixDir, ".blob-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tempPath := tempFile.Name()

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		os.Remove(tempPath)
		return "", fmt.Errorf("failed to write blob: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		os.Remove(tempPath)
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tempPath, blobPath); err != nil {
		os.Remove(tempPath)
		return "", fmt.Errorf("failed to rename blob: %w", err)
	}

	return hash, nil
}

// Get retrieves the blob with the given BLAKE3 hash.
// Returns errors.ErrNotFound if the blob does not exist and an error
// wrapping nothing useful when the hash is not valid hex.
func (s *Store) Get(hash string) ([]byte, error) {
	if !isValidHash(hash) {
		return nil, fmt.Errorf("invalid blake3 hash %q", hash)
	}

	data, err := os.ReadFile(s.pathForHash(hash))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFound("blob", hash)
		}
		return nil, fmt.Errorf("failed to read blob: %w", err)
	}
	return data, nil
}

// Exists checks if a blob with the given hash exists in the store.
func (s *Store) Exists(hash string) bool {
	if !isValidHash(hash) {
		return false
	}
	_, err := os.Stat(s.pathForHash(hash))
	return err == nil
}

// pathForHash returns the file path for a blob:
// <root>/blobs/blake3/<first2>/<hash>
func (s *Store) pathForHash(hash string) string {
	return filepath.Join(s.root, "blobs", "blake3", hash[:2], hash)
}

func isValidHash(hash string) bool {
	return hashPattern.MatchString(hash)
}

// Hash computes the BLAKE3 hash of the given data without storing it.
func Hash(data []byte) string {
	h := blake3.Sum256(data)
	return hex.EncodeToString(h[:])
}

// Package store provides a persistent catalog of ingested documents.
//
// The catalog is a SQLite database holding one row per document; the
// encoded bytes themselves live in a content-addressed blob store next to
// it, keyed by BLAKE3 hash. Two documents with identical encoded bytes
// share one blob.
//
// Driver selection follows the build tags: modernc.org/sqlite (pure Go)
// by default, mattn/go-sqlite3 with -tags cgo_sqlite.
package store

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/FocuswithJustin/bomdoc/core/bom"
	"github.com/FocuswithJustin/bomdoc/core/cas"
	"github.com/FocuswithJustin/bomdoc/core/document"
	"github.com/FocuswithJustin/bomdoc/core/errors"
)

const schema = `
CREATE TABLE IF NOT EXISTS documents (
	id         TEXT PRIMARY KEY,
	title      TEXT NOT NULL,
	encoding   TEXT NOT NULL,
	blake3     TEXT NOT NULL,
	size_bytes INTEGER NOT NULL,
	created_at TEXT NOT NULL
);
`

// Record is one catalog row describing an ingested document.
type Record struct {
	ID        string
	Title     string
	Encoding  bom.Encoding
	BLAKE3    string
	SizeBytes int64
	CreatedAt time.Time
}

// Store is a document catalog backed by SQLite and a blob store.
type Store struct {
	db    *sql.DB
	blobs *cas.Store
}

// DriverName returns the SQL driver name selected by build tags.
func DriverName() string {
	return driverName
}

// DriverType returns "purego" or "cgo" depending on the build.
func DriverType() string {
	return driverType
}

// Open opens (creating if needed) a document store rooted at dir.
// The catalog lives at <dir>/catalog.db, blobs under <dir>/blobs.
func Open(dir string) (*Store, error) {
	blobs, err := cas.NewStore(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open blob store: %w", err)
	}

	db, err := sql.Open(driverName, filepath.Join(dir, "catalog.db"))
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Store{db: db, blobs: blobs}, nil
}

// Close closes the underlying catalog database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ingest encodes the document, stores its bytes in the blob store, and
// inserts a catalog row. It returns the new record.
func (s *Store) Ingest(doc *document.Document, title string) (*Record, error) {
	data := doc.Bytes()
	hash, err := s.blobs.Put(data)
	if err != nil {
		return nil, fmt.Errorf("failed to store blob: %w", err)
	}

	rec := &Record{
		ID:        uuid.New().String(),
		Title:     title,
		Encoding:  doc.Encoding(),
		BLAKE3:    hash,
		SizeBytes: int64(len(data)),
		CreatedAt: time.Now().UTC(),
	}

	_, err = s.db.Exec(
		`INSERT INTO documents (id, title, encoding, blake3, size_bytes, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Title, rec.Encoding.String(), rec.BLAKE3, rec.SizeBytes, rec.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert record: %w", err)
	}
	return rec, nil
}

// Get loads a record and decodes its stored bytes back into a document.
// Returns errors.ErrNotFound for unknown ids.
func (s *Store) Get(id string) (*Record, *document.Document, error) {
	rec, err := s.scanOne(id)
	if err != nil {
		return nil, nil, err
	}

	data, err := s.blobs.Get(rec.BLAKE3)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load blob for %s: %w", id, err)
	}
	doc, err := document.FromBytes(data)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode stored document %s: %w", id, err)
	}
	return rec, doc, nil
}

// Bytes returns the raw encoded bytes of a stored document without
// decoding them.
func (s *Store) Bytes(id string) ([]byte, error) {
	rec, err := s.scanOne(id)
	if err != nil {
		return nil, err
	}
	return s.blobs.Get(rec.BLAKE3)
}

// List returns all catalog records ordered by creation time.
func (s *Store) List() ([]Record, error) {
	rows, err := s.db.Query(
		`SELECT id, title, encoding, blake3, size_bytes, created_at FROM documents ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	return records, rows.Err()
}

// Delete removes a catalog row. The blob is left in place because other
// records may share it by content address.
func (s *Store) Delete(id string) error {
	res, err := s.db.Exec(`DELETE FROM documents WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errors.NewNotFound("document", id)
	}
	return nil
}

func (s *Store) scanOne(id string) (*Record, error) {
	row := s.db.QueryRow(
		`SELECT id, title, encoding, blake3, size_bytes, created_at FROM documents WHERE id = ?`, id)
	rec, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFound("document", id)
	}
	return rec, err
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*Record, error) {
	var rec Record
	var encName, createdAt string
	if err := row.Scan(&rec.ID, &rec.Title, &encName, &rec.BLAKE3, &rec.SizeBytes, &createdAt); err != nil {
		return nil, err
	}

	enc, err := bom.ParseEncoding(encName)
	if err != nil {
		return nil, fmt.Errorf("corrupt catalog row %s: %w", rec.ID, err)
	}
	rec.Encoding = enc

	ts, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("corrupt catalog row %s: %w", rec.ID, err)
	}
	rec.CreatedAt = ts

	return &rec, nil
}

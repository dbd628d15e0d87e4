//go:build !cgo_sqlite

// Pure Go SQLite driver using modernc.org/sqlite.
// This is the default; no CGO toolchain is required.
package store

import (
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const (
	driverName = "sqlite"
	driverType = "purego"
)

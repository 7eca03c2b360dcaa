package migrations

import "embed"

// FS contains embedded SQLite migrations for changelog storage.
//
//go:embed *.sql
var FS embed.FS

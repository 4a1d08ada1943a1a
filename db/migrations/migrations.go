// Package migrations embeds the PostgreSQL schema of the engine.
package migrations

import "embed"

// FS holds the up and down scripts read by golang-migrate through its iofs
// source driver.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version this build expects.
const Version = 1

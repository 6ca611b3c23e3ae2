// Package migrations embeds the goose SQL migrations applied at
// startup when the postgres backend is selected.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

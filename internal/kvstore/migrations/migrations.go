// Package migrations embeds the goose migrations for the kv database.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS

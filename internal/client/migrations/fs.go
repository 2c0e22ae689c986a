// Package migrations embeds the client database's goose SQL migrations.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS

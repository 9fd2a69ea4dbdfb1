// Package migrations embeds the SQL schema of the local store.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS

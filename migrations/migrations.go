// Package migrations embeds the numbered schema files applied at startup.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

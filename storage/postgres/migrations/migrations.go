// Package migrations embeds the schema so the binary and the tests migrate
// the same way regardless of the working directory.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

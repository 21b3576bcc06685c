// Package catalog holds assets shared by the catalog binaries, such as the
// embedded database migrations.
package catalog

import "embed"

// Migrations contains the goose SQL migrations under migrations/.
//
//go:embed migrations/*.sql
var Migrations embed.FS

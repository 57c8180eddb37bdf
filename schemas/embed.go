// Package schemas embeds the MySQL schema applied by database.Migrate.
package schemas

import "embed"

// Migrations holds migrations/NNN_description.sql, applied in file name order.
//
//go:embed migrations/*.sql
var Migrations embed.FS

package database

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"sort"

	"github.com/jmoiron/sqlx"
)

const createMigrationsTable = `CREATE TABLE IF NOT EXISTS schema_migrations (
	version VARCHAR(255) NOT NULL PRIMARY KEY,
	applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

// Migrate applies every *.sql file under dir in migrations that has not been applied yet.
// Files run in lexical order, so they are expected to be named NNN_description.sql.
// It returns the versions applied by this call.
func Migrate(ctx context.Context, db *sqlx.DB, migrations fs.FS, dir string) ([]string, error) {
	if _, err := db.ExecContext(ctx, createMigrationsTable); err != nil {
		return nil, fmt.Errorf("db.ExecContext(create schema_migrations) > %w", err)
	}

	files, err := fs.Glob(migrations, path.Join(dir, "*.sql"))
	if err != nil {
		return nil, fmt.Errorf("fs.Glob(%s) > %w", dir, err)
	}
	sort.Strings(files)

	var applied []string
	if err := db.SelectContext(ctx, &applied, "SELECT version FROM schema_migrations ORDER BY version"); err != nil {
		return nil, fmt.Errorf("db.SelectContext(schema_migrations) > %w", err)
	}
	done := make(map[string]bool, len(applied))
	for _, v := range applied {
		done[v] = true
	}

	var versions []string
	for _, file := range files {
		version := path.Base(file)
		if done[version] {
			continue
		}

		content, err := fs.ReadFile(migrations, file)
		if err != nil {
			return versions, fmt.Errorf("fs.ReadFile(%s) > %w", file, err)
		}

		if err := RunInTx(ctx, db, func(ctx context.Context, tx *sqlx.Tx) error {
			if _, err := tx.ExecContext(ctx, string(content)); err != nil {
				return fmt.Errorf("apply %s: %w", version, err)
			}
			if _, err := tx.ExecContext(ctx, "INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
				return fmt.Errorf("record %s: %w", version, err)
			}
			return nil
		}); err != nil {
			return versions, err
		}
		versions = append(versions, version)
	}
	return versions, nil
}

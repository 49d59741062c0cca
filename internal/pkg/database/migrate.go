package database

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
	goosedb "github.com/pressly/goose/v3/database"

	"controlemat/internal/pkg/database/migrations"
)

// Dialect identifica o conjunto de migrações e o dialeto goose correspondente.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// GooseDialect retorna o nome aceito por goose.SetDialect.
func (d Dialect) GooseDialect() string {
	if d == DialectSQLite {
		return "sqlite3"
	}
	return "postgres"
}

// MigrationsFS retorna as migrações embutidas do dialeto.
func MigrationsFS(d Dialect) (fs.FS, error) {
	sub, err := fs.Sub(migrations.FS, string(d))
	if err != nil {
		return nil, fmt.Errorf("migrações do dialeto %s: %w", d, err)
	}
	return sub, nil
}

// ApplyMigrations aplica todas as migrações pendentes do dialeto.
func ApplyMigrations(db *sql.DB, d Dialect) error {
	fsys, err := MigrationsFS(d)
	if err != nil {
		return err
	}

	gd := goosedb.DialectPostgres
	if d == DialectSQLite {
		gd = goosedb.DialectSQLite3
	}

	provider, err := goose.NewProvider(gd, db, fsys)
	if err != nil {
		return fmt.Errorf("falha ao preparar migrações: %w", err)
	}
	if _, err := provider.Up(context.Background()); err != nil {
		return fmt.Errorf("falha ao aplicar migrações: %w", err)
	}
	return nil
}

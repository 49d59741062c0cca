package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"

	"controlemat/config"
	"controlemat/internal/pkg/database"
	"controlemat/internal/pkg/database/migrations"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("⚠️ Warning: .env file not found or failed to read. Loading configs from system environment only: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("goose: invalid config: %v", err)
	}

	var dialectName string
	flag.StringVar(&dialectName, "dialect", "", "postgres or sqlite (defaults to STORAGE_BACKEND)")
	flag.Parse()

	dialect := database.DialectSQLite
	if cfg.StorageBackend == config.BackendRemote {
		dialect = database.DialectPostgres
	}
	if dialectName != "" {
		dialect = database.Dialect(dialectName)
	}

	db, err := open(dialect, cfg)
	if err != nil {
		log.Fatalf("goose: failed to connect to DB: %v\n", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Fatalf("goose: failed to close DB: %v\n", err)
		}
	}()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect(dialect.GooseDialect()); err != nil {
		log.Fatalf("goose: %v", err)
	}

	arguments := flag.Args()
	if len(arguments) == 0 {
		arguments = []string{"up"} // Default to 'up' if no command is provided
	}

	command := arguments[0]
	var args []string
	if len(arguments) > 1 {
		args = arguments[1:]
	}

	// As migrações de cada dialeto ficam no subdiretório de mesmo nome do FS embutido.
	if err := goose.Run(command, db, string(dialect), args...); err != nil {
		log.Fatalf("goose %v: %v", command, err)
	}

	fmt.Printf("goose %s success\n", command)
}

// open conecta sem aplicar migrações; NewSQLiteDB já migra, então o SQLite
// é aberto direto pelo driver.
func open(d database.Dialect, cfg *config.Config) (*sql.DB, error) {
	switch d {
	case database.DialectPostgres:
		return database.NewPostgresDB(cfg.DatabaseURL)
	case database.DialectSQLite:
		return database.OpenSQLite(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("dialeto desconhecido %q", d)
	}
}

package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	// Driver SQLite em Go puro (sem cgo), registrado como "sqlite".
	_ "modernc.org/sqlite"
)

// NewSQLiteDB abre (ou cria) o arquivo do armazenamento local embarcado e
// aplica as migrações pendentes.
func NewSQLiteDB(path string) (*sql.DB, error) {
	db, err := OpenSQLite(path)
	if err != nil {
		return nil, err
	}
	if err := ApplyMigrations(db, DialectSQLite); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// OpenSQLite abre o arquivo sem tocar no esquema.
func OpenSQLite(path string) (*sql.DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("caminho do arquivo SQLite é obrigatório")
	}
	cleanPath := filepath.Clean(path)
	if dir := filepath.Dir(cleanPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("falha ao criar diretório do SQLite: %w", err)
		}
	}

	dsn := "file:" + cleanPath + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("falha ao abrir o SQLite: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("falha ao realizar o ping inicial no SQLite: %w", err)
	}

	// Um único escritor: as operações são serializadas numa só conexão.
	db.SetMaxOpenConns(1)
	return db, nil
}

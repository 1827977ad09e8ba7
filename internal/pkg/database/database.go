package database

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Open abre o pool de conexões para o driver configurado ("postgres" ou "sqlite").
func Open(driver, dataSourceName string) (*sql.DB, error) {
	switch driver {
	case "postgres":
		return NewPostgresDB(dataSourceName)
	case "sqlite":
		return NewSQLiteDB(dataSourceName)
	default:
		return nil, fmt.Errorf("driver de banco não suportado: %s", driver)
	}
}

// NewPostgresDB inicializa e configura o pool de conexões com o PostgreSQL.
// Retorna a conexão *sql.DB pronta para uso.
func NewPostgresDB(dataSourceName string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("falha ao abrir a conexão com o DB: %w", err)
	}

	// Garante que as credenciais e o servidor estão corretos
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("falha ao realizar o ping inicial no DB: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	return db, nil
}

// NewSQLiteDB abre um banco SQLite (arquivo ou ":memory:").
// Usado em desenvolvimento local e nos testes de repositório.
func NewSQLiteDB(dataSourceName string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("falha ao abrir o SQLite: %w", err)
	}

	// Um banco em memória existe por conexão; uma única conexão mantém o schema visível.
	db.SetMaxOpenConns(1)

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("falha ao realizar o ping inicial no SQLite: %w", err)
	}
	return db, nil
}

// pgUniqueViolation é o SQLSTATE unique_violation do PostgreSQL.
const pgUniqueViolation = "23505"

// IsUniqueViolation indica se o erro do driver é uma violação de constraint UNIQUE.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pgUniqueViolation
	}

	// O driver SQLite não exporta um tipo estável para isso; comparamos pela mensagem.
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// internal/db/db.go
package db

import (
    "database/sql"
    "fmt"
    "os"

    _ "github.com/lib/pq"
)

// Connect opens and pings a Postgres pool from the environment. The pool is
// returned to the caller rather than held as a package global so every
// component receives it as an explicit dependency.
func Connect() (*sql.DB, error) {
    dsn := os.Getenv("DATABASE_URL")
    if dsn == "" {
        user := os.Getenv("DB_USER")
        pass := os.Getenv("DB_PASSWORD")
        host := os.Getenv("DB_HOST")
        port := os.Getenv("DB_PORT")
        name := os.Getenv("DB_NAME")

        dsn = fmt.Sprintf(
            "postgres://%s:%s@%s:%s/%s?sslmode=disable",
            user, pass, host, port, name,
        )
    }

    conn, err := sql.Open("postgres", dsn)
    if err != nil {
        return nil, fmt.Errorf("failed to open DB: %w", err)
    }

    if err = conn.Ping(); err != nil {
        return nil, fmt.Errorf("failed to ping DB: %w", err)
    }

    return conn, nil
}

var schemaStatements = []string{
    `CREATE TABLE IF NOT EXISTS customers (
        customer_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
        first_name TEXT NOT NULL,
        last_name TEXT NOT NULL,
        phone_number TEXT NOT NULL,
        city TEXT NOT NULL,
        state TEXT NOT NULL,
        pin_code TEXT NOT NULL
    )`,
    `CREATE TABLE IF NOT EXISTS addresses (
        address_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
        customer_id UUID NOT NULL REFERENCES customers(customer_id),
        address_line TEXT NOT NULL,
        city TEXT NOT NULL,
        state TEXT NOT NULL,
        pin_code TEXT NOT NULL
    )`,
    `CREATE TABLE IF NOT EXISTS customer_event_log (
        id BIGSERIAL PRIMARY KEY,
        event_type TEXT NOT NULL,
        customer_id UUID NOT NULL,
        occurred_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
    )`,
}

// EnsureSchema creates the tables if they don't exist. Safe to run on every
// startup.
func EnsureSchema(conn *sql.DB) error {
    for _, stmt := range schemaStatements {
        if _, err := conn.Exec(stmt); err != nil {
            return fmt.Errorf("failed to create tables: %w", err)
        }
    }
    return nil
}

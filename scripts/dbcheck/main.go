// Command dbcheck connects to DATABASE_URL and prints the row count of every table.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"kirana/internal/database"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Unable to read .env: %v\n", err)
		os.Exit(1)
	}

	connString := os.Getenv("DATABASE_URL")
	if connString == "" {
		fmt.Fprintln(os.Stderr, "DATABASE_URL is not set")
		os.Exit(1)
	}

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, connString)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close(ctx)

	var dbName string
	err = conn.QueryRow(ctx, "SELECT current_database()").Scan(&dbName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "QueryRow failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully connected to database: %s\n\n", dbName)

	failed := false
	for _, table := range database.Tables {
		var count int
		query := fmt.Sprintf("SELECT COUNT(*) FROM %s", pgx.Identifier{table}.Sanitize())
		if err := conn.QueryRow(ctx, query).Scan(&count); err != nil {
			fmt.Printf("  %-14s error: %v\n", table, err)
			failed = true
			continue
		}
		fmt.Printf("  %-14s %d rows\n", table, count)
	}

	if failed {
		os.Exit(1)
	}
}

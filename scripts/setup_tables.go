package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Creates the blog tables for the current environment. Run with:
//
//	go run scripts/setup_tables.go
func main() {
	dbURL := os.Getenv("SUPABASE_DB_URL")
	if dbURL == "" {
		log.Fatal("SUPABASE_DB_URL environment variable is required")
	}

	// Read environment to determine table prefix
	env := os.Getenv("ENVIRONMENT")
	if env == "" {
		env = "dev"
	}
	prefix := env + "_"

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() { _ = db.Close() }() // Error ignored: script exiting

	schemaSQL := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %[1]sprofiles (
			id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
			user_id uuid UNIQUE NOT NULL,
			full_name text,
			bio text,
			avatar_url text
		);

		CREATE TABLE IF NOT EXISTS %[1]sposts (
			id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
			title text NOT NULL,
			slug text UNIQUE NOT NULL,
			excerpt text,
			content text NOT NULL,
			cover_image text,
			published boolean NOT NULL DEFAULT false,
			published_at timestamptz,
			author_id uuid NOT NULL REFERENCES %[1]sprofiles(id) ON DELETE CASCADE,
			created_at timestamptz NOT NULL DEFAULT now()
		);

		CREATE INDEX IF NOT EXISTS %[1]sposts_published_at_idx
			ON %[1]sposts (published_at DESC) WHERE published;
		CREATE INDEX IF NOT EXISTS %[1]sposts_author_created_idx
			ON %[1]sposts (author_id, created_at DESC);
	`, prefix)

	if _, err := db.Exec(schemaSQL); err != nil {
		log.Fatalf("Failed to create tables: %v", err)
	}

	fmt.Printf("Tables created successfully (prefix: %s)\n", prefix)
}

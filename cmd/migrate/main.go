package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"bottoms-up/internal/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

func main() {
	dir := flag.String("dir", "db/migrations", "directory holding the migration files")
	down := flag.Int("down", 0, "roll back this many migrations instead of applying")
	flag.Parse()

	if err := config.LoadDotEnv(".env"); err != nil {
		log.Printf("no .env loaded: %v", err)
	}
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL must be set")
	}

	m, err := migrate.New("file://"+*dir, dsn)
	if err != nil {
		log.Fatalf("cannot open migrations in %s: %v", *dir, err)
	}

	if *down > 0 {
		if err := m.Steps(-*down); err != nil {
			log.Fatalf("rollback failed: %v", err)
		}
		log.Printf("rolled back %d migration(s)", *down)
		return
	}

	switch err := m.Up(); {
	case err == nil:
		log.Println("schema migrated")
	case errors.Is(err, migrate.ErrNoChange):
		log.Println("schema already current")
	default:
		log.Fatalf("migrate up failed: %v", err)
	}
}

package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Fatalf("error opening database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("error pinging database: %v", err)
	}

	sqlBytes, err := os.ReadFile("migrations/migrations.sql")
	if err != nil {
		log.Fatalf("error reading migrations file: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	log.Println("Applying migrations...")
	if _, err := db.ExecContext(ctx, string(sqlBytes)); err != nil {
		log.Fatalf("error applying migrations: %v", err)
	}

	log.Println("Migrations applied")
}

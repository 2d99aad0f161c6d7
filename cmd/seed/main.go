package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/oksasatya/careertrack/config"
	"github.com/oksasatya/careertrack/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "demo@careertrack.dev"
	password := "password123"
	name := "Demo User"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id string
	err = db.QueryRow(`
		INSERT INTO users (email, password_hash, name, avatar_url)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO UPDATE SET name=EXCLUDED.name
		RETURNING id
	`, email, hash, name, "").Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s password=%s\n", id, email, password)

	if _, err := db.Exec(`
		INSERT INTO skills (user_id, name, category, proficiency)
		VALUES ($1, 'Go', 'Backend', 'advanced'), ($1, 'PostgreSQL', 'Backend', 'intermediate')
		ON CONFLICT DO NOTHING
	`, id); err != nil {
		log.Fatalf("failed to seed skills: %v", err)
	}

	if _, err := db.Exec(`
		INSERT INTO job_postings (user_id, title, company, location, status, deadline, notes)
		VALUES ($1, 'Backend Engineer', 'Acme Corp', 'Remote', 'applied', now() + interval '10 days', 'Referred by a friend.')
	`, id); err != nil {
		log.Fatalf("failed to seed job posting: %v", err)
	}
	fmt.Println("seeded demo skills and one job posting")
}

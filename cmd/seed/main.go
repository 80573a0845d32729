package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/devsenior/property-service/config"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	// Demo account. Passwords are stored as-is; there is no hashing step.
	var userID int64
	err = db.QueryRow(`
		INSERT INTO users (full_name, email, password)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET full_name = EXCLUDED.full_name
		RETURNING id
	`, "Demo User", "demo@example.com", "password123").Scan(&userID)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%d email=demo@example.com password=password123\n", userID)

	listings := []struct {
		address     string
		city        string
		price       float64
		bedrooms    int
		bathrooms   int
		description string
	}{
		{"Calle Mayor 123", "Madrid", 250000.0, 3, 2, "Hermosa casa en el centro"},
		{"Gran Via 45", "Madrid", 410000.0, 4, 3, "Piso amplio junto a Gran Via"},
		{"Passeig de Gracia 10", "Barcelona", 520000.0, 3, 2, "Atico con terraza"},
	}
	for _, l := range listings {
		var id int64
		err := db.QueryRow(`
			INSERT INTO properties (address, city, price, bedrooms, bathrooms, description)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id
		`, l.address, l.city, l.price, l.bedrooms, l.bathrooms, l.description).Scan(&id)
		if err != nil {
			log.Fatalf("failed to seed property: %v", err)
		}
		fmt.Printf("seeded property: id=%d city=%s\n", id, l.city)
	}
}

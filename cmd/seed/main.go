// Command main runs the database seeder for Inkwell.
package main

import (
	"flag"
	"log"

	"inkwell/internal/config"
	"inkwell/internal/database"
	"inkwell/internal/seed"
)

func main() {
	demo := flag.Bool("demo", true, "Seed demo users, categories, posts and comments")
	flag.Parse()

	log.Println("Database Seeder")
	log.Println("===============")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Roles(db); err != nil {
		log.Fatalf("Built-in role seeding failed: %v", err)
	}

	if *demo {
		if err := seed.Demo(db); err != nil {
			log.Fatalf("Demo seeding failed: %v", err)
		}
	}

	log.Println("All done! Demo users share the password: " + seed.DefaultPassword)
}

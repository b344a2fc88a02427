// Command seed populates the configured database with demo data.
package main

import (
	"flag"
	"log"

	"blogsphere/internal/config"
	"blogsphere/internal/database"
	"blogsphere/internal/seed"
)

func main() {
	opts := seed.DefaultOptions()
	flag.IntVar(&opts.Users, "users", opts.Users, "number of users to create")
	flag.IntVar(&opts.ArticlesPerUser, "articles", opts.ArticlesPerUser, "articles per user")
	flag.IntVar(&opts.CommentsPerArticle, "comments", opts.CommentsPerArticle, "comments per published article")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.IsProduction() {
		log.Fatal("Refusing to seed a production database")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Seed(db, opts); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Printf("Done. All accounts use password %q", seed.DemoPassword)
}

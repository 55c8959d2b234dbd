// Command main runs the database seeder for Apt.
package main

import (
	"flag"
	"log"

	"apt/internal/config"
	"apt/internal/database"
	"apt/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 8, "Number of users to create")
	numPosts := flag.Int("posts", 20, "Number of posts to create")
	numReels := flag.Int("reels", 6, "Number of reels to create")
	shouldClean := flag.Bool("clean", false, "Clean database before seeding")
	flag.Parse()

	log.Println("Database Seeder")
	log.Printf("Target: %d users, %d posts, %d reels, clean=%v\n", *numUsers, *numPosts, *numReels, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Seed(db, seed.Options{
		NumUsers:    *numUsers,
		NumPosts:    *numPosts,
		NumReels:    *numReels,
		ShouldClean: *shouldClean,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("All done! The demo accounts are alice/alicepw and bob/bobpw.")
	log.Println("Filler users have the password: password123")
}

// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"time"

	"apt/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	NumReels    int
	ShouldClean bool
}

// DefaultOptions returns a small data set suitable for local development.
func DefaultOptions() Options {
	return Options{NumUsers: 8, NumPosts: 20, NumReels: 6}
}

// baseUsers are the two well-known demo accounts. Seeding is idempotent with
// respect to them: rerunning leaves existing rows alone.
var baseUsers = []struct {
	username string
	email    string
	password string
	bio      string
	loom     models.Loom
}{
	{"alice", "alice@apt.local", "alicepw", "Coffee, canvases, and long walks.", models.LoomStudy},
	{"bob", "bob@apt.local", "bobpw", "Lifting things up and putting them down.", models.LoomGym},
}

// Seed populates the database with demo data.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Starting database seeding with %d users and %d posts...", opts.NumUsers, opts.NumPosts)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway...")
		}
	}

	gofakeit.Seed(time.Now().UnixNano())

	users, err := createBaseUsers(db)
	if err != nil {
		return fmt.Errorf("failed to create base users: %w", err)
	}

	extra, err := createFillerUsers(db, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create filler users: %w", err)
	}
	users = append(users, extra...)
	log.Printf("%d users available", len(users))

	if err := createPosts(db, users, opts.NumPosts); err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	if err := createReels(db, users, opts.NumReels); err != nil {
		return fmt.Errorf("failed to create reels: %w", err)
	}
	if err := createMessages(db, users); err != nil {
		return fmt.Errorf("failed to create messages: %w", err)
	}

	log.Println("Database seeding completed successfully")
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("Clearing existing data...")
	sql := `TRUNCATE TABLE comments, likes, posts, reels, messages, users RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}

func createBaseUsers(db *gorm.DB) ([]models.User, error) {
	users := make([]models.User, 0, len(baseUsers))
	for _, b := range baseUsers {
		var existing models.User
		err := db.Where("username = ?", b.username).First(&existing).Error
		if err == nil {
			users = append(users, existing)
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return nil, err
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user := models.User{
			Username:     b.username,
			Email:        b.email,
			PasswordHash: string(hash),
			Bio:          b.bio,
			Loom:         b.loom,
		}
		if err := db.Create(&user).Error; err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func createFillerUsers(db *gorm.DB, n int) ([]models.User, error) {
	if n <= len(baseUsers) {
		return nil, nil
	}
	n -= len(baseUsers)

	// One shared hash keeps seeding fast; these are throwaway dev accounts.
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, n)
	for i := 0; i < n; i++ {
		user := models.User{
			Username:     fmt.Sprintf("%s%d", gofakeit.Username(), gofakeit.Number(100, 999)),
			Email:        gofakeit.Email(),
			PasswordHash: string(hash),
			Bio:          gofakeit.Sentence(10),
			Loom:         models.Looms[gofakeit.Number(0, len(models.Looms)-1)],
		}
		if err := db.Create(&user).Error; err != nil {
			// Random usernames can collide; skip and move on.
			continue
		}
		users = append(users, user)
	}
	return users, nil
}

func createPosts(db *gorm.DB, users []models.User, n int) error {
	if len(users) == 0 {
		return nil
	}
	var count int64
	if err := db.Model(&models.Post{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for i := 0; i < n; i++ {
		author := users[gofakeit.Number(0, len(users)-1)]
		post := models.Post{
			Author:   author.Username,
			Caption:  gofakeit.Sentence(gofakeit.Number(4, 12)),
			MediaURL: fmt.Sprintf("https://picsum.photos/seed/%s/800/800", gofakeit.UUID()),
		}
		if err := db.Create(&post).Error; err != nil {
			return err
		}
		if gofakeit.Bool() {
			comment := models.Comment{
				PostID: post.ID,
				Author: users[gofakeit.Number(0, len(users)-1)].Username,
				Text:   gofakeit.Sentence(gofakeit.Number(3, 8)),
			}
			if err := db.Create(&comment).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func createReels(db *gorm.DB, users []models.User, n int) error {
	if len(users) == 0 {
		return nil
	}
	var count int64
	if err := db.Model(&models.Reel{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for i := 0; i < n; i++ {
		reel := models.Reel{
			Author:   users[gofakeit.Number(0, len(users)-1)].Username,
			VideoURL: fmt.Sprintf("https://videos.apt.local/%s.mp4", gofakeit.UUID()),
		}
		if err := db.Create(&reel).Error; err != nil {
			return err
		}
	}
	return nil
}

func createMessages(db *gorm.DB, users []models.User) error {
	if len(users) < 2 {
		return nil
	}
	var count int64
	if err := db.Model(&models.Message{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	// A few public room greetings plus a private exchange between the two
	// demo accounts.
	for i := 0; i < 5; i++ {
		msg := models.Message{
			Sender: users[gofakeit.Number(0, len(users)-1)].Username,
			Text:   gofakeit.Sentence(gofakeit.Number(3, 10)),
		}
		if err := db.Create(&msg).Error; err != nil {
			return err
		}
	}

	alice, bob := users[0].Username, users[1].Username
	exchange := []models.Message{
		{Sender: alice, Receiver: &bob, Text: "Hey, are you coming to the study session?"},
		{Sender: bob, Receiver: &alice, Text: "After the gym. Save me a seat."},
	}
	for i := range exchange {
		if err := db.Create(&exchange[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

// Package models contains data structures for the application's domain models.
package models

import "time"

// User represents a registered account in the Apt application.
//
// Author fields elsewhere (Post.Author, Comment.Author, ...) reference
// Username as a soft reference: rows survive even if the username no longer
// resolves to a live user.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Bio          string    `gorm:"type:text;default:''" json:"bio"`
	Loom         Loom      `gorm:"type:varchar(16);not null;default:'none'" json:"loom"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Principal is the authenticated identity attached to a request. It carries
// the loom so the presentation layer can theme without a second lookup.
type Principal struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Loom     Loom   `json:"loom"`
}

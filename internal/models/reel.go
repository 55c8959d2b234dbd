package models

import "time"

// Reel is a short-video entry. Reels are append-only and carry no
// like/comment surface.
type Reel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Author    string    `gorm:"index;not null" json:"author"`
	VideoURL  string    `gorm:"not null" json:"video_url"`
	CreatedAt time.Time `json:"created_at"`
}

package models

import "time"

// Post represents a feed post in the Apt application.
type Post struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Author   string `gorm:"index;not null" json:"author"`
	Caption  string `gorm:"type:text" json:"caption"`
	MediaURL string `gorm:"not null" json:"media_url"`
	// LikeCount is the cached like tally. It is kept equal to the number of
	// Like rows for this post by the repository's toggle transaction.
	LikeCount int       `gorm:"not null;default:0" json:"like_count"`
	Comments  []Comment `gorm:"foreignKey:PostID" json:"comments"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Like records that a user liked a post. The composite unique index is the
// at-most-one-like-per-user-per-post invariant.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_likes_post_author" json:"post_id"`
	Author    string    `gorm:"not null;uniqueIndex:idx_likes_post_author" json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

// Comment is an append-only comment on a post, ordered by creation.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"index;not null" json:"post_id"`
	Author    string    `gorm:"not null" json:"author"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

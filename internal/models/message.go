package models

import "time"

// Message is an append-only chat message. A nil Receiver means the message
// belongs to the public room; otherwise it is visible only to the
// sender/receiver pair.
type Message struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Sender    string    `gorm:"index;not null" json:"sender"`
	Receiver  *string   `gorm:"index" json:"receiver,omitempty"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// Public reports whether the message belongs to the public room.
func (m *Message) Public() bool {
	return m.Receiver == nil
}

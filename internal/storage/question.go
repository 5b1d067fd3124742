package storage

import "time"

// Question is a free-text message a user sent after choosing "ask a question".
type Question struct {
	ID        int64     `db:"id" json:"id,omitempty"`
	UserID    int64     `db:"user_id" json:"user_id"`
	ChatID    int64     `db:"chat_id" json:"chat_id"`
	Username  string    `db:"username" json:"username,omitempty"`
	Text      string    `db:"text" json:"text"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

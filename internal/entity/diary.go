package entity

import (
	"errors"
	"time"
)

var ErrDiaryEntryNotFound = errors.New("diary entry not found")

type DiaryEntry struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Emotion   string    `json:"emotion"`
	CreatedAt time.Time `json:"createdAt"`
}

// DiaryEntryUpdate carries the writable fields of a partial update.
// Nil fields keep their stored value.
type DiaryEntryUpdate struct {
	Title   *string
	Content *string
	Emotion *string
}

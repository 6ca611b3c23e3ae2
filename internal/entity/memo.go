package entity

import (
	"errors"
	"time"
)

var ErrMemoNotFound = errors.New("memo not found")

type Memo struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// MemoUpdate carries the writable fields of a partial update.
// A nil Content keeps the stored value.
type MemoUpdate struct {
	Content *string
}

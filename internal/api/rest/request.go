package rest

// Create bodies require every writable field; id and createdAt are
// always server-assigned. Update bodies accept any subset, nil meaning
// "keep the stored value".

type createDiaryEntryRequest struct {
	Title   string `json:"title" validate:"required,notblank"`
	Content string `json:"content" validate:"required,notblank"`
	Emotion string `json:"emotion" validate:"required"`
}

type updateDiaryEntryRequest struct {
	Title   *string `json:"title" validate:"omitempty,notblank"`
	Content *string `json:"content" validate:"omitempty,notblank"`
	Emotion *string `json:"emotion"`
}

type createMemoRequest struct {
	Content string `json:"content" validate:"required,notblank"`
}

type updateMemoRequest struct {
	Content *string `json:"content" validate:"omitempty,notblank"`
}

package slogx

import "log/slog"

func Err(err error) slog.Attr {
	return slog.Any("err", err)
}

func EntryID(id string) slog.Attr {
	return slog.String("entry_id", id)
}

func MemoID(id string) slog.Attr {
	return slog.String("memo_id", id)
}

func UserID(id string) slog.Attr {
	return slog.String("user_id", id)
}

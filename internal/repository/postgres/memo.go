package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/daybook-app/daybook/internal/entity"
)

const memoColumns = `id, content, created_at`

func (r *Repo) GetAllMemos(ctx context.Context) ([]entity.Memo, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+memoColumns+` FROM memos ORDER BY created_at DESC, seq DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("get all memos: %v", err)
	}

	return scanMemos(rows)
}

func (r *Repo) GetMemo(ctx context.Context, id string) (entity.Memo, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+memoColumns+` FROM memos WHERE id = $1`,
		id,
	)

	memo, err := scanMemo(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Memo{}, entity.ErrMemoNotFound
		}
		return entity.Memo{}, fmt.Errorf("get memo: %v", err)
	}

	return memo, nil
}

func (r *Repo) CreateMemo(ctx context.Context, content string) (entity.Memo, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO memos (content) VALUES ($1) RETURNING `+memoColumns,
		content,
	)

	memo, err := scanMemo(row)
	if err != nil {
		return entity.Memo{}, fmt.Errorf("create memo: %v", err)
	}

	return memo, nil
}

func (r *Repo) UpdateMemo(ctx context.Context, id string, upd entity.MemoUpdate) (entity.Memo, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE memos SET content = COALESCE($2, content)
		 WHERE id = $1
		 RETURNING `+memoColumns,
		id, upd.Content,
	)

	memo, err := scanMemo(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Memo{}, entity.ErrMemoNotFound
		}
		return entity.Memo{}, fmt.Errorf("update memo: %v", err)
	}

	return memo, nil
}

func (r *Repo) DeleteMemo(ctx context.Context, id string) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM memos WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete memo: %v", err)
	}

	return tag.RowsAffected() > 0, nil
}

func scanMemo(row pgx.Row) (entity.Memo, error) {
	var m entity.Memo
	if err := row.Scan(&m.ID, &m.Content, &m.CreatedAt); err != nil {
		return entity.Memo{}, err
	}

	return m, nil
}

func scanMemos(rows pgx.Rows) ([]entity.Memo, error) {
	defer rows.Close()

	memos := make([]entity.Memo, 0)
	for rows.Next() {
		memo, err := scanMemo(rows)
		if err != nil {
			return nil, fmt.Errorf("scan memo: %v", err)
		}
		memos = append(memos, memo)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate memos: %v", err)
	}

	return memos, nil
}

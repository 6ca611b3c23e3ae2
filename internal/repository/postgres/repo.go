package postgres

import (
	"github.com/daybook-app/daybook/pkg/database"
)

type Repo struct {
	db *database.Database
}

func New(db *database.Database) *Repo {
	return &Repo{db: db}
}

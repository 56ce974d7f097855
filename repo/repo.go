package repo

import (
	"database/sql"

	"github.com/htol/bookshelf/logger"
)

type Repo struct {
	db   *sql.DB
	path string
}

var _ Repository = (*Repo)(nil)

func (r *Repo) Close() error {
	if r.db != nil {
		logger.Info("Closing database connection", "path", r.path)
		return r.db.Close()
	}
	return nil
}

func (r *Repo) Ping() error {
	if r.db != nil {
		return r.db.Ping()
	}
	return sql.ErrConnDone
}

// Path returns the database file the repository was opened on
func (r *Repo) Path() string {
	return r.path
}

package repo

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/htol/bookshelf/config"
	"github.com/htol/bookshelf/logger"
	_ "github.com/mattn/go-sqlite3"
)

// Open opens (creating if needed) the SQLite database at path and makes sure
// the schema exists before returning.
func Open(path string, cfg config.DatabaseConfig) (*Repo, error) {
	r := &Repo{path: path}

	db, err := sql.Open("sqlite3", "file:"+r.path+"?mode=rwc&_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", r.path, err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to database %s: %w", r.path, err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)

	if _, err := db.Exec("PRAGMA synchronous = NORMAL"); err != nil {
		logger.Warn("Failed to set synchronous mode", "error", err)
	}

	r.db = db

	if err := r.InitSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	logger.Debug("Database ready", "path", r.path)
	return r, nil
}

// InitSchema creates the books table and its index. It is safe to call more than once.
func (r *Repo) InitSchema() error {
	sqlStmt := `
           CREATE TABLE IF NOT EXISTS "books" (
                id integer primary key autoincrement not null,
                user_name varchar(50) not null,
                book_name varchar(100) not null,
                author_name varchar(100) not null,
                genre varchar(50) not null,
                rating text not null
            );
           CREATE INDEX IF NOT EXISTS [I_user_name] ON "books" ([user_name]);
  	    `
	if _, err := r.db.Exec(sqlStmt); err != nil {
		return storageErr("init schema", err)
	}
	return nil
}

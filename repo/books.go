package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/htol/bookshelf/book"
	"github.com/htol/bookshelf/logger"
)

const selectBooks = `SELECT id, user_name, book_name, author_name, genre, rating FROM books`

func (r *Repo) Insert(ctx context.Context, record *book.Record) (int64, error) {
	if record == nil {
		return 0, storageErr("insert", errors.New("nil record"))
	}

	const INSERT_BOOK = `INSERT INTO books(user_name, book_name, author_name, genre, rating) VALUES(?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, INSERT_BOOK,
		record.SubmitterName, record.Title, record.Author, record.Genre, record.Rating)
	if err != nil {
		return 0, storageErr("insert", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, storageErr("insert", fmt.Errorf("last insert id: %w", err))
	}
	record.ID = id

	logger.Debug("Book inserted", "book_id", id, "user_name", record.SubmitterName)
	return id, nil
}

func (r *Repo) ListAll(ctx context.Context) ([]book.Record, error) {
	rows, err := r.db.QueryContext(ctx, selectBooks+` ORDER BY id`)
	if err != nil {
		return nil, storageErr("list books", err)
	}
	return scanRecords(rows, "list books")
}

func (r *Repo) ListBySubmitter(ctx context.Context, name string) ([]book.Record, error) {
	rows, err := r.db.QueryContext(ctx, selectBooks+` WHERE user_name = ? ORDER BY id`, name)
	if err != nil {
		return nil, storageErr("list books by submitter", err)
	}
	return scanRecords(rows, "list books by submitter")
}

func (r *Repo) GetByID(ctx context.Context, id int64) (*book.Record, error) {
	row := r.db.QueryRowContext(ctx, selectBooks+` WHERE id = ?`, id)

	var b book.Record
	if err := row.Scan(&b.ID, &b.SubmitterName, &b.Title, &b.Author, &b.Genre, &b.Rating); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, storageErr("get book", err)
	}
	return &b, nil
}

func (r *Repo) DeleteByID(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM books WHERE id = ?`, id)
	if err != nil {
		return storageErr("delete book", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return storageErr("delete book", fmt.Errorf("rows affected: %w", err))
	}
	if n == 0 {
		return ErrNotFound
	}

	logger.Info("Book deleted", "book_id", id)
	return nil
}

func (r *Repo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM books`).Scan(&n); err != nil {
		return 0, storageErr("count books", err)
	}
	return n, nil
}

func scanRecords(rows *sql.Rows, op string) ([]book.Record, error) {
	defer rows.Close()

	records := make([]book.Record, 0)
	for rows.Next() {
		var b book.Record
		if err := rows.Scan(&b.ID, &b.SubmitterName, &b.Title, &b.Author, &b.Genre, &b.Rating); err != nil {
			return nil, storageErr(op, fmt.Errorf("scan book: %w", err))
		}
		records = append(records, b)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(op, fmt.Errorf("iterate books: %w", err))
	}
	return records, nil
}

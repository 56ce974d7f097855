package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/htol/bookshelf/book"
)

// ErrNotFound is returned when a record is not found in the repository
var ErrNotFound = errors.New("record not found")

// StorageError reports a persistence fault in the underlying database
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func storageErr(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}

// Repository defines the interface for data access operations
type Repository interface {
	// Close closes the database connection
	Close() error

	// Health check
	Ping() error

	// InitSchema creates the books table if it does not exist
	InitSchema() error

	Insert(ctx context.Context, record *book.Record) (int64, error)
	ListAll(ctx context.Context) ([]book.Record, error)
	// ListBySubmitter matches the submitter name exactly; an empty name is not a wildcard
	ListBySubmitter(ctx context.Context, name string) ([]book.Record, error)
	GetByID(ctx context.Context, id int64) (*book.Record, error)
	DeleteByID(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}

// Package service provides business logic layer between HTTP handlers and repository
package service

import (
	"context"
	"fmt"

	"github.com/htol/bookshelf/book"
	"github.com/htol/bookshelf/repo"
)

// Service provides business logic for the application
type Service struct {
	repo repo.Repository
}

// New creates a new Service with the given repository
func New(repo repo.Repository) *Service {
	return &Service{repo: repo}
}

// AddBook stores a new record and returns its id
func (s *Service) AddBook(ctx context.Context, record *book.Record) (int64, error) {
	id, err := s.repo.Insert(ctx, record)
	if err != nil {
		return 0, fmt.Errorf("add book: %w", err)
	}
	return id, nil
}

// Library returns every record in insertion order
func (s *Service) Library(ctx context.Context) ([]book.Record, error) {
	records, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list library: %w", err)
	}
	return records, nil
}

// SearchBySubmitter returns the records whose submitter name equals name exactly
func (s *Service) SearchBySubmitter(ctx context.Context, name string) ([]book.Record, error) {
	records, err := s.repo.ListBySubmitter(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("search by submitter %q: %w", name, err)
	}
	return records, nil
}

// DeleteBook removes the record with the given id.
// repo.ErrNotFound is returned when no such record exists.
func (s *Service) DeleteBook(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return fmt.Errorf("delete book %d: %w", id, err)
	}
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("delete book %d: %w", id, err)
	}
	return nil
}

// Health

// Ping checks the health of the service and its dependencies
func (s *Service) Ping(ctx context.Context) error {
	if err := s.repo.Ping(); err != nil {
		return fmt.Errorf("repository ping: %w", err)
	}
	return nil
}

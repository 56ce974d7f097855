package repo

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/htol/bookshelf/book"
	"github.com/htol/bookshelf/config"
	"github.com/htol/bookshelf/logger"
)

func init() {
	logger.Init("error")
}

func openTestRepo(t testing.TB) *Repo {
	t.Helper()
	path := filepath.Join(t.TempDir(), "books.db")
	r, err := Open(path, config.Default().Database)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := r.Close(); err != nil {
			t.Logf("Error closing storage: %v", err)
		}
	})
	return r
}

func newRecord(submitter, title string) *book.Record {
	return &book.Record{
		SubmitterName: submitter,
		Title:         title,
		Author:        "Author of " + title,
		Genre:         "Fiction",
		Rating:        "4",
	}
}

func TestInitSchema_Idempotent(t *testing.T) {
	ctx := context.Background()
	r := openTestRepo(t)

	require.NoError(t, r.InitSchema())
	require.NoError(t, r.InitSchema())

	var tables int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'books'`).Scan(&tables)
	require.NoError(t, err)
	assert.Equal(t, 1, tables)

	n, err := r.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestOpen_ReopenKeepsRows(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "books.db")

	r1, err := Open(path, config.Default().Database)
	require.NoError(t, err)
	_, err = r1.Insert(ctx, newRecord("alice", "Dune"))
	require.NoError(t, err)
	require.NoError(t, r1.Close())

	r2, err := Open(path, config.Default().Database)
	require.NoError(t, err)
	defer r2.Close()

	n, err := r2.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestInsert_ThenListAll(t *testing.T) {
	ctx := context.Background()
	r := openTestRepo(t)

	first := newRecord("alice", "Dune")
	id1, err := r.Insert(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, id1, first.ID)

	second := newRecord("bob", "Emma")
	id2, err := r.Insert(ctx, second)
	require.NoError(t, err)
	assert.NotEqual(t, id1, id2)

	all, err := r.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, *first, all[0])
	assert.Equal(t, *second, all[1])
}

func TestInsert_EmptyFieldsAllowed(t *testing.T) {
	ctx := context.Background()
	r := openTestRepo(t)

	_, err := r.Insert(ctx, &book.Record{})
	require.NoError(t, err)

	all, err := r.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "", all[0].SubmitterName)
	assert.Equal(t, "", all[0].Rating)
}

func TestInsert_RatingStoredAsSubmitted(t *testing.T) {
	ctx := context.Background()
	r := openTestRepo(t)

	tests := []string{"5", "great", "10", "05", "5.0", "1e3", " 5", "99999999999999999999"}
	for _, rating := range tests {
		rec := newRecord("carol", "Rated "+rating)
		rec.Rating = rating
		_, err := r.Insert(ctx, rec)
		require.NoError(t, err)

		got, err := r.GetByID(ctx, rec.ID)
		require.NoError(t, err)
		assert.Equal(t, rating, got.Rating)
	}
}

func TestInsert_Nil(t *testing.T) {
	r := openTestRepo(t)

	_, err := r.Insert(context.Background(), nil)
	var se *StorageError
	assert.ErrorAs(t, err, &se)
}

func TestListBySubmitter_ExactMatch(t *testing.T) {
	ctx := context.Background()
	r := openTestRepo(t)

	for _, rec := range []*book.Record{
		newRecord("alice", "Dune"),
		newRecord("Alice", "Emma"),
		newRecord("alice", "Ulysses"),
		newRecord("alicia", "Beloved"),
		newRecord("", "Anonymous"),
	} {
		_, err := r.Insert(ctx, rec)
		require.NoError(t, err)
	}

	tests := []struct {
		name string
		want []string
	}{
		{"alice", []string{"Dune", "Ulysses"}},
		{"Alice", []string{"Emma"}},
		{"ali", nil},
		{"", []string{"Anonymous"}},
		{"nobody", nil},
	}

	all, err := r.ListAll(ctx)
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run("name="+tt.name, func(t *testing.T) {
			got, err := r.ListBySubmitter(ctx, tt.name)
			require.NoError(t, err)
			require.NotNil(t, got)

			var titles []string
			for _, b := range got {
				titles = append(titles, b.Title)
			}
			assert.Equal(t, tt.want, titles)

			// the result is exactly the matching subset of ListAll
			var subset []book.Record
			for _, b := range all {
				if b.SubmitterName == tt.name {
					subset = append(subset, b)
				}
			}
			assert.ElementsMatch(t, subset, got)
		})
	}
}

func TestDeleteByID(t *testing.T) {
	ctx := context.Background()
	r := openTestRepo(t)

	keep := newRecord("alice", "Dune")
	drop := newRecord("alice", "Emma")
	_, err := r.Insert(ctx, keep)
	require.NoError(t, err)
	_, err = r.Insert(ctx, drop)
	require.NoError(t, err)

	require.NoError(t, r.DeleteByID(ctx, drop.ID))

	all, err := r.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []book.Record{*keep}, all)

	_, err = r.GetByID(ctx, drop.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteByID_NotFound(t *testing.T) {
	ctx := context.Background()
	r := openTestRepo(t)

	_, err := r.Insert(ctx, newRecord("alice", "Dune"))
	require.NoError(t, err)

	err = r.DeleteByID(ctx, 9999)
	assert.ErrorIs(t, err, ErrNotFound)

	n, err := r.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestDeleteByID_ConcurrentSameID(t *testing.T) {
	ctx := context.Background()
	r := openTestRepo(t)

	rec := newRecord("alice", "Dune")
	_, err := r.Insert(ctx, rec)
	require.NoError(t, err)

	const workers = 4
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = r.DeleteByID(ctx, rec.ID)
		}(i)
	}
	wg.Wait()

	var ok, notFound int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case err == ErrNotFound:
			notFound++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, workers-1, notFound)
}

func TestClosedRepo_StorageError(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "books.db")
	r, err := Open(path, config.Default().Database)
	require.NoError(t, err)
	require.NoError(t, r.Close())

	_, err = r.ListAll(ctx)
	var se *StorageError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "list books", se.Op)

	err = r.DeleteByID(ctx, 1)
	require.ErrorAs(t, err, &se)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestPing(t *testing.T) {
	r := openTestRepo(t)
	assert.NoError(t, r.Ping())

	var empty Repo
	assert.Error(t, empty.Ping())
}

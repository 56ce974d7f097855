package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/htol/bookshelf/auth"
	"github.com/htol/bookshelf/book"
	"github.com/htol/bookshelf/logger"
	"github.com/htol/bookshelf/repo"
	"github.com/htol/bookshelf/service"
	"github.com/htol/bookshelf/validator"
)

const deleteFailedMessage = "There was a problem deleting that book...."

func viewHandler(name, heading string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		render(w, name, page{Heading: heading})
	})
}

func loginHandler(checker auth.Checker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := checker.Check(r.PostFormValue("username"), r.PostFormValue("password"))
		if !ok {
			render(w, "login.html", page{Heading: "log in"})
			return
		}
		logger.Debug("Login accepted", "role", role)
		http.Redirect(w, r, role.Landing(), http.StatusFound)
	})
}

func libraryHandler(svc *service.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		records, err := svc.Library(r.Context())
		if err != nil {
			respondWithError(w, "Failed to list books", err, http.StatusInternalServerError)
			return
		}
		render(w, "library.html", page{Heading: "library", Records: records, Deletable: true})
	})
}

func addBookHandler(svc *service.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			respondWithValidationError(w, "malformed form body")
			return
		}
		if err := validator.RequireFields(r.PostForm, book.RecordFields...); err != nil {
			respondWithValidationError(w, err.Error())
			return
		}

		if _, err := svc.AddBook(r.Context(), book.FromForm(r.PostForm.Get)); err != nil {
			respondWithError(w, "Failed to add book", err, http.StatusInternalServerError)
			return
		}
		http.Redirect(w, r, "/thank_you", http.StatusFound)
	})
}

func deleteBookHandler(svc *service.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
		if err != nil || validator.ValidateID(id) != nil {
			http.NotFound(w, r)
			return
		}

		err = svc.DeleteBook(r.Context(), id)
		switch {
		case err == nil:
			http.Redirect(w, r, "/library", http.StatusFound)
		case errors.Is(err, repo.ErrNotFound):
			http.NotFound(w, r)
		default:
			logger.Error("Failed to delete book", "book_id", id, "error", err)
			respondWithText(w, deleteFailedMessage)
		}
	})
}

func searchHandler(svc *service.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			respondWithValidationError(w, "malformed form body")
			return
		}
		// without a submitter nothing can match; a present empty name is searched as is
		values, ok := r.PostForm[book.FieldSubmitter]
		if !ok || len(values) == 0 {
			render(w, "search.html", page{Heading: "search results", Records: []book.Record{}})
			return
		}
		name := values[0]

		records, err := svc.SearchBySubmitter(r.Context(), name)
		if err != nil {
			respondWithError(w, "Failed to search books", err, http.StatusInternalServerError)
			return
		}
		render(w, "search.html", page{Heading: "search results", Records: records, Query: name})
	})
}

func healthCheckHandler(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Ping(r.Context()); err != nil {
			respondWithError(w, "service unavailable", err, http.StatusServiceUnavailable)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(map[string]string{
			"status": "healthy",
		}); err != nil {
			logger.Error("Failed to encode health check response", "error", err)
		}
	}
}

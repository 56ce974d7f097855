package api

import (
	"net/http"

	"github.com/htol/bookshelf/auth"
	"github.com/htol/bookshelf/middleware"
	"github.com/htol/bookshelf/service"
)

// NewHandler creates and returns the main HTTP handler (router) for the application
func NewHandler(svc *service.Service, checker auth.Checker) http.Handler {
	mux := http.NewServeMux()

	mux.Handle("GET /{$}", viewHandler("login.html", "log in"))
	mux.Handle("POST /login", loginHandler(checker))
	mux.Handle("GET /add_books", viewHandler("add_book.html", "add a book"))
	mux.Handle("GET /library", libraryHandler(svc))
	mux.Handle("POST /books", addBookHandler(svc))
	mux.Handle("GET /thank_you", viewHandler("thank_you.html", "thank you!"))
	mux.Handle("GET /delete/{id}", deleteBookHandler(svc))
	mux.Handle("POST /search", searchHandler(svc))
	mux.HandleFunc("GET /health", healthCheckHandler(svc))

	// Apply middleware chain
	chain := middleware.Chain(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
	)

	return chain(mux)
}

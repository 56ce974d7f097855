// Package book defines the catalogued record and its form field names
package book

// Form field names accepted by the add-book and search forms
const (
	FieldSubmitter = "user_name"
	FieldTitle     = "book_name"
	FieldAuthor    = "author_name"
	FieldGenre     = "genre"
	FieldRating    = "rating"
)

// RecordFields lists every field a new record must carry, in form order
var RecordFields = []string{FieldSubmitter, FieldTitle, FieldAuthor, FieldGenre, FieldRating}

// Record is one submitted book together with the name of whoever submitted it
type Record struct {
	ID            int64  `json:"id"`
	SubmitterName string `json:"user_name"`
	Title         string `json:"book_name"`
	Author        string `json:"author_name"`
	Genre         string `json:"genre"`
	// Rating is kept exactly as submitted; it is not required to be numeric.
	Rating string `json:"rating"`
}

// FromForm builds a record from already validated form values
func FromForm(get func(string) string) *Record {
	return &Record{
		SubmitterName: get(FieldSubmitter),
		Title:         get(FieldTitle),
		Author:        get(FieldAuthor),
		Genre:         get(FieldGenre),
		Rating:        get(FieldRating),
	}
}

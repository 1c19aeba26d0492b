package book

import "errors"

var (
	ErrBookNotFound  = errors.New("book not found")
	ErrDuplicateBook = errors.New("book already exists for this author")

	// ErrAuthorNotFound is returned when the referenced author_id has no
	// matching row (foreign key violation on insert or update).
	ErrAuthorNotFound = errors.New("author does not exist")
)

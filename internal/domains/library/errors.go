package library

import "errors"

var (
	ErrLibraryNotFound  = errors.New("library not found")
	ErrBookNotFound     = errors.New("book does not exist")
	ErrBookNotInLibrary = errors.New("book is not in this library")
)

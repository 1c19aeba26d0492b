package book

import (
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

const (
	MaxTitleLength = 200
	MinYear        = 1000
)

// Substrings that are never legitimate in a book title. Matched
// case-insensitively so "<SCRIPT" does not slip through.
var forbiddenTitleFragments = []string{
	"<script",
	"javascript:",
	"onclick=",
	"onerror=",
}

func safeTitle(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		if p, isPtr := value.(*string); isPtr && p != nil {
			s = *p
		} else {
			return nil
		}
	}
	lowered := strings.ToLower(s)
	for _, fragment := range forbiddenTitleFragments {
		if strings.Contains(lowered, fragment) {
			return fmt.Errorf("title contains forbidden content: %s", fragment)
		}
	}
	return nil
}

// yearInRange checks the [MinYear, current year] bounds itself because
// ozzo's Min/Max treat the int zero value as empty and skip it, which
// would let publication_year 0 through on partial updates.
func yearInRange(value interface{}) error {
	var year int
	switch v := value.(type) {
	case int:
		year = v
	case *int:
		if v == nil {
			return nil
		}
		year = *v
	default:
		return nil
	}

	if year < MinYear {
		return fmt.Errorf("publication_year must be at least %d", MinYear)
	}
	if year > time.Now().Year() {
		return fmt.Errorf("publication_year cannot be in the future")
	}
	return nil
}

// CreateBookRequest is the payload for creating a book.
type CreateBookRequest struct {
	Title           string    `json:"title"`
	PublicationYear int       `json:"publication_year"`
	AuthorID        uuid.UUID `json:"author_id"`
}

func (r *CreateBookRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
}

func (r *CreateBookRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, MaxTitleLength).Error(fmt.Sprintf("title must be at most %d characters", MaxTitleLength)),
			validation.By(safeTitle),
		),
		validation.Field(&r.PublicationYear,
			validation.By(yearInRange),
		),
		validation.Field(&r.AuthorID,
			validation.Required.Error("author_id is required"),
		),
	)
}

// UpdateBookRequest is the payload for a partial book update. Nil
// fields are left unchanged.
type UpdateBookRequest struct {
	Title           *string    `json:"title"`
	PublicationYear *int       `json:"publication_year"`
	AuthorID        *uuid.UUID `json:"author_id"`
}

func (r *UpdateBookRequest) Normalize() {
	if r.Title != nil {
		trimmed := strings.TrimSpace(*r.Title)
		r.Title = &trimmed
	}
}

func (r *UpdateBookRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Title,
			validation.NilOrNotEmpty.Error("title cannot be empty"),
			validation.Length(1, MaxTitleLength).Error(fmt.Sprintf("title must be at most %d characters", MaxTitleLength)),
			validation.By(safeTitle),
		),
		validation.Field(&r.PublicationYear,
			validation.By(yearInRange),
		),
	)
}

// AuthorRef is the nested author shown on book responses.
type AuthorRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// BookResponse is the API representation of a book.
type BookResponse struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	PublicationYear int       `json:"publication_year"`
	Author          AuthorRef `json:"author"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// DeletedBookSummary echoes what a delete removed.
type DeletedBookSummary struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
}

func (b *BookWithAuthor) ToResponse() *BookResponse {
	return &BookResponse{
		ID:              b.ID,
		Title:           b.Title,
		PublicationYear: b.PublicationYear,
		Author: AuthorRef{
			ID:   b.AuthorID,
			Name: b.AuthorName,
		},
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

package author

import (
	"strings"
	"time"
	"unicode"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

const (
	MinNameLength = 2
	MaxNameLength = 100
)

// containsLetter rejects names made purely of digits/punctuation.
func containsLetter(value interface{}) error {
	s, _ := value.(string)
	for _, r := range s {
		if unicode.IsLetter(r) {
			return nil
		}
	}
	return validation.NewError("validation_letter", "must contain at least one letter")
}

// CreateAuthorRequest - POST /v1/authors
type CreateAuthorRequest struct {
	Name string `json:"name"`
}

// Normalize trims surrounding whitespace before validation.
func (r *CreateAuthorRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

func (r CreateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("author name cannot be empty"),
			validation.Length(MinNameLength, MaxNameLength),
			validation.By(containsLetter),
		),
	)
}

// UpdateAuthorRequest - PUT/PATCH /v1/authors/:id
// Pointer fields: only supplied fields are validated and applied.
type UpdateAuthorRequest struct {
	Name *string `json:"name,omitempty"`
}

func (r *UpdateAuthorRequest) Normalize() {
	if r.Name != nil {
		trimmed := strings.TrimSpace(*r.Name)
		r.Name = &trimmed
	}
}

func (r UpdateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.NilOrNotEmpty.Error("author name cannot be empty"),
			validation.Length(MinNameLength, MaxNameLength),
			validation.By(func(v interface{}) error {
				s, _ := v.(*string)
				if s == nil {
					return nil
				}
				return containsLetter(*s)
			}),
		),
	)
}

// AuthorResponse embeds the author's books read-only.
type AuthorResponse struct {
	ID        uuid.UUID   `json:"id"`
	Name      string      `json:"name"`
	Books     []BookBrief `json:"books"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// AuthorListItem is the lighter list-view representation.
type AuthorListItem struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	BookCount int       `json:"book_count"`
}

// DeletedAuthorSummary reports a cascade delete.
type DeletedAuthorSummary struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	BooksDeleted int       `json:"books_deleted"`
}

// ToResponse converts an Author plus its books to the wire form.
func (a *Author) ToResponse(books []BookBrief) *AuthorResponse {
	if books == nil {
		books = []BookBrief{}
	}
	return &AuthorResponse{
		ID:        a.ID,
		Name:      a.Name,
		Books:     books,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

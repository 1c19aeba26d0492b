package library

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

const (
	MaxNameLength    = 150
	MaxAddressLength = 300
)

// CreateLibraryRequest is the payload for creating a library.
type CreateLibraryRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

func (r *CreateLibraryRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Address = strings.TrimSpace(r.Address)
}

func (r *CreateLibraryRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, MaxNameLength),
		),
		validation.Field(&r.Address,
			validation.Length(0, MaxAddressLength),
		),
	)
}

// UpdateLibraryRequest is a partial library update.
type UpdateLibraryRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
}

func (r *UpdateLibraryRequest) Normalize() {
	if r.Name != nil {
		trimmed := strings.TrimSpace(*r.Name)
		r.Name = &trimmed
	}
	if r.Address != nil {
		trimmed := strings.TrimSpace(*r.Address)
		r.Address = &trimmed
	}
}

func (r *UpdateLibraryRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.NilOrNotEmpty.Error("name cannot be empty"),
			validation.Length(1, MaxNameLength),
		),
		validation.Field(&r.Address,
			validation.Length(0, MaxAddressLength),
		),
	)
}

// AddBookRequest links a book into the library's collection.
type AddBookRequest struct {
	BookID uuid.UUID `json:"book_id"`
}

func (r *AddBookRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.BookID, validation.Required.Error("book_id is required")),
	)
}

// LibraryResponse is the API representation of a library with its
// collection.
type LibraryResponse struct {
	ID        uuid.UUID     `json:"id"`
	Name      string        `json:"name"`
	Address   string        `json:"address"`
	Books     []ShelvedBook `json:"books"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// LibraryListItem is the trimmed list representation.
type LibraryListItem struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	BookCount int       `json:"book_count"`
}

func (l *Library) ToResponse(books []ShelvedBook) *LibraryResponse {
	if books == nil {
		books = []ShelvedBook{}
	}
	return &LibraryResponse{
		ID:        l.ID,
		Name:      l.Name,
		Address:   l.Address,
		Books:     books,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

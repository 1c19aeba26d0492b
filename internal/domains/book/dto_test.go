package book

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateRequest() CreateBookRequest {
	return CreateBookRequest{
		Title:           "The Fellowship of the Ring",
		PublicationYear: 1954,
		AuthorID:        uuid.New(),
	}
}

func TestCreateBookRequest_Valid(t *testing.T) {
	req := validCreateRequest()
	req.Normalize()
	assert.NoError(t, req.Validate())
}

func TestCreateBookRequest_TitleRequired(t *testing.T) {
	req := validCreateRequest()
	req.Title = "   "
	req.Normalize()
	assert.Error(t, req.Validate())
}

func TestCreateBookRequest_TitleTooLong(t *testing.T) {
	req := validCreateRequest()
	req.Title = strings.Repeat("a", MaxTitleLength+1)
	assert.Error(t, req.Validate())

	req.Title = strings.Repeat("a", MaxTitleLength)
	assert.NoError(t, req.Validate())
}

func TestCreateBookRequest_RejectsScriptContent(t *testing.T) {
	cases := []string{
		"<script>alert(1)</script>",
		"My Book <SCRIPT>",
		"javascript:void(0)",
		"JavaScript:alert(1)",
		"Click onclick=evil()",
		"img onerror=steal()",
	}

	for _, title := range cases {
		req := validCreateRequest()
		req.Title = title
		require.Error(t, req.Validate(), "title %q should be rejected", title)
	}
}

func TestCreateBookRequest_PlainTitleWithScriptWordAllowed(t *testing.T) {
	// The blacklist is substring-based; "scripture" does not contain
	// any forbidden fragment.
	req := validCreateRequest()
	req.Title = "A History of Scripture"
	assert.NoError(t, req.Validate())
}

func TestCreateBookRequest_YearBounds(t *testing.T) {
	req := validCreateRequest()

	req.PublicationYear = 0
	assert.Error(t, req.Validate(), "year zero is out of range")

	req.PublicationYear = 999
	assert.Error(t, req.Validate(), "years before 1000 are rejected")

	req.PublicationYear = 1000
	assert.NoError(t, req.Validate())

	req.PublicationYear = time.Now().Year()
	assert.NoError(t, req.Validate())

	req.PublicationYear = time.Now().Year() + 1
	assert.Error(t, req.Validate(), "future years are rejected")
}

func TestCreateBookRequest_AuthorRequired(t *testing.T) {
	req := validCreateRequest()
	req.AuthorID = uuid.Nil
	assert.Error(t, req.Validate())
}

func TestUpdateBookRequest_NilFieldsPass(t *testing.T) {
	req := UpdateBookRequest{}
	assert.NoError(t, req.Validate())
}

func TestUpdateBookRequest_RejectsScriptContent(t *testing.T) {
	title := "sneaky <script>"
	req := UpdateBookRequest{Title: &title}
	assert.Error(t, req.Validate())
}

func TestUpdateBookRequest_EmptyTitleRejected(t *testing.T) {
	title := "   "
	req := UpdateBookRequest{Title: &title}
	req.Normalize()
	assert.Error(t, req.Validate())
}

func TestUpdateBookRequest_YearBounds(t *testing.T) {
	year := 999
	req := UpdateBookRequest{PublicationYear: &year}
	assert.Error(t, req.Validate())

	year = 1997
	assert.NoError(t, req.Validate())

	year = 1000
	assert.NoError(t, req.Validate())

	year = time.Now().Year() + 1
	assert.Error(t, req.Validate(), "future years are rejected")
}

func TestUpdateBookRequest_ZeroYearRejected(t *testing.T) {
	// The int zero value must not slip through the range check on
	// partial updates; it would overwrite the stored year with 0.
	year := 0
	req := UpdateBookRequest{PublicationYear: &year}

	err := req.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "publication_year")
}

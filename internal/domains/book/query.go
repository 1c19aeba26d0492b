package book

import "bookhub-backend/internal/shared/query"

// ListQuery declares the filter surface of the book list endpoint.
// The repository compiles it into SQL; the handler reports it as
// discovery metadata.
var ListQuery = query.Schema{
	Exact: map[string]query.ExactField{
		"author":           {Column: "b.author_id", Parse: query.UUID},
		"publication_year": {Column: "b.publication_year", Parse: query.Int},
	},
	Range: map[string]query.RangeField{
		"year_from":             {Column: "b.publication_year", Op: ">="},
		"year_to":               {Column: "b.publication_year", Op: "<="},
		"publication_year__gte": {Column: "b.publication_year", Op: ">="},
		"publication_year__lte": {Column: "b.publication_year", Op: "<="},
	},
	IContains: map[string]string{
		"title__icontains": "b.title",
	},
	SearchParam:   "search",
	SearchFields:  []string{"title", "author_name"},
	SearchColumns: []string{"b.title", "a.name"},
	OrderParam:    "ordering",
	Ordering: map[string]string{
		"title":            "b.title",
		"publication_year": "b.publication_year",
		"author_name":      "a.name",
		"created_at":       "b.created_at",
	},
	DefaultOrder: "b.publication_year DESC, b.title ASC",
}

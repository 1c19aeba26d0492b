package post

import "bookhub-backend/internal/shared/query"

// ListQuery declares the filter surface of the post list endpoint.
var ListQuery = query.Schema{
	Exact: map[string]query.ExactField{
		"author": {Column: "p.author_id", Parse: query.UUID},
	},
	IContains: map[string]string{
		"title__icontains": "p.title",
	},
	SearchParam:   "search",
	SearchFields:  []string{"title", "content"},
	SearchColumns: []string{"p.title", "p.content"},
	OrderParam:    "ordering",
	Ordering: map[string]string{
		"created_at": "p.created_at",
		"title":      "p.title",
	},
	DefaultOrder: "p.created_at DESC",
}

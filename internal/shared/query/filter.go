package query

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Schema declares which query parameters a list endpoint understands and
// how each one maps onto SQL. Repositories combine the produced
// conditions with their own base WHERE clause.
//
// Policy: unknown parameters, non-numeric range values and unknown
// ordering fields are ignored uniformly. A bad filter never fails the
// request; the rest of the query still executes.
type Schema struct {
	Exact map[string]ExactField
	Range map[string]RangeField

	// IContains maps a parameter to a column matched case-insensitively
	// as a substring (ILIKE %value%).
	IContains map[string]string

	// SearchParam (usually "search") matches case-insensitively against
	// every SearchColumns entry, combined with OR. SearchFields carries
	// the API-facing names reported in discovery metadata.
	SearchParam   string
	SearchFields  []string
	SearchColumns []string

	// OrderParam (usually "ordering") accepts a comma-separated field
	// list, each optionally prefixed with "-" for descending. Ordering
	// whitelists API field → column. DefaultOrder applies when nothing
	// valid is supplied.
	OrderParam   string
	Ordering     map[string]string
	DefaultOrder string
}

// ExactField is an exact-match filter. Parse converts the raw value;
// returning ok=false drops the filter. A nil Parse passes the raw string.
type ExactField struct {
	Column string
	Parse  func(string) (interface{}, bool)
}

// RangeField is a numeric bound (publication_year__gte, year_to, ...).
type RangeField struct {
	Column string
	Op     string // ">=" or "<="
}

// Result is a compiled filter: AND-able conditions with positional args
// numbered from the argIndex given to Apply, plus an ORDER BY fragment.
type Result struct {
	Conditions []string
	Args       []interface{}
	OrderBy    string
}

// Int parses an exact-match value as an integer.
func Int(raw string) (interface{}, bool) {
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, false
	}
	return v, true
}

// UUID parses an exact-match value as a UUID.
func UUID(raw string) (interface{}, bool) {
	v, err := uuid.Parse(raw)
	if err != nil {
		return nil, false
	}
	return v, true
}

// Apply compiles request parameters against the schema. argIndex is the
// first free positional-parameter number ($n) in the caller's query.
func (s Schema) Apply(params url.Values, argIndex int) Result {
	var res Result

	addArg := func(v interface{}) int {
		res.Args = append(res.Args, v)
		n := argIndex
		argIndex++
		return n
	}

	// Exact matches, in deterministic order
	for _, param := range sortedKeys(s.Exact) {
		raw := params.Get(param)
		if raw == "" {
			continue
		}
		field := s.Exact[param]
		value := interface{}(raw)
		if field.Parse != nil {
			parsed, ok := field.Parse(raw)
			if !ok {
				continue // invalid value: ignore, keep the rest of the query
			}
			value = parsed
		}
		res.Conditions = append(res.Conditions, fmt.Sprintf("%s = $%d", field.Column, addArg(value)))
	}

	// Numeric ranges
	for _, param := range sortedKeys(s.Range) {
		raw := params.Get(param)
		if raw == "" {
			continue
		}
		value, err := strconv.Atoi(raw)
		if err != nil {
			continue
		}
		field := s.Range[param]
		res.Conditions = append(res.Conditions, fmt.Sprintf("%s %s $%d", field.Column, field.Op, addArg(value)))
	}

	// Case-insensitive substring matches
	for _, param := range sortedKeys(s.IContains) {
		raw := params.Get(param)
		if raw == "" {
			continue
		}
		column := s.IContains[param]
		res.Conditions = append(res.Conditions, fmt.Sprintf("%s ILIKE $%d", column, addArg("%"+raw+"%")))
	}

	// Free-text search across all search columns
	if s.SearchParam != "" && len(s.SearchColumns) > 0 {
		if raw := params.Get(s.SearchParam); raw != "" {
			n := addArg("%" + raw + "%")
			parts := make([]string, len(s.SearchColumns))
			for i, column := range s.SearchColumns {
				parts[i] = fmt.Sprintf("%s ILIKE $%d", column, n)
			}
			res.Conditions = append(res.Conditions, "("+strings.Join(parts, " OR ")+")")
		}
	}

	res.OrderBy = s.orderBy(params)
	return res
}

func (s Schema) orderBy(params url.Values) string {
	if s.OrderParam == "" {
		return s.DefaultOrder
	}

	var parts []string
	for _, field := range strings.Split(params.Get(s.OrderParam), ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		direction := "ASC"
		if strings.HasPrefix(field, "-") {
			direction = "DESC"
			field = field[1:]
		}
		column, ok := s.Ordering[field]
		if !ok {
			continue // unknown ordering field: ignore
		}
		parts = append(parts, column+" "+direction)
	}

	if len(parts) == 0 {
		return s.DefaultOrder
	}
	return strings.Join(parts, ", ")
}

// AvailableFilters lists every filter parameter for discovery metadata.
func (s Schema) AvailableFilters() []string {
	out := make([]string, 0, len(s.Exact)+len(s.Range)+len(s.IContains))
	out = append(out, sortedKeys(s.Exact)...)
	out = append(out, sortedKeys(s.Range)...)
	out = append(out, sortedKeys(s.IContains)...)
	sort.Strings(out)
	return out
}

// AvailableSearch lists the fields covered by the search parameter.
func (s Schema) AvailableSearch() []string {
	return s.SearchFields
}

// AvailableOrdering lists the whitelisted ordering fields.
func (s Schema) AvailableOrdering() []string {
	out := make([]string, 0, len(s.Ordering))
	for field := range s.Ordering {
		out = append(out, field)
	}
	sort.Strings(out)
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

package postgres

import (
	"fmt"
	"strings"

	"github.com/mkarlsen/locations-api/internal/store"
)

// Column allowlists per table. The criteria layer already drops
// unrecognized filter fields, but the SQL renderer refuses anything
// outside these maps so no untrusted identifier ever reaches a query.
var (
	locationColumns = map[string]string{
		"name":      "l.name",
		"street":    "l.street",
		"number":    "l.number",
		"zipcode":   "l.zipcode",
		"city":      "l.city",
		"state":     "l.state",
		"country":   "l.country",
		"deletedAt": "l.deleted_at",
	}

	countryColumns = map[string]string{
		"iso3": "c.iso3",
		"name": "c.name",
	}
)

// renderCriteria translates a store.Criteria into a WHERE clause fragment
// and its positional arguments. Predicates are ANDed in insertion order.
// The returned clause is empty when no predicate survives; args placeholders
// start at $1.
//
// A predicate naming a column outside the allowlist is an error: the parse
// layer should have dropped it, so reaching here means a programming bug,
// and the caller's swallow-on-error behavior turns it into an empty result.
func renderCriteria(c *store.Criteria, columns map[string]string) (string, []any, error) {
	if c == nil {
		return "", nil, nil
	}

	var conds []string
	var args []any

	for _, p := range c.Predicates() {
		column, ok := columns[p.Field]
		if !ok {
			return "", nil, fmt.Errorf("unknown criteria field %q", p.Field)
		}

		switch p.Op {
		case store.OpContains:
			// Case-sensitive substring containment; LIKE special
			// characters in the value are escaped so they match
			// literally.
			args = append(args, "%"+escapeLike(p.Value)+"%")
			conds = append(conds, fmt.Sprintf("%s LIKE $%d", column, len(args)))
		case store.OpEquals:
			args = append(args, p.Value)
			conds = append(conds, fmt.Sprintf("%s = $%d", column, len(args)))
		case store.OpIsNull:
			conds = append(conds, fmt.Sprintf("%s IS NULL", column))
		default:
			return "", nil, fmt.Errorf("unknown criteria operator %q", p.Op)
		}
	}

	if len(conds) == 0 {
		return "", nil, nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args, nil
}

// renderPagination appends LIMIT/OFFSET clauses using the next free
// placeholder positions. A zero limit emits no LIMIT clause.
func renderPagination(c *store.Criteria, args []any) (string, []any) {
	if c == nil {
		return "", args
	}

	var clause string
	if c.GetLimit() > 0 {
		args = append(args, c.GetLimit())
		clause += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if c.GetOffset() > 0 {
		args = append(args, c.GetOffset())
		clause += fmt.Sprintf(" OFFSET $%d", len(args))
	}
	return clause, args
}

// escapeLike escapes the LIKE metacharacters so user input matches literally.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}

package api

import (
	"net/http"
	"strconv"

	"github.com/mkarlsen/locations-api/internal/store"
)

// Pagination bounds for list endpoints. Requests outside the window are
// clamped rather than rejected.
const (
	minPageSize     = 20
	maxPageSize     = 200
	defaultPageSize = 20
)

// parsePageSize reads the "size" query parameter and clamps it into the
// allowed window. Unparseable values fall back to the default.
func parsePageSize(r *http.Request) int {
	raw := r.URL.Query().Get("size")
	size, err := strconv.Atoi(raw)
	if err != nil {
		return defaultPageSize
	}
	if size < minPageSize {
		return minPageSize
	}
	if size > maxPageSize {
		return maxPageSize
	}
	return size
}

// parseOffset reads the "offset" query parameter. Negative or unparseable
// values become zero.
func parseOffset(r *http.Request) int {
	raw := r.URL.Query().Get("offset")
	offset, err := strconv.Atoi(raw)
	if err != nil || offset < 0 {
		return 0
	}
	return offset
}

// locationFilterFields are the query parameters that map directly onto
// substring filters, in the order they are applied.
var locationFilterFields = []string{"name", "street", "number", "zipcode", "city", "state"}

// buildLocationCriteria translates list query parameters into store criteria.
//
// The "country" parameter is resolved against the country store: first as an
// ISO3 code, then as a country name. A value that matches neither is silently
// dropped from the filter set.
//
// Soft-deleted rows are hidden unless the caller passes deleted=true and
// holds the elevated role; includeDeleted reports what the caller was
// actually granted.
func (lh *LocationHandler) buildLocationCriteria(r *http.Request) (*store.Criteria, bool) {
	q := r.URL.Query()

	c := store.NewCriteria().
		Limit(parsePageSize(r)).
		Offset(parseOffset(r))

	for _, field := range locationFilterFields {
		if value := q.Get(field); value != "" {
			c.Contains(field, value)
		}
	}

	if value := q.Get("country"); value != "" {
		if country, err := lh.countryStore.GetByISO3(r.Context(), value); err == nil {
			c.Equals("country", country.ISO3)
		} else if country, err := lh.countryStore.GetByName(r.Context(), value); err == nil {
			c.Equals("country", country.ISO3)
		}
		// Unresolvable country values are ignored.
	}

	includeDeleted := false
	if q.Get("deleted") == "true" && lh.authorizer.HasRole(r, lh.superRole, false) {
		includeDeleted = true
	}
	if !includeDeleted {
		c.IsNull("deletedAt")
	}

	return c, includeDeleted
}

// buildCountryCriteria translates country list query parameters into store
// criteria. Countries are lookup data: substring filters on iso3 and name
// only, never paginated.
func buildCountryCriteria(r *http.Request) *store.Criteria {
	q := r.URL.Query()

	c := store.NewCriteria()

	for _, field := range []string{"iso3", "name"} {
		if value := q.Get(field); value != "" {
			c.Contains(field, value)
		}
	}

	return c
}

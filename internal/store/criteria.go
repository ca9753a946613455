package store

// FilterOp identifies the comparison applied by a single predicate.
type FilterOp string

// Supported predicate operators. The criteria layer is persistence-agnostic;
// rendering to SQL is the store implementation's concern.
const (
	// OpContains matches rows whose field contains the value as a
	// case-sensitive substring.
	OpContains FilterOp = "contains"

	// OpEquals matches rows whose field equals the value exactly.
	OpEquals FilterOp = "equals"

	// OpIsNull matches rows whose field is NULL. Value is ignored.
	OpIsNull FilterOp = "is_null"
)

// Predicate is a single filter descriptor. Predicates accumulated on a
// Criteria are always combined with AND semantics, in insertion order.
type Predicate struct {
	Field string
	Op    FilterOp
	Value string
}

// Criteria is a composable filter/limit/offset specification consumed by
// the list operations. It accumulates predicate descriptors and ANDs them
// uniformly when rendered, so callers never need to track whether a base
// predicate already exists.
//
// A zero limit means "no limit"; list endpoints that paginate always set
// one explicitly.
type Criteria struct {
	predicates []Predicate
	limit      int
	offset     int
}

// NewCriteria returns an empty criteria specification.
func NewCriteria() *Criteria {
	return &Criteria{}
}

// Contains appends a case-sensitive substring predicate on field.
func (c *Criteria) Contains(field, value string) *Criteria {
	c.predicates = append(c.predicates, Predicate{Field: field, Op: OpContains, Value: value})
	return c
}

// Equals appends an exact-match predicate on field.
func (c *Criteria) Equals(field, value string) *Criteria {
	c.predicates = append(c.predicates, Predicate{Field: field, Op: OpEquals, Value: value})
	return c
}

// IsNull appends a NULL-check predicate on field.
func (c *Criteria) IsNull(field string) *Criteria {
	c.predicates = append(c.predicates, Predicate{Field: field, Op: OpIsNull})
	return c
}

// Limit caps the number of rows returned.
func (c *Criteria) Limit(n int) *Criteria {
	c.limit = n
	return c
}

// Offset skips the first n rows.
func (c *Criteria) Offset(n int) *Criteria {
	c.offset = n
	return c
}

// Predicates returns the accumulated predicates in insertion order.
func (c *Criteria) Predicates() []Predicate {
	return c.predicates
}

// GetLimit returns the row cap, or zero when unset.
func (c *Criteria) GetLimit() int {
	return c.limit
}

// GetOffset returns the number of rows to skip.
func (c *Criteria) GetOffset() int {
	return c.offset
}

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCriteriaAccumulatesPredicatesInOrder(t *testing.T) {
	t.Parallel()

	c := NewCriteria().
		Contains("name", "harbor").
		Equals("country", "NLD").
		IsNull("deletedAt")

	predicates := c.Predicates()
	require.Len(t, predicates, 3)

	assert.Equal(t, Predicate{Field: "name", Op: OpContains, Value: "harbor"}, predicates[0])
	assert.Equal(t, Predicate{Field: "country", Op: OpEquals, Value: "NLD"}, predicates[1])
	assert.Equal(t, Predicate{Field: "deletedAt", Op: OpIsNull}, predicates[2])
}

func TestCriteriaRepeatedFieldsAreKept(t *testing.T) {
	t.Parallel()

	// The same field may appear more than once; both predicates apply.
	c := NewCriteria().
		Contains("name", "north").
		Contains("name", "harbor")

	require.Len(t, c.Predicates(), 2)
}

func TestCriteriaPagination(t *testing.T) {
	t.Parallel()

	c := NewCriteria()
	assert.Equal(t, 0, c.GetLimit(), "zero limit means no limit")
	assert.Equal(t, 0, c.GetOffset())

	c.Limit(50).Offset(100)
	assert.Equal(t, 50, c.GetLimit())
	assert.Equal(t, 100, c.GetOffset())
}

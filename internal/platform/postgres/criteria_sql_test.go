package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkarlsen/locations-api/internal/store"
)

func TestRenderCriteria(t *testing.T) {
	t.Parallel()

	t.Run("nil criteria renders nothing", func(t *testing.T) {
		t.Parallel()
		clause, args, err := renderCriteria(nil, locationColumns)
		require.NoError(t, err)
		assert.Empty(t, clause)
		assert.Empty(t, args)
	})

	t.Run("empty criteria renders nothing", func(t *testing.T) {
		t.Parallel()
		clause, args, err := renderCriteria(store.NewCriteria(), locationColumns)
		require.NoError(t, err)
		assert.Empty(t, clause)
		assert.Empty(t, args)
	})

	t.Run("contains renders LIKE with wrapped value", func(t *testing.T) {
		t.Parallel()
		c := store.NewCriteria().Contains("name", "harbor")

		clause, args, err := renderCriteria(c, locationColumns)
		require.NoError(t, err)
		assert.Equal(t, " WHERE l.name LIKE $1", clause)
		assert.Equal(t, []any{"%harbor%"}, args)
	})

	t.Run("LIKE metacharacters match literally", func(t *testing.T) {
		t.Parallel()
		c := store.NewCriteria().Contains("name", "50%_off")

		_, args, err := renderCriteria(c, locationColumns)
		require.NoError(t, err)
		assert.Equal(t, []any{`%50\%\_off%`}, args)
	})

	t.Run("predicates are ANDed in insertion order", func(t *testing.T) {
		t.Parallel()
		c := store.NewCriteria().
			Contains("city", "Lisbon").
			Equals("country", "PRT").
			IsNull("deletedAt")

		clause, args, err := renderCriteria(c, locationColumns)
		require.NoError(t, err)
		assert.Equal(t,
			" WHERE l.city LIKE $1 AND l.country = $2 AND l.deleted_at IS NULL",
			clause)
		assert.Equal(t, []any{"%Lisbon%", "PRT"}, args)
	})

	t.Run("unknown field is an error", func(t *testing.T) {
		t.Parallel()
		c := store.NewCriteria().Contains("metadata", "x")

		_, _, err := renderCriteria(c, locationColumns)
		assert.Error(t, err)
	})

	t.Run("country columns reject location fields", func(t *testing.T) {
		t.Parallel()
		c := store.NewCriteria().Contains("street", "Main")

		_, _, err := renderCriteria(c, countryColumns)
		assert.Error(t, err)
	})
}

func TestRenderPagination(t *testing.T) {
	t.Parallel()

	t.Run("limit and offset use next placeholders", func(t *testing.T) {
		t.Parallel()
		c := store.NewCriteria().Limit(20).Offset(40)

		clause, args := renderPagination(c, []any{"%x%"})
		assert.Equal(t, " LIMIT $2 OFFSET $3", clause)
		assert.Equal(t, []any{"%x%", 20, 40}, args)
	})

	t.Run("zero offset emits no OFFSET clause", func(t *testing.T) {
		t.Parallel()
		c := store.NewCriteria().Limit(20)

		clause, args := renderPagination(c, nil)
		assert.Equal(t, " LIMIT $1", clause)
		assert.Equal(t, []any{20}, args)
	})

	t.Run("zero limit emits nothing", func(t *testing.T) {
		t.Parallel()
		clause, args := renderPagination(store.NewCriteria(), nil)
		assert.Empty(t, clause)
		assert.Empty(t, args)
	})
}

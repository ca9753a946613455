package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEnforcer(t *testing.T) *Enforcer {
	t.Helper()

	enforcer, err := NewEnforcer()
	require.NoError(t, err, "embedded model and policy must load")
	return enforcer
}

func TestSatisfies(t *testing.T) {
	t.Parallel()

	enforcer := newTestEnforcer(t)

	testCases := []struct {
		name     string
		granted  string
		required string
		want     bool
	}{
		{"role satisfies itself", "super", "super", true},
		{"user satisfies user", "user", "user", true},
		{"super inherits user", "super", "user", true},
		{"admin inherits super", "admin", "super", true},
		{"admin inherits user transitively", "admin", "user", true},
		{"user does not satisfy super", "user", "super", false},
		{"unknown granted role fails", "guest", "user", false},
		{"unknown required role fails closed", "super", "owner", false},
		{"empty roles fail", "", "", false},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, enforcer.Satisfies(tc.granted, tc.required))
		})
	}
}

func TestAnySatisfies(t *testing.T) {
	t.Parallel()

	enforcer := newTestEnforcer(t)

	assert.True(t, enforcer.AnySatisfies([]string{"guest", "super"}, "user"))
	assert.True(t, enforcer.AnySatisfies([]string{"user"}, "user"))
	assert.False(t, enforcer.AnySatisfies([]string{"guest", "user"}, "super"))
	assert.False(t, enforcer.AnySatisfies(nil, "user"))
}

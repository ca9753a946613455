// Package authz decides whether a caller's token roles satisfy a required
// role. Decisions are delegated to a Casbin RBAC enforcer so role
// inheritance lives in policy, not code.
package authz

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

//go:embed model.conf
var embeddedModel string

//go:embed policy.csv
var embeddedPolicy string

// Enforcer wraps the Casbin enforcer behind the one question this
// application asks: does a granted role satisfy a required role.
type Enforcer struct {
	enforcer *casbin.SyncedEnforcer
}

// NewEnforcer creates an enforcer from the embedded model and policy.
func NewEnforcer() (*Enforcer, error) {
	m, err := model.NewModelFromString(embeddedModel)
	if err != nil {
		return nil, fmt.Errorf("failed to load casbin model: %w", err)
	}

	enforcer, err := casbin.NewSyncedEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}

	if err := loadEmbeddedPolicy(enforcer, embeddedPolicy); err != nil {
		return nil, fmt.Errorf("failed to load casbin policy: %w", err)
	}

	return &Enforcer{enforcer: enforcer}, nil
}

// loadEmbeddedPolicy parses and loads the embedded policy CSV.
func loadEmbeddedPolicy(enforcer *casbin.SyncedEnforcer, policy string) error {
	for _, line := range strings.Split(policy, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Split(line, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}

		switch parts[0] {
		case "p":
			if len(parts) < 2 {
				continue
			}
			if _, err := enforcer.AddPolicy(toAny(parts[1:])...); err != nil {
				return err
			}
		case "g":
			if len(parts) < 3 {
				continue
			}
			if _, err := enforcer.AddGroupingPolicy(toAny(parts[1:])...); err != nil {
				return err
			}
		}
	}
	return nil
}

func toAny(parts []string) []any {
	out := make([]any, len(parts))
	for i, p := range parts {
		out[i] = p
	}
	return out
}

// Satisfies reports whether the granted role meets the required role,
// either directly or through role inheritance.
// Enforcement errors fail closed.
func (e *Enforcer) Satisfies(granted, required string) bool {
	ok, err := e.enforcer.Enforce(granted, required)
	if err != nil {
		return false
	}
	return ok
}

// AnySatisfies reports whether any of the granted roles meets the
// required role.
func (e *Enforcer) AnySatisfies(granted []string, required string) bool {
	for _, role := range granted {
		if e.Satisfies(role, required) {
			return true
		}
	}
	return false
}

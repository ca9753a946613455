package api

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/mkarlsen/locations-api/internal/domain"
	"github.com/mkarlsen/locations-api/internal/service/auth"
	"github.com/mkarlsen/locations-api/internal/store"
)

// mockLocationStore implements store.LocationStore with injectable behavior.
type mockLocationStore struct {
	getByIDFunc      func(ctx context.Context, id uuid.UUID, includeDeleted bool) (*domain.Location, error)
	isNameUniqueFunc func(ctx context.Context, name string) (bool, error)
	saveFunc         func(ctx context.Context, location *domain.Location) (*domain.Location, error)
	deleteFunc       func(ctx context.Context, location *domain.Location, hard bool) error
	getListFunc      func(ctx context.Context, criteria *store.Criteria) ([]*domain.Location, error)
}

var _ store.LocationStore = (*mockLocationStore)(nil)

func (m *mockLocationStore) GetByID(
	ctx context.Context,
	id uuid.UUID,
	includeDeleted bool,
) (*domain.Location, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id, includeDeleted)
	}
	return nil, store.ErrLocationNotFound
}

func (m *mockLocationStore) IDExists(
	ctx context.Context,
	id uuid.UUID,
	includeDeleted bool,
) (bool, error) {
	_, err := m.GetByID(ctx, id, includeDeleted)
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (m *mockLocationStore) IsNameUnique(ctx context.Context, name string) (bool, error) {
	if m.isNameUniqueFunc != nil {
		return m.isNameUniqueFunc(ctx, name)
	}
	return true, nil
}

func (m *mockLocationStore) Save(
	ctx context.Context,
	location *domain.Location,
) (*domain.Location, error) {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, location)
	}
	return location, nil
}

func (m *mockLocationStore) Delete(
	ctx context.Context,
	location *domain.Location,
	hard bool,
) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, location, hard)
	}
	return nil
}

func (m *mockLocationStore) GetList(
	ctx context.Context,
	criteria *store.Criteria,
) ([]*domain.Location, error) {
	if m.getListFunc != nil {
		return m.getListFunc(ctx, criteria)
	}
	return []*domain.Location{}, nil
}

func (m *mockLocationStore) WithTx(db store.DBTX) store.LocationStore {
	return m
}

// mockCountryStore implements store.CountryStore backed by a fixed set.
type mockCountryStore struct {
	countries []*domain.Country

	getListFunc func(ctx context.Context, criteria *store.Criteria) ([]*domain.Country, error)
}

var _ store.CountryStore = (*mockCountryStore)(nil)

func knownCountries() []*domain.Country {
	return []*domain.Country{
		{ISO3: "FRA", Name: "France"},
		{ISO3: "NLD", Name: "Netherlands"},
		{ISO3: "USA", Name: "United States"},
	}
}

func (m *mockCountryStore) GetByISO3(ctx context.Context, iso3 string) (*domain.Country, error) {
	for _, c := range m.countries {
		if c.ISO3 == iso3 {
			return c, nil
		}
	}
	return nil, store.ErrCountryNotFound
}

func (m *mockCountryStore) GetByName(ctx context.Context, name string) (*domain.Country, error) {
	for _, c := range m.countries {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, store.ErrCountryNotFound
}

func (m *mockCountryStore) GetList(
	ctx context.Context,
	criteria *store.Criteria,
) ([]*domain.Country, error) {
	if m.getListFunc != nil {
		return m.getListFunc(ctx, criteria)
	}
	return m.countries, nil
}

// stubAuthorizer implements auth.Authorizer with fixed grants.
type stubAuthorizer struct {
	// roles granted to every request seen by the stub
	roles map[string]bool
	// authenticated distinguishes "no usable token" (HasRole returns the
	// default) from "valid token without the role".
	authenticated bool
}

var _ auth.Authorizer = (*stubAuthorizer)(nil)

func (s *stubAuthorizer) HasRole(r *http.Request, role string, def bool) bool {
	if !s.authenticated {
		return def
	}
	return s.roles[role]
}

func (s *stubAuthorizer) AuthorizeToRole(r *http.Request, role string) error {
	if !s.authenticated || !s.roles[role] {
		return auth.ErrUnauthorized
	}
	return nil
}

func superAuthorizer() *stubAuthorizer {
	return &stubAuthorizer{authenticated: true, roles: map[string]bool{"super": true, "user": true}}
}

func userAuthorizer() *stubAuthorizer {
	return &stubAuthorizer{authenticated: true, roles: map[string]bool{"user": true}}
}

func anonymousAuthorizer() *stubAuthorizer {
	return &stubAuthorizer{}
}

package api

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/mkarlsen/locations-api/internal/api/shared"
	"github.com/mkarlsen/locations-api/internal/domain"
	"github.com/mkarlsen/locations-api/internal/store"
)

// CountryHandler holds dependencies for the read-only country endpoints.
type CountryHandler struct {
	countryStore store.CountryStore
	logger       *slog.Logger
}

// NewCountryHandler creates a new CountryHandler with its dependencies.
func NewCountryHandler(countryStore store.CountryStore, log *slog.Logger) *CountryHandler {
	if log == nil {
		log = slog.Default()
	}
	return &CountryHandler{
		countryStore: countryStore,
		logger:       log.With(slog.String("component", "country_handler")),
	}
}

// List handles GET /api/v1/countries. Like the location listing it always
// responds 200 with a JSON array.
func (ch *CountryHandler) List(w http.ResponseWriter, r *http.Request) {
	criteria := buildCountryCriteria(r)

	countries, err := ch.countryStore.GetList(r.Context(), criteria)
	if err != nil || countries == nil {
		countries = []*domain.Country{}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, countries)
}

// Get handles GET /api/v1/countries/{iso3}.
func (ch *CountryHandler) Get(w http.ResponseWriter, r *http.Request) {
	iso3 := strings.ToUpper(chi.URLParam(r, "iso3"))

	country, err := ch.countryStore.GetByISO3(r.Context(), iso3)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, country)
}

package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/mkarlsen/locations-api/internal/api/shared"
	"github.com/mkarlsen/locations-api/internal/domain"
	"github.com/mkarlsen/locations-api/internal/platform/logger"
	"github.com/mkarlsen/locations-api/internal/service/auth"
	"github.com/mkarlsen/locations-api/internal/store"
)

// LocationHandler holds dependencies for the location endpoints.
type LocationHandler struct {
	locationStore store.LocationStore
	countryStore  store.CountryStore
	authorizer    auth.Authorizer
	superRole     string
	logger        *slog.Logger
}

// NewLocationHandler creates a new LocationHandler with its dependencies.
func NewLocationHandler(
	locationStore store.LocationStore,
	countryStore store.CountryStore,
	authorizer auth.Authorizer,
	superRole string,
	log *slog.Logger,
) *LocationHandler {
	if log == nil {
		log = slog.Default()
	}
	return &LocationHandler{
		locationStore: locationStore,
		countryStore:  countryStore,
		authorizer:    authorizer,
		superRole:     superRole,
		logger:        log.With(slog.String("component", "location_handler")),
	}
}

// List handles GET /api/v1/locations.
// It always responds 200 with a JSON array; filter and pagination problems
// degrade to an empty result instead of failing the request.
func (lh *LocationHandler) List(w http.ResponseWriter, r *http.Request) {
	criteria, includeDeleted := lh.buildLocationCriteria(r)

	log := logger.FromContextOrDefault(r.Context(), lh.logger)
	log.Debug("listing locations",
		slog.Int("limit", criteria.GetLimit()),
		slog.Int("offset", criteria.GetOffset()),
		slog.Bool("include_deleted", includeDeleted))

	locations, err := lh.locationStore.GetList(r.Context(), criteria)
	if err != nil {
		// GetList degrades internally; an error here is unexpected.
		log.Error("failed to list locations", slog.String("error", err.Error()))
		locations = []*domain.Location{}
	}
	if locations == nil {
		locations = []*domain.Location{}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, locations)
}

// Get handles GET /api/v1/locations/{id}.
// Soft-deleted rows are only visible to callers holding the elevated role.
func (lh *LocationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	includeDeleted := lh.authorizer.HasRole(r, lh.superRole, false)

	location, err := lh.locationStore.GetByID(r.Context(), id, includeDeleted)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, location)
}

// Create handles POST /api/v1/locations. Only callers holding the elevated
// role may create locations. Responds 200 with the stored entity.
func (lh *LocationHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := lh.authorizer.AuthorizeToRole(r, lh.superRole); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log := logger.FromContextOrDefault(r.Context(), lh.logger)

	var req CreateLocationRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, requestValidationMessages(err))
		return
	}

	location := domain.NewLocation()
	location.Name = req.Name
	location.Metadata = req.Metadata
	location.Street = req.Street
	location.Number = stringifyField(req.Number)
	location.Zipcode = stringifyField(req.Zipcode)
	location.City = req.City
	location.State = req.State
	if location.Metadata == nil {
		location.Metadata = map[string]any{}
	}

	point, err := domain.PointFromMap(req.Point)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	location.Point = point

	country, ok := lh.resolveCountry(w, r, req.Country)
	if !ok {
		return
	}
	location.Country = country

	if errs := location.ValidationErrors(); len(errs) > 0 {
		shared.RespondWithError(w, r, http.StatusBadRequest, errorMessages(errs))
		return
	}

	unique, err := lh.locationStore.IsNameUnique(r.Context(), location.Name)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if !unique {
		shared.RespondWithError(w, r, http.StatusBadRequest, "name already exists.")
		return
	}

	saved, err := lh.locationStore.Save(r.Context(), location)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	location = saved

	log.Info("location created",
		slog.String("location_id", location.ID.String()),
		slog.String("name", location.Name))

	shared.RespondWithJSON(w, r, http.StatusOK, location)
}

// Patch handles PATCH /api/v1/locations/{id}. The body is a partial update:
// recognized keys are applied in turn, unknown keys are ignored, and a body
// with no recognized keys is rejected. Only callers holding the elevated
// role can reach soft-deleted rows.
func (lh *LocationHandler) Patch(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	includeDeleted := lh.authorizer.HasRole(r, lh.superRole, false)
	location, err := lh.locationStore.GetByID(r.Context(), id, includeDeleted)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var patch map[string]any
	if err := shared.DecodeJSON(r, &patch); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	applied := 0
	for key, value := range patch {
		switch key {
		case "name":
			name, ok := value.(string)
			if !ok {
				shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid name")
				return
			}
			location.Name = name
		case "point":
			pointMap, ok := value.(map[string]any)
			if !ok {
				shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid point")
				return
			}
			point, err := domain.PointFromMap(pointMap)
			if err != nil {
				shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
				return
			}
			location.Point = point
		case "metadata":
			metadata, ok := value.(map[string]any)
			if !ok {
				shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid metadata")
				return
			}
			location.Metadata = metadata
		case "street":
			street, ok := value.(string)
			if !ok {
				shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid street")
				return
			}
			location.Street = street
		case "number":
			location.Number = stringifyField(value)
		case "zipcode":
			location.Zipcode = stringifyField(value)
		case "city":
			city, ok := value.(string)
			if !ok {
				shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid city")
				return
			}
			location.City = city
		case "state":
			switch state := value.(type) {
			case nil:
				location.State = nil
			case string:
				location.State = &state
			default:
				shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid state")
				return
			}
		case "country":
			country, ok := lh.resolveCountry(w, r, value)
			if !ok {
				return
			}
			location.Country = country
		default:
			continue
		}
		applied++
	}

	if applied == 0 {
		shared.RespondWithError(w, r, http.StatusBadRequest, "No recognized fields in request body")
		return
	}

	if errs := location.ValidationErrors(); len(errs) > 0 {
		shared.RespondWithError(w, r, http.StatusBadRequest, errorMessages(errs))
		return
	}

	saved, err := lh.locationStore.Save(r.Context(), location)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, saved)
}

// Delete handles DELETE /api/v1/locations/{id}. The default is a soft delete
// that stamps DeletedAt; passing ?hard=true removes the row entirely. A row
// that is missing, or already soft-deleted when soft-deleting again, responds
// 410 Gone.
func (lh *LocationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := lh.authorizer.AuthorizeToRole(r, lh.superRole); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	hard := r.URL.Query().Get("hard") == "true"

	// Hard deletes may target already soft-deleted rows; soft deletes
	// only see live rows, so a second soft delete responds 410.
	location, err := lh.locationStore.GetByID(r.Context(), id, hard)
	if err != nil {
		if store.IsNotFoundError(err) {
			shared.RespondWithError(w, r, http.StatusGone, "Entity is gone.")
			return
		}
		HandleAPIError(w, r, err, "")
		return
	}

	if err := lh.locationStore.Delete(r.Context(), location, hard); err != nil {
		// The row can vanish between the lookup and the delete.
		if store.IsNotFoundError(err) {
			shared.RespondWithError(w, r, http.StatusGone, "Entity is gone.")
			return
		}
		HandleAPIError(w, r, err, "")
		return
	}

	log := logger.FromContextOrDefault(r.Context(), lh.logger)
	log.Info("location deleted",
		slog.String("location_id", id.String()),
		slog.Bool("hard", hard))

	shared.RespondWithJSON(w, r, http.StatusNoContent, nil)
}

// resolveCountry turns a request country value into a stored Country. The
// value may be an ISO3 or name string, or an object carrying iso3/name keys.
// Writes a 400 response and returns false when the value cannot be resolved.
func (lh *LocationHandler) resolveCountry(
	w http.ResponseWriter,
	r *http.Request,
	value any,
) (domain.Country, bool) {
	var candidates []string
	switch v := value.(type) {
	case string:
		candidates = append(candidates, v)
	case map[string]any:
		if iso3, ok := v["iso3"].(string); ok && iso3 != "" {
			candidates = append(candidates, iso3)
		}
		if name, ok := v["name"].(string); ok && name != "" {
			candidates = append(candidates, name)
		}
	}

	for _, candidate := range candidates {
		if country, err := lh.countryStore.GetByISO3(r.Context(), candidate); err == nil {
			return *country, true
		}
		if country, err := lh.countryStore.GetByName(r.Context(), candidate); err == nil {
			return *country, true
		}
	}

	shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid Country")
	return domain.Country{}, false
}

// stringifyField normalizes wire values that clients send either as strings
// or as numbers (zipcode, house number) into their canonical string form.
func stringifyField(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

// errorMessages flattens a validation error list into plain strings for the
// response body.
func errorMessages(errs []error) []string {
	messages := make([]string, 0, len(errs))
	for _, err := range errs {
		messages = append(messages, err.Error())
	}
	return messages
}

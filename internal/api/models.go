package api

// CreateLocationRequest is the payload for creating a new location. Zipcode
// and Country are deliberately loose: clients may send the zipcode as a
// string or a number, and the country as an ISO3/name string or a nested
// object. Normalization happens in the handler before validation.
type CreateLocationRequest struct {
	Name     string         `json:"name" validate:"required,min=4,max=200"`
	Point    map[string]any `json:"point" validate:"required"`
	Metadata map[string]any `json:"metadata"`
	Street   string         `json:"street" validate:"required,min=2,max=254"`
	Number   any            `json:"number" validate:"required"`
	Zipcode  any            `json:"zipcode" validate:"required"`
	City     string         `json:"city" validate:"required,min=2,max=100"`
	State    *string        `json:"state" validate:"omitempty,min=2,max=254"`
	Country  any            `json:"country" validate:"required"`
}

package places

import (
	"errors"
	"fmt"
)

var (
	// ErrNoQuery is returned by Geocode when called without a location.
	ErrNoQuery = errors.New("places: missing location query")

	// ErrNoLatLng is returned by ReverseGeocode when called without
	// coordinates.
	ErrNoLatLng = errors.New("places: missing latlng coordinates")
)

// TransportError reports a non-2xx HTTP response.
type TransportError struct {
	Status string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("places: request failed: %s", e.Status)
}

// StatusError reports an API status outside {OK, ZERO_RESULTS}.
type StatusError struct {
	URL    string
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("places: %s returned status %s", e.URL, e.Status)
}

// MissingValueError reports an accepted component filter without a value.
type MissingValueError struct {
	Component string
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("places: missing value for component %q", e.Component)
}

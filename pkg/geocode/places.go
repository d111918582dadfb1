package geocode

import (
	"fmt"

	"github.com/placeskit/places/pkg/places"
)

func NewPlacesClient(c *places.Client) *pc {
	return &pc{c: c}
}

type pc struct {
	c *places.Client
}

var _ Client = (*pc)(nil)

func (g *pc) Geocode(query string) (*Location, error) {
	result, err := g.c.GeocodeFirst(query)
	if err != nil {
		return nil, err
	}

	if result == nil {
		return nil, fmt.Errorf("unable to geocode address")
	}

	name := result.Name
	if name == "" {
		name = result.FormattedAddress
	}

	country, code := countryOf(result)
	return &Location{
		Latitude:    result.Geometry.Location.Lat,
		Longitude:   result.Geometry.Location.Lng,
		Name:        name,
		Country:     country,
		CountryCode: code,
	}, nil
}

func (g *pc) ReverseGeocode(lat, lng float64) (*Location, error) {
	results, err := g.c.ReverseGeocode(fmt.Sprintf("%f,%f", lat, lng))
	if err != nil {
		return nil, err
	}

	if len(results) == 0 {
		return nil, fmt.Errorf("unable to reverse geocode location")
	}

	result := &results[0]
	country, code := countryOf(result)
	return &Location{
		Latitude:    lat,
		Longitude:   lng,
		Name:        result.FormattedAddress,
		Country:     country,
		CountryCode: code,
	}, nil
}

func countryOf(r *places.Result) (name, code string) {
	for _, c := range r.AddressComponents {
		for _, t := range c.Types {
			if t == "country" {
				return c.LongName, c.ShortName
			}
		}
	}
	return "", ""
}

package geocode

import (
	"fmt"

	"github.com/codingsince1985/geo-golang"
	"github.com/placeskit/places/pkg/places"
)

// NewGeoGolangAdapter wraps a places client as a geo.Geocoder so it can be
// dropped in wherever geo-golang providers are expected.
func NewGeoGolangAdapter(c *places.Client) geo.Geocoder {
	return ggAdapter{c: c}
}

type ggAdapter struct {
	c *places.Client
}

func (a ggAdapter) Geocode(address string) (*geo.Location, error) {
	result, err := a.c.GeocodeFirst(address)
	if err != nil {
		return nil, err
	}

	// geo-golang providers signal "no match" with a nil location.
	if result == nil {
		return nil, nil
	}

	return &geo.Location{
		Lat: result.Geometry.Location.Lat,
		Lng: result.Geometry.Location.Lng,
	}, nil
}

func (a ggAdapter) ReverseGeocode(lat, lng float64) (*geo.Address, error) {
	results, err := a.c.ReverseGeocode(fmt.Sprintf("%f,%f", lat, lng))
	if err != nil {
		return nil, err
	}

	if len(results) == 0 {
		return nil, nil
	}

	result := &results[0]
	addr := geo.Address{FormattedAddress: result.FormattedAddress}
	for _, c := range result.AddressComponents {
		for _, t := range c.Types {
			switch t {
			case "street_number":
				addr.HouseNumber = c.LongName
			case "route":
				addr.Street = c.LongName
			case "locality":
				addr.City = c.LongName
			case "postal_code":
				addr.Postcode = c.LongName
			case "administrative_area_level_1":
				addr.State = c.LongName
				addr.StateCode = c.ShortName
			case "administrative_area_level_2":
				addr.County = c.LongName
			case "country":
				addr.Country = c.LongName
				addr.CountryCode = c.ShortName
			}
		}
	}

	return &addr, nil
}

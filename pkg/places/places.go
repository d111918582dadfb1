// Package places is a client for the Google Places text search API. It
// supports forward geocoding (free-text queries), reverse geocoding
// (lat,lng lookups), server-side component filters and premier-account
// request signing.
package places

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/placeskit/places/pkg/httpx"
)

// DefaultHost serves the public Places API.
const DefaultHost = "maps.googleapis.com"

const (
	searchPath = "/maps/api/place/textsearch/json"
	userAgent  = "places-go/1.0"
)

// HTTPClient issues the search requests. *http.Client satisfies it; swap it
// out to add proxy support or custom headers.
type HTTPClient interface {
	Get(url string) (*http.Response, error)
}

// Config carries the client settings. The zero value plus Key is enough for
// standard accounts.
type Config struct {
	// HTTPClient replaces the default tagged client.
	HTTPClient HTTPClient

	// Host replaces DefaultHost.
	Host string

	// Key is the API key of a standard account.
	Key string

	// Language and Region are two-letter locale hints, forwarded verbatim
	// when set.
	Language string
	Region   string

	// OutputEncoding defaults to "utf8".
	OutputEncoding string

	// Sensor reports whether the query originates from a device sensor.
	Sensor bool

	// ClientID and PrivateKey are premier-account credentials. When both
	// are set requests are signed and the plain key is not sent.
	ClientID   string
	PrivateKey string

	// Components restricts results server-side, e.g.
	// {"country": "uk", "locality": "Rochester"}. See EncodeComponents for
	// the accepted filter names.
	Components map[string]string
}

// Client is a Places API client. It is safe to share across calls but not
// to mutate concurrently.
type Client struct {
	h          HTTPClient
	host       string
	key        string
	language   string
	region     string
	oe         string
	sensor     bool
	clientID   string
	privateKey string
	components map[string]string
}

// New creates a client, filling in defaults for anything cfg leaves unset.
func New(cfg Config) *Client {
	c := &Client{
		h:          cfg.HTTPClient,
		host:       cfg.Host,
		key:        cfg.Key,
		language:   cfg.Language,
		region:     cfg.Region,
		oe:         cfg.OutputEncoding,
		sensor:     cfg.Sensor,
		clientID:   cfg.ClientID,
		privateKey: cfg.PrivateKey,
		components: cfg.Components,
	}

	if c.h == nil {
		c.h = httpx.NewClient(userAgent)
	}
	if c.host == "" {
		c.host = DefaultHost
	}
	if c.oe == "" {
		c.oe = "utf8"
	}

	return c
}

// Geocode searches places matching a free-text query and returns every
// result. A valid query with no matches returns an empty slice, not an
// error.
func (c *Client) Geocode(query string) ([]Result, error) {
	if query == "" {
		return nil, ErrNoQuery
	}
	return c.search(query, false)
}

// GeocodeFirst is a convenience around Geocode returning only the first
// result, or nil when there is none.
func (c *Client) GeocodeFirst(query string) (*Result, error) {
	results, err := c.Geocode(query)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return &results[0], nil
}

// ReverseGeocode searches places around coordinates given as a "lat,lng"
// string.
func (c *Client) ReverseGeocode(latlng string) ([]Result, error) {
	if latlng == "" {
		return nil, ErrNoLatLng
	}
	return c.search(latlng, true)
}

func (c *Client) search(query string, reverse bool) ([]Result, error) {
	u, err := c.buildURL(query, reverse)
	if err != nil {
		return nil, err
	}

	res, err := c.h.Get(u)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &TransportError{Status: res.Status}
	}

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	var r response
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("places: decode response: %w", err)
	}

	if r.Status != statusOK && r.Status != statusZeroResults {
		return nil, &StatusError{URL: u, Status: r.Status}
	}

	return r.Results, nil
}

func (c *Client) buildURL(query string, reverse bool) (string, error) {
	v := url.Values{}
	if reverse {
		v.Set("latlng", query)
	} else {
		v.Set("query", query)
	}

	if c.language != "" {
		v.Set("language", c.language)
	}
	if c.region != "" {
		v.Set("region", c.region)
	}
	v.Set("oe", c.oe)
	v.Set("sensor", strconv.FormatBool(c.sensor))

	filters, err := EncodeComponents(c.components)
	if err != nil {
		return "", err
	}
	if filters != "" {
		v.Set("components", filters)
	}

	if c.key != "" {
		v.Set("key", c.key)
	}

	u := &url.URL{Scheme: "https", Host: c.host, Path: searchPath}

	if c.clientID != "" && c.privateKey != "" {
		// Premier requests authenticate with client+signature; the plain
		// key must not be sent alongside them.
		v.Del("key")
		v.Set("client", c.clientID)
		u.RawQuery = v.Encode()

		sig, err := Signature(u.Path+"?"+u.RawQuery, c.privateKey)
		if err != nil {
			return "", err
		}

		// The API rejects signed requests unless signature is the final
		// query parameter.
		return u.String() + "&signature=" + url.QueryEscape(sig), nil
	}

	u.RawQuery = v.Encode()
	return u.String(), nil
}

// HTTPClient returns the transport in use.
func (c *Client) HTTPClient() HTTPClient { return c.h }

// SetHTTPClient replaces the transport.
func (c *Client) SetHTTPClient(h HTTPClient) { c.h = h }

// Key returns the configured API key.
func (c *Client) Key() string { return c.key }

// SetKey replaces the API key.
func (c *Client) SetKey(key string) { c.key = key }

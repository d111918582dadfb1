package places_test

import (
	"errors"
	"io"
	"math"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/placeskit/places/pkg/places"
)

type fakeHTTPClient struct {
	lastURL    string
	statusCode int
	status     string
	body       string
	err        error
}

func (f *fakeHTTPClient) Get(targetURL string) (*http.Response, error) {
	f.lastURL = targetURL
	if f.err != nil {
		return nil, f.err
	}

	code := f.statusCode
	if code == 0 {
		code = http.StatusOK
	}

	status := f.status
	if status == "" {
		status = "200 OK"
	}

	return &http.Response{
		StatusCode: code,
		Status:     status,
		Body:       io.NopCloser(strings.NewReader(f.body)),
	}, nil
}

func TestGeocode(t *testing.T) {
	fake := &fakeHTTPClient{body: `{"status":"OK","results":[{"geometry":{"location":{"lat":51.372563,"lng":0.5093407}}}]}`}
	client := places.New(places.Config{Key: "test-key", HTTPClient: fake})

	results, err := client.Geocode("Wisdom Hospice, High Bank, Rochester, Kent, England")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(results) != 1 {
		t.Fatalf("got %d results, expected 1", len(results))
	}

	loc := results[0].Geometry.Location
	if math.Abs(loc.Lat-51.372563) > 1e-4 {
		t.Errorf("got lat %f, expected 51.372563", loc.Lat)
	}
	if math.Abs(loc.Lng-0.5093407) > 1e-4 {
		t.Errorf("got lng %f, expected 0.5093407", loc.Lng)
	}

	u, err := url.Parse(fake.lastURL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if u.Host != places.DefaultHost {
		t.Errorf("got host %q, expected %q", u.Host, places.DefaultHost)
	}
	if u.Path != "/maps/api/place/textsearch/json" {
		t.Errorf("got path %q", u.Path)
	}

	q := u.Query()
	if got := q.Get("query"); got != "Wisdom Hospice, High Bank, Rochester, Kent, England" {
		t.Errorf("got query %q", got)
	}
	if got := q.Get("key"); got != "test-key" {
		t.Errorf("got key %q", got)
	}
	if got := q.Get("oe"); got != "utf8" {
		t.Errorf("got oe %q", got)
	}
	if got := q.Get("sensor"); got != "false" {
		t.Errorf("got sensor %q", got)
	}
}

func TestGeocodeParameters(t *testing.T) {
	fake := &fakeHTTPClient{body: `{"status":"OK","results":[]}`}
	client := places.New(places.Config{
		Key:        "test-key",
		Language:   "en",
		Region:     "uk",
		Sensor:     true,
		Components: map[string]string{"country": "uk", "locality": "Rochester"},
		HTTPClient: fake,
	})

	if _, err := client.Geocode("High Bank"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	u, err := url.Parse(fake.lastURL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	q := u.Query()
	if got := q.Get("language"); got != "en" {
		t.Errorf("got language %q", got)
	}
	if got := q.Get("region"); got != "uk" {
		t.Errorf("got region %q", got)
	}
	if got := q.Get("sensor"); got != "true" {
		t.Errorf("got sensor %q", got)
	}
	if got := q.Get("components"); got != "country:uk|locality:Rochester" {
		t.Errorf("got components %q", got)
	}
}

func TestGeocodeWithoutQuery(t *testing.T) {
	client := places.New(places.Config{HTTPClient: &fakeHTTPClient{}})

	if _, err := client.Geocode(""); !errors.Is(err, places.ErrNoQuery) {
		t.Errorf("got %v, expected ErrNoQuery", err)
	}
}

func TestGeocodeZeroResults(t *testing.T) {
	fake := &fakeHTTPClient{body: `{"status":"ZERO_RESULTS","results":[]}`}
	client := places.New(places.Config{Key: "test-key", HTTPClient: fake})

	results, err := client.Geocode("nowhere at all")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(results) != 0 {
		t.Errorf("got %d results, expected none", len(results))
	}
}

func TestGeocodeBadStatus(t *testing.T) {
	fake := &fakeHTTPClient{body: `{"status":"INVALID_REQUEST","results":[]}`}
	client := places.New(places.Config{Key: "test-key", HTTPClient: fake})

	_, err := client.Geocode("somewhere")
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var statusErr *places.StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %T: %v", err, err)
	}

	if statusErr.Status != "INVALID_REQUEST" {
		t.Errorf("got status %q", statusErr.Status)
	}
	if statusErr.URL == "" {
		t.Error("expected the request URL in the error")
	}
}

func TestGeocodeTransportError(t *testing.T) {
	fake := &fakeHTTPClient{statusCode: http.StatusForbidden, status: "403 Forbidden"}
	client := places.New(places.Config{Key: "test-key", HTTPClient: fake})

	_, err := client.Geocode("somewhere")

	var transportErr *places.TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("expected TransportError, got %T: %v", err, err)
	}

	if transportErr.Status != "403 Forbidden" {
		t.Errorf("got status %q", transportErr.Status)
	}
}

func TestGeocodeMalformedBody(t *testing.T) {
	fake := &fakeHTTPClient{body: `{"status":`}
	client := places.New(places.Config{Key: "test-key", HTTPClient: fake})

	if _, err := client.Geocode("somewhere"); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestGeocodeFirst(t *testing.T) {
	fake := &fakeHTTPClient{body: `{"status":"OK","results":[{"name":"first"},{"name":"second"}]}`}
	client := places.New(places.Config{Key: "test-key", HTTPClient: fake})

	result, err := client.GeocodeFirst("somewhere")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result == nil || result.Name != "first" {
		t.Errorf("got %v, expected the first result", result)
	}

	fake.body = `{"status":"ZERO_RESULTS"}`
	result, err = client.GeocodeFirst("nowhere")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result != nil {
		t.Errorf("got %v, expected nil", result)
	}
}

func TestReverseGeocode(t *testing.T) {
	fake := &fakeHTTPClient{body: `{"status":"OK","results":[]}`}
	client := places.New(places.Config{Key: "test-key", HTTPClient: fake})

	if _, err := client.ReverseGeocode("37.778907,-122.39732"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	u, err := url.Parse(fake.lastURL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	q := u.Query()
	if got := q.Get("latlng"); got != "37.778907,-122.39732" {
		t.Errorf("got latlng %q", got)
	}
	if q.Has("query") {
		t.Error("reverse lookup should not send a query parameter")
	}
}

func TestReverseGeocodeWithoutCoordinates(t *testing.T) {
	client := places.New(places.Config{HTTPClient: &fakeHTTPClient{}})

	if _, err := client.ReverseGeocode(""); !errors.Is(err, places.ErrNoLatLng) {
		t.Errorf("got %v, expected ErrNoLatLng", err)
	}
}

func TestPremierSigning(t *testing.T) {
	fake := &fakeHTTPClient{body: `{"status":"OK","results":[]}`}
	client := places.New(places.Config{
		Key:        "plain-key",
		ClientID:   "gme-acme",
		PrivateKey: "bXlfdGVzdF9rZXk=",
		HTTPClient: fake,
	})

	if _, err := client.Geocode("Rochester"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Signed over "/maps/api/place/textsearch/json?client=gme-acme&oe=utf8&query=Rochester&sensor=false".
	wantSuffix := "&signature=" + url.QueryEscape("IpzSMSyT42DTrWkOhsjCxxvuWHA=")
	if !strings.HasSuffix(fake.lastURL, wantSuffix) {
		t.Errorf("got %q, expected trailing %q", fake.lastURL, wantSuffix)
	}

	u, err := url.Parse(fake.lastURL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	q := u.Query()
	if q.Has("key") {
		t.Error("signed requests should not carry the plain key")
	}
	if got := q.Get("client"); got != "gme-acme" {
		t.Errorf("got client %q", got)
	}
}

func TestAccessors(t *testing.T) {
	client := places.New(places.Config{Key: "first"})

	if got := client.Key(); got != "first" {
		t.Errorf("got key %q", got)
	}

	client.SetKey("second")
	if got := client.Key(); got != "second" {
		t.Errorf("got key %q", got)
	}

	fake := &fakeHTTPClient{}
	client.SetHTTPClient(fake)
	if client.HTTPClient() != fake {
		t.Error("expected the injected transport back")
	}
}

func TestGeocodeComponentsMissingValue(t *testing.T) {
	fake := &fakeHTTPClient{}
	client := places.New(places.Config{
		Key:        "test-key",
		Components: map[string]string{"country": ""},
		HTTPClient: fake,
	})

	_, err := client.Geocode("somewhere")

	var missing *places.MissingValueError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingValueError, got %T: %v", err, err)
	}

	if fake.lastURL != "" {
		t.Error("no request should be issued when the filter is invalid")
	}
}

// Package env contains getters for the environment variables the binaries
// read. The library itself reads no environment.
package env

import (
	"fmt"
	"os"
)

// PlacesAPIKey returns the standard-account API key.
func PlacesAPIKey() (string, error) {
	key := os.Getenv("PLACES_API_KEY")
	if key == "" {
		return "", fmt.Errorf("missing PLACES_API_KEY environment variable. Please check your environment.")
	}

	return key, nil
}

// PremierCredentials returns the premier client id and private signing key,
// or empty strings when the account is not a premier one.
func PremierCredentials() (clientID, privateKey string) {
	return os.Getenv("PLACES_CLIENT_ID"), os.Getenv("PLACES_PRIVATE_KEY")
}

// Port returns the HTTP port for the demo service.
func Port() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}

	return "8080"
}

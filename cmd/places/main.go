package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/placeskit/places/pkg/env"
	"github.com/placeskit/places/pkg/httpx"
	"github.com/placeskit/places/pkg/logger"
	"github.com/placeskit/places/pkg/places"
)

var (
	language string
	region   string
	country  string
	verbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "places",
	Short: "Query the Google Places text search API",
	Long:  `Forward and reverse geocoding against the Google Places text search API.`,
}

var searchCmd = &cobra.Command{
	Use:   "search [query...]",
	Short: "Search places matching a free-text query",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

var reverseCmd = &cobra.Command{
	Use:   "reverse [lat,lng]",
	Short: "Search places around coordinates",
	Args:  cobra.ExactArgs(1),
	RunE:  runReverse,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&language, "language", "l", "", "Two-letter response language hint")
	rootCmd.PersistentFlags().StringVarP(&region, "region", "r", "", "Two-letter region bias")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log outbound requests")

	searchCmd.Flags().StringVarP(&country, "country", "c", "", "Restrict results to a country, e.g. uk")

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(reverseCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runSearch(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	results, err := client.Geocode(strings.Join(args, " "))
	if err != nil {
		return err
	}

	render(results)
	return nil
}

func runReverse(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	results, err := client.ReverseGeocode(args[0])
	if err != nil {
		return err
	}

	render(results)
	return nil
}

func newClient() (*places.Client, error) {
	key, err := env.PlacesAPIKey()
	if err != nil {
		return nil, err
	}

	cfg := places.Config{
		Key:      key,
		Language: language,
		Region:   region,
	}

	if country != "" {
		cfg.Components = map[string]string{"country": country}
	}

	if clientID, privateKey := env.PremierCredentials(); clientID != "" && privateKey != "" {
		cfg.ClientID = clientID
		cfg.PrivateKey = privateKey
	}

	if verbose {
		logger.InitGlobalSlog("places")
		cfg.HTTPClient = httpx.NewLoggingClient("places-cli/1.0")
	}

	return places.New(cfg), nil
}

func render(results []places.Result) {
	if len(results) == 0 {
		fmt.Println("no results")
		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Name", "Address", "Lat", "Lng", "Place ID"})

	for _, r := range results {
		table.Append([]string{
			r.Name,
			r.FormattedAddress,
			fmt.Sprintf("%.6f", r.Geometry.Location.Lat),
			fmt.Sprintf("%.6f", r.Geometry.Location.Lng),
			r.PlaceID,
		})
	}

	table.Render()
}

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/placeskit/places/pkg/env"
	"github.com/placeskit/places/pkg/httpx"
	"github.com/placeskit/places/pkg/logger"
	"github.com/placeskit/places/pkg/middleware"
	"github.com/placeskit/places/pkg/places"
)

func main() {
	logger.InitGlobalSlog("placesd")

	apiKey, err := env.PlacesAPIKey()
	if err != nil {
		panic(err)
	}

	cfg := places.Config{Key: apiKey, HTTPClient: httpx.NewLoggingClient("placesd/1.0")}
	if clientID, privateKey := env.PremierCredentials(); clientID != "" && privateKey != "" {
		cfg.ClientID = clientID
		cfg.PrivateKey = privateKey
	}

	client := places.New(cfg)

	r := gin.New()
	r.Use(middleware.TraceID())
	r.Use(middleware.Recovery())
	r.Use(middleware.Logger())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	r.GET("/geocode", func(c *gin.Context) {
		results, err := client.Geocode(c.Query("q"))
		respond(c, results, err)
	})

	r.GET("/reverse", func(c *gin.Context) {
		results, err := client.ReverseGeocode(c.Query("latlng"))
		respond(c, results, err)
	})

	port := env.Port()
	slog.Info("serving...", "port", port)

	if err := r.Run(fmt.Sprintf(":%s", port)); err != nil {
		slog.Error("server shutdown abruptly", "error", err.Error())
	}
}

func respond(c *gin.Context, results []places.Result, err error) {
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"results": results})
	case errors.Is(err, places.ErrNoQuery), errors.Is(err, places.ErrNoLatLng):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		var statusErr *places.StatusError
		if errors.As(err, &statusErr) {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error(), "status": statusErr.Status})
			return
		}

		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	}
}

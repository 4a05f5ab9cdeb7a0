// ABOUTME: Travel endpoint bindings for the Wayfarer backend
// ABOUTME: Trip CRUD, itinerary items, and destination recommendations

package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/wayfarerhq/wayfarer-cli/internal/models"
)

// ListTrips calls GET /trips
func (c *Client) ListTrips(ctx context.Context, token string) ([]models.Trip, error) {
	var trips []models.Trip
	if err := c.do(ctx, http.MethodGet, "/trips", token, nil, &trips); err != nil {
		return nil, err
	}
	return trips, nil
}

// CreateTrip calls POST /trips
func (c *Client) CreateTrip(ctx context.Context, token string, input *models.TripInput) (*models.Trip, error) {
	var trip models.Trip
	if err := c.do(ctx, http.MethodPost, "/trips", token, input, &trip); err != nil {
		return nil, err
	}
	return &trip, nil
}

// GetTrip calls GET /trips/{id}
func (c *Client) GetTrip(ctx context.Context, token string, id int) (*models.Trip, error) {
	var trip models.Trip
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/trips/%d", id), token, nil, &trip); err != nil {
		return nil, err
	}
	return &trip, nil
}

// DeleteTrip calls DELETE /trips/{id}
func (c *Client) DeleteTrip(ctx context.Context, token string, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/trips/%d", id), token, nil, nil)
}

// AddActivity calls POST /trips/{id}/activities
func (c *Client) AddActivity(ctx context.Context, token string, tripID int, activity *models.Activity) (*models.Activity, error) {
	var created models.Activity
	path := fmt.Sprintf("/trips/%d/activities", tripID)
	if err := c.do(ctx, http.MethodPost, path, token, activity, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// AddFlight calls POST /trips/{id}/flights
func (c *Client) AddFlight(ctx context.Context, token string, tripID int, flight *models.Flight) (*models.Flight, error) {
	var created models.Flight
	path := fmt.Sprintf("/trips/%d/flights", tripID)
	if err := c.do(ctx, http.MethodPost, path, token, flight, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// AddHotel calls POST /trips/{id}/hotels
func (c *Client) AddHotel(ctx context.Context, token string, tripID int, hotel *models.Hotel) (*models.Hotel, error) {
	var created models.Hotel
	path := fmt.Sprintf("/trips/%d/hotels", tripID)
	if err := c.do(ctx, http.MethodPost, path, token, hotel, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// GetRecommendations calls POST /recommendations
func (c *Client) GetRecommendations(ctx context.Context, token string, req *models.RecommendationRequest) ([]models.Recommendation, error) {
	var recs []models.Recommendation
	if err := c.do(ctx, http.MethodPost, "/recommendations", token, req, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

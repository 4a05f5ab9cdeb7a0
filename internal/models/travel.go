// ABOUTME: Travel domain records exchanged with the backend
// ABOUTME: Trips, activities, flights, hotels, and destination recommendations

package models

// Trip is a planned journey owned by a user.
type Trip struct {
	ID          int        `json:"id"`
	UserID      int        `json:"user_id,omitempty"`
	Destination string     `json:"destination"`
	StartDate   string     `json:"start_date,omitempty"`
	EndDate     string     `json:"end_date,omitempty"`
	Budget      float64    `json:"budget,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	Activities  []Activity `json:"activities,omitempty"`
	Flights     []Flight   `json:"flights,omitempty"`
	Hotels      []Hotel    `json:"hotels,omitempty"`
}

// TripInput is the create-trip request body.
type TripInput struct {
	Destination string  `json:"destination"`
	StartDate   string  `json:"start_date,omitempty"`
	EndDate     string  `json:"end_date,omitempty"`
	Budget      float64 `json:"budget,omitempty"`
	Notes       string  `json:"notes,omitempty"`
}

// Activity is a scheduled item within a trip.
type Activity struct {
	ID       int     `json:"id,omitempty"`
	Name     string  `json:"name"`
	Date     string  `json:"date,omitempty"`
	Location string  `json:"location,omitempty"`
	Cost     float64 `json:"cost,omitempty"`
}

// Flight is a booked or planned flight within a trip.
type Flight struct {
	ID            int     `json:"id,omitempty"`
	Airline       string  `json:"airline"`
	FlightNumber  string  `json:"flight_number,omitempty"`
	Origin        string  `json:"origin,omitempty"`
	Destination   string  `json:"destination,omitempty"`
	DepartureTime string  `json:"departure_time,omitempty"`
	ArrivalTime   string  `json:"arrival_time,omitempty"`
	Price         float64 `json:"price,omitempty"`
}

// Hotel is a stay within a trip.
type Hotel struct {
	ID       int     `json:"id,omitempty"`
	Name     string  `json:"name"`
	Address  string  `json:"address,omitempty"`
	CheckIn  string  `json:"check_in,omitempty"`
	CheckOut string  `json:"check_out,omitempty"`
	Price    float64 `json:"price,omitempty"`
}

// Recommendation is a suggested destination with a cost estimate.
type Recommendation struct {
	Destination   string  `json:"destination"`
	Summary       string  `json:"summary"`
	EstimatedCost float64 `json:"estimated_cost,omitempty"`
	BestSeason    string  `json:"best_season,omitempty"`
}

// RecommendationRequest asks the backend for destination suggestions.
type RecommendationRequest struct {
	Destination string `json:"destination"`
	Days        int    `json:"days,omitempty"`
	BudgetRange string `json:"budget_range,omitempty"`
}

// ABOUTME: Trip commands for the wayfarer CLI
// ABOUTME: Lists, creates, shows, and deletes trips and their itinerary items

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/wayfarerhq/wayfarer-cli/internal/models"
)

var (
	tripDestination string
	tripStart       string
	tripEnd         string
	tripBudget      float64
	tripNotes       string

	activityName     string
	activityDate     string
	activityLocation string
	activityCost     float64

	flightAirline   string
	flightNumber    string
	flightOrigin    string
	flightDest      string
	flightDeparture string
	flightArrival   string
	flightPrice     float64

	hotelName     string
	hotelAddress  string
	hotelCheckIn  string
	hotelCheckOut string
	hotelPrice    float64
)

var tripsCmd = &cobra.Command{
	Use:   "trips",
	Short: "Manage your trips",
	Long: `List, create, inspect, and delete trips, and build their itineraries.

All trip commands need a signed-in session.

Exit codes:
  0 - Success
  1 - Not signed in or session rejected
  2 - Error (connectivity, invalid input, backend rejection)`,
}

var tripsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your trips",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runTripsList(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var tripsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Plan a new trip",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runTripsCreate(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var tripsShowCmd = &cobra.Command{
	Use:   "show <trip-id>",
	Short: "Show a trip and its itinerary",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runTripsShow(ctx, os.Stdout, args[0])
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var tripsDeleteCmd = &cobra.Command{
	Use:   "delete <trip-id>",
	Short: "Delete a trip",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runTripsDelete(ctx, os.Stdout, args[0])
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var tripsAddActivityCmd = &cobra.Command{
	Use:   "add-activity <trip-id>",
	Short: "Add an activity to a trip",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runTripsAddActivity(ctx, os.Stdout, args[0])
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var tripsAddFlightCmd = &cobra.Command{
	Use:   "add-flight <trip-id>",
	Short: "Add a flight to a trip",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runTripsAddFlight(ctx, os.Stdout, args[0])
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var tripsAddHotelCmd = &cobra.Command{
	Use:   "add-hotel <trip-id>",
	Short: "Add a hotel stay to a trip",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runTripsAddHotel(ctx, os.Stdout, args[0])
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(tripsCmd)
	tripsCmd.AddCommand(tripsListCmd)
	tripsCmd.AddCommand(tripsCreateCmd)
	tripsCmd.AddCommand(tripsShowCmd)
	tripsCmd.AddCommand(tripsDeleteCmd)
	tripsCmd.AddCommand(tripsAddActivityCmd)
	tripsCmd.AddCommand(tripsAddFlightCmd)
	tripsCmd.AddCommand(tripsAddHotelCmd)

	tripsCreateCmd.Flags().StringVar(&tripDestination, "destination", "", "Where you are going (prompts when omitted)")
	tripsCreateCmd.Flags().StringVar(&tripStart, "start", "", "Start date, YYYY-MM-DD (prompts when omitted)")
	tripsCreateCmd.Flags().StringVar(&tripEnd, "end", "", "End date, YYYY-MM-DD (prompts when omitted)")
	tripsCreateCmd.Flags().Float64Var(&tripBudget, "budget", 0, "Total budget")
	tripsCreateCmd.Flags().StringVar(&tripNotes, "notes", "", "Free-form notes")

	tripsAddActivityCmd.Flags().StringVar(&activityName, "name", "", "Activity name")
	tripsAddActivityCmd.Flags().StringVar(&activityDate, "date", "", "Date, YYYY-MM-DD")
	tripsAddActivityCmd.Flags().StringVar(&activityLocation, "location", "", "Where it happens")
	tripsAddActivityCmd.Flags().Float64Var(&activityCost, "cost", 0, "Cost per person")

	tripsAddFlightCmd.Flags().StringVar(&flightAirline, "airline", "", "Airline name")
	tripsAddFlightCmd.Flags().StringVar(&flightNumber, "number", "", "Flight number")
	tripsAddFlightCmd.Flags().StringVar(&flightOrigin, "from", "", "Origin airport")
	tripsAddFlightCmd.Flags().StringVar(&flightDest, "to", "", "Destination airport")
	tripsAddFlightCmd.Flags().StringVar(&flightDeparture, "departure", "", "Departure time")
	tripsAddFlightCmd.Flags().StringVar(&flightArrival, "arrival", "", "Arrival time")
	tripsAddFlightCmd.Flags().Float64Var(&flightPrice, "price", 0, "Ticket price")

	tripsAddHotelCmd.Flags().StringVar(&hotelName, "name", "", "Hotel name")
	tripsAddHotelCmd.Flags().StringVar(&hotelAddress, "address", "", "Hotel address")
	tripsAddHotelCmd.Flags().StringVar(&hotelCheckIn, "check-in", "", "Check-in date, YYYY-MM-DD")
	tripsAddHotelCmd.Flags().StringVar(&hotelCheckOut, "check-out", "", "Check-out date, YYYY-MM-DD")
	tripsAddHotelCmd.Flags().Float64Var(&hotelPrice, "price", 0, "Price for the stay")
}

// parseTripID converts a positional trip ID argument
func parseTripID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid trip ID %q", arg)
	}
	return id, nil
}

// runTripsList fetches and prints all trips, returns exit code
func runTripsList(ctx context.Context, w io.Writer) int {
	c, mgr, ok := requireSession(ctx, w)
	if !ok {
		return 1
	}

	var trips []models.Trip
	err := mgr.Do(ctx, func(ctx context.Context, token string) error {
		var err error
		trips, err = c.ListTrips(ctx, token)
		return err
	})
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return exitCodeFor(err)
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatTripsJSON(trips))
	} else {
		fmt.Fprintln(w, formatTripsHuman(trips))
	}
	return 0
}

// runTripsCreate creates a trip and returns exit code
func runTripsCreate(ctx context.Context, w io.Writer) int {
	input := &models.TripInput{
		Destination: tripDestination,
		StartDate:   tripStart,
		EndDate:     tripEnd,
		Budget:      tripBudget,
		Notes:       tripNotes,
	}

	if input.Destination == "" || input.StartDate == "" || input.EndDate == "" {
		if err := promptTrip(input); err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return 2
		}
	}

	c, mgr, ok := requireSession(ctx, w)
	if !ok {
		return 1
	}

	var trip *models.Trip
	err := mgr.Do(ctx, func(ctx context.Context, token string) error {
		var err error
		trip, err = c.CreateTrip(ctx, token, input)
		return err
	})
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return exitCodeFor(err)
	}

	fmt.Fprintf(w, "Trip %d to %s created (%s to %s).\n", trip.ID, trip.Destination, trip.StartDate, trip.EndDate)
	return 0
}

// runTripsShow fetches one trip with its itinerary, returns exit code
func runTripsShow(ctx context.Context, w io.Writer, arg string) int {
	id, err := parseTripID(arg)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	c, mgr, ok := requireSession(ctx, w)
	if !ok {
		return 1
	}

	var trip *models.Trip
	err = mgr.Do(ctx, func(ctx context.Context, token string) error {
		var err error
		trip, err = c.GetTrip(ctx, token, id)
		return err
	})
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return exitCodeFor(err)
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(trip, "", "  ")
		fmt.Fprintln(w, string(data))
	} else {
		fmt.Fprintln(w, formatTripHuman(trip))
	}
	return 0
}

// runTripsDelete deletes a trip and returns exit code
func runTripsDelete(ctx context.Context, w io.Writer, arg string) int {
	id, err := parseTripID(arg)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	c, mgr, ok := requireSession(ctx, w)
	if !ok {
		return 1
	}

	err = mgr.Do(ctx, func(ctx context.Context, token string) error {
		return c.DeleteTrip(ctx, token, id)
	})
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return exitCodeFor(err)
	}

	fmt.Fprintf(w, "Trip %d deleted.\n", id)
	return 0
}

// runTripsAddActivity adds an activity and returns exit code
func runTripsAddActivity(ctx context.Context, w io.Writer, arg string) int {
	id, err := parseTripID(arg)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	if activityName == "" {
		fmt.Fprintln(w, "Error: --name is required")
		return 2
	}

	c, mgr, ok := requireSession(ctx, w)
	if !ok {
		return 1
	}

	activity := &models.Activity{
		Name:     activityName,
		Date:     activityDate,
		Location: activityLocation,
		Cost:     activityCost,
	}
	err = mgr.Do(ctx, func(ctx context.Context, token string) error {
		created, err := c.AddActivity(ctx, token, id, activity)
		if err == nil {
			activity = created
		}
		return err
	})
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return exitCodeFor(err)
	}

	fmt.Fprintf(w, "Added activity %q to trip %d.\n", activity.Name, id)
	return 0
}

// runTripsAddFlight adds a flight and returns exit code
func runTripsAddFlight(ctx context.Context, w io.Writer, arg string) int {
	id, err := parseTripID(arg)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	if flightAirline == "" || flightOrigin == "" || flightDest == "" {
		fmt.Fprintln(w, "Error: --airline, --from, and --to are required")
		return 2
	}

	c, mgr, ok := requireSession(ctx, w)
	if !ok {
		return 1
	}

	flight := &models.Flight{
		Airline:       flightAirline,
		FlightNumber:  flightNumber,
		Origin:        flightOrigin,
		Destination:   flightDest,
		DepartureTime: flightDeparture,
		ArrivalTime:   flightArrival,
		Price:         flightPrice,
	}
	err = mgr.Do(ctx, func(ctx context.Context, token string) error {
		created, err := c.AddFlight(ctx, token, id, flight)
		if err == nil {
			flight = created
		}
		return err
	})
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return exitCodeFor(err)
	}

	fmt.Fprintf(w, "Added flight %s %s to trip %d.\n", flight.Airline, flight.FlightNumber, id)
	return 0
}

// runTripsAddHotel adds a hotel stay and returns exit code
func runTripsAddHotel(ctx context.Context, w io.Writer, arg string) int {
	id, err := parseTripID(arg)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	if hotelName == "" {
		fmt.Fprintln(w, "Error: --name is required")
		return 2
	}

	c, mgr, ok := requireSession(ctx, w)
	if !ok {
		return 1
	}

	hotel := &models.Hotel{
		Name:     hotelName,
		Address:  hotelAddress,
		CheckIn:  hotelCheckIn,
		CheckOut: hotelCheckOut,
		Price:    hotelPrice,
	}
	err = mgr.Do(ctx, func(ctx context.Context, token string) error {
		created, err := c.AddHotel(ctx, token, id, hotel)
		if err == nil {
			hotel = created
		}
		return err
	})
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return exitCodeFor(err)
	}

	fmt.Fprintf(w, "Added hotel %q to trip %d.\n", hotel.Name, id)
	return 0
}

// promptTrip fills in the missing trip fields interactively
func promptTrip(input *models.TripInput) error {
	var fields []huh.Field
	if input.Destination == "" {
		fields = append(fields, huh.NewInput().
			Title("Destination").
			Placeholder("e.g., Kyoto").
			Validate(validateNotEmpty("destination")).
			Value(&input.Destination))
	}
	if input.StartDate == "" {
		fields = append(fields, huh.NewInput().
			Title("Start date").
			Placeholder("YYYY-MM-DD").
			Validate(validateDate).
			Value(&input.StartDate))
	}
	if input.EndDate == "" {
		fields = append(fields, huh.NewInput().
			Title("End date").
			Placeholder("YYYY-MM-DD").
			Validate(validateDate).
			Value(&input.EndDate))
	}

	return huh.NewForm(huh.NewGroup(fields...)).Run()
}

// validateDate rejects input that is not a YYYY-MM-DD date
func validateDate(s string) error {
	parts := strings.Split(s, "-")
	if len(parts) != 3 || len(parts[0]) != 4 || len(parts[1]) != 2 || len(parts[2]) != 2 {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	for _, part := range parts {
		if _, err := strconv.Atoi(part); err != nil {
			return fmt.Errorf("use YYYY-MM-DD")
		}
	}
	return nil
}

// formatTripsHuman formats the trip list for human readability
func formatTripsHuman(trips []models.Trip) string {
	if len(trips) == 0 {
		return "No trips yet. Plan one with 'wayfarer trips create'."
	}

	out := fmt.Sprintf("%-4s %-22s %-24s %s\n", "ID", "DESTINATION", "DATES", "BUDGET")
	for _, trip := range trips {
		dates := fmt.Sprintf("%s to %s", trip.StartDate, trip.EndDate)
		out += fmt.Sprintf("%-4d %-22s %-24s $%.0f\n", trip.ID, trip.Destination, dates, trip.Budget)
	}
	return strings.TrimRight(out, "\n")
}

// formatTripsJSON formats the trip list as JSON
func formatTripsJSON(trips []models.Trip) string {
	data, _ := json.MarshalIndent(trips, "", "  ")
	return string(data)
}

// formatTripHuman formats one trip with its itinerary
func formatTripHuman(trip *models.Trip) string {
	out := fmt.Sprintf(`Trip %d: %s
Dates:  %s to %s
Budget: $%.0f`, trip.ID, trip.Destination, trip.StartDate, trip.EndDate, trip.Budget)

	if trip.Notes != "" {
		out += fmt.Sprintf("\nNotes:  %s", trip.Notes)
	}

	if len(trip.Flights) > 0 {
		out += "\n\nFlights:"
		for _, f := range trip.Flights {
			out += fmt.Sprintf("\n  %s %s  %s -> %s  $%.0f", f.Airline, f.FlightNumber, f.Origin, f.Destination, f.Price)
		}
	}
	if len(trip.Hotels) > 0 {
		out += "\n\nHotels:"
		for _, h := range trip.Hotels {
			out += fmt.Sprintf("\n  %s  %s to %s  $%.0f", h.Name, h.CheckIn, h.CheckOut, h.Price)
		}
	}
	if len(trip.Activities) > 0 {
		out += "\n\nActivities:"
		for _, a := range trip.Activities {
			out += fmt.Sprintf("\n  %s", a.Name)
			if a.Date != "" {
				out += fmt.Sprintf(" (%s)", a.Date)
			}
			if a.Cost > 0 {
				out += fmt.Sprintf("  $%.0f", a.Cost)
			}
		}
	}

	return out
}

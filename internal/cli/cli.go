// Package cli implements the interactive front-desk menu.  It talks to
// the booking facade directly over the shared store, prompting on
// stdin and rendering tables on stdout.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/iliyamo/hotel-management/internal/hotel"
	"github.com/iliyamo/hotel-management/internal/repository"
)

// App is the interactive menu loop.
type App struct {
	manager *hotel.Manager
	in      *bufio.Scanner
	out     io.Writer
}

// New builds an App reading from in and writing to out.
func New(m *hotel.Manager, in io.Reader, out io.Writer) *App {
	if m == nil {
		panic("nil manager passed to cli.New")
	}
	return &App{manager: m, in: bufio.NewScanner(in), out: out}
}

// Run shows the menu until the operator exits or input ends.
func (a *App) Run(ctx context.Context) {
	for {
		a.menu()
		choice := a.prompt("Enter choice: ")
		switch choice {
		case "1":
			a.addRoom(ctx)
		case "2":
			a.viewRooms(ctx)
		case "3":
			a.checkAvailability(ctx)
		case "4":
			a.makeReservation(ctx)
		case "5":
			a.viewReservations(ctx)
		case "6":
			a.checkIn(ctx)
		case "7":
			a.checkOut(ctx)
		case "8":
			a.viewGuests(ctx)
		case "9":
			a.summary(ctx)
		case "10":
			a.cancel(ctx)
		case "0", "":
			fmt.Fprintln(a.out, "Goodbye!")
			return
		default:
			fmt.Fprintln(a.out, "Invalid choice, try again.")
		}
	}
}

func (a *App) menu() {
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, strings.Repeat("=", 50))
	fmt.Fprintln(a.out, "    HOTEL MANAGEMENT SYSTEM")
	fmt.Fprintln(a.out, strings.Repeat("=", 50))
	fmt.Fprintln(a.out, "1. Add Room")
	fmt.Fprintln(a.out, "2. View All Rooms")
	fmt.Fprintln(a.out, "3. Check Room Availability")
	fmt.Fprintln(a.out, "4. Make Reservation")
	fmt.Fprintln(a.out, "5. View Reservations")
	fmt.Fprintln(a.out, "6. Check In Guest")
	fmt.Fprintln(a.out, "7. Check Out Guest")
	fmt.Fprintln(a.out, "8. View Guests")
	fmt.Fprintln(a.out, "9. Room Status Summary")
	fmt.Fprintln(a.out, "10. Cancel Reservation")
	fmt.Fprintln(a.out, "0. Exit")
	fmt.Fprintln(a.out, strings.Repeat("=", 50))
}

func (a *App) addRoom(ctx context.Context) {
	fmt.Fprintln(a.out, "\n--- Add New Room ---")
	number := a.prompt("Room Number: ")
	roomType := a.prompt("Room Type (Single/Double/Suite/Presidential): ")
	price, err := strconv.ParseFloat(a.prompt("Price per Night: "), 64)
	if err != nil {
		fmt.Fprintln(a.out, "Error: invalid price")
		return
	}
	capacity, err := strconv.ParseUint(a.prompt("Capacity (number of guests): "), 10, 32)
	if err != nil {
		fmt.Fprintln(a.out, "Error: invalid capacity")
		return
	}
	amenities := a.prompt("Amenities (comma-separated, optional): ")

	room, err := a.manager.AddRoom(ctx, number, roomType, price, uint32(capacity), amenities, "")
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateRoomNumber) {
			fmt.Fprintln(a.out, "Error: room number already exists")
			return
		}
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "Room %s added successfully (id %d)\n", room.RoomNumber, room.ID)
}

func (a *App) viewRooms(ctx context.Context) {
	fmt.Fprintln(a.out, "\n--- All Rooms ---")
	rooms, err := a.manager.Rooms(ctx, "")
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	if len(rooms) == 0 {
		fmt.Fprintln(a.out, "No rooms found.")
		return
	}
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "Room #\tType\tPrice/Night\tCapacity\tStatus")
	for _, r := range rooms {
		fmt.Fprintf(w, "%s\t%s\t$%.2f\t%d\t%s\n", r.RoomNumber, r.RoomType, r.PricePerNight, r.Capacity, r.Status)
	}
	w.Flush()
}

func (a *App) checkAvailability(ctx context.Context) {
	fmt.Fprintln(a.out, "\n--- Check Room Availability ---")
	checkIn := a.prompt("Check-in Date (YYYY-MM-DD): ")
	checkOut := a.prompt("Check-out Date (YYYY-MM-DD): ")
	rooms, err := a.manager.AvailableRooms(ctx, checkIn, checkOut)
	if err != nil {
		if errors.Is(err, hotel.ErrInvalidDateRange) {
			fmt.Fprintln(a.out, "Error: invalid dates, use YYYY-MM-DD with check-out after check-in")
			return
		}
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	if len(rooms) == 0 {
		fmt.Fprintln(a.out, "No available rooms for the selected dates.")
		return
	}
	fmt.Fprintf(a.out, "\nAvailable Rooms (%d):\n", len(rooms))
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tRoom #\tType\tPrice/Night\tCapacity")
	for _, r := range rooms {
		fmt.Fprintf(w, "%d\t%s\t%s\t$%.2f\t%d\n", r.ID, r.RoomNumber, r.RoomType, r.PricePerNight, r.Capacity)
	}
	w.Flush()
}

func (a *App) makeReservation(ctx context.Context) {
	fmt.Fprintln(a.out, "\n--- Make Reservation ---")
	checkIn := a.prompt("Check-in Date (YYYY-MM-DD): ")
	checkOut := a.prompt("Check-out Date (YYYY-MM-DD): ")

	rooms, err := a.manager.AvailableRooms(ctx, checkIn, checkOut)
	if err != nil {
		if errors.Is(err, hotel.ErrInvalidDateRange) {
			fmt.Fprintln(a.out, "Error: invalid dates, use YYYY-MM-DD with check-out after check-in")
			return
		}
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	if len(rooms) == 0 {
		fmt.Fprintln(a.out, "No available rooms for the selected dates.")
		return
	}
	fmt.Fprintln(a.out, "\nAvailable Rooms:")
	for _, r := range rooms {
		fmt.Fprintf(a.out, "ID: %d - %s (%s) - $%.2f/night\n", r.ID, r.RoomNumber, r.RoomType, r.PricePerNight)
	}

	roomID, err := strconv.ParseUint(a.prompt("\nSelect Room ID: "), 10, 64)
	if err != nil {
		fmt.Fprintln(a.out, "Error: invalid room id")
		return
	}
	name := a.prompt("Guest Name: ")
	phone := a.prompt("Phone Number: ")
	email := a.prompt("Email (optional): ")
	address := a.prompt("Address (optional): ")

	det, err := a.manager.Reserve(ctx, name, phone, roomID, checkIn, checkOut, email, address)
	if err != nil {
		if errors.Is(err, hotel.ErrRoomUnavailable) {
			fmt.Fprintln(a.out, "Error: room not available or invalid room id")
			return
		}
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "Reservation created! ID: %d, Total: $%.2f\n", det.ID, det.TotalAmount)
}

func (a *App) viewReservations(ctx context.Context) {
	fmt.Fprintln(a.out, "\n--- Reservations ---")
	status := a.prompt("Filter by status (blank for all): ")
	items, err := a.manager.Reservations(ctx, strings.TrimSpace(status))
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No reservations found.")
		return
	}
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tGuest\tRoom #\tCheck-in\tCheck-out\tStatus\tTotal")
	for _, r := range items {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t$%.2f\n",
			r.ID, r.GuestName, r.RoomNumber, r.CheckInDate, r.CheckOutDate, r.Status, r.TotalAmount)
	}
	w.Flush()
}

func (a *App) checkIn(ctx context.Context) {
	id, ok := a.promptID("Reservation ID: ")
	if !ok {
		return
	}
	if _, err := a.manager.CheckIn(ctx, id); err != nil {
		a.lifecycleError(err, "check in")
		return
	}
	fmt.Fprintln(a.out, "Guest checked in successfully!")
}

func (a *App) checkOut(ctx context.Context) {
	id, ok := a.promptID("Reservation ID: ")
	if !ok {
		return
	}
	method := a.prompt("Payment Method (cash/card/online) [cash]: ")
	det, err := a.manager.CheckOut(ctx, id, strings.TrimSpace(method))
	if err != nil {
		a.lifecycleError(err, "check out")
		return
	}
	fmt.Fprintf(a.out, "Guest checked out successfully! Total paid: $%.2f\n", det.TotalAmount)
}

func (a *App) viewGuests(ctx context.Context) {
	fmt.Fprintln(a.out, "\n--- All Guests ---")
	guests, err := a.manager.Guests(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	if len(guests) == 0 {
		fmt.Fprintln(a.out, "No guests found.")
		return
	}
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tName\tPhone\tEmail")
	for _, g := range guests {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", g.ID, g.Name, g.Phone, g.Email)
	}
	w.Flush()
}

func (a *App) summary(ctx context.Context) {
	s, err := a.manager.Summary(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "\n--- Room Status Summary ---")
	fmt.Fprintf(a.out, "Total rooms:  %d\n", s.Total)
	fmt.Fprintf(a.out, "Available:    %d\n", s.Available)
	fmt.Fprintf(a.out, "Occupied:     %d\n", s.Occupied)
	fmt.Fprintf(a.out, "Maintenance:  %d\n", s.Maintenance)
}

func (a *App) cancel(ctx context.Context) {
	id, ok := a.promptID("Reservation ID: ")
	if !ok {
		return
	}
	if _, err := a.manager.Cancel(ctx, id); err != nil {
		a.lifecycleError(err, "cancel")
		return
	}
	fmt.Fprintln(a.out, "Reservation cancelled successfully!")
}

func (a *App) lifecycleError(err error, op string) {
	switch {
	case errors.Is(err, repository.ErrReservationNotFound):
		fmt.Fprintln(a.out, "Error: reservation not found")
	case errors.Is(err, hotel.ErrInvalidTransition):
		fmt.Fprintf(a.out, "Error: reservation status does not permit %s\n", op)
	default:
		fmt.Fprintf(a.out, "Error: %v\n", err)
	}
}

func (a *App) prompt(label string) string {
	fmt.Fprint(a.out, label)
	if !a.in.Scan() {
		return ""
	}
	return strings.TrimSpace(a.in.Text())
}

func (a *App) promptID(label string) (uint64, bool) {
	id, err := strconv.ParseUint(a.prompt(label), 10, 64)
	if err != nil || id == 0 {
		fmt.Fprintln(a.out, "Error: invalid reservation id")
		return 0, false
	}
	return id, true
}

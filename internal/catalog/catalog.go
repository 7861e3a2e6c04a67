// Package catalog holds the immutable snapshot of labs and bookings and every
// query the API answers from it. The snapshot is built once at startup and is
// never mutated, so it is shared by all request handlers without locking.
package catalog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"labcatalog/internal/models"
)

//go:embed data/labs.json
var defaultLabs []byte

//go:embed data/bookings.json
var defaultBookings []byte

var (
	ErrLabNotFound     = errors.New("lab not found")
	ErrBookingNotFound = errors.New("booking not found")

	// ErrValidation wraps malformed caller input (dates, times, intervals).
	ErrValidation = errors.New("validation failed")
)

type Catalog struct {
	labs     []models.Lab
	bookings []models.Booking
}

func New(labs []models.Lab, bookings []models.Booking) *Catalog {
	return &Catalog{labs: labs, bookings: bookings}
}

// Load builds the catalog from the configured JSON files. An empty path
// selects the embedded default dataset.
func Load(labsPath, bookingsPath string) (*Catalog, error) {
	const op = "catalog.Load"

	labsRaw, err := readOrDefault(labsPath, defaultLabs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	bookingsRaw, err := readOrDefault(bookingsPath, defaultBookings)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var labs []models.Lab
	if err := json.Unmarshal(labsRaw, &labs); err != nil {
		return nil, fmt.Errorf("%s: parse labs: %w", op, err)
	}

	var bookings []models.Booking
	if err := json.Unmarshal(bookingsRaw, &bookings); err != nil {
		return nil, fmt.Errorf("%s: parse bookings: %w", op, err)
	}

	return New(labs, bookings), nil
}

func readOrDefault(path string, fallback []byte) ([]byte, error) {
	if path == "" {
		return fallback, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return raw, nil
}

// Labs returns the full lab collection. Callers must treat it as read-only.
func (c *Catalog) Labs() []models.Lab {
	return c.labs
}

// Bookings returns the full booking collection. Callers must treat it as
// read-only.
func (c *Catalog) Bookings() []models.Booking {
	return c.bookings
}

// LabByID finds a lab by primary or provider identifier.
func (c *Catalog) LabByID(id string) (*models.Lab, error) {
	for i := range c.labs {
		if c.labs[i].HasID(id) {
			return &c.labs[i], nil
		}
	}
	return nil, ErrLabNotFound
}

// BookingByID finds a booking by any of its identifiers.
func (c *Catalog) BookingByID(id string) (*models.Booking, error) {
	for i := range c.bookings {
		if c.bookings[i].HasID(id) {
			return &c.bookings[i], nil
		}
	}
	return nil, ErrBookingNotFound
}

type LabSuggestion struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// LabSuggestions returns up to n labs to attach to not-found responses.
func (c *Catalog) LabSuggestions(n int) []LabSuggestion {
	if n > len(c.labs) {
		n = len(c.labs)
	}
	out := make([]LabSuggestion, 0, n)
	for _, lab := range c.labs[:n] {
		out = append(out, LabSuggestion{ID: lab.ID, Name: lab.Name, Category: lab.Category})
	}
	return out
}

// UpcomingBooking is the trimmed view of a future reservation shown on lab
// detail pages.
type UpcomingBooking struct {
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Purpose   string `json:"purpose"`
}

// UpcomingLabBookings lists up to n future slot-holding bookings for a lab.
func (c *Catalog) UpcomingLabBookings(labID string, now time.Time, n int) []UpcomingBooking {
	var out []UpcomingBooking
	for _, b := range c.bookings {
		if !b.ForLab(labID) || !BlocksSlot(b.Status) {
			continue
		}
		start, err := b.Schedule.StartAt()
		if err != nil || !start.After(now) {
			continue
		}
		out = append(out, UpcomingBooking{
			Date:      b.Schedule.Date,
			StartTime: b.Schedule.StartTime,
			EndTime:   b.Schedule.EndTime,
			Purpose:   b.Purpose.Title,
		})
		if len(out) == n {
			break
		}
	}
	return out
}

// SimilarLabs returns up to n other labs sharing the category or type of lab.
func (c *Catalog) SimilarLabs(lab *models.Lab, n int) []models.Lab {
	var out []models.Lab
	for _, other := range c.labs {
		if other.ID == lab.ID {
			continue
		}
		if other.Category == lab.Category || other.Type == lab.Type {
			out = append(out, other)
			if len(out) == n {
				break
			}
		}
	}
	return out
}

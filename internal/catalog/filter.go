package catalog

import (
	"slices"
	"sort"

	"labcatalog/internal/models"
)

// LabFilter is the set of optional predicates for lab listings. Zero values
// mean "no constraint"; supplied predicates are AND-ed.
type LabFilter struct {
	Status      string
	Category    string
	Type        string
	MinCapacity *int
	MaxCapacity *int
	Features    []string
}

// FilterLabs returns labs matching every supplied predicate, in catalog order.
func (c *Catalog) FilterLabs(f LabFilter) []models.Lab {
	out := make([]models.Lab, 0, len(c.labs))
	for _, lab := range c.labs {
		if f.Status != "" && string(lab.Status) != f.Status {
			continue
		}
		if f.Category != "" && lab.Category != f.Category {
			continue
		}
		if f.Type != "" && lab.Type != f.Type {
			continue
		}
		if f.MinCapacity != nil && lab.Capacity.MaxStudents < *f.MinCapacity {
			continue
		}
		if f.MaxCapacity != nil && lab.Capacity.MaxStudents > *f.MaxCapacity {
			continue
		}
		if !hasAllFeatures(lab.Features, f.Features) {
			continue
		}
		out = append(out, lab)
	}
	return out
}

func hasAllFeatures(have, want []string) bool {
	for _, w := range want {
		if !slices.Contains(have, w) {
			return false
		}
	}
	return true
}

// BookingFilter is the set of optional predicates for booking listings.
type BookingFilter struct {
	UserID    string
	Status    string
	LabID     string
	StartDate string
	EndDate   string
}

// FilterBookings returns bookings matching every supplied predicate, ordered
// by date and start time, most recent first. Date bounds are inclusive.
func (c *Catalog) FilterBookings(f BookingFilter) []models.Booking {
	out := make([]models.Booking, 0, len(c.bookings))
	for _, b := range c.bookings {
		if f.UserID != "" && b.User.ID != f.UserID {
			continue
		}
		if f.Status != "" && string(b.Status) != f.Status {
			continue
		}
		if f.LabID != "" && !b.ForLab(f.LabID) {
			continue
		}
		if f.StartDate != "" && b.Schedule.Date < f.StartDate {
			continue
		}
		if f.EndDate != "" && b.Schedule.Date > f.EndDate {
			continue
		}
		out = append(out, b)
	}

	// ISO dates and HH:MM times order lexically.
	sort.SliceStable(out, func(i, j int) bool {
		return bookingSortKey(out[i]) > bookingSortKey(out[j])
	})

	return out
}

func bookingSortKey(b models.Booking) string {
	return b.Schedule.Date + "T" + b.Schedule.StartTime
}

type Pagination struct {
	Page        int  `json:"page"`
	Limit       int  `json:"limit"`
	TotalItems  int  `json:"total_items"`
	TotalPages  int  `json:"total_pages"`
	HasNextPage bool `json:"has_next_page"`
	HasPrevPage bool `json:"has_prev_page"`
}

// Paginate slices items into the 1-indexed page of the given size. A page
// past the end yields an empty slice; page and limit below 1 are clamped to 1.
func Paginate[T any](items []T, page, limit int) ([]T, Pagination) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}

	total := len(items)
	totalPages := (total + limit - 1) / limit

	start := (page - 1) * limit
	end := page * limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return items[start:end], Pagination{
		Page:        page,
		Limit:       limit,
		TotalItems:  total,
		TotalPages:  totalPages,
		HasNextPage: page*limit < total,
		HasPrevPage: page > 1,
	}
}

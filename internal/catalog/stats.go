package catalog

import (
	"sort"
	"time"

	"labcatalog/internal/models"
)

type LabStats struct {
	Total         int            `json:"total"`
	Available     int            `json:"available"`
	InMaintenance int            `json:"in_maintenance"`
	Reserved      int            `json:"reserved"`
	ByCategory    map[string]int `json:"by_category"`
}

type BookingStats struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"by_status"`
	Revenue  float64        `json:"revenue"`
}

type CapacityStats struct {
	TotalSeats     int     `json:"total_seats"`
	MostPopularLab string  `json:"most_popular_lab,omitempty"`
	UtilizationPct float64 `json:"utilization_pct"`
}

type Report struct {
	Labs     LabStats      `json:"labs"`
	Bookings BookingStats  `json:"bookings"`
	Capacity CapacityStats `json:"capacity"`
}

// Stats folds the two collections into the aggregate report. Revenue counts
// paid bookings only; utilization compares booked hours against the
// theoretical yearly open hours of all labs combined.
func (c *Catalog) Stats() Report {
	labs := LabStats{Total: len(c.labs), ByCategory: map[string]int{}}
	var weeklyOpenHours float64
	for _, lab := range c.labs {
		switch lab.Status {
		case models.LabAvailable:
			labs.Available++
		case models.LabMaintenance:
			labs.InMaintenance++
		case models.LabReserved:
			labs.Reserved++
		}
		labs.ByCategory[lab.Category]++
		weeklyOpenHours += weeklyHours(lab.Schedule)
	}

	bookings := BookingStats{Total: len(c.bookings), ByStatus: map[string]int{}}
	var bookedHours float64
	labCounts := map[string]int{}
	for _, b := range c.bookings {
		bookings.ByStatus[string(b.Status)]++
		if b.Pricing.PaymentStatus == models.PaymentPaid {
			bookings.Revenue += b.Pricing.TotalAmount
		}
		if b.Status != models.BookingCancelled && b.Status != models.BookingRefunded {
			bookedHours += b.Schedule.DurationHours
		}
		labCounts[b.Lab.Name]++
	}

	capacity := CapacityStats{}
	for _, lab := range c.labs {
		capacity.TotalSeats += lab.Capacity.MaxStudents
	}
	var best int
	for name, n := range labCounts {
		if n > best || (n == best && capacity.MostPopularLab > name) {
			best = n
			capacity.MostPopularLab = name
		}
	}
	if yearly := weeklyOpenHours * 52; yearly > 0 {
		capacity.UtilizationPct = bookedHours / yearly * 100
	}

	return Report{Labs: labs, Bookings: bookings, Capacity: capacity}
}

func weeklyHours(w models.WeekSchedule) float64 {
	var total float64
	for d := time.Sunday; d <= time.Saturday; d++ {
		for _, slot := range w.Day(d).Slots {
			s, err1 := models.ParseClock(slot.Start)
			e, err2 := models.ParseClock(slot.End)
			if err1 != nil || err2 != nil || e <= s {
				continue
			}
			total += float64(e-s) / 60
		}
	}
	return total
}

type CategorySummary struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// Categories lists the distinct lab categories with counts, sorted by name.
func (c *Catalog) Categories() []CategorySummary {
	counts := map[string]int{}
	for _, lab := range c.labs {
		counts[lab.Category]++
	}

	out := make([]CategorySummary, 0, len(counts))
	for cat, n := range counts {
		out = append(out, CategorySummary{Category: cat, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out
}

type ConventionView struct {
	LabID   string                `json:"lab_id"`
	LabName string                `json:"lab_name"`
	Info    models.ConventionInfo `json:"convention"`
}

// Conventions lists the labs covered by institutional agreements.
func (c *Catalog) Conventions() []ConventionView {
	var out []ConventionView
	for _, lab := range c.labs {
		if lab.Convention == nil {
			continue
		}
		out = append(out, ConventionView{LabID: lab.ID, LabName: lab.Name, Info: *lab.Convention})
	}
	return out
}

package catalog

import (
	"fmt"
	"time"

	"labcatalog/internal/models"
)

// Booking statuses that hold a slot for conflict detection. A booking that is
// still awaiting payment keeps its slot reserved.
var blockingStatuses = map[models.BookingStatus]bool{
	models.BookingConfirmed:      true,
	models.BookingPendingPayment: true,
}

// BlocksSlot reports whether a booking in the given status reserves its slot.
func BlocksSlot(s models.BookingStatus) bool {
	return blockingStatuses[s]
}

type SlotRequest struct {
	LabID     string
	Date      string // 2006-01-02
	StartTime string // HH:MM
	EndTime   string // HH:MM
}

type Conflict struct {
	BookingID string `json:"booking_id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// SlotVerdict is the outcome of an availability check for one interval.
type SlotVerdict struct {
	Available   bool
	Reason      string
	Weekday     string
	OpenSlots   []models.TimeSlot
	NextOpenDay string
	Conflicts   []Conflict
	Lab         *models.Lab
}

// CheckSlot decides whether the lab can host the requested interval:
// the lab must be operational, the interval must fit inside a single open
// slot of that weekday, and no blocking booking may overlap it.
func (c *Catalog) CheckSlot(req SlotRequest) (*SlotVerdict, error) {
	const op = "catalog.CheckSlot"

	lab, err := c.LabByID(req.LabID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: invalid date %q", op, ErrValidation, req.Date)
	}

	start, err := models.ParseClock(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", op, ErrValidation, err)
	}
	end, err := models.ParseClock(req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", op, ErrValidation, err)
	}
	if start >= end {
		return nil, fmt.Errorf("%s: %w: start time must be before end time", op, ErrValidation)
	}

	weekday := date.Weekday()
	dayName := models.WeekdayName(weekday)
	verdict := &SlotVerdict{Weekday: dayName, Lab: lab}

	day := lab.Schedule.Day(weekday)
	if day.IsClosed() {
		verdict.Reason = "lab is closed on " + dayName
		verdict.NextOpenDay = nextOpenWeekday(lab, weekday)
		return verdict, nil
	}

	if !fitsInSlot(day.Slots, start, end) {
		verdict.Reason = "outside operating hours"
		verdict.OpenSlots = day.Slots
		return verdict, nil
	}

	normDate := date.Format("2006-01-02")
	verdict.Conflicts = c.slotConflicts(lab.ID, normDate, start, end)

	switch {
	case lab.Status != models.LabAvailable:
		verdict.Reason = "lab is " + string(lab.Status)
	case len(verdict.Conflicts) > 0:
		verdict.Reason = "conflicts with existing bookings"
	default:
		verdict.Available = true
	}

	return verdict, nil
}

// fitsInSlot reports whether [start, end] is fully contained in a single
// slot. An interval spanning the gap between two slots does not fit.
func fitsInSlot(slots []models.TimeSlot, start, end models.ClockMinutes) bool {
	for _, slot := range slots {
		s, err := models.ParseClock(slot.Start)
		if err != nil {
			continue
		}
		e, err := models.ParseClock(slot.End)
		if err != nil {
			continue
		}
		if s <= start && end <= e {
			return true
		}
	}
	return false
}

// slotConflicts collects blocking bookings on the same lab and date whose
// half-open interval overlaps [start, end): no overlap iff end <= bStart or
// start >= bEnd, so adjacent intervals do not conflict.
func (c *Catalog) slotConflicts(labID, date string, start, end models.ClockMinutes) []Conflict {
	var out []Conflict
	for _, b := range c.bookings {
		if !b.ForLab(labID) || b.Schedule.Date != date || !BlocksSlot(b.Status) {
			continue
		}

		bStart, err := models.ParseClock(b.Schedule.StartTime)
		if err != nil {
			continue
		}
		bEnd, err := models.ParseClock(b.Schedule.EndTime)
		if err != nil {
			continue
		}

		if end <= bStart || start >= bEnd {
			continue
		}

		out = append(out, Conflict{
			BookingID: b.ID,
			StartTime: b.Schedule.StartTime,
			EndTime:   b.Schedule.EndTime,
		})
	}
	return out
}

// nextOpenWeekday scans forward cyclically up to 7 days for the next weekday
// with a non-closed schedule. Returns "" when every day is closed.
func nextOpenWeekday(lab *models.Lab, from time.Weekday) string {
	for i := 1; i <= 7; i++ {
		d := time.Weekday((int(from) + i) % 7)
		if !lab.Schedule.Day(d).IsClosed() {
			return models.WeekdayName(d)
		}
	}
	return ""
}

type NextSlot struct {
	Day   string `json:"day"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// CurrentAvailability is the instantaneous view used when no interval is
// requested: is the lab open right now, and when does it open next.
type CurrentAvailability struct {
	IsAvailable   bool      `json:"is_available"`
	NextAvailable *NextSlot `json:"next_available,omitempty"`
}

// Availability evaluates the lab at the given instant. "Now" inside a slot is
// inclusive of both slot boundaries.
func Availability(lab *models.Lab, now time.Time) CurrentAvailability {
	clock := models.ClockOf(now)
	today := lab.Schedule.Day(now.Weekday())

	var openNow bool
	var next *NextSlot

	if !today.IsClosed() {
		for _, slot := range today.Slots {
			s, err1 := models.ParseClock(slot.Start)
			e, err2 := models.ParseClock(slot.End)
			if err1 != nil || err2 != nil {
				continue
			}
			if s <= clock && clock <= e {
				openNow = true
			}
			if next == nil && clock < e {
				next = &NextSlot{Day: "today", Start: slot.Start, End: slot.End}
			}
		}
	}

	if next == nil {
		if day := nextOpenWeekday(lab, now.Weekday()); day != "" {
			for i := 1; i <= 7; i++ {
				d := time.Weekday((int(now.Weekday()) + i) % 7)
				if sched := lab.Schedule.Day(d); !sched.IsClosed() {
					next = &NextSlot{
						Day:   models.WeekdayName(d),
						Start: sched.Slots[0].Start,
						End:   sched.Slots[0].End,
					}
					break
				}
			}
		}
	}

	return CurrentAvailability{
		IsAvailable:   openNow && lab.Status == models.LabAvailable,
		NextAvailable: next,
	}
}

package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// TimeSlot is one contiguous open interval within a day. Start and End are
// 24-hour "HH:MM" strings; slots within a day are non-overlapping and ordered
// by start time.
type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Type  string `json:"type,omitempty"`
}

func (s TimeSlot) String() string {
	return s.Start + "-" + s.End
}

// DaySchedule is either closed for the whole day or a list of open slots.
// On the wire it is the string "closed" or an array of slots.
type DaySchedule struct {
	Closed bool
	Slots  []TimeSlot
}

const closedSentinel = "closed"

func ClosedDay() DaySchedule { return DaySchedule{Closed: true} }

func OpenDay(slots ...TimeSlot) DaySchedule { return DaySchedule{Slots: slots} }

// IsClosed reports whether the day has no bookable time at all. A day with an
// empty slot list behaves the same as an explicitly closed one.
func (d DaySchedule) IsClosed() bool {
	return d.Closed || len(d.Slots) == 0
}

func (d *DaySchedule) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*d = ClosedDay()
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s != closedSentinel {
			return fmt.Errorf("unknown day schedule value %q", s)
		}
		*d = ClosedDay()
		return nil
	}

	var slots []TimeSlot
	if err := json.Unmarshal(data, &slots); err != nil {
		return err
	}
	*d = DaySchedule{Slots: slots}
	return nil
}

func (d DaySchedule) MarshalJSON() ([]byte, error) {
	if d.Closed {
		return json.Marshal(closedSentinel)
	}
	if d.Slots == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(d.Slots)
}

// WeekSchedule holds one DaySchedule per weekday. A day missing from the
// source JSON is treated as closed.
type WeekSchedule struct {
	Monday    DaySchedule `json:"monday"`
	Tuesday   DaySchedule `json:"tuesday"`
	Wednesday DaySchedule `json:"wednesday"`
	Thursday  DaySchedule `json:"thursday"`
	Friday    DaySchedule `json:"friday"`
	Saturday  DaySchedule `json:"saturday"`
	Sunday    DaySchedule `json:"sunday"`
}

func (w WeekSchedule) Day(d time.Weekday) DaySchedule {
	switch d {
	case time.Monday:
		return w.Monday
	case time.Tuesday:
		return w.Tuesday
	case time.Wednesday:
		return w.Wednesday
	case time.Thursday:
		return w.Thursday
	case time.Friday:
		return w.Friday
	case time.Saturday:
		return w.Saturday
	default:
		return w.Sunday
	}
}

// WeekdayName returns the lowercase English weekday name used in schedules
// and API responses. time.Weekday already follows the Sunday=0 convention.
func WeekdayName(d time.Weekday) string {
	return strings.ToLower(d.String())
}

// ClockMinutes is a time of day expressed as minutes past midnight.
type ClockMinutes int

// ParseClock parses a strict 24-hour "HH:MM" string.
func ParseClock(s string) (ClockMinutes, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("invalid time %q: want HH:MM", s)
	}
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	return ClockMinutes(t.Hour()*60 + t.Minute()), nil
}

// ClockOf projects the time-of-day component of t.
func ClockOf(t time.Time) ClockMinutes {
	return ClockMinutes(t.Hour()*60 + t.Minute())
}

func (c ClockMinutes) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

package catalog

import (
	"time"

	"labcatalog/internal/models"
)

// DayProjection is one entry of the 7-day forward schedule view.
type DayProjection struct {
	Date        string   `json:"date"`
	Day         string   `json:"day"`
	Closed      bool     `json:"closed"`
	Slots       []string `json:"slots,omitempty"`
	IsToday     bool     `json:"is_today"`
	IsAvailable bool     `json:"is_available"`
}

// WeekAhead projects the lab schedule over today plus the next six days.
// Pure and deterministic given (lab, from).
func WeekAhead(lab *models.Lab, from time.Time) []DayProjection {
	out := make([]DayProjection, 0, 7)
	for i := 0; i < 7; i++ {
		date := from.AddDate(0, 0, i)
		day := lab.Schedule.Day(date.Weekday())

		p := DayProjection{
			Date:        date.Format("2006-01-02"),
			Day:         models.WeekdayName(date.Weekday()),
			Closed:      day.IsClosed(),
			IsToday:     i == 0,
			IsAvailable: !day.IsClosed() && lab.Status == models.LabAvailable,
		}
		for _, slot := range day.Slots {
			p.Slots = append(p.Slots, slot.String())
		}
		out = append(out, p)
	}
	return out
}

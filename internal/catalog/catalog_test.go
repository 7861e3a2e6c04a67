package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labcatalog/internal/models"
)

// Shared fixture used across the engine tests. Lab L1 is the reference lab
// of the availability scenarios: open Monday 09:00-12:00, one confirmed
// booking 10:00-11:00 on Monday 2024-03-04.
func newTestCatalog() *Catalog {
	labs := []models.Lab{
		{
			ID:         "L1",
			ProviderID: "NET-L1",
			Name:       "Networking Lab",
			Type:       "networking",
			Category:   "cisco",
			Status:     models.LabAvailable,
			Capacity:   models.Capacity{MaxStudents: 20},
			Schedule: models.WeekSchedule{
				Monday:  models.OpenDay(models.TimeSlot{Start: "09:00", End: "12:00"}),
				Tuesday: models.OpenDay(models.TimeSlot{Start: "09:00", End: "12:00"}, models.TimeSlot{Start: "14:00", End: "18:00"}),
				Sunday:  models.ClosedDay(),
			},
			Pricing: &models.LabPricing{
				Rates:    models.Rates{Hourly: 45.5},
				Currency: "USD",
			},
			Features: []string{"cisco_equipment", "projector"},
			Equipment: map[string][]models.EquipmentItem{
				"routers": {{Model: "Cisco 2901", Quantity: 4}},
			},
			Description: "Routing and switching practice",
		},
		{
			ID:       "L2",
			Name:     "Security Lab",
			Type:     "security",
			Category: "cybersecurity",
			Status:   models.LabAvailable,
			Capacity: models.Capacity{MaxStudents: 15},
			Schedule: models.WeekSchedule{
				Monday: models.OpenDay(models.TimeSlot{Start: "08:00", End: "20:00"}),
			},
			Pricing: &models.LabPricing{
				Rates:    models.Rates{Hourly: 65},
				Currency: "USD",
			},
			Features:    []string{"penetration_testing", "isolated_network"},
			Description: "Offensive security training",
		},
		{
			ID:       "L3",
			Name:     "VoIP Lab",
			Type:     "telecommunications",
			Category: "voip",
			Status:   models.LabMaintenance,
			Capacity: models.Capacity{MaxStudents: 12},
			Schedule: models.WeekSchedule{
				Monday: models.OpenDay(models.TimeSlot{Start: "10:00", End: "14:00"}),
			},
			Convention: &models.ConventionInfo{
				ConventionID: "CONV-7",
				Institution:  "Universidad Distrital",
				Covered:      true,
			},
			Features:    []string{"voip_systems"},
			Description: "PBX configuration",
		},
	}

	bookings := []models.Booking{
		{
			ID:        "B1",
			BookingID: "CAT-B1",
			Lab:       models.BookingLab{ID: "L1", Name: "Networking Lab"},
			User:      models.BookingUser{ID: "u1", Name: "Juan"},
			Schedule: models.BookingSchedule{
				Date: "2024-03-04", StartTime: "10:00", EndTime: "11:00", DurationHours: 1,
			},
			Status: models.BookingConfirmed,
			Pricing: models.BookingPricing{
				TotalAmount: 45.5, Currency: "USD", PaymentStatus: models.PaymentPaid,
			},
		},
		{
			ID:        "B2",
			BookingID: "CAT-B2",
			Lab:       models.BookingLab{ID: "L2", Name: "Security Lab"},
			User:      models.BookingUser{ID: "u2", Name: "Maria"},
			Schedule: models.BookingSchedule{
				Date: "2024-03-04", StartTime: "15:00", EndTime: "18:00", DurationHours: 3,
			},
			Status: models.BookingPendingPayment,
			Pricing: models.BookingPricing{
				TotalAmount: 232.05, Currency: "USD", PaymentStatus: models.PaymentPending,
			},
		},
		{
			ID:        "B3",
			BookingID: "CAT-B3",
			Lab:       models.BookingLab{ID: "L1", Name: "Networking Lab"},
			User:      models.BookingUser{ID: "u1", Name: "Juan"},
			Schedule: models.BookingSchedule{
				Date: "2024-01-25", StartTime: "09:00", EndTime: "12:00", DurationHours: 3,
			},
			Status: models.BookingCompleted,
			Pricing: models.BookingPricing{
				TotalAmount: 136.5, Currency: "USD", PaymentStatus: models.PaymentPaid,
			},
		},
		{
			ID:        "B4",
			BookingID: "CAT-B4",
			Lab:       models.BookingLab{ID: "L1", Name: "Networking Lab"},
			User:      models.BookingUser{ID: "u2", Name: "Maria"},
			Schedule: models.BookingSchedule{
				Date: "2024-03-04", StartTime: "09:00", EndTime: "10:00", DurationHours: 1,
			},
			Status: models.BookingCancelled,
			Pricing: models.BookingPricing{
				TotalAmount: 45.5, Currency: "USD", PaymentStatus: models.PaymentRefunded,
			},
		},
	}

	return New(labs, bookings)
}

func TestLabByID(t *testing.T) {
	t.Parallel()

	c := newTestCatalog()

	lab, err := c.LabByID("L1")
	require.NoError(t, err)
	assert.Equal(t, "Networking Lab", lab.Name)

	lab, err = c.LabByID("NET-L1")
	require.NoError(t, err)
	assert.Equal(t, "L1", lab.ID, "provider id resolves to the same lab")

	_, err = c.LabByID("nope")
	assert.ErrorIs(t, err, ErrLabNotFound)
}

func TestBookingByID(t *testing.T) {
	t.Parallel()

	c := newTestCatalog()

	b, err := c.BookingByID("B1")
	require.NoError(t, err)
	assert.Equal(t, "CAT-B1", b.BookingID)

	b, err = c.BookingByID("CAT-B2")
	require.NoError(t, err)
	assert.Equal(t, "B2", b.ID)

	_, err = c.BookingByID("ghost")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestLoadEmbeddedDataset(t *testing.T) {
	t.Parallel()

	c, err := Load("", "")
	require.NoError(t, err)

	assert.NotEmpty(t, c.Labs())
	assert.NotEmpty(t, c.Bookings())

	// Every booking in the default dataset references a known lab.
	for _, b := range c.Bookings() {
		_, err := c.LabByID(b.Lab.ID)
		assert.NoError(t, err, "booking %s references unknown lab %s", b.ID, b.Lab.ID)
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load("/does/not/exist.json", "")
	require.Error(t, err)
}

func TestLabSuggestions(t *testing.T) {
	t.Parallel()

	c := newTestCatalog()

	s := c.LabSuggestions(2)
	require.Len(t, s, 2)
	assert.Equal(t, "L1", s[0].ID)

	assert.Len(t, c.LabSuggestions(10), 3, "capped at collection size")
}

func TestSimilarLabs(t *testing.T) {
	t.Parallel()

	c := newTestCatalog()

	lab, err := c.LabByID("L1")
	require.NoError(t, err)

	similar := c.SimilarLabs(lab, 5)
	for _, s := range similar {
		assert.NotEqual(t, "L1", s.ID)
		assert.True(t, s.Category == lab.Category || s.Type == lab.Type)
	}
}

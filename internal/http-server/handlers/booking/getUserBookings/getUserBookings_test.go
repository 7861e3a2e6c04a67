package getUserBookings

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labcatalog/internal/catalog"
	"labcatalog/internal/lib/logger/handlers/slogdiscard"
	"labcatalog/internal/models"
)

// One booking far in the past and one far in the future keep the
// handler's time.Now() deterministic for the test's lifetime.
func newTestStore() *catalog.Catalog {
	bookings := []models.Booking{
		{
			ID:     "OLD",
			Lab:    models.BookingLab{ID: "L1", Name: "Networking Lab"},
			User:   models.BookingUser{ID: "u1"},
			Status: models.BookingCompleted,
			Schedule: models.BookingSchedule{
				Date: "2020-01-15", StartTime: "09:00", EndTime: "11:00", DurationHours: 2,
			},
			Pricing: models.BookingPricing{
				TotalAmount: 91, Currency: "USD", PaymentStatus: models.PaymentPaid,
			},
		},
		{
			ID:     "FUT",
			Lab:    models.BookingLab{ID: "L1", Name: "Networking Lab"},
			User:   models.BookingUser{ID: "u1"},
			Status: models.BookingConfirmed,
			Schedule: models.BookingSchedule{
				Date: "2099-01-15", StartTime: "09:00", EndTime: "10:00", DurationHours: 1,
			},
			Pricing: models.BookingPricing{
				TotalAmount: 45.5, Currency: "USD", PaymentStatus: models.PaymentPaid,
			},
		},
		{
			ID:     "OTHER",
			Lab:    models.BookingLab{ID: "L2", Name: "Security Lab"},
			User:   models.BookingUser{ID: "u2"},
			Status: models.BookingConfirmed,
			Schedule: models.BookingSchedule{
				Date: "2099-02-01", StartTime: "09:00", EndTime: "10:00",
			},
		},
	}

	return catalog.New(nil, bookings)
}

func newRouter(handler http.HandlerFunc) *chi.Mux {
	router := chi.NewRouter()
	router.Get("/users/{userId}/bookings", handler)
	return router
}

func TestGetUserBookingsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	router := newRouter(New(logger, newTestStore()))

	testCases := []struct {
		name      string
		url       string
		checkBody func(t *testing.T, resp UserBookingsResponse)
	}{
		{
			name: "full history",
			url:  "/users/u1/bookings",
			checkBody: func(t *testing.T, resp UserBookingsResponse) {
				assert.True(t, resp.Success)
				assert.Equal(t, "u1", resp.UserID)
				require.Len(t, resp.Data, 2)

				assert.Equal(t, "FUT", resp.Data[0].ID, "most recent first")
				assert.True(t, resp.Data[0].IsUpcoming)
				assert.Equal(t, "OLD", resp.Data[1].ID)
				assert.True(t, resp.Data[1].IsPast)

				assert.Equal(t, 2, resp.Statistics.TotalBookings)
				assert.Equal(t, 1, resp.Statistics.PastBookings)
				assert.Equal(t, 1, resp.Statistics.UpcomingBookings)
				assert.InDelta(t, 136.5, resp.Statistics.TotalSpent, 1e-9)

				assert.True(t, resp.Filters.IncludePast, "defaults to true")
				assert.True(t, resp.Filters.IncludeUpcoming, "defaults to true")
			},
		},
		{
			name: "exclude past",
			url:  "/users/u1/bookings?include_past=false",
			checkBody: func(t *testing.T, resp UserBookingsResponse) {
				require.Len(t, resp.Data, 1)
				assert.Equal(t, "FUT", resp.Data[0].ID)
				assert.False(t, resp.Filters.IncludePast)

				// Filters never change the statistics.
				assert.Equal(t, 2, resp.Statistics.TotalBookings)
			},
		},
		{
			name: "exclude upcoming",
			url:  "/users/u1/bookings?include_upcoming=false",
			checkBody: func(t *testing.T, resp UserBookingsResponse) {
				require.Len(t, resp.Data, 1)
				assert.Equal(t, "OLD", resp.Data[0].ID)
			},
		},
		{
			name: "status filter",
			url:  "/users/u1/bookings?status=completed",
			checkBody: func(t *testing.T, resp UserBookingsResponse) {
				require.Len(t, resp.Data, 1)
				assert.Equal(t, "OLD", resp.Data[0].ID)
				assert.Equal(t, "completed", resp.Filters.Status)
			},
		},
		{
			name: "other users are not leaked",
			url:  "/users/u2/bookings",
			checkBody: func(t *testing.T, resp UserBookingsResponse) {
				require.Len(t, resp.Data, 1)
				assert.Equal(t, "OTHER", resp.Data[0].ID)
			},
		},
		{
			name: "unknown user gets an empty history",
			url:  "/users/ghost/bookings",
			checkBody: func(t *testing.T, resp UserBookingsResponse) {
				assert.True(t, resp.Success)
				assert.Empty(t, resp.Data)
				assert.Equal(t, 0, resp.Statistics.TotalBookings)
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req, err := http.NewRequest("GET", tc.url, nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			require.Equal(t, http.StatusOK, rr.Code)

			var resp UserBookingsResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			tc.checkBody(t, resp)
		})
	}
}

func TestBoolOrDefault(t *testing.T) {
	t.Parallel()

	assert.True(t, boolOrDefault("true", false))
	assert.False(t, boolOrDefault("false", true))
	assert.True(t, boolOrDefault("", true))
	assert.True(t, boolOrDefault("yes", true), "unparseable values fall back to the default")
}

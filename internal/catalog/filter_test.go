package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labcatalog/internal/models"
)

func TestFilterLabs(t *testing.T) {
	t.Parallel()

	c := newTestCatalog()

	minCap := func(n int) *int { return &n }

	testCases := []struct {
		name     string
		filter   LabFilter
		expected []string
	}{
		{name: "no predicates returns everything", filter: LabFilter{}, expected: []string{"L1", "L2", "L3"}},
		{name: "by status", filter: LabFilter{Status: "available"}, expected: []string{"L1", "L2"}},
		{name: "by category", filter: LabFilter{Category: "cisco"}, expected: []string{"L1"}},
		{name: "by type", filter: LabFilter{Type: "security"}, expected: []string{"L2"}},
		{name: "min capacity", filter: LabFilter{MinCapacity: minCap(15)}, expected: []string{"L1", "L2"}},
		{name: "max capacity", filter: LabFilter{MaxCapacity: minCap(12)}, expected: []string{"L3"}},
		{name: "single feature", filter: LabFilter{Features: []string{"projector"}}, expected: []string{"L1"}},
		{
			name:     "all features must match",
			filter:   LabFilter{Features: []string{"cisco_equipment", "isolated_network"}},
			expected: []string{},
		},
		{
			name:     "combined predicates",
			filter:   LabFilter{Status: "available", MinCapacity: minCap(16)},
			expected: []string{"L1"},
		},
		{name: "no match", filter: LabFilter{Category: "chemistry"}, expected: []string{}},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := c.FilterLabs(tc.filter)

			ids := make([]string, 0, len(got))
			for _, lab := range got {
				ids = append(ids, lab.ID)
			}
			assert.Equal(t, tc.expected, ids)
		})
	}
}

// Combining predicates must equal the intersection of applying them
// one at a time, in any order.
func TestFilterLabsIntersection(t *testing.T) {
	t.Parallel()

	c := newTestCatalog()
	minCap := 15

	combined := c.FilterLabs(LabFilter{Status: "available", MinCapacity: &minCap})

	byStatus := idSet(c.FilterLabs(LabFilter{Status: "available"}))
	byCapacity := idSet(c.FilterLabs(LabFilter{MinCapacity: &minCap}))

	for _, lab := range combined {
		assert.Contains(t, byStatus, lab.ID)
		assert.Contains(t, byCapacity, lab.ID)
	}

	for id := range byStatus {
		if byCapacity[id] {
			assert.Contains(t, idSet(combined), id)
		}
	}
}

func idSet(labs []models.Lab) map[string]bool {
	s := make(map[string]bool, len(labs))
	for _, lab := range labs {
		s[lab.ID] = true
	}
	return s
}

func TestFilterBookings(t *testing.T) {
	t.Parallel()

	c := newTestCatalog()

	testCases := []struct {
		name     string
		filter   BookingFilter
		expected []string
	}{
		{name: "all sorted most recent first", filter: BookingFilter{}, expected: []string{"B2", "B1", "B4", "B3"}},
		{name: "by user", filter: BookingFilter{UserID: "u1"}, expected: []string{"B1", "B3"}},
		{name: "by status", filter: BookingFilter{Status: "confirmed"}, expected: []string{"B1"}},
		{name: "by lab", filter: BookingFilter{LabID: "L2"}, expected: []string{"B2"}},
		{name: "start date inclusive", filter: BookingFilter{StartDate: "2024-03-04"}, expected: []string{"B2", "B1", "B4"}},
		{name: "end date inclusive", filter: BookingFilter{EndDate: "2024-01-25"}, expected: []string{"B3"}},
		{
			name:     "date window and user",
			filter:   BookingFilter{UserID: "u1", StartDate: "2024-02-01", EndDate: "2024-03-31"},
			expected: []string{"B1"},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := c.FilterBookings(tc.filter)

			ids := make([]string, 0, len(got))
			for _, b := range got {
				ids = append(ids, b.ID)
			}
			assert.Equal(t, tc.expected, ids)
		})
	}
}

func TestPaginate(t *testing.T) {
	t.Parallel()

	items := []int{1, 2, 3, 4, 5, 6, 7}

	testCases := []struct {
		name       string
		page       int
		limit      int
		expected   []int
		totalPages int
		hasNext    bool
		hasPrev    bool
	}{
		{name: "first page", page: 1, limit: 3, expected: []int{1, 2, 3}, totalPages: 3, hasNext: true, hasPrev: false},
		{name: "middle page", page: 2, limit: 3, expected: []int{4, 5, 6}, totalPages: 3, hasNext: true, hasPrev: true},
		{name: "last partial page", page: 3, limit: 3, expected: []int{7}, totalPages: 3, hasNext: false, hasPrev: true},
		{name: "page beyond end is empty", page: 9, limit: 3, expected: []int{}, totalPages: 3, hasNext: false, hasPrev: true},
		{name: "limit clamped to one", page: 1, limit: 0, expected: []int{1}, totalPages: 7, hasNext: true, hasPrev: false},
		{name: "page clamped to one", page: 0, limit: 10, expected: []int{1, 2, 3, 4, 5, 6, 7}, totalPages: 1, hasNext: false, hasPrev: false},
		{name: "exact fit", page: 1, limit: 7, expected: []int{1, 2, 3, 4, 5, 6, 7}, totalPages: 1, hasNext: false, hasPrev: false},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, p := Paginate(items, tc.page, tc.limit)

			assert.Equal(t, tc.expected, got)
			assert.Equal(t, len(items), p.TotalItems)
			assert.Equal(t, tc.totalPages, p.TotalPages)
			assert.Equal(t, tc.hasNext, p.HasNextPage)
			assert.Equal(t, tc.hasPrev, p.HasPrevPage)
		})
	}
}

// Concatenating all pages reproduces the input exactly once, in order.
func TestPaginateRoundTrip(t *testing.T) {
	t.Parallel()

	items := []string{"a", "b", "c", "d", "e"}

	for limit := 1; limit <= len(items)+1; limit++ {
		var collected []string
		page := 1
		for {
			chunk, p := Paginate(items, page, limit)
			collected = append(collected, chunk...)

			require.Equal(t, (len(items)+limit-1)/limit, p.TotalPages)
			assert.Equal(t, page < p.TotalPages, p.HasNextPage, "limit=%d page=%d", limit, page)

			if !p.HasNextPage {
				break
			}
			page++
		}
		assert.Equal(t, items, collected, "limit=%d", limit)
	}
}

func TestPaginateEmpty(t *testing.T) {
	t.Parallel()

	got, p := Paginate([]int{}, 1, 10)

	assert.Empty(t, got)
	assert.Equal(t, 0, p.TotalItems)
	assert.Equal(t, 0, p.TotalPages)
	assert.False(t, p.HasNextPage)
	assert.False(t, p.HasPrevPage)
}

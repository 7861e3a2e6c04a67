package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchLabs(t *testing.T) {
	t.Parallel()

	c := newTestCatalog()

	testCases := []struct {
		name     string
		query    string
		expected map[string]string // lab id -> matched field
	}{
		{
			name:     "by name",
			query:    "networking",
			expected: map[string]string{"L1": "name"},
		},
		{
			name:     "case insensitive",
			query:    "NETWORKING",
			expected: map[string]string{"L1": "name"},
		},
		{
			name:     "by description",
			query:    "offensive",
			expected: map[string]string{"L2": "description"},
		},
		{
			name:     "by category",
			query:    "cyber",
			expected: map[string]string{"L2": "category"},
		},
		{
			name:     "by feature tag",
			query:    "penetration",
			expected: map[string]string{"L2": "feature"},
		},
		{
			name:     "by equipment model",
			query:    "2901",
			expected: map[string]string{"L1": "equipment"},
		},
		{
			name:     "substring matches multiple labs",
			query:    "lab",
			expected: map[string]string{"L1": "name", "L2": "name", "L3": "name"},
		},
		{
			name:     "no match",
			query:    "quantum",
			expected: map[string]string{},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := c.SearchLabs(tc.query)
			require.Len(t, got, len(tc.expected))

			for _, m := range got {
				matched, ok := tc.expected[m.Lab.ID]
				require.True(t, ok, "unexpected lab %s in results", m.Lab.ID)
				assert.Equal(t, matched, m.Matched, "lab %s", m.Lab.ID)
			}
		})
	}
}

func TestSearchLabsEmptyQuery(t *testing.T) {
	t.Parallel()

	c := newTestCatalog()

	assert.Empty(t, c.SearchLabs(""))
	assert.Empty(t, c.SearchLabs("   "))
	assert.Empty(t, c.SearchLabs("\t\n"))
}

// The name field wins over less specific fields when both match.
func TestSearchLabsMatchPriority(t *testing.T) {
	t.Parallel()

	c := newTestCatalog()

	// "security" appears in L2's name, description and type.
	got := c.SearchLabs("security")
	require.Len(t, got, 1)
	assert.Equal(t, "L2", got[0].Lab.ID)
	assert.Equal(t, MatchName, got[0].Matched)
}

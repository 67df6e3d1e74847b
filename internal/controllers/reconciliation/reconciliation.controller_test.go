package reconciliationController

import (
	"testing"

	. "maestro/internal/models"
	"maestro/internal/types"

	"github.com/stretchr/testify/assert"
)

func TestRequireOperator(t *testing.T) {
	testCases := []struct {
		name     string
		user     *User
		expected error
	}{
		{
			name:     "nil user",
			user:     nil,
			expected: types.ErrUnauthorized,
		},
		{
			name:     "wrong display name",
			user:     &User{DisplayName: "Somebody Else"},
			expected: types.ErrAccessDenied,
		},
		{
			name:     "operator",
			user:     &User{DisplayName: "Operator"},
			expected: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := requireOperator(tc.user, "Operator")
			if tc.expected == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.expected)
			}
		})
	}
}

func TestUniqueStrings(t *testing.T) {
	movements := []Movement{
		{ID: "w1/1", WorkID: "w1"},
		{ID: "w1/2", WorkID: "w1"},
		{ID: "w2/1", WorkID: "w2"},
		{ID: "orphan", WorkID: ""},
	}

	workIDs := uniqueStrings(movements, func(m Movement) string { return m.WorkID })

	assert.Equal(t, []string{"w1", "w2"}, workIDs, "duplicates and empties drop, order holds")
}

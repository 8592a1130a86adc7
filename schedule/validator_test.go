package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_StructuralViolations(t *testing.T) {
	tests := []struct {
		name   string
		window Window
		reason string
	}{
		{
			name:   "day above range",
			window: Window{Day: 7, Start: "09:00", End: "10:00"},
			reason: "day of week",
		},
		{
			name:   "negative day",
			window: Window{Day: -1, Start: "09:00", End: "10:00"},
			reason: "day of week",
		},
		{
			name:   "non zero-padded start",
			window: Window{Day: 0, Start: "9:00", End: "10:00"},
			reason: "start time",
		},
		{
			name:   "hour out of range",
			window: Window{Day: 0, Start: "24:00", End: "25:00"},
			reason: "start time",
		},
		{
			name:   "minutes out of range",
			window: Window{Day: 0, Start: "09:61", End: "10:00"},
			reason: "start time",
		},
		{
			name:   "malformed end",
			window: Window{Day: 0, Start: "09:00", End: "ten"},
			reason: "end time",
		},
		{
			name:   "end equals start",
			window: Window{Day: 0, Start: "09:00", End: "09:00"},
			reason: "must be after",
		},
		{
			name:   "end before start",
			window: Window{Day: 0, Start: "17:00", End: "09:00"},
			reason: "must be after",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Pair the bad window with an overlapping good one: the
			// structural failure must be reported before any overlap logic.
			res := Validate([]Window{tt.window, {Day: 0, Start: "09:00", End: "18:00"}}, nil)
			assert.False(t, res.OK)
			assert.Contains(t, res.Reason, tt.reason)
			assert.NotContains(t, res.Reason, "overlap")
		})
	}
}

func TestValidate_SelfOverlap(t *testing.T) {
	w1 := Window{Day: 0, Start: "09:00", End: "12:00"}
	w2 := Window{Day: 0, Start: "11:00", End: "14:00"}

	res := Validate([]Window{w1, w2}, nil)
	require.False(t, res.OK)
	assert.Contains(t, res.Reason, "Monday")
	assert.Contains(t, res.Reason, "overlap")
}

func TestValidate_OrderIndependence(t *testing.T) {
	w1 := Window{Day: 3, Start: "08:00", End: "11:00"}
	w2 := Window{Day: 3, Start: "10:00", End: "13:00"}

	forward := Validate([]Window{w1, w2}, nil)
	reversed := Validate([]Window{w2, w1}, nil)

	assert.Equal(t, forward.OK, reversed.OK)
	assert.False(t, forward.OK)
	assert.False(t, reversed.OK)
}

func TestValidate_TouchingBoundariesDoNotOverlap(t *testing.T) {
	res := Validate([]Window{
		{Day: 0, Start: "09:00", End: "12:00"},
		{Day: 0, Start: "12:00", End: "15:00"},
	}, nil)
	assert.True(t, res.OK, res.Reason)
}

func TestValidate_CrossDayIndependence(t *testing.T) {
	res := Validate([]Window{
		{Day: 0, Start: "09:00", End: "17:00"},
		{Day: 1, Start: "09:00", End: "17:00"},
	}, nil)
	assert.True(t, res.OK, res.Reason)
}

func TestValidate_ConflictWithExistingCommitment(t *testing.T) {
	proposed := []Window{{Day: 2, Start: "08:00", End: "10:00"}}
	existing := []CommitmentSet{
		{
			AssignmentID: "a-19",
			Windows:      []Window{{Day: 2, Start: "09:30", End: "11:00"}},
		},
	}

	res := Validate(proposed, existing)
	require.False(t, res.OK)
	assert.Contains(t, res.Reason, "day 2")
	assert.Contains(t, res.Reason, "09:30")
	assert.Contains(t, res.Reason, "11:00")
}

func TestValidate_ExistingOnOtherDaysIgnored(t *testing.T) {
	proposed := []Window{{Day: 2, Start: "08:00", End: "10:00"}}
	existing := []CommitmentSet{
		{Windows: []Window{{Day: 3, Start: "08:00", End: "10:00"}}},
		{Windows: []Window{{Day: 2, Start: "10:00", End: "12:00"}}},
	}

	res := Validate(proposed, existing)
	assert.True(t, res.OK, res.Reason)
}

func TestValidate_MultipleExistingSets(t *testing.T) {
	proposed := []Window{
		{Day: 4, Start: "14:00", End: "18:00"},
		{Day: 5, Start: "09:00", End: "12:00"},
	}
	existing := []CommitmentSet{
		{AssignmentID: "a-1", Windows: []Window{{Day: 1, Start: "09:00", End: "12:00"}}},
		{AssignmentID: "a-2", Windows: []Window{{Day: 5, Start: "11:00", End: "13:00"}}},
	}

	res := Validate(proposed, existing)
	require.False(t, res.OK)
	assert.Contains(t, res.Reason, "Saturday")
}

func TestValidate_EmptyProposal(t *testing.T) {
	res := Validate(nil, []CommitmentSet{
		{Windows: []Window{{Day: 0, Start: "09:00", End: "12:00"}}},
	})
	assert.True(t, res.OK, "replacing a schedule with nothing cannot conflict")
}

func TestDayName(t *testing.T) {
	assert.Equal(t, "Monday", DayName(0))
	assert.Equal(t, "Sunday", DayName(6))
	assert.Equal(t, "invalid day", DayName(7))
	assert.Equal(t, "invalid day", DayName(-1))
}

package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Azevedo05/Vehicle-Maintenance-App-sub001/internal/models"
)

func TestDateDue_Boundary(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	// Due exactly now counts as due, not upcoming.
	st := DateDue(now, now)
	assert.True(t, st.IsDue)
	assert.Equal(t, 0, st.DaysUntilDue)

	// One full day out is not due yet.
	st = DateDue(now.Add(24*time.Hour), now)
	assert.False(t, st.IsDue)
	assert.Equal(t, 1, st.DaysUntilDue)

	// Later the same day rounds up to 0 and is due.
	st = DateDue(now.Add(6*time.Hour), now)
	assert.True(t, st.IsDue)
	assert.Equal(t, 0, st.DaysUntilDue)

	// Overdue reports negative days.
	st = DateDue(now.Add(-48*time.Hour), now)
	assert.True(t, st.IsDue)
	assert.Equal(t, -2, st.DaysUntilDue)
}

func TestMileageDue(t *testing.T) {
	tests := []struct {
		name    string
		nextDue float64
		current float64
		wantDue bool
		wantKm  float64
	}{
		{"well before threshold", 55000, 45000, false, 10000},
		{"exactly at threshold", 45000, 45000, true, 0},
		{"past threshold", 44000, 45000, true, -1000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := MileageDue(tt.nextDue, tt.current)
			assert.Equal(t, tt.wantDue, st.IsDue)
			assert.Equal(t, tt.wantKm, st.KmUntilDue)
		})
	}
}

func TestNextDue_MileageTask(t *testing.T) {
	task := models.MaintenanceTask{
		IntervalType:  models.IntervalMileage,
		IntervalValue: 10000,
	}
	nextDate, nextKm := NextDue(task, time.Now(), 45000)
	assert.Nil(t, nextDate)
	if assert.NotNil(t, nextKm) {
		assert.Equal(t, 55000.0, *nextKm)
	}
}

func TestNextDue_DateTask(t *testing.T) {
	task := models.MaintenanceTask{
		IntervalType:  models.IntervalDate,
		IntervalValue: 90,
	}
	completed := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	nextDate, nextKm := NextDue(task, completed, 0)
	assert.Nil(t, nextKm)
	if assert.NotNil(t, nextDate) {
		assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), *nextDate)
	}
}

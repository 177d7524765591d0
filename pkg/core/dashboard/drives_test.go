package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpcomingDrives(t *testing.T) {
	drives := []Drive{
		{
			Name:     "Community Drive",
			Location: "Town Hall",
			Start:    time.Date(2024, 1, 6, 10, 0, 0, 0, time.UTC),
			RRule:    "FREQ=MONTHLY;BYDAY=1SA",
		},
		{
			Name:     "Campus Drive",
			Location: "University",
			Start:    time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC),
			RRule:    "FREQ=WEEKLY;INTERVAL=2;BYDAY=WE",
		},
	}
	now := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	occurrences, err := UpcomingDrives(drives, now, 30, 3)
	require.NoError(t, err)
	require.Len(t, occurrences, 3)

	assert.Equal(t, "Community Drive", occurrences[0].Name)
	assert.Equal(t, "2024-02-03", occurrences[0].Date)
	assert.Equal(t, "Campus Drive", occurrences[1].Name)
	assert.Equal(t, "2024-02-07", occurrences[1].Date)
	assert.Equal(t, "2024-02-21", occurrences[2].Date)
}

func TestUpcomingDrives_NoDrives(t *testing.T) {
	occurrences, err := UpcomingDrives(nil, time.Now(), 30, 3)
	require.NoError(t, err)
	assert.Empty(t, occurrences)
}

func TestUpcomingDrives_BadRule(t *testing.T) {
	_, err := UpcomingDrives([]Drive{{Name: "Broken", RRule: "FREQ=SOMETIMES"}}, time.Now(), 30, 3)
	assert.Error(t, err)
}

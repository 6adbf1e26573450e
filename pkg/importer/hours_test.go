package importer_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gastromap/gastromap-backend/pkg/importer"
)

func TestParseOpeningHours_StringLines(t *testing.T) {
	raw := json.RawMessage(`["Monday: 9:00 AM – 10:00 PM", "Tuesday: Closed", "Sunday: 24/7"]`)

	hours := importer.ParseOpeningHours(raw)
	require.Len(t, hours, 3)

	assert.Equal(t, 1, hours[0].DayOfWeek)
	assert.Equal(t, "09:00", hours[0].OpensAt)
	assert.Equal(t, "22:00", hours[0].ClosesAt)
	assert.False(t, hours[0].IsClosed)

	assert.Equal(t, 2, hours[1].DayOfWeek)
	assert.True(t, hours[1].IsClosed)

	assert.Equal(t, 0, hours[2].DayOfWeek)
	assert.Equal(t, "00:00", hours[2].OpensAt)
	assert.Equal(t, "23:59", hours[2].ClosesAt)
}

func TestParseOpeningHours_RussianLines(t *testing.T) {
	raw := json.RawMessage(`["Понедельник: 10:00 до 23:00", "Вторник: выходной"]`)

	hours := importer.ParseOpeningHours(raw)
	require.Len(t, hours, 2)

	assert.Equal(t, 1, hours[0].DayOfWeek)
	assert.Equal(t, "10:00", hours[0].OpensAt)
	assert.Equal(t, "23:00", hours[0].ClosesAt)
	assert.True(t, hours[1].IsClosed)
}

func TestParseOpeningHours_ObjectEntries(t *testing.T) {
	raw := json.RawMessage(`[
		{"day": "Wednesday", "hours": "11:00 AM to 11:00 PM"},
		{"dayOfWeek": 4, "openTime": "9", "closeTime": "18:30"},
		{"day": "Friday", "isClosed": true}
	]`)

	hours := importer.ParseOpeningHours(raw)
	require.Len(t, hours, 3)

	assert.Equal(t, 3, hours[0].DayOfWeek)
	assert.Equal(t, "11:00", hours[0].OpensAt)
	assert.Equal(t, "23:00", hours[0].ClosesAt)

	assert.Equal(t, 4, hours[1].DayOfWeek)
	assert.Equal(t, "09:00", hours[1].OpensAt)
	assert.Equal(t, "18:30", hours[1].ClosesAt)

	assert.Equal(t, 5, hours[2].DayOfWeek)
	assert.True(t, hours[2].IsClosed)
}

func TestParseOpeningHours_FirstEntryPerDayWins(t *testing.T) {
	raw := json.RawMessage(`["Monday: 9:00 – 18:00", "Monday: 10:00 – 20:00"]`)

	hours := importer.ParseOpeningHours(raw)
	require.Len(t, hours, 1)
	assert.Equal(t, "09:00", hours[0].OpensAt)
}

func TestParseOpeningHours_GarbageDropped(t *testing.T) {
	assert.Nil(t, importer.ParseOpeningHours(json.RawMessage(`"not an array"`)))
	assert.Empty(t, importer.ParseOpeningHours(json.RawMessage(`["Someday: 9-18", "no day here"]`)))
	assert.Nil(t, importer.ParseOpeningHours(nil))
}

func TestTo24Hour(t *testing.T) {
	cases := map[string]string{
		"9:00":     "09:00",
		"10:30 PM": "22:30",
		"12 AM":    "00:00",
		"12 PM":    "12:00",
		"9":        "09:00",
		"8 p.m.":   "20:00",
		"junk":     "00:00",
	}

	for input, expected := range cases {
		assert.Equal(t, expected, importer.To24Hour(input), "input %q", input)
	}
}

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvent_IsPast(t *testing.T) {
	eventDate := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	event := Event{Date: eventDate, Time: TimeOfDay{Hour: 9}}

	tests := []struct {
		name  string
		today time.Time
		want  bool
	}{
		{"day before", time.Date(2024, 3, 9, 23, 59, 0, 0, time.Local), false},
		{"same day early", time.Date(2024, 3, 10, 0, 1, 0, 0, time.Local), false},
		{"same day after start time", time.Date(2024, 3, 10, 22, 0, 0, 0, time.Local), false},
		{"day after", time.Date(2024, 3, 11, 0, 0, 0, 0, time.Local), true},
		{"year after", time.Date(2025, 1, 1, 12, 0, 0, 0, time.Local), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, event.IsPast(tt.today))
		})
	}
}

func TestDateOf_UsesCalendarDateOfLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	// 2024-03-10 20:00 UTC is already 2024-03-11 in Tokyo.
	instant := time.Date(2024, 3, 10, 20, 0, 0, 0, time.UTC).In(tokyo)

	assert.Equal(t, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), DateOf(instant))
}

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in      string
		want    TimeOfDay
		wantErr bool
	}{
		{in: "09:30", want: TimeOfDay{Hour: 9, Minute: 30}},
		{in: "18:05:42", want: TimeOfDay{Hour: 18, Minute: 5, Second: 42}},
		{in: " 07:00 ", want: TimeOfDay{Hour: 7}},
		{in: "12:00:00.000000", want: TimeOfDay{Hour: 12}},
		{in: "25:00", wantErr: true},
		{in: "noon", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeOfDay_Scan(t *testing.T) {
	var tod TimeOfDay

	require.NoError(t, tod.Scan("14:15:16"))
	assert.Equal(t, TimeOfDay{Hour: 14, Minute: 15, Second: 16}, tod)

	require.NoError(t, tod.Scan([]byte("08:00")))
	assert.Equal(t, TimeOfDay{Hour: 8}, tod)

	require.NoError(t, tod.Scan(time.Date(0, 1, 1, 23, 45, 0, 0, time.UTC)))
	assert.Equal(t, TimeOfDay{Hour: 23, Minute: 45}, tod)

	require.NoError(t, tod.Scan("2000-01-01 06:07:08+00:00"))
	assert.Equal(t, TimeOfDay{Hour: 6, Minute: 7, Second: 8}, tod)

	assert.Error(t, tod.Scan(42))
}

func TestTimeOfDay_Formats(t *testing.T) {
	tod := TimeOfDay{Hour: 7, Minute: 5}

	v, err := tod.Value()
	require.NoError(t, err)
	assert.Equal(t, "07:05:00", v)
	assert.Equal(t, "07:05", tod.Short())
}

func TestStringers(t *testing.T) {
	event := Event{Name: "Go Meetup", Date: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, "Go Meetup (2024-05-01)", event.String())

	participant := Participant{Name: "Ada", Email: "ada@example.com"}
	assert.Equal(t, "Ada <ada@example.com>", participant.String())

	assert.Equal(t, "Workshop", Category{Name: "Workshop"}.String())
}

package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWeekday(t *testing.T) {
	for in, want := range map[string]Weekday{
		"Monday": Monday, "monday": Monday, "MON": Monday,
		"Thu": Thursday, " Sunday ": Sunday, "sat": Saturday,
	} {
		got, ok := ParseWeekday(in)
		require.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}
	for _, in := range []string{"", "M", "Mond", "Funday"} {
		_, ok := ParseWeekday(in)
		assert.False(t, ok, in)
	}
}

func TestSlotMapJSON(t *testing.T) {
	course := Course{Name: "IoT", Credits: 2, SlotOptions: []SlotMap{{Wednesday: {"09:00-12:00"}}}}
	data, err := json.Marshal(course)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"IoT","credits":2,"slot_options":[{"Wednesday":["09:00-12:00"]}]}`, string(data))

	var back Course
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, course, back)

	assert.Error(t, json.Unmarshal([]byte(`{"slot_options":[{"Someday":["09:00-12:00"]}]}`), &back))
}

func TestSlotMapDays(t *testing.T) {
	s := SlotMap{Saturday: {"x"}, Monday: {"y"}, Wednesday: {"z"}}
	assert.Equal(t, []Weekday{Monday, Wednesday, Saturday}, s.Days())
	assert.Equal(t, "Weekday(9)", Weekday(9).String())
}

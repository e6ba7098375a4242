package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhyrak/combo-schedule/pkg/model"
)

func TestValidateAcceptsEnumeratedResult(t *testing.T) {
	catalog := sampleCatalog()
	c := sampleConstraints()
	results, _, err := New(nil).Enumerate(catalog, c)
	require.NoError(t, err)
	require.NotEmpty(t, results)

	valid, msg := Validate(results[0], catalog, c)
	assert.True(t, valid)
	assert.Equal(t, "[  OK]: Credit check.\n"+
		"[  OK]: Mandatory course check.\n"+
		"[  OK]: Course collision check.\n"+
		"[  OK]: Gap and day load check.\n", msg)
}

func TestValidateReportsBrokenResult(t *testing.T) {
	catalog := sampleCatalog()
	c := sampleConstraints()
	result := model.Result{
		Selections: []model.Selection{
			{Course: "Data Analytics", Credits: 3, Option: 0, Slots: catalog[0].SlotOptions[0]},
			{Course: "Person - Computer Interaction", Credits: 3, Option: 0, Slots: catalog[1].SlotOptions[0]},
		},
		TotalCredits: 6,
		DistinctDays: 3,
	}

	valid, msg := Validate(result, catalog, c)
	assert.False(t, valid)
	assert.Contains(t, msg, "[FAIL]: Credit check.")
	assert.Contains(t, msg, "6 credits outside [15, 15]")
	assert.Contains(t, msg, "[FAIL]: Mandatory course check.")
	assert.Contains(t, msg, "Mandatory course Advanced Architectural Patterns missing")
	assert.Contains(t, msg, "[FAIL]: Course collision check.")
	assert.Contains(t, msg, "Data Analytics collides with Person - Computer Interaction")
}

func TestValidateDetectsWrongMetrics(t *testing.T) {
	catalog := sampleCatalog()
	c := sampleConstraints()
	results, _, err := New(nil).Enumerate(catalog, c)
	require.NoError(t, err)
	require.NotEmpty(t, results)

	broken := results[2]
	broken.GapMinutes = 0
	broken.DistinctDays = 5
	valid, msg := Validate(broken, catalog, c)
	assert.False(t, valid)
	assert.Contains(t, msg, "[FAIL]: Gap and day load check.")
	assert.Contains(t, msg, "Gap is 60 minutes, result says 0")
	assert.Contains(t, msg, "Uses 4 days, result says 5")
}

func TestValidateRejectsMalformedRange(t *testing.T) {
	catalog := []model.Course{
		{Name: "A", Credits: 3, SlotOptions: []model.SlotMap{{model.Monday: {"garbage"}}}},
	}
	c := model.Constraints{MinCredits: 3, MaxCredits: 3, MaxGapMinutes: 60, MaxClassesPerDay: 3, MaxDaysPerWeek: 4}
	result := model.Result{
		Selections:   []model.Selection{{Course: "A", Credits: 3, Option: 0, Slots: model.SlotMap{model.Monday: {"garbage"}}}},
		TotalCredits: 3,
		DistinctDays: 1,
	}

	valid, msg := Validate(result, catalog, c)
	assert.False(t, valid)
	assert.Contains(t, msg, "[FAIL]: Course collision check.")
	assert.Contains(t, msg, "[FAIL]: Gap and day load check.")
	assert.Contains(t, msg, `parse "garbage"`)
}

func TestValidateDetectsSlotsNotMatchingOption(t *testing.T) {
	catalog := sampleCatalog()
	c := sampleConstraints()
	results, _, err := New(nil).Enumerate(catalog, c)
	require.NoError(t, err)
	require.NotEmpty(t, results)

	broken := results[0]
	broken.Selections = append([]model.Selection(nil), broken.Selections...)
	first := broken.Selections[0]
	first.Slots = model.SlotMap{model.Sunday: {"08:00-09:00"}}
	broken.Selections[0] = first

	valid, msg := Validate(broken, catalog, c)
	assert.False(t, valid)
	assert.Contains(t, msg, "[FAIL]: Course collision check.")
	assert.Contains(t, msg, first.Course+" slots differ from option")
}

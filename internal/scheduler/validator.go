package scheduler

import (
	"fmt"

	"github.com/rhyrak/combo-schedule/pkg/model"
)

// Validate re-checks an accepted result against the catalog and constraints.
// Returns false and a message for invalid results.
func Validate(result model.Result, catalog []model.Course, c model.Constraints) (bool, string) {
	var message string
	var valid bool = true

	byName := make(map[string]model.Course, len(catalog))
	for _, course := range catalog {
		byName[course.Name] = course
	}

	creditsOK := true
	slotsOK := true
	seen := make(map[string]bool, len(result.Selections))
	sum := 0
	for _, s := range result.Selections {
		if seen[s.Course] {
			creditsOK = false
			message += fmt.Sprintf("- %s selected more than once\n", s.Course)
		}
		seen[s.Course] = true
		course, ok := byName[s.Course]
		if !ok {
			creditsOK = false
			message += fmt.Sprintf("- %s is not in the catalog\n", s.Course)
			continue
		}
		if s.Option < 0 || s.Option >= len(course.SlotOptions) {
			creditsOK = false
			message += fmt.Sprintf("- %s has no slot option %d\n", s.Course, s.Option)
		} else if !sameSlots(s.Slots, course.SlotOptions[s.Option]) {
			slotsOK = false
			message += fmt.Sprintf("- %s slots differ from option %d\n", s.Course, s.Option)
		}
		sum += course.Credits
	}
	candidate := model.Candidate{Selections: result.Selections}
	if declared := candidate.Credits(); declared != sum {
		creditsOK = false
		message += fmt.Sprintf("- Selections carry %d credits, catalog says %d\n", declared, sum)
	}
	if sum != result.TotalCredits {
		creditsOK = false
		message += fmt.Sprintf("- Credits add up to %d, result says %d\n", sum, result.TotalCredits)
	}
	if sum < c.MinCredits || sum > c.MaxCredits {
		creditsOK = false
		message += fmt.Sprintf("- %d credits outside [%d, %d]\n", sum, c.MinCredits, c.MaxCredits)
	}

	mandatoryOK := true
	for _, m := range c.Mandatory {
		if !seen[m] {
			mandatoryOK = false
			message += "- Mandatory course " + m + " missing\n"
		}
	}

	collisionOK := slotsOK
	slots := candidate.SlotMaps()
	compiled, err := compileAll(slots)
	if err != nil {
		collisionOK = false
		message += "- " + err.Error() + "\n"
	} else {
		for i := 0; i < len(compiled); i++ {
			for j := i + 1; j < len(compiled); j++ {
				if collides(compiled[i], compiled[j]) {
					collisionOK = false
					message += fmt.Sprintf("- %s collides with %s\n", result.Selections[i].Course, result.Selections[j].Course)
				}
			}
		}
	}

	loadOK := err == nil
	if collisionOK {
		gap := gapMinutes(compiled)
		if gap != result.GapMinutes {
			loadOK = false
			message += fmt.Sprintf("- Gap is %d minutes, result says %d\n", gap, result.GapMinutes)
		}
		if gap > c.MaxGapMinutes {
			loadOK = false
			message += fmt.Sprintf("- Gap of %d minutes exceeds %d\n", gap, c.MaxGapMinutes)
		}
	}
	if ClassesPerDayExceeds(slots, c.MaxClassesPerDay) {
		loadOK = false
		message += fmt.Sprintf("- More than %d classes on a day\n", c.MaxClassesPerDay)
	}
	days := DistinctDayCount(slots)
	if days != result.DistinctDays {
		loadOK = false
		message += fmt.Sprintf("- Uses %d days, result says %d\n", days, result.DistinctDays)
	}
	if days > c.MaxDaysPerWeek {
		loadOK = false
		message += fmt.Sprintf("- %d days exceed %d\n", days, c.MaxDaysPerWeek)
	}

	if !loadOK {
		valid = false
		message = "[FAIL]: Gap and day load check.\n" + message
	} else {
		message = "[  OK]: Gap and day load check.\n" + message
	}
	if !collisionOK {
		valid = false
		message = "[FAIL]: Course collision check.\n" + message
	} else {
		message = "[  OK]: Course collision check.\n" + message
	}
	if !mandatoryOK {
		valid = false
		message = "[FAIL]: Mandatory course check.\n" + message
	} else {
		message = "[  OK]: Mandatory course check.\n" + message
	}
	if !creditsOK {
		valid = false
		message = "[FAIL]: Credit check.\n" + message
	} else {
		message = "[  OK]: Credit check.\n" + message
	}

	return valid, message
}

func sameSlots(a, b model.SlotMap) bool {
	if len(a) != len(b) {
		return false
	}
	for day, ranges := range a {
		other, ok := b[day]
		if !ok || len(other) != len(ranges) {
			return false
		}
		for i := range ranges {
			if ranges[i] != other[i] {
				return false
			}
		}
	}
	return true
}

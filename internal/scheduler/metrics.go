package scheduler

import "github.com/rhyrak/combo-schedule/pkg/model"

// ClassesPerDay counts class occurrences per day. A slot map contributes one
// occurrence to each day it lists, however many ranges that day holds.
func ClassesPerDay(slots []model.SlotMap) map[model.Weekday]int {
	counts := make(map[model.Weekday]int)
	for _, s := range slots {
		for day := range s {
			counts[day]++
		}
	}
	return counts
}

// ClassesPerDayExceeds reports whether any day holds more than limit classes.
func ClassesPerDayExceeds(slots []model.SlotMap, limit int) bool {
	for _, n := range ClassesPerDay(slots) {
		if n > limit {
			return true
		}
	}
	return false
}

// DistinctDayCount is the number of days with at least one class.
func DistinctDayCount(slots []model.SlotMap) int {
	return len(ClassesPerDay(slots))
}

func classesPerDayExceeds(slots []compiledSlots, limit int) bool {
	var counts [7]int
	for _, s := range slots {
		for day := range s {
			counts[day]++
			if counts[day] > limit {
				return true
			}
		}
	}
	return false
}

func distinctDayCount(slots []compiledSlots) int {
	var seen [7]bool
	n := 0
	for _, s := range slots {
		for day := range s {
			if !seen[day] {
				seen[day] = true
				n++
			}
		}
	}
	return n
}

package scheduler

import "github.com/rhyrak/combo-schedule/pkg/model"

// dayPlans groups the selections of a candidate by day in week order.
func dayPlans(selections []model.Selection) []model.DayPlan {
	var plans []model.DayPlan
	for _, day := range model.Week {
		var entries []model.DayEntry
		for _, s := range selections {
			ranges, ok := s.Slots[day]
			if !ok {
				continue
			}
			entries = append(entries, model.DayEntry{Course: s.Course, Ranges: append([]string(nil), ranges...)})
		}
		if len(entries) > 0 {
			plans = append(plans, model.DayPlan{Day: day, Entries: entries})
		}
	}
	return plans
}

func cloneSlots(s model.SlotMap) model.SlotMap {
	out := make(model.SlotMap, len(s))
	for day, ranges := range s {
		out[day] = append([]string(nil), ranges...)
	}
	return out
}

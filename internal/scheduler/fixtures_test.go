package scheduler

import "github.com/rhyrak/combo-schedule/pkg/model"

func sampleCatalog() []model.Course {
	return []model.Course{
		{Name: "Data Analytics", Credits: 3, SlotOptions: []model.SlotMap{
			{model.Monday: {"13:00-15:00"}, model.Friday: {"09:00-11:00"}},
			{model.Wednesday: {"07:00-09:00"}, model.Friday: {"07:00-09:00"}},
		}},
		{Name: "Person - Computer Interaction", Credits: 3, SlotOptions: []model.SlotMap{
			{model.Monday: {"13:00-15:00"}, model.Thursday: {"14:00-16:00"}},
			{model.Tuesday: {"14:00-16:00"}, model.Friday: {"09:00-11:00"}},
		}},
		{Name: "IT Infrastructure", Credits: 3, SlotOptions: []model.SlotMap{
			{model.Thursday: {"07:00-10:00"}},
			{model.Tuesday: {"09:00-12:00"}},
			{model.Saturday: {"09:00-12:00"}},
		}},
		{Name: "Systemic Thinking", Credits: 3, SlotOptions: []model.SlotMap{
			{model.Monday: {"15:00-18:00"}},
		}},
		{Name: "Advanced Architectural Patterns", Credits: 3, SlotOptions: []model.SlotMap{
			{model.Saturday: {"07:00-10:00"}},
		}},
		{Name: "Privacy, Law and Technology", Credits: 2, SlotOptions: []model.SlotMap{
			{model.Monday: {"12:00-14:00"}},
		}},
		{Name: "IoT", Credits: 2, SlotOptions: []model.SlotMap{
			{model.Monday: {"13:00-16:00"}},
			{model.Monday: {"07:00-10:00"}},
			{model.Wednesday: {"09:00-12:00"}},
			{model.Tuesday: {"09:00-12:00"}},
		}},
		{Name: "Software Projects", Credits: 3, SlotOptions: []model.SlotMap{
			{model.Saturday: {"10:00-13:00"}},
		}},
		{Name: "Business Creation Seminary", Credits: 2, SlotOptions: []model.SlotMap{
			{model.Friday: {"09:00-11:00"}},
		}},
	}
}

func sampleConstraints() model.Constraints {
	return model.Constraints{
		MinCredits:       15,
		MaxCredits:       15,
		MaxGapMinutes:    60,
		MaxClassesPerDay: 3,
		MaxDaysPerWeek:   4,
		Mandatory:        []string{"Data Analytics", "Advanced Architectural Patterns"},
		Rank:             model.RankByDaysThenGap,
	}
}

func looseConstraints(credits int, mandatory ...string) model.Constraints {
	return model.Constraints{
		MinCredits:       credits,
		MaxCredits:       credits,
		MaxGapMinutes:    24 * 60,
		MaxClassesPerDay: 10,
		MaxDaysPerWeek:   7,
		Mandatory:        mandatory,
		Rank:             model.RankByDaysThenGap,
	}
}

package model

// SlotMap is one weekly placement of a course: the time ranges
// ("HH:MM-HH:MM") it occupies on each day.
type SlotMap map[Weekday][]string

// Days returns the days present in the map in week order.
func (s SlotMap) Days() []Weekday {
	days := make([]Weekday, 0, len(s))
	for _, d := range Week {
		if _, ok := s[d]; ok {
			days = append(days, d)
		}
	}
	return days
}

type Course struct {
	Name        string    `json:"name"`
	Credits     int       `json:"credits"`
	SlotOptions []SlotMap `json:"slot_options"`
}

// Selection is a course together with the slot option chosen for it.
type Selection struct {
	Course  string  `json:"course"`
	Credits int     `json:"credits"`
	Option  int     `json:"option"`
	Slots   SlotMap `json:"slots"`
}

// Candidate is one trial schedule under evaluation.
type Candidate struct {
	Selections []Selection
}

// SlotMaps returns the chosen slot maps in selection order.
func (c Candidate) SlotMaps() []SlotMap {
	maps := make([]SlotMap, len(c.Selections))
	for i, s := range c.Selections {
		maps[i] = s.Slots
	}
	return maps
}

// Credits sums the credits of every selected course.
func (c Candidate) Credits() int {
	total := 0
	for _, s := range c.Selections {
		total += s.Credits
	}
	return total
}

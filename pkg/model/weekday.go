package model

import (
	"fmt"
	"strings"
)

type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// Week lists every day in report order.
var Week = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var weekdayNames = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

func (d Weekday) String() string {
	if d < Monday || d > Sunday {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return weekdayNames[d]
}

// ParseWeekday accepts full day names or their three letter abbreviation,
// case-insensitive.
func ParseWeekday(s string) (Weekday, bool) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, full := range weekdayNames {
		full = strings.ToLower(full)
		if name == full || name == full[:3] {
			return Weekday(i), true
		}
	}
	return 0, false
}

func (d Weekday) MarshalText() ([]byte, error) {
	if d < Monday || d > Sunday {
		return nil, fmt.Errorf("invalid weekday %d", int(d))
	}
	return []byte(weekdayNames[d]), nil
}

func (d *Weekday) UnmarshalText(text []byte) error {
	day, ok := ParseWeekday(string(text))
	if !ok {
		return fmt.Errorf("unknown day %q", string(text))
	}
	*d = day
	return nil
}

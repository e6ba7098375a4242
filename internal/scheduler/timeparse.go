package scheduler

import (
	"fmt"
	"regexp"
	"strconv"
)

// TimeRange is a half-open interval in minutes since midnight.
type TimeRange struct {
	Start int
	End   int
}

func (r TimeRange) String() string {
	return fmt.Sprintf("%02d:%02d-%02d:%02d", r.Start/60, r.Start%60, r.End/60, r.End%60)
}

// Overlaps reports whether two ranges share at least one minute.
func (r TimeRange) Overlaps(o TimeRange) bool {
	return r.Start < o.End && o.Start < r.End
}

var rangePattern = regexp.MustCompile(`^(\d{2}):(\d{2})-(\d{2}):(\d{2})$`)

// ParseRange converts "HH:MM-HH:MM" into minutes since midnight.
// 24:00 is accepted as an end time only. Ranges that end at or before
// their start are rejected.
func ParseRange(s string) (TimeRange, error) {
	m := rangePattern.FindStringSubmatch(s)
	if m == nil {
		return TimeRange{}, &ParseError{Value: s, Reason: "expected HH:MM-HH:MM"}
	}
	n := make([]int, 4)
	for i := range n {
		// the pattern guarantees two digits
		n[i], _ = strconv.Atoi(m[i+1])
	}
	if n[1] > 59 || n[3] > 59 {
		return TimeRange{}, &ParseError{Value: s, Reason: "minutes must be between 00 and 59"}
	}
	if n[0] > 23 {
		return TimeRange{}, &ParseError{Value: s, Reason: "start hour must be between 00 and 23"}
	}
	if n[2] > 24 || (n[2] == 24 && n[3] != 0) {
		return TimeRange{}, &ParseError{Value: s, Reason: "end must not be later than 24:00"}
	}
	r := TimeRange{Start: n[0]*60 + n[1], End: n[2]*60 + n[3]}
	if r.End <= r.Start {
		return TimeRange{}, &ParseError{Value: s, Reason: "end must be after start"}
	}
	return r, nil
}

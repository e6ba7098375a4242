package scheduler

import (
	"sort"

	"github.com/rhyrak/combo-schedule/pkg/model"
)

// compiledSlots is a SlotMap with every range parsed once.
type compiledSlots map[model.Weekday][]TimeRange

func compile(slots model.SlotMap) (compiledSlots, error) {
	out := make(compiledSlots, len(slots))
	for day, ranges := range slots {
		parsed := make([]TimeRange, 0, len(ranges))
		for _, r := range ranges {
			tr, err := ParseRange(r)
			if err != nil {
				return nil, err
			}
			parsed = append(parsed, tr)
		}
		out[day] = parsed
	}
	return out, nil
}

func compileAll(slots []model.SlotMap) ([]compiledSlots, error) {
	out := make([]compiledSlots, len(slots))
	for i, s := range slots {
		c, err := compile(s)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}

// Collides reports whether two slot maps overlap on any shared day.
// Ranges that touch (one ends when the other starts) do not collide.
func Collides(a, b model.SlotMap) (bool, error) {
	ca, err := compile(a)
	if err != nil {
		return false, err
	}
	cb, err := compile(b)
	if err != nil {
		return false, err
	}
	return collides(ca, cb), nil
}

func collides(a, b compiledSlots) bool {
	for day, rangesA := range a {
		rangesB, ok := b[day]
		if !ok {
			continue
		}
		for _, ra := range rangesA {
			for _, rb := range rangesB {
				if ra.Overlaps(rb) {
					return true
				}
			}
		}
	}
	return false
}

// GapMinutes sums the idle minutes between consecutive classes on each day.
// The input is expected to be collision free; overlapping or touching
// ranges contribute nothing.
func GapMinutes(slots []model.SlotMap) (int, error) {
	compiled, err := compileAll(slots)
	if err != nil {
		return 0, err
	}
	return gapMinutes(compiled), nil
}

func gapMinutes(slots []compiledSlots) int {
	byDay := make(map[model.Weekday][]TimeRange)
	for _, s := range slots {
		for day, ranges := range s {
			byDay[day] = append(byDay[day], ranges...)
		}
	}
	total := 0
	for _, ranges := range byDay {
		if len(ranges) < 2 {
			continue
		}
		sort.Slice(ranges, func(i, j int) bool {
			if ranges[i].Start != ranges[j].Start {
				return ranges[i].Start < ranges[j].Start
			}
			return ranges[i].End < ranges[j].End
		})
		for i := 1; i < len(ranges); i++ {
			if gap := ranges[i].Start - ranges[i-1].End; gap > 0 {
				total += gap
			}
		}
	}
	return total
}

package scheduler

import (
	"sort"

	"github.com/rhyrak/combo-schedule/pkg/model"
)

// Rank orders results in place. The sort is stable so results with equal
// keys keep their enumeration order.
func Rank(results []model.Result, mode model.RankMode) {
	var less func(a, b model.Result) bool
	switch mode {
	case model.RankByGap:
		less = func(a, b model.Result) bool { return a.GapMinutes < b.GapMinutes }
	case model.RankByDays:
		less = func(a, b model.Result) bool { return a.DistinctDays < b.DistinctDays }
	case model.RankByDaysThenGap:
		less = func(a, b model.Result) bool {
			if a.DistinctDays != b.DistinctDays {
				return a.DistinctDays < b.DistinctDays
			}
			return a.GapMinutes < b.GapMinutes
		}
	default:
		return
	}
	sort.SliceStable(results, func(i, j int) bool {
		return less(results[i], results[j])
	})
}

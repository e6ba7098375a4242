package scheduler

import (
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/rhyrak/combo-schedule/pkg/model"
)

// Engine enumerates course combinations. It holds no state between runs.
type Engine struct {
	validator *validator.Validate
	logger    *zap.Logger
}

func New(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{validator: validator.New(), logger: logger}
}

// Run enumerates, ranks and keeps the first top results (all when top <= 0).
func (e *Engine) Run(catalog []model.Course, c model.Constraints, top int) (model.Outcome, error) {
	results, stats, err := e.Enumerate(catalog, c)
	if err != nil {
		return model.Outcome{}, err
	}
	Rank(results, c.Rank)
	total := len(results)
	if top > 0 && len(results) > top {
		results = results[:top]
	}
	return model.Outcome{Results: results, Total: total, Stats: stats}, nil
}

// Enumerate returns every accepted result in enumeration order: subsets by
// size, then lexicographically by catalog index, then slot options
// lexicographically.
func (e *Engine) Enumerate(catalog []model.Course, c model.Constraints) ([]model.Result, model.Stats, error) {
	var stats model.Stats
	if err := e.Check(catalog, c); err != nil {
		return nil, stats, err
	}

	options := make([][]compiledSlots, len(catalog))
	for i, course := range catalog {
		compiled, err := compileAll(course.SlotOptions)
		if err != nil {
			return nil, stats, err
		}
		options[i] = compiled
	}

	w := &walker{
		catalog:     catalog,
		options:     options,
		constraints: c,
		stats:       &stats,
	}
	for size := 1; size <= len(catalog); size++ {
		forEachSubset(len(catalog), size, w.visitSubset)
	}
	stats.Accepted = len(w.results)

	e.logger.Info("enumeration finished",
		zap.Int("courses", len(catalog)),
		zap.Int("subsets", stats.Subsets),
		zap.Int("subsets_accepted", stats.SubsetsAccepted),
		zap.Int("candidates", stats.Candidates),
		zap.Int("accepted", stats.Accepted),
	)
	e.logger.Debug("rejections",
		zap.Int("missing_mandatory", stats.MissingRequired),
		zap.Int("credits_outside", stats.CreditsOutside),
		zap.Int("collisions", stats.Collisions),
		zap.Int("gap_exceeded", stats.GapExceeded),
		zap.Int("day_load_exceeded", stats.DayLoadExceeded),
		zap.Int("too_many_days", stats.TooManyDays),
	)
	return w.results, stats, nil
}

// forEachSubset calls fn with every k-element index combination of 0..n-1
// in lexicographic order. The slice is reused between calls.
func forEachSubset(n, k int, fn func([]int)) {
	if k <= 0 || k > n {
		return
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		fn(idx)
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

type walker struct {
	catalog     []model.Course
	options     [][]compiledSlots
	constraints model.Constraints
	stats       *model.Stats
	results     []model.Result

	subset []int
	choice []int
	chosen []compiledSlots
}

func (w *walker) visitSubset(subset []int) {
	w.stats.Subsets++

	for _, m := range w.constraints.Mandatory {
		found := false
		for _, i := range subset {
			if w.catalog[i].Name == m {
				found = true
				break
			}
		}
		if !found {
			w.stats.MissingRequired++
			return
		}
	}

	credits := 0
	for _, i := range subset {
		credits += w.catalog[i].Credits
	}
	if credits < w.constraints.MinCredits || credits > w.constraints.MaxCredits {
		w.stats.CreditsOutside++
		return
	}
	w.stats.SubsetsAccepted++

	w.subset = subset
	w.choice = make([]int, len(subset))
	w.chosen = make([]compiledSlots, len(subset))
	w.product(0, credits)
}

// product picks a slot option for subset[depth] and recurses. A pick that
// collides with an earlier pick is dropped right away; every candidate it
// would have completed contains the same colliding pair.
func (w *walker) product(depth, credits int) {
	if depth == len(w.subset) {
		w.evaluate(credits)
		return
	}
	for opt, slots := range w.options[w.subset[depth]] {
		clash := false
		for _, prev := range w.chosen[:depth] {
			if collides(prev, slots) {
				clash = true
				break
			}
		}
		if clash {
			pruned := w.completions(depth + 1)
			w.stats.Collisions += pruned
			w.stats.Candidates += pruned
			continue
		}
		w.choice[depth] = opt
		w.chosen[depth] = slots
		w.product(depth+1, credits)
	}
}

// completions is the number of full candidates below a pruned pick.
func (w *walker) completions(depth int) int {
	n := 1
	for _, i := range w.subset[depth:] {
		n *= len(w.options[i])
	}
	return n
}

func (w *walker) evaluate(credits int) {
	w.stats.Candidates++
	c := w.constraints

	gap := gapMinutes(w.chosen)
	if gap > c.MaxGapMinutes {
		w.stats.GapExceeded++
		return
	}
	if classesPerDayExceeds(w.chosen, c.MaxClassesPerDay) {
		w.stats.DayLoadExceeded++
		return
	}
	days := distinctDayCount(w.chosen)
	if days > c.MaxDaysPerWeek {
		w.stats.TooManyDays++
		return
	}

	selections := make([]model.Selection, len(w.subset))
	for k, i := range w.subset {
		course := w.catalog[i]
		selections[k] = model.Selection{
			Course:  course.Name,
			Credits: course.Credits,
			Option:  w.choice[k],
			Slots:   cloneSlots(course.SlotOptions[w.choice[k]]),
		}
	}
	w.results = append(w.results, model.Result{
		Selections:   selections,
		TotalCredits: credits,
		GapMinutes:   gap,
		DistinctDays: days,
		Days:         dayPlans(selections),
	})
}

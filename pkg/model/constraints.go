package model

type RankMode string

const (
	RankByGap         RankMode = "gap"
	RankByDays        RankMode = "days"
	RankByDaysThenGap RankMode = "days-gap"
)

// Constraints bound which candidates are accepted. An exact credit target is
// expressed as MinCredits == MaxCredits.
type Constraints struct {
	MinCredits       int      `json:"min_credits" validate:"gte=0"`
	MaxCredits       int      `json:"max_credits" validate:"gtefield=MinCredits"`
	MaxGapMinutes    int      `json:"max_gap_minutes" validate:"gte=0"`
	MaxClassesPerDay int      `json:"max_classes_per_day" validate:"gte=1"`
	MaxDaysPerWeek   int      `json:"max_days_per_week" validate:"gte=1,lte=7"`
	Mandatory        []string `json:"mandatory"`
	Rank             RankMode `json:"rank" validate:"oneof=gap days days-gap"`
}

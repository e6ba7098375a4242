package model

// DayEntry is one course occurrence on a day.
type DayEntry struct {
	Course string   `json:"course"`
	Ranges []string `json:"ranges"`
}

type DayPlan struct {
	Day     Weekday    `json:"day"`
	Entries []DayEntry `json:"entries"`
}

// Result is an accepted candidate together with its metrics.
type Result struct {
	Selections   []Selection `json:"selections"`
	TotalCredits int         `json:"total_credits"`
	GapMinutes   int         `json:"gap_minutes"`
	DistinctDays int         `json:"distinct_days"`
	Days         []DayPlan   `json:"days"`
}

// Courses returns the names of the selected courses in selection order.
func (r Result) Courses() []string {
	names := make([]string, len(r.Selections))
	for i, s := range r.Selections {
		names[i] = s.Course
	}
	return names
}

// Stats counts how far the enumeration got and why candidates were dropped.
type Stats struct {
	Subsets         int `json:"subsets"`
	MissingRequired int `json:"missing_mandatory"`
	CreditsOutside  int `json:"credits_outside"`
	SubsetsAccepted int `json:"subsets_accepted"`
	Candidates      int `json:"candidates"`
	Collisions      int `json:"collisions"`
	GapExceeded     int `json:"gap_exceeded"`
	DayLoadExceeded int `json:"day_load_exceeded"`
	TooManyDays     int `json:"too_many_days"`
	Accepted        int `json:"accepted"`
}

// Outcome is the ranked result set of one run. Results may be truncated;
// Total is the number of accepted results before truncation.
type Outcome struct {
	Results []Result `json:"results"`
	Total   int      `json:"total"`
	Stats   Stats    `json:"stats"`
}

// Empty reports whether no valid combination was found.
func (o Outcome) Empty() bool {
	return o.Total == 0
}

type ResultCSVRow struct {
	Schedule     int    `csv:"schedule"`
	Course       string `csv:"course"`
	Credits      int    `csv:"credits"`
	Option       int    `csv:"option"`
	Day          string `csv:"day"`
	Time         string `csv:"time"`
	TotalCredits int    `csv:"total_credits"`
	GapMinutes   int    `csv:"gap_minutes"`
	DistinctDays int    `csv:"distinct_days"`
}

type SlotCSVRow struct {
	Course  string `csv:"course"`
	Credits int    `csv:"credits"`
	Option  int    `csv:"option"`
	Day     string `csv:"day"`
	Time    string `csv:"time"`
}

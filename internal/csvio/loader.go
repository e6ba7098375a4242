package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/rhyrak/combo-schedule/internal/scheduler"
	"github.com/rhyrak/combo-schedule/pkg/model"
)

// LoadCourses reads a slot table from the csv file at path. Each row is one
// time range of one slot option:
//
//	course;credits;option;day;time
//
// Courses and options keep the order in which they first appear. The option
// column only groups rows; its values are labels, not indexes.
func LoadCourses(path string, delim rune) ([]model.Course, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	courses, err := ReadCourses(f, delim)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return courses, nil
}

// ReadCourses parses a slot table from r.
func ReadCourses(in io.Reader, delim rune) ([]model.Course, error) {
	r := csv.NewReader(in)
	r.Comma = delim
	r.TrimLeadingSpace = true

	var rows []*model.SlotCSVRow
	if err := gocsv.UnmarshalCSV(r, &rows); err != nil {
		return nil, fmt.Errorf("parse rows: %w", err)
	}
	return groupRows(rows)
}

func groupRows(rows []*model.SlotCSVRow) ([]model.Course, error) {
	var courses []model.Course
	courseIndex := map[string]int{}
	optionIndex := map[string]map[int]int{}

	for n, row := range rows {
		name := strings.TrimSpace(row.Course)
		if name == "" {
			return nil, &scheduler.ConfigurationError{Field: fmt.Sprintf("row %d", n+1), Reason: "course name is empty"}
		}
		day, ok := model.ParseWeekday(row.Day)
		if !ok {
			return nil, &scheduler.ParseError{Value: row.Day, Reason: "unknown day"}
		}

		ci, seen := courseIndex[name]
		if !seen {
			ci = len(courses)
			courseIndex[name] = ci
			optionIndex[name] = map[int]int{}
			courses = append(courses, model.Course{Name: name, Credits: row.Credits})
		} else if courses[ci].Credits != row.Credits {
			return nil, &scheduler.ConfigurationError{
				Field:  fmt.Sprintf("row %d", n+1),
				Reason: fmt.Sprintf("course %q listed with %d and %d credits", name, courses[ci].Credits, row.Credits),
			}
		}

		oi, seen := optionIndex[name][row.Option]
		if !seen {
			oi = len(courses[ci].SlotOptions)
			optionIndex[name][row.Option] = oi
			courses[ci].SlotOptions = append(courses[ci].SlotOptions, model.SlotMap{})
		}
		slots := courses[ci].SlotOptions[oi]
		slots[day] = append(slots[day], strings.TrimSpace(row.Time))
	}
	return courses, nil
}

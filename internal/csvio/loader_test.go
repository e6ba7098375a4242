package csvio

import (
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhyrak/combo-schedule/internal/scheduler"
	"github.com/rhyrak/combo-schedule/pkg/model"
)

func TestReadCourses(t *testing.T) {
	in := strings.Join([]string{
		"course;credits;option;day;time",
		"Data Analytics;3;1;Monday;13:00-15:00",
		"Data Analytics;3;1;Friday;09:00-11:00",
		"IoT;2;7;Monday;13:00-16:00",
		"Data Analytics;3;2;Wednesday;07:00-09:00",
		"IoT;2;3;wed;09:00-12:00",
		"IoT;2;3;Wednesday;14:00-15:00",
	}, "\n")

	courses, err := ReadCourses(strings.NewReader(in), ';')
	require.NoError(t, err)
	require.Len(t, courses, 2)

	assert.Equal(t, model.Course{Name: "Data Analytics", Credits: 3, SlotOptions: []model.SlotMap{
		{model.Monday: {"13:00-15:00"}, model.Friday: {"09:00-11:00"}},
		{model.Wednesday: {"07:00-09:00"}},
	}}, courses[0])
	assert.Equal(t, model.Course{Name: "IoT", Credits: 2, SlotOptions: []model.SlotMap{
		{model.Monday: {"13:00-16:00"}},
		{model.Wednesday: {"09:00-12:00", "14:00-15:00"}},
	}}, courses[1])
}

func TestReadCoursesRejectsUnknownDay(t *testing.T) {
	in := "course,credits,option,day,time\nIoT,2,1,Someday,09:00-10:00\n"
	_, err := ReadCourses(strings.NewReader(in), ',')
	var perr *scheduler.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "Someday", perr.Value)
}

func TestReadCoursesRejectsCreditMismatch(t *testing.T) {
	in := "course;credits;option;day;time\nIoT;2;1;Monday;09:00-10:00\nIoT;3;2;Monday;11:00-12:00\n"
	_, err := ReadCourses(strings.NewReader(in), ';')
	var cerr *scheduler.ConfigurationError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "row 2", cerr.Field)
}

func TestReadCoursesRejectsBadNumbers(t *testing.T) {
	in := "course;credits;option;day;time\nIoT;two;1;Monday;09:00-10:00\n"
	_, err := ReadCourses(strings.NewReader(in), ';')
	require.Error(t, err)
}

func TestLoadCoursesSampleCatalog(t *testing.T) {
	courses, err := LoadCourses(filepath.Join("..", "..", "res", "catalog.csv"), ';')
	require.NoError(t, err)
	require.Len(t, courses, 9)
	assert.Equal(t, "Privacy, Law and Technology", courses[5].Name)
	assert.Len(t, courses[6].SlotOptions, 4)
}

func TestLoadCoursesMissingFile(t *testing.T) {
	_, err := LoadCourses(filepath.Join(t.TempDir(), "nope.csv"), ';')
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

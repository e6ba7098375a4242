// Package catalog reads course catalogs from structured documents.
package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/rhyrak/combo-schedule/internal/csvio"
	"github.com/rhyrak/combo-schedule/internal/scheduler"
	"github.com/rhyrak/combo-schedule/pkg/model"
)

type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatCSV  Format = "csv"
)

// document is the on-disk shape shared by the yaml, json and toml formats.
type document struct {
	Courses []courseDoc `yaml:"courses" json:"courses" toml:"courses"`
}

type courseDoc struct {
	Name        string                `yaml:"name" json:"name" toml:"name"`
	Credits     int                   `yaml:"credits" json:"credits" toml:"credits"`
	SlotOptions []map[string][]string `yaml:"slot_options" json:"slot_options" toml:"slot_options"`
}

// FormatOf picks the format from the file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	case ".csv":
		return FormatCSV, nil
	}
	return "", fmt.Errorf("catalog: unsupported file type %q", filepath.Ext(path))
}

// Load reads the catalog at path. delim only applies to csv files.
func Load(path string, delim rune) ([]model.Course, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	if format == FormatCSV {
		return csvio.LoadCourses(path, delim)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	courses, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("catalog: load %s: %w", path, err)
	}
	return courses, nil
}

// Parse decodes a yaml, json or toml catalog document.
func Parse(data []byte, format Format) ([]model.Course, error) {
	var doc document
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	case FormatTOML:
		if _, err := toml.Decode(string(data), &doc); err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
	return doc.courses()
}

func (d document) courses() ([]model.Course, error) {
	courses := make([]model.Course, 0, len(d.Courses))
	for _, c := range d.Courses {
		course := model.Course{Name: c.Name, Credits: c.Credits}
		for _, raw := range c.SlotOptions {
			slots := make(model.SlotMap, len(raw))
			for name, ranges := range raw {
				day, ok := model.ParseWeekday(name)
				if !ok {
					return nil, &scheduler.ParseError{Value: name, Reason: "unknown day"}
				}
				if _, dup := slots[day]; dup {
					return nil, &scheduler.ParseError{Value: name, Reason: fmt.Sprintf("%s listed twice in one slot option", day)}
				}
				slots[day] = ranges
			}
			course.SlotOptions = append(course.SlotOptions, slots)
		}
		courses = append(courses, course)
	}
	return courses, nil
}

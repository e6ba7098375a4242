package scheduler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/rhyrak/combo-schedule/pkg/model"
)

// Check validates the constraints against themselves and the catalog. It
// returns a *ConfigurationError or a *ParseError, never both.
func (e *Engine) Check(catalog []model.Course, c model.Constraints) error {
	if err := e.validator.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return &ConfigurationError{
				Field:  fe.Field(),
				Reason: describeRule(fe),
				Err:    err,
			}
		}
		return &ConfigurationError{Reason: "invalid constraints", Err: err}
	}

	names := make(map[string]bool, len(catalog))
	for i, course := range catalog {
		field := fmt.Sprintf("courses[%d]", i)
		if strings.TrimSpace(course.Name) == "" {
			return &ConfigurationError{Field: field, Reason: "course name is empty"}
		}
		if names[course.Name] {
			return &ConfigurationError{Field: field, Reason: fmt.Sprintf("duplicate course %q", course.Name)}
		}
		names[course.Name] = true
		if course.Credits < 0 {
			return &ConfigurationError{Field: field, Reason: fmt.Sprintf("course %q has negative credits", course.Name)}
		}
		if len(course.SlotOptions) == 0 {
			return &ConfigurationError{Field: field, Reason: fmt.Sprintf("course %q has no slot options", course.Name)}
		}
		for j, option := range course.SlotOptions {
			for day, ranges := range option {
				if day < model.Monday || day > model.Sunday {
					return &ConfigurationError{Field: fmt.Sprintf("%s.slot_options[%d]", field, j), Reason: fmt.Sprintf("invalid day %d", int(day))}
				}
				if len(ranges) == 0 {
					return &ConfigurationError{Field: fmt.Sprintf("%s.slot_options[%d]", field, j), Reason: fmt.Sprintf("%s lists no time ranges", day)}
				}
			}
			if _, err := compile(option); err != nil {
				return err
			}
		}
	}

	for _, m := range c.Mandatory {
		if !names[m] {
			return &ConfigurationError{Field: "Mandatory", Reason: fmt.Sprintf("course %q is not in the catalog", m)}
		}
	}
	return nil
}

func describeRule(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gtefield":
		return fmt.Sprintf("must not be less than %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	}
	return fmt.Sprintf("failed %q rule", fe.Tag())
}

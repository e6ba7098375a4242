package scheduler

import "fmt"

// ParseError reports a malformed time range or day name in catalog data.
type ParseError struct {
	Value  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: %s", e.Value, e.Reason)
}

// ConfigurationError reports constraints or catalog entries that cannot
// produce a meaningful run.
type ConfigurationError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	msg := e.Reason
	if e.Field != "" {
		msg = e.Field + ": " + msg
	}
	if e.Err != nil {
		return fmt.Sprintf("configuration: %s: %v", msg, e.Err)
	}
	return "configuration: " + msg
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

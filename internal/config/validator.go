package config

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

// FieldError reports one rejected setting, keyed by its viper path.
type FieldError struct {
	Field   string // e.g. "render.blank"
	Value   any
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("config %s=%q: %s", e.Field, fmt.Sprint(e.Value), e.Message)
}

// ValidationErrors is every FieldError found by one Validate call.
// Load returns it as a single error; unpack it with errors.As.
type ValidationErrors []FieldError

func (e ValidationErrors) Error() string {
	switch len(e) {
	case 0:
		return ""
	case 1:
		return e[0].Error()
	}
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Error()
	}
	return fmt.Sprintf("invalid configuration (%d problems): %s", len(e), strings.Join(msgs, "; "))
}

// ValidLogLevels lists the accepted log.level values.
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// Validate checks the Config and returns every problem found.
func (c *Config) Validate() []FieldError {
	var errs []FieldError

	if n := utf8.RuneCountInString(c.Render.Blank); n != 1 {
		errs = append(errs, FieldError{
			Field:   "render.blank",
			Value:   c.Render.Blank,
			Message: "must be exactly one character",
		})
	} else if c.Render.Blank == "\x00" {
		errs = append(errs, FieldError{
			Field:   "render.blank",
			Value:   c.Render.Blank,
			Message: "must not be NUL",
		})
	}
	if strings.ContainsAny(c.Render.Separator, "\r\n") {
		errs = append(errs, FieldError{
			Field:   "render.separator",
			Value:   c.Render.Separator,
			Message: "must not contain line breaks",
		})
	}
	if !slices.Contains(ValidLogLevels(), strings.ToLower(c.Log.Level)) {
		errs = append(errs, FieldError{
			Field:   "log.level",
			Value:   c.Log.Level,
			Message: fmt.Sprintf("must be one of %v", ValidLogLevels()),
		})
	}

	return errs
}

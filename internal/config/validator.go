package config

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// ValidationError is a single invalid setting.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors collects every invalid setting.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidLogLevels lists the accepted logging.level values.
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// MinRefreshMs is the fastest allowed panel refresh.
const MinRefreshMs = 10

var (
	colorRegex = regexp.MustCompile(`^(#[0-9a-fA-F]{3}|#[0-9a-fA-F]{6}|[0-9]{1,3})$`)
	identRegex = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)
)

// Validate returns every problem found in c.
func (c *Config) Validate() []ValidationError {
	var errs []ValidationError

	if c.Highlight.Color != "" && !colorRegex.MatchString(c.Highlight.Color) {
		errs = append(errs, ValidationError{
			Field:   "highlight.color",
			Value:   c.Highlight.Color,
			Message: "must be an ANSI colour number or #hex colour",
		})
	}

	if c.Panel.FloatX < 0 {
		errs = append(errs, ValidationError{Field: "panel.float_x", Value: c.Panel.FloatX, Message: "must be non-negative"})
	}
	if c.Panel.FloatY < 0 {
		errs = append(errs, ValidationError{Field: "panel.float_y", Value: c.Panel.FloatY, Message: "must be non-negative"})
	}
	if c.Panel.RefreshMs < MinRefreshMs {
		errs = append(errs, ValidationError{
			Field:   "panel.refresh_ms",
			Value:   c.Panel.RefreshMs,
			Message: fmt.Sprintf("must be at least %d", MinRefreshMs),
		})
	}

	if !identRegex.MatchString(c.Generate.Object) {
		errs = append(errs, ValidationError{
			Field:   "generate.object",
			Value:   c.Generate.Object,
			Message: "must be a JavaScript identifier",
		})
	}

	if !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		errs = append(errs, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	return errs
}

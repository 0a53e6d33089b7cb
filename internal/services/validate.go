package services

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// field is one input value checked by validate.
type field struct {
	name     string
	value    string
	max      int
	required bool
}

// validate returns a message for the first rule broken by fields, or ""
// when all pass. Values are checked as given; callers trim first.
func validate(fields ...field) string {
	for _, f := range fields {
		if f.required && strings.TrimSpace(f.value) == "" {
			return fmt.Sprintf("%s is required", f.name)
		}
		if f.max > 0 && utf8.RuneCountInString(f.value) > f.max {
			return fmt.Sprintf("%s must be at most %d characters", f.name, f.max)
		}
	}
	return ""
}

package validate

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var reCode = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Field checks a single text field for immediate per-keystroke
// feedback. Rules are independent of Form and Question validation:
// the description limit here (500) differs from the question-level
// one (300). Unknown field names pass.
func Field(field, value string) string {
	switch field {
	case "title":
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			return "Title is required"
		}
		if utf8.RuneCountInString(trimmed) < 3 {
			return "Minimum 3 characters"
		}
		if utf8.RuneCountInString(trimmed) > 100 {
			return "Maximum 100 characters"
		}

	case "code":
		if strings.TrimSpace(value) == "" {
			return "Code is required"
		}
		if !reCode.MatchString(value) {
			return "Only letters, numbers, _ and -"
		}

	case "description":
		if value != "" && utf8.RuneCountInString(value) > 500 {
			return "Maximum 500 characters"
		}
	}

	return ""
}

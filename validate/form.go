package validate

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mbolis/form-builder/model"
)

// Form checks a whole form definition: its own fields, plus every
// question via Question with `questions[i].`-qualified field paths.
// All errors are aggregated; the form is valid only when none remain.
func Form(form model.Form) Result {
	var errors []Error

	title := strings.TrimSpace(form.Title)
	if title == "" {
		errors = append(errors, Error{"title", "Form title is required"})
	}
	if title != "" && utf8.RuneCountInString(title) < 3 {
		errors = append(errors, Error{"title", "Title must be at least 3 characters"})
	}
	if title != "" && utf8.RuneCountInString(title) > 100 {
		errors = append(errors, Error{"title", "Title must be at most 100 characters"})
	}

	if form.Description != "" && utf8.RuneCountInString(form.Description) > 500 {
		errors = append(errors, Error{"description", "Description must be at most 500 characters"})
	}

	if len(form.Questions) == 0 {
		errors = append(errors, Error{"questions", "Form must have at least one question"})
	}

	for i, question := range form.Questions {
		for _, err := range Question(question, form.Questions) {
			errors = append(errors, Error{
				Field:   fmt.Sprintf("questions[%d].%s", i, err.Field),
				Message: err.Message,
			})
		}
	}

	return result(errors)
}

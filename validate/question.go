package validate

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mbolis/form-builder/model"
)

// Question checks one question's internal consistency against its
// sibling questions (needed for duplicate code detection; siblings
// are compared by identifier so a question never conflicts with
// itself). All violations are collected, none short-circuits.
//
// Referential integrity of conditional.dependsOn is not checked here:
// the editing UI only offers prior questions as candidates, so the
// check belongs to the caller.
func Question(q model.Question, siblings []model.Question) []Error {
	var errors []Error

	title := strings.TrimSpace(q.Title)
	if title == "" {
		errors = append(errors, Error{"title", "Question title is required"})
	}
	if title != "" && utf8.RuneCountInString(title) < 3 {
		errors = append(errors, Error{"title", "Question title must be at least 3 characters"})
	}
	if title != "" && utf8.RuneCountInString(title) > 200 {
		errors = append(errors, Error{"title", "Question title must be at most 200 characters"})
	}

	if strings.TrimSpace(q.Code) == "" {
		errors = append(errors, Error{"code", "Question code is required"})
	}
	if q.Code != "" && !reCode.MatchString(q.Code) {
		errors = append(errors, Error{"code", "Code may only contain letters, numbers, underscore (_) and hyphen (-)"})
	}
	for _, sibling := range siblings {
		if sibling.ID != q.ID && sibling.Code == q.Code {
			errors = append(errors, Error{"code", "Duplicate code. Use a unique code for each question"})
			break
		}
	}

	if q.Order < 1 {
		errors = append(errors, Error{"order", "Order must be greater than zero"})
	}

	if q.Description != "" && utf8.RuneCountInString(q.Description) > 300 {
		errors = append(errors, Error{"description", "Description must be at most 300 characters"})
	}

	if q.QuestionType.IsChoice() {
		switch {
		case len(q.Options) == 0:
			errors = append(errors, Error{"options", "Choice questions must have at least one option"})
		case len(q.Options) < 2:
			errors = append(errors, Error{"options", "Choice questions must have at least two options"})
		default:
			for i, opt := range q.Options {
				if strings.TrimSpace(opt.Answer) == "" {
					errors = append(errors, Error{
						Field:   fmt.Sprintf("options[%d].answer", i),
						Message: "Option answer cannot be empty",
					})
				}
			}
		}
	}

	if q.Conditional != nil {
		if q.Conditional.DependsOn == "" {
			errors = append(errors, Error{"conditional.dependsOn", "Select a question for the condition"})
		}
		if strings.TrimSpace(q.Conditional.Value) == "" {
			errors = append(errors, Error{"conditional.value", "Condition value is required"})
		}
	}

	return errors
}

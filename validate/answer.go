package validate

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/mbolis/form-builder/model"
)

// answerValue type-checks one submitted value against its question's
// declared type and option set. Only called for required questions
// (Response skips optional ones entirely). The first failing rule
// wins: exactly one message per bad answer, or "" when acceptable.
func answerValue(value model.Value, question model.Question) string {
	if value.IsEmpty() {
		return "This question is required"
	}

	switch question.QuestionType {
	case model.FreeText:
		if value.Kind() != model.KindText {
			return "Value must be text"
		}
		if strings.TrimSpace(value.Text()) == "" {
			return "Answer cannot be empty"
		}
		if utf8.RuneCountInString(value.Text()) > 1000 {
			return "Answer must be at most 1000 characters"
		}

	case model.Integer:
		n, ok := value.Coerce()
		if !ok || n != math.Trunc(n) {
			return "Value must be an integer"
		}

	case model.DecimalNumber:
		if _, ok := value.Coerce(); !ok {
			return "Value must be a number"
		}

	case model.YesNo:
		// a string "true"/"false" is not a yes/no answer
		if value.Kind() != model.KindBool {
			return "Value must be Yes or No"
		}

	case model.SingleChoice:
		if value.Kind() != model.KindText {
			return "Select an option"
		}
		if !hasOption(question.Options, value.Text()) {
			return "Selected option is not valid"
		}

	case model.MultipleChoice:
		if value.Kind() != model.KindList || len(value.List()) == 0 {
			return "Select at least one option"
		}
		if !value.ListStrict() {
			return "One of the selected options is not valid"
		}
		for _, selected := range value.List() {
			if !hasOption(question.Options, selected) {
				return "One of the selected options is not valid"
			}
		}
	}

	return ""
}

func hasOption(options []model.AnswerOption, answer string) bool {
	for _, opt := range options {
		if opt.Answer == answer {
			return true
		}
	}
	return false
}

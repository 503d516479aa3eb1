package validate

import (
	"fmt"

	"github.com/mbolis/form-builder/model"
)

// Response checks a full submission against its form: every required
// question must carry a type-valid answer. Optional questions are
// never checked, even when a value of the wrong shape was supplied —
// submissions do not get blocked on optional fields.
func Response(response model.FormResponse, form *model.Form) Result {
	if form == nil {
		return result([]Error{{"formId", "Form not found"}})
	}

	var errors []Error
	for _, question := range form.Questions {
		if !question.Required {
			continue
		}

		answer := response.AnswerFor(question.ID)
		if answer == nil {
			errors = append(errors, Error{
				Field:   "question_" + question.Code,
				Message: fmt.Sprintf("The question %q is required", question.Title),
			})
			continue
		}

		if msg := answerValue(answer.Value, question); msg != "" {
			errors = append(errors, Error{
				Field:   "question_" + question.Code,
				Message: msg,
			})
		}
	}

	return result(errors)
}

// Package validate holds the structural validation rules for forms,
// questions and submitted responses. Validators collect every
// violation into field-scoped results and never return Go errors:
// callers are expected to render all messages at once.
package validate

type Error struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Result struct {
	IsValid bool    `json:"isValid"`
	Errors  []Error `json:"errors"`
}

func result(errors []Error) Result {
	if errors == nil {
		errors = []Error{}
	}
	return Result{IsValid: len(errors) == 0, Errors: errors}
}

// FieldError returns the message recorded for a field, or "".
func FieldError(field string, errors []Error) string {
	for _, err := range errors {
		if err.Field == field {
			return err.Message
		}
	}
	return ""
}

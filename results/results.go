// Package results computes the per-question aggregation shown on a
// form's results view from the raw set of persisted responses.
package results

import (
	"strconv"
	"strings"

	"github.com/mbolis/form-builder/model"
)

const (
	TypeChoices = "choices"
	TypeBoolean = "boolean"
	TypeScale   = "scale"
	TypeText    = "text"
)

// Stats is one question's aggregate. Data depends on Type:
// per-option counts for choices, Yes/No counts for boolean,
// average/min/max for scale, and a plain answered count for text.
type Stats struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// ForQuestion aggregates every answer given to one question across
// the responses. Returns nil when the question is not in the form.
func ForQuestion(form *model.Form, questionID string, responses []model.FormResponse) *Stats {
	question := form.QuestionByID(questionID)
	if question == nil {
		return nil
	}

	var answers []model.Answer
	for _, r := range responses {
		if a := r.AnswerFor(questionID); a != nil {
			answers = append(answers, *a)
		}
	}

	switch question.QuestionType {
	case model.SingleChoice:
		counts := map[string]int{}
		for _, a := range answers {
			counts[a.Value.String()]++
		}
		return &Stats{Type: TypeChoices, Data: counts}

	case model.YesNo:
		yes, no := 0, 0
		for _, a := range answers {
			if a.Value.Kind() == model.KindBool {
				if a.Value.Bool() {
					yes++
				} else {
					no++
				}
			}
		}
		return &Stats{Type: TypeBoolean, Data: map[string]int{"Yes": yes, "No": no}}

	case model.Integer, model.DecimalNumber:
		var values []float64
		for _, a := range answers {
			if n, ok := a.Value.Coerce(); ok {
				values = append(values, n)
			}
		}
		if len(values) == 0 {
			return &Stats{Type: TypeScale, Data: map[string]any{"average": "0.0", "min": 0.0, "max": 0.0}}
		}
		sum, min, max := 0.0, values[0], values[0]
		for _, n := range values {
			sum += n
			if n < min {
				min = n
			}
			if n > max {
				max = n
			}
		}
		avg := strconv.FormatFloat(sum/float64(len(values)), 'f', 1, 64)
		return &Stats{Type: TypeScale, Data: map[string]any{"average": avg, "min": min, "max": max}}
	}

	return &Stats{Type: TypeText, Data: len(answers)}
}

// FormatAnswer renders one answer value for display, according to its
// question's type.
func FormatAnswer(form *model.Form, questionID string, value model.Value) string {
	question := form.QuestionByID(questionID)
	if question == nil {
		return value.String()
	}

	switch question.QuestionType {
	case model.YesNo:
		if value.Kind() == model.KindBool && value.Bool() {
			return "Yes"
		}
		return "No"
	case model.MultipleChoice:
		if value.Kind() == model.KindList {
			return strings.Join(value.List(), ", ")
		}
		return value.String()
	default:
		return value.String()
	}
}

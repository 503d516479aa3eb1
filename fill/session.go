// Package fill tracks one respondent's in-progress answers and
// decides which questions are visible at any moment, given the form's
// conditional rules.
package fill

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mbolis/form-builder/model"
)

// ShouldShow decides whether a question is visible given the current
// answer set. A question without a conditional is always visible; one
// whose controlling question has no recorded answer yet stays hidden.
// Otherwise the controlling answer is stringified and compared per
// the conditional's operator. Unknown operators hide the question.
//
// A dangling dependsOn resolves like an unanswered controller: the
// question stays hidden, no error is surfaced.
func ShouldShow(questionID string, answers []model.Answer, form *model.Form) bool {
	question := form.QuestionByID(questionID)
	if question == nil || question.Conditional == nil {
		return true
	}
	cond := question.Conditional

	controller := model.AnswerIn(answers, cond.DependsOn)
	if controller == nil {
		return false
	}
	value := controller.Value.String()

	switch cond.Operator {
	case model.OpEquals:
		return value == cond.Value
	case model.OpNotEquals:
		return value != cond.Value
	case model.OpContains:
		return strings.Contains(strings.ToLower(value), strings.ToLower(cond.Value))
	default:
		return false
	}
}

// Session accumulates answers for one fill of one form. It is the
// single owner of the in-progress answer set: the UI records into it
// and reads visibility and progress back out. Not safe for concurrent
// use; one session belongs to one respondent.
type Session struct {
	form    *model.Form
	answers []model.Answer
}

func NewSession(form *model.Form) *Session {
	return &Session{form: form}
}

// Record stores an answer, replacing any earlier answer to the same
// question. Insertion order of first answers is preserved.
func (s *Session) Record(questionID string, value model.Value) {
	if prev := model.AnswerIn(s.answers, questionID); prev != nil {
		prev.Value = value
		return
	}
	s.answers = append(s.answers, model.Answer{QuestionID: questionID, Value: value})
}

// Answers returns a copy of the accumulated answer set.
func (s *Session) Answers() []model.Answer {
	out := make([]model.Answer, len(s.answers))
	copy(out, s.answers)
	return out
}

func (s *Session) ShouldShow(questionID string) bool {
	return ShouldShow(questionID, s.answers, s.form)
}

// VisibleQuestions returns the questions currently visible, in form
// order. The set shrinks and grows as controlling answers change.
func (s *Session) VisibleQuestions() []model.Question {
	visible := make([]model.Question, 0, len(s.form.Questions))
	for _, q := range s.form.Questions {
		if s.ShouldShow(q.ID) {
			visible = append(visible, q)
		}
	}
	return visible
}

// Progress is the completion percentage: visible questions with a
// recorded non-empty answer over all currently visible questions.
// The denominator moves as controlling answers change.
func (s *Session) Progress() float64 {
	visible := s.VisibleQuestions()
	if len(visible) == 0 {
		return 0
	}

	answered := 0
	for _, q := range visible {
		if a := model.AnswerIn(s.answers, q.ID); a != nil && !a.Value.IsEmpty() {
			answered++
		}
	}
	return float64(answered) / float64(len(visible)) * 100
}

// Response packages the accumulated answers into an immutable
// submission record, stamped now.
func (s *Session) Response() model.FormResponse {
	return model.FormResponse{
		ID:          uuid.NewString(),
		FormID:      s.form.ID,
		Answers:     s.Answers(),
		SubmittedAt: time.Now(),
	}
}

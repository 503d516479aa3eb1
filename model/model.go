package model

import "time"

type QuestionType string

const (
	FreeText       QuestionType = "free_text"
	SingleChoice   QuestionType = "single_choice"
	MultipleChoice QuestionType = "multiple_choice"
	YesNo          QuestionType = "yes_no"
	Integer        QuestionType = "integer"
	DecimalNumber  QuestionType = "decimal_number"
)

// IsChoice reports whether the type requires a list of answer options.
func (t QuestionType) IsChoice() bool {
	return t == SingleChoice || t == MultipleChoice
}

type Operator string

const (
	OpEquals    Operator = "equals"
	OpNotEquals Operator = "not-equals"
	OpContains  Operator = "contains"
)

type Orientation string

const (
	Horizontal Orientation = "horizontal"
	Vertical   Orientation = "vertical"
)

type AnswerOption struct {
	ID         string `json:"id,omitempty"`
	QuestionID string `json:"questionId,omitempty"`
	Answer     string `json:"answer"`
	Order      int    `json:"order"`
	OpenAnswer bool   `json:"openAnswer"`
}

// Conditional ties a question's visibility to another question's
// current answer. DependsOn is a sibling question id, resolved by
// lookup; it never forms an ownership cycle.
type Conditional struct {
	DependsOn string   `json:"dependsOn"`
	Operator  Operator `json:"operator"`
	Value     string   `json:"value"`
}

type Question struct {
	ID                string         `json:"id,omitempty"`
	FormID            string         `json:"formId,omitempty"`
	Title             string         `json:"title"`
	Code              string         `json:"code"`
	Description       string         `json:"description,omitempty"`
	AnswerOrientation Orientation    `json:"answerOrientation,omitempty"`
	Order             int            `json:"order"`
	Required          bool           `json:"required"`
	SubQuestion       bool           `json:"subQuestion"`
	QuestionType      QuestionType   `json:"questionType"`
	Options           []AnswerOption `json:"options,omitempty"`
	Conditional       *Conditional   `json:"conditional,omitempty"`
}

type Form struct {
	ID          string     `json:"id,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Order       int        `json:"order"`
	Questions   []Question `json:"questions"`
	CreatedAt   time.Time  `json:"createdAt"`
	IsActive    bool       `json:"isActive"`
}

// QuestionByID resolves a question by identifier; nil when absent.
func (f *Form) QuestionByID(id string) *Question {
	for i := range f.Questions {
		if f.Questions[i].ID == id {
			return &f.Questions[i]
		}
	}
	return nil
}

// Answer has no identity of its own: a response holds at most one
// answer per questionId, last write wins while editing.
type Answer struct {
	QuestionID string `json:"questionId"`
	Value      Value  `json:"value"`
}

type FormResponse struct {
	ID          string    `json:"id"`
	FormID      string    `json:"formId"`
	Answers     []Answer  `json:"answers"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// AnswerFor returns the recorded answer for a question, or nil.
func (r *FormResponse) AnswerFor(questionID string) *Answer {
	return AnswerIn(r.Answers, questionID)
}

// AnswerIn resolves a question's answer in an arbitrary answer set,
// such as an in-progress fill session.
func AnswerIn(answers []Answer, questionID string) *Answer {
	for i := range answers {
		if answers[i].QuestionID == questionID {
			return &answers[i]
		}
	}
	return nil
}

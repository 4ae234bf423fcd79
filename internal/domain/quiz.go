package domain

import (
	"time"
)

// Quiz represents a quiz in the domain. A quiz with ID 0 is a draft that has
// not been persisted yet.
type Quiz struct {
	ID        int64
	Title     string
	CreatedAt time.Time
	Questions []Question
}

// NewQuiz creates a new draft Quiz
func NewQuiz(title string, questions []Question) *Quiz {
	return &Quiz{
		Title:     title,
		CreatedAt: time.Now(),
		Questions: questions,
	}
}

// Validate validates the quiz
func (q *Quiz) Validate() error {
	if q.Title == "" {
		return ValidationErrors{NewMissingFieldError("title")}
	}
	return nil
}

// Question represents a single multiple-choice question. A question with
// ID 0 is a draft. QuizID must equal the owning quiz's ID once both are
// persisted.
//
// CorrectAnswer is expected to differ from every entry of WrongAnswers;
// the authoring flow does not enforce this.
type Question struct {
	ID            int64
	QuizID        int64
	Text          string
	CorrectAnswer string
	WrongAnswers  []string
}

// NewQuestion creates a new draft Question
func NewQuestion(text, correctAnswer string, wrongAnswers []string) *Question {
	return &Question{
		Text:          text,
		CorrectAnswer: correctAnswer,
		WrongAnswers:  wrongAnswers,
	}
}

// Validate validates the question
func (q *Question) Validate() error {
	var errs ValidationErrors
	if q.Text == "" {
		errs = append(errs, NewMissingFieldError("text"))
	}
	if q.CorrectAnswer == "" {
		errs = append(errs, NewMissingFieldError("correct_answer"))
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Contact is a transient name/number pair sourced from a device contact
// list. Contacts are never persisted.
type Contact struct {
	Name        string
	PhoneNumber string
}

// QuestionFormat selects how contact questions are phrased.
type QuestionFormat string

const (
	// FormatPhoneToName shows the number, the contact's name is the answer.
	FormatPhoneToName QuestionFormat = "phone_to_name"
	// FormatNameToPhone shows the name, the contact's number is the answer.
	FormatNameToPhone QuestionFormat = "name_to_phone"
)

// Valid reports whether f is a known question format.
func (f QuestionFormat) Valid() bool {
	return f == FormatPhoneToName || f == FormatNameToPhone
}

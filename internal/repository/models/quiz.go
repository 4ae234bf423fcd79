package models

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
)

// answerDelimiter joins wrong answers into the single flattened column.
// Reads split on the bare comma and trim, so an answer that itself
// contains a comma will not round-trip. Known limitation of the storage
// convention, kept as-is.
const answerDelimiter = ", "

// AnswerList flattens an ordered list of answer strings into one
// comma-separated text column and back.
type AnswerList []string

// Value implements the driver.Valuer interface
func (l AnswerList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "", nil
	}
	return strings.Join(l, answerDelimiter), nil
}

// Scan implements the sql.Scanner interface. Each element is trimmed of
// surrounding whitespace; empty elements are dropped, so a malformed
// column degrades to "no distractors" instead of failing the question.
func (l *AnswerList) Scan(value interface{}) error {
	if value == nil {
		*l = AnswerList{}
		return nil
	}

	var raw string
	switch v := value.(type) {
	case []byte:
		raw = string(v)
	case string:
		raw = v
	default:
		return errors.New("AnswerList Scan: unsupported type " + fmt.Sprintf("%T", value))
	}

	if raw == "" {
		*l = AnswerList{}
		return nil
	}

	parts := strings.Split(raw, ",")
	answers := make(AnswerList, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			answers = append(answers, trimmed)
		}
	}
	*l = answers
	return nil
}

// Quiz is the quizzes row shape. CreatedAt is epoch milliseconds.
type Quiz struct {
	ID        int64  `db:"id"`
	Title     string `db:"title"`
	CreatedAt int64  `db:"created_at"`
}

// Question is the questions row shape. QuizID references quizzes.id with
// cascade delete.
type Question struct {
	ID            int64      `db:"id"`
	QuizID        int64      `db:"quiz_id"`
	Text          string     `db:"text"`
	CorrectAnswer string     `db:"correct_answer"`
	WrongAnswers  AnswerList `db:"wrong_answers"`
}

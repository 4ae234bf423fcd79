package domain

import "context"

// QuizRepository defines the interface (port) for the quiz store facade.
// Read methods return nil (not an error) when the requested row is absent.
type QuizRepository interface {
	// ListQuizzes returns all quizzes, most recently created first,
	// without their questions.
	ListQuizzes(ctx context.Context) ([]*Quiz, error)

	// GetQuiz returns the quiz with the given ID, without its questions.
	GetQuiz(ctx context.Context, id int64) (*Quiz, error)

	// GetQuestions returns the questions belonging to a quiz.
	GetQuestions(ctx context.Context, quizID int64) ([]Question, error)

	// QuestionCount returns how many questions belong to a quiz.
	QuestionCount(ctx context.Context, quizID int64) (int, error)

	// CreateQuiz persists a draft quiz and returns its new ID. Questions
	// attached to the draft are persisted with it.
	CreateQuiz(ctx context.Context, quiz *Quiz) (int64, error)

	// UpdateQuizTitle renames a persisted quiz.
	UpdateQuizTitle(ctx context.Context, id int64, title string) error

	// DeleteQuiz removes a quiz. Its questions are cascade-deleted.
	DeleteQuiz(ctx context.Context, id int64) error

	// AddQuestion persists a draft question under question.QuizID and
	// returns its new ID.
	AddQuestion(ctx context.Context, question *Question) (int64, error)

	// DeleteQuestion removes a single question.
	DeleteQuestion(ctx context.Context, id int64) error
}

// TransactionManager runs a function within a storage transaction carried
// through the context.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// QuestionGenerator turns a contact list into draft multiple-choice
// questions. Generated questions are not persisted until the owning draft
// quiz is saved.
type QuestionGenerator interface {
	GenerateQuestions(contacts []Contact, count int, format QuestionFormat) []Question
}

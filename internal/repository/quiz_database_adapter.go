package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"quizlab/internal/domain"
	"quizlab/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// QuizDatabaseAdapter implements domain.QuizRepository using sqlx over Oracle.
type QuizDatabaseAdapter struct {
	db *sqlx.DB
}

// NewQuizDatabaseAdapter creates a new instance of QuizDatabaseAdapter
func NewQuizDatabaseAdapter(db *sqlx.DB) domain.QuizRepository {
	return &QuizDatabaseAdapter{db: db}
}

// ListQuizzes implements domain.QuizRepository
func (a *QuizDatabaseAdapter) ListQuizzes(ctx context.Context) ([]*domain.Quiz, error) {
	exec := GetExecutor(ctx, a.db)

	var rows []models.Quiz
	query := `SELECT
		id "id",
		title "title",
		created_at "created_at"
	FROM quizzes
	ORDER BY created_at DESC`

	if err := exec.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list quizzes: %w", err)
	}

	quizzes := make([]*domain.Quiz, 0, len(rows))
	for i := range rows {
		quizzes = append(quizzes, toDomainQuiz(&rows[i]))
	}
	return quizzes, nil
}

// GetQuiz implements domain.QuizRepository
func (a *QuizDatabaseAdapter) GetQuiz(ctx context.Context, id int64) (*domain.Quiz, error) {
	exec := GetExecutor(ctx, a.db)

	var row models.Quiz
	query := `SELECT
		id "id",
		title "title",
		created_at "created_at"
	FROM quizzes
	WHERE id = :1`

	err := exec.GetContext(ctx, &row, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get quiz %d: %w", id, err)
	}
	return toDomainQuiz(&row), nil
}

// GetQuestions implements domain.QuizRepository
func (a *QuizDatabaseAdapter) GetQuestions(ctx context.Context, quizID int64) ([]domain.Question, error) {
	exec := GetExecutor(ctx, a.db)

	var rows []models.Question
	query := `SELECT
		id "id",
		quiz_id "quiz_id",
		text "text",
		correct_answer "correct_answer",
		wrong_answers "wrong_answers"
	FROM questions
	WHERE quiz_id = :1
	ORDER BY id`

	if err := exec.SelectContext(ctx, &rows, query, quizID); err != nil {
		return nil, fmt.Errorf("failed to get questions for quiz %d: %w", quizID, err)
	}

	questions := make([]domain.Question, 0, len(rows))
	for i := range rows {
		questions = append(questions, toDomainQuestion(&rows[i]))
	}
	return questions, nil
}

// QuestionCount implements domain.QuizRepository
func (a *QuizDatabaseAdapter) QuestionCount(ctx context.Context, quizID int64) (int, error) {
	exec := GetExecutor(ctx, a.db)

	var count int
	query := `SELECT COUNT(*) FROM questions WHERE quiz_id = :1`
	if err := exec.GetContext(ctx, &count, query, quizID); err != nil {
		return 0, fmt.Errorf("failed to count questions for quiz %d: %w", quizID, err)
	}
	return count, nil
}

// CreateQuiz implements domain.QuizRepository. The quiz row and its
// questions are inserted with the executor from the context, so a caller
// wrapping this in a transaction gets all-or-nothing behavior.
func (a *QuizDatabaseAdapter) CreateQuiz(ctx context.Context, quiz *domain.Quiz) (int64, error) {
	if quiz == nil {
		return 0, fmt.Errorf("cannot save nil quiz")
	}
	exec := GetExecutor(ctx, a.db)

	createdAt := quiz.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	var quizID int64
	query := `INSERT INTO quizzes (title, created_at)
	VALUES (:1, :2)
	RETURNING id INTO :3`

	_, err := exec.ExecContext(ctx, query,
		quiz.Title,
		createdAt.UnixMilli(),
		sql.Out{Dest: &quizID},
	)
	if err != nil {
		return 0, fmt.Errorf("failed to save quiz: %w", err)
	}

	for i := range quiz.Questions {
		q := quiz.Questions[i]
		q.QuizID = quizID
		if _, err := a.insertQuestion(ctx, exec, &q); err != nil {
			return 0, err
		}
	}
	return quizID, nil
}

// UpdateQuizTitle implements domain.QuizRepository
func (a *QuizDatabaseAdapter) UpdateQuizTitle(ctx context.Context, id int64, title string) error {
	exec := GetExecutor(ctx, a.db)

	query := `UPDATE quizzes SET title = :1 WHERE id = :2`
	result, err := exec.ExecContext(ctx, query, title, id)
	if err != nil {
		return fmt.Errorf("failed to update quiz %d: %w", id, err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return domain.NewQuizNotFoundError(id)
	}
	return nil
}

// DeleteQuiz implements domain.QuizRepository. Questions are removed by
// the ON DELETE CASCADE constraint.
func (a *QuizDatabaseAdapter) DeleteQuiz(ctx context.Context, id int64) error {
	exec := GetExecutor(ctx, a.db)

	query := `DELETE FROM quizzes WHERE id = :1`
	result, err := exec.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete quiz %d: %w", id, err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return domain.NewQuizNotFoundError(id)
	}
	return nil
}

// AddQuestion implements domain.QuizRepository
func (a *QuizDatabaseAdapter) AddQuestion(ctx context.Context, question *domain.Question) (int64, error) {
	if question == nil {
		return 0, fmt.Errorf("cannot save nil question")
	}
	exec := GetExecutor(ctx, a.db)
	return a.insertQuestion(ctx, exec, question)
}

// DeleteQuestion implements domain.QuizRepository
func (a *QuizDatabaseAdapter) DeleteQuestion(ctx context.Context, id int64) error {
	exec := GetExecutor(ctx, a.db)

	query := `DELETE FROM questions WHERE id = :1`
	result, err := exec.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete question %d: %w", id, err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return domain.NewQuestionNotFoundError(id)
	}
	return nil
}

func (a *QuizDatabaseAdapter) insertQuestion(ctx context.Context, exec DBTX, question *domain.Question) (int64, error) {
	row := toModelQuestion(question)

	var questionID int64
	query := `INSERT INTO questions (quiz_id, text, correct_answer, wrong_answers)
	VALUES (:1, :2, :3, :4)
	RETURNING id INTO :5`

	_, err := exec.ExecContext(ctx, query,
		row.QuizID,
		row.Text,
		row.CorrectAnswer,
		row.WrongAnswers,
		sql.Out{Dest: &questionID},
	)
	if err != nil {
		return 0, fmt.Errorf("failed to save question for quiz %d: %w", row.QuizID, err)
	}
	return questionID, nil
}

func toDomainQuiz(row *models.Quiz) *domain.Quiz {
	return &domain.Quiz{
		ID:        row.ID,
		Title:     row.Title,
		CreatedAt: time.UnixMilli(row.CreatedAt),
	}
}

func toDomainQuestion(row *models.Question) domain.Question {
	return domain.Question{
		ID:            row.ID,
		QuizID:        row.QuizID,
		Text:          row.Text,
		CorrectAnswer: row.CorrectAnswer,
		WrongAnswers:  []string(row.WrongAnswers),
	}
}

func toModelQuestion(q *domain.Question) *models.Question {
	return &models.Question{
		ID:            q.ID,
		QuizID:        q.QuizID,
		Text:          q.Text,
		CorrectAnswer: q.CorrectAnswer,
		WrongAnswers:  models.AnswerList(q.WrongAnswers),
	}
}

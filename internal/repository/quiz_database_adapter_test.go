package repository

import (
	"context"
	"testing"
	"time"

	"quizlab/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockAdapter(t *testing.T) (domain.QuizRepository, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	db := sqlx.NewDb(mockDB, "sqlmock")
	return NewQuizDatabaseAdapter(db), mock
}

func TestQuizDatabaseAdapter_ListQuizzes(t *testing.T) {
	adapter, mock := newMockAdapter(t)

	now := time.Now().UnixMilli()
	earlier := now - 60_000
	rows := sqlmock.NewRows([]string{"id", "title", "created_at"}).
		AddRow(int64(2), "Contacts", now).
		AddRow(int64(1), "Capitals", earlier)

	mock.ExpectQuery(`FROM quizzes`).WillReturnRows(rows)

	quizzes, err := adapter.ListQuizzes(context.Background())
	require.NoError(t, err)
	require.Len(t, quizzes, 2)
	assert.Equal(t, int64(2), quizzes[0].ID)
	assert.Equal(t, "Contacts", quizzes[0].Title)
	assert.Equal(t, time.UnixMilli(now), quizzes[0].CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuizDatabaseAdapter_GetQuiz(t *testing.T) {
	adapter, mock := newMockAdapter(t)

	t.Run("Found", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "title", "created_at"}).
			AddRow(int64(7), "Friends", int64(1700000000000))
		mock.ExpectQuery(`FROM quizzes`).WithArgs(int64(7)).WillReturnRows(rows)

		quiz, err := adapter.GetQuiz(context.Background(), 7)
		require.NoError(t, err)
		require.NotNil(t, quiz)
		assert.Equal(t, "Friends", quiz.Title)
	})

	t.Run("NotFoundReturnsNil", func(t *testing.T) {
		mock.ExpectQuery(`FROM quizzes`).WithArgs(int64(99)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "title", "created_at"}))

		quiz, err := adapter.GetQuiz(context.Background(), 99)
		require.NoError(t, err)
		assert.Nil(t, quiz)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuizDatabaseAdapter_GetQuestions(t *testing.T) {
	adapter, mock := newMockAdapter(t)

	rows := sqlmock.NewRows([]string{"id", "quiz_id", "text", "correct_answer", "wrong_answers"}).
		AddRow(int64(1), int64(7), "Capital of France?", "Paris", "Berlin, Madrid, Rome").
		AddRow(int64(2), int64(7), "2+2?", "4", "")

	mock.ExpectQuery(`FROM questions`).WithArgs(int64(7)).WillReturnRows(rows)

	questions, err := adapter.GetQuestions(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, questions, 2)

	assert.Equal(t, []string{"Berlin", "Madrid", "Rome"}, questions[0].WrongAnswers)
	// An empty flattened column means no distractors, not an error.
	assert.Empty(t, questions[1].WrongAnswers)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuizDatabaseAdapter_QuestionCount(t *testing.T) {
	adapter, mock := newMockAdapter(t)

	mock.ExpectQuery(`SELECT COUNT`).WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	count, err := adapter.QuestionCount(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 5, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuizDatabaseAdapter_UpdateQuizTitle(t *testing.T) {
	adapter, mock := newMockAdapter(t)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`UPDATE quizzes`).WithArgs("New Title", int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, adapter.UpdateQuizTitle(context.Background(), 7, "New Title"))
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec(`UPDATE quizzes`).WithArgs("New Title", int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := adapter.UpdateQuizTitle(context.Background(), 99, "New Title")
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeQuizNotFound, domainErr.Code)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuizDatabaseAdapter_DeleteQuiz(t *testing.T) {
	adapter, mock := newMockAdapter(t)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM quizzes`).WithArgs(int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, adapter.DeleteQuiz(context.Background(), 7))
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM quizzes`).WithArgs(int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := adapter.DeleteQuiz(context.Background(), 99)
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeQuizNotFound, domainErr.Code)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuizDatabaseAdapter_DeleteQuestion(t *testing.T) {
	adapter, mock := newMockAdapter(t)

	mock.ExpectExec(`DELETE FROM questions`).WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, adapter.DeleteQuestion(context.Background(), 3))
	assert.NoError(t, mock.ExpectationsWereMet())
}

package dto

import "time"

// QuizSummary represents a quiz in list responses, without its questions
// @Description Quiz list entry
type QuizSummary struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	CreatedAt     time.Time `json:"created_at"`
	QuestionCount int       `json:"question_count"`
}

// QuizDetail represents a quiz with its questions
type QuizDetail struct {
	ID        int64              `json:"id"`
	Title     string             `json:"title"`
	CreatedAt time.Time          `json:"created_at"`
	Questions []QuestionResponse `json:"questions"`
}

// QuestionResponse represents a stored question
type QuestionResponse struct {
	ID            int64    `json:"id"`
	QuizID        int64    `json:"quiz_id"`
	Text          string   `json:"text"`
	CorrectAnswer string   `json:"correct_answer"`
	WrongAnswers  []string `json:"wrong_answers"`
}

// QuestionInput is a draft question in authoring requests
type QuestionInput struct {
	Text          string   `json:"text"`
	CorrectAnswer string   `json:"correct_answer"`
	WrongAnswers  []string `json:"wrong_answers"`
}

// CreateQuizRequest is the body for creating a quiz
// @Description Request body for creating a quiz
type CreateQuizRequest struct {
	Title     string          `json:"title"`
	Questions []QuestionInput `json:"questions"`
}

// CreateQuizResponse carries the new quiz id
type CreateQuizResponse struct {
	ID int64 `json:"id"`
}

// RenameQuizRequest is the body for renaming a quiz
type RenameQuizRequest struct {
	Title string `json:"title"`
}

// AddQuestionResponse carries the new question id
type AddQuestionResponse struct {
	ID int64 `json:"id"`
}

// ContactInput is a transient device contact in generation requests
type ContactInput struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
}

// GenerateContactQuestionsRequest is the body for generating draft
// questions from a contact list
// @Description Request body for contact question generation
type GenerateContactQuestionsRequest struct {
	Contacts      []ContactInput `json:"contacts"`
	QuestionCount int            `json:"question_count"`
	Format        string         `json:"format"`
}

// GenerateContactQuestionsResponse returns generated draft questions;
// nothing is persisted until the draft quiz is saved
type GenerateContactQuestionsResponse struct {
	Questions []QuestionInput `json:"questions"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}

package handler

import (
	"context"

	"quizlab/internal/dto"

	"github.com/stretchr/testify/mock"
)

// MockQuizService is a mock implementation of service.QuizService
type MockQuizService struct {
	mock.Mock
}

func (m *MockQuizService) ListQuizzes(ctx context.Context) ([]dto.QuizSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.QuizSummary), args.Error(1)
}

func (m *MockQuizService) GetQuiz(ctx context.Context, id int64) (*dto.QuizDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.QuizDetail), args.Error(1)
}

func (m *MockQuizService) CreateQuiz(ctx context.Context, req *dto.CreateQuizRequest) (int64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQuizService) RenameQuiz(ctx context.Context, id int64, title string) error {
	args := m.Called(ctx, id, title)
	return args.Error(0)
}

func (m *MockQuizService) DeleteQuiz(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockQuizService) AddQuestion(ctx context.Context, quizID int64, input *dto.QuestionInput) (int64, error) {
	args := m.Called(ctx, quizID, input)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQuizService) DeleteQuestion(ctx context.Context, quizID, questionID int64) error {
	args := m.Called(ctx, quizID, questionID)
	return args.Error(0)
}

func (m *MockQuizService) GenerateContactQuestions(req *dto.GenerateContactQuestionsRequest) *dto.GenerateContactQuestionsResponse {
	args := m.Called(req)
	return args.Get(0).(*dto.GenerateContactQuestionsResponse)
}

func (m *MockQuizService) Subscribe(fn func([]dto.QuizSummary)) func() {
	m.Called()
	return func() {}
}

// MockGameService is a mock implementation of service.GameService
type MockGameService struct {
	mock.Mock
}

func (m *MockGameService) StartGame(ctx context.Context, quizID int64) (*dto.GameStateResponse, error) {
	args := m.Called(ctx, quizID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.GameStateResponse), args.Error(1)
}

func (m *MockGameService) GetState(sessionID string) (*dto.GameStateResponse, error) {
	args := m.Called(sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.GameStateResponse), args.Error(1)
}

func (m *MockGameService) SubmitAnswer(sessionID, answer string) (*dto.GameStateResponse, error) {
	args := m.Called(sessionID, answer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.GameStateResponse), args.Error(1)
}

func (m *MockGameService) NextQuestion(sessionID string) (*dto.GameStateResponse, error) {
	args := m.Called(sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.GameStateResponse), args.Error(1)
}

func (m *MockGameService) Result(sessionID string) (*dto.GameResultResponse, error) {
	args := m.Called(sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.GameResultResponse), args.Error(1)
}

func (m *MockGameService) AbandonGame(sessionID string) error {
	args := m.Called(sessionID)
	return args.Error(0)
}

func (m *MockGameService) Close() {
	m.Called()
}

package service

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"

	"quizlab/internal/cache"
	"quizlab/internal/config"
	"quizlab/internal/domain"
	"quizlab/internal/dto"
	"quizlab/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// QuizService defines the interface for quiz authoring operations
type QuizService interface {
	ListQuizzes(ctx context.Context) ([]dto.QuizSummary, error)
	GetQuiz(ctx context.Context, id int64) (*dto.QuizDetail, error)
	CreateQuiz(ctx context.Context, req *dto.CreateQuizRequest) (int64, error)
	RenameQuiz(ctx context.Context, id int64, title string) error
	DeleteQuiz(ctx context.Context, id int64) error
	AddQuestion(ctx context.Context, quizID int64, input *dto.QuestionInput) (int64, error)
	DeleteQuestion(ctx context.Context, quizID, questionID int64) error
	GenerateContactQuestions(req *dto.GenerateContactQuestionsRequest) *dto.GenerateContactQuestionsResponse

	// Subscribe registers a callback invoked with a fresh quiz-list
	// snapshot after every authoring mutation. The returned function
	// unsubscribes.
	Subscribe(fn func([]dto.QuizSummary)) func()
}

// quizService implements QuizService
type quizService struct {
	repo      domain.QuizRepository
	txManager domain.TransactionManager
	cache     domain.Cache
	generator domain.QuestionGenerator
	cfg       *config.Config

	listGroup singleflight.Group

	subMu       sync.Mutex
	subscribers map[int]func([]dto.QuizSummary)
	nextSubID   int
}

// NewQuizService creates a new instance of quizService
func NewQuizService(
	repo domain.QuizRepository,
	txManager domain.TransactionManager,
	cacheAdapter domain.Cache,
	generator domain.QuestionGenerator,
	cfg *config.Config,
) QuizService {
	return &quizService{
		repo:        repo,
		txManager:   txManager,
		cache:       cacheAdapter,
		generator:   generator,
		cfg:         cfg,
		subscribers: make(map[int]func([]dto.QuizSummary)),
	}
}

// ListQuizzes implements QuizService. Concurrent callers share one
// snapshot load.
func (s *quizService) ListQuizzes(ctx context.Context) ([]dto.QuizSummary, error) {
	v, err, _ := s.listGroup.Do("quiz_list", func() (interface{}, error) {
		return s.loadQuizList(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.([]dto.QuizSummary), nil
}

func (s *quizService) loadQuizList(ctx context.Context) ([]dto.QuizSummary, error) {
	quizzes, err := s.repo.ListQuizzes(ctx)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list quizzes", err)
	}

	summaries := make([]dto.QuizSummary, 0, len(quizzes))
	for _, quiz := range quizzes {
		count, err := s.questionCount(ctx, quiz.ID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, dto.QuizSummary{
			ID:            quiz.ID,
			Title:         quiz.Title,
			CreatedAt:     quiz.CreatedAt,
			QuestionCount: count,
		})
	}
	return summaries, nil
}

// GetQuiz implements QuizService
func (s *quizService) GetQuiz(ctx context.Context, id int64) (*dto.QuizDetail, error) {
	quiz, err := s.repo.GetQuiz(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get quiz", err)
	}
	if quiz == nil {
		return nil, domain.NewQuizNotFoundError(id)
	}

	questions, err := s.getQuestions(ctx, id)
	if err != nil {
		return nil, err
	}

	return &dto.QuizDetail{
		ID:        quiz.ID,
		Title:     quiz.Title,
		CreatedAt: quiz.CreatedAt,
		Questions: questions,
	}, nil
}

// CreateQuiz implements QuizService. The quiz and its questions are
// persisted in one transaction.
func (s *quizService) CreateQuiz(ctx context.Context, req *dto.CreateQuizRequest) (int64, error) {
	questions := make([]domain.Question, 0, len(req.Questions))
	for _, q := range req.Questions {
		questions = append(questions, domain.Question{
			Text:          q.Text,
			CorrectAnswer: q.CorrectAnswer,
			WrongAnswers:  q.WrongAnswers,
		})
	}

	quiz := domain.NewQuiz(req.Title, questions)
	if err := quiz.Validate(); err != nil {
		return 0, err
	}
	for i := range quiz.Questions {
		if err := quiz.Questions[i].Validate(); err != nil {
			return 0, err
		}
	}

	var quizID int64
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		id, err := s.repo.CreateQuiz(txCtx, quiz)
		if err != nil {
			return err
		}
		quizID = id
		return nil
	})
	if err != nil {
		return 0, domain.NewInternalError("Failed to create quiz", err)
	}

	s.invalidateQuizCaches(ctx, quizID)
	s.notifyListChanged()
	return quizID, nil
}

// RenameQuiz implements QuizService
func (s *quizService) RenameQuiz(ctx context.Context, id int64, title string) error {
	if err := s.repo.UpdateQuizTitle(ctx, id, title); err != nil {
		return err
	}
	s.notifyListChanged()
	return nil
}

// DeleteQuiz implements QuizService. Questions are cascade-deleted by
// storage; the transaction keeps the delete and any future bookkeeping
// atomic.
func (s *quizService) DeleteQuiz(ctx context.Context, id int64) error {
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.repo.DeleteQuiz(txCtx, id)
	})
	if err != nil {
		return err
	}

	s.invalidateQuizCaches(ctx, id)
	s.notifyListChanged()
	return nil
}

// AddQuestion implements QuizService
func (s *quizService) AddQuestion(ctx context.Context, quizID int64, input *dto.QuestionInput) (int64, error) {
	quiz, err := s.repo.GetQuiz(ctx, quizID)
	if err != nil {
		return 0, domain.NewInternalError("Failed to get quiz", err)
	}
	if quiz == nil {
		return 0, domain.NewQuizNotFoundError(quizID)
	}

	question := domain.NewQuestion(input.Text, input.CorrectAnswer, input.WrongAnswers)
	question.QuizID = quizID
	if err := question.Validate(); err != nil {
		return 0, err
	}

	id, err := s.repo.AddQuestion(ctx, question)
	if err != nil {
		return 0, domain.NewInternalError("Failed to add question", err)
	}

	s.invalidateQuizCaches(ctx, quizID)
	s.notifyListChanged()
	return id, nil
}

// DeleteQuestion implements QuizService
func (s *quizService) DeleteQuestion(ctx context.Context, quizID, questionID int64) error {
	if err := s.repo.DeleteQuestion(ctx, questionID); err != nil {
		return err
	}

	s.invalidateQuizCaches(ctx, quizID)
	s.notifyListChanged()
	return nil
}

// GenerateContactQuestions implements QuizService. The result is a draft:
// nothing is persisted until the caller saves the quiz.
func (s *quizService) GenerateContactQuestions(req *dto.GenerateContactQuestionsRequest) *dto.GenerateContactQuestionsResponse {
	contacts := make([]domain.Contact, 0, len(req.Contacts))
	for _, c := range req.Contacts {
		contacts = append(contacts, domain.Contact{Name: c.Name, PhoneNumber: c.PhoneNumber})
	}

	generated := s.generator.GenerateQuestions(contacts, req.QuestionCount, domain.QuestionFormat(req.Format))

	questions := make([]dto.QuestionInput, 0, len(generated))
	for _, q := range generated {
		questions = append(questions, dto.QuestionInput{
			Text:          q.Text,
			CorrectAnswer: q.CorrectAnswer,
			WrongAnswers:  q.WrongAnswers,
		})
	}
	return &dto.GenerateContactQuestionsResponse{Questions: questions}
}

// Subscribe implements QuizService
func (s *quizService) Subscribe(fn func([]dto.QuizSummary)) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn

	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subscribers, id)
	}
}

// notifyListChanged pushes a fresh snapshot to all subscribers. The reload
// happens off the mutating request's critical path.
func (s *quizService) notifyListChanged() {
	s.subMu.Lock()
	if len(s.subscribers) == 0 {
		s.subMu.Unlock()
		return
	}
	subscribers := make([]func([]dto.QuizSummary), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subscribers = append(subscribers, fn)
	}
	s.subMu.Unlock()

	go func() {
		snapshot, err := s.ListQuizzes(context.Background())
		if err != nil {
			logger.Get().Warn("Failed to load quiz list snapshot for subscribers", zap.Error(err))
			return
		}
		for _, fn := range subscribers {
			fn(snapshot)
		}
	}()
}

func (s *quizService) getQuestions(ctx context.Context, quizID int64) ([]dto.QuestionResponse, error) {
	key := cache.GenerateCacheKey("quiz", "questions", strconv.FormatInt(quizID, 10))

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, key); err == nil {
			var questions []dto.QuestionResponse
			if err := json.Unmarshal([]byte(cached), &questions); err == nil {
				return questions, nil
			}
			logger.Get().Warn("Discarding undecodable cached questions", zap.String("key", key))
		} else if err != domain.ErrCacheMiss {
			logger.Get().Warn("Question cache read failed", zap.Error(err), zap.String("key", key))
		}
	}

	stored, err := s.repo.GetQuestions(ctx, quizID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get questions", err)
	}

	questions := make([]dto.QuestionResponse, 0, len(stored))
	for _, q := range stored {
		questions = append(questions, dto.QuestionResponse{
			ID:            q.ID,
			QuizID:        q.QuizID,
			Text:          q.Text,
			CorrectAnswer: q.CorrectAnswer,
			WrongAnswers:  q.WrongAnswers,
		})
	}

	if s.cache != nil {
		if data, err := json.Marshal(questions); err == nil {
			if err := s.cache.Set(ctx, key, string(data), s.cfg.Cache.QuestionsTTL); err != nil {
				logger.Get().Warn("Question cache write failed", zap.Error(err), zap.String("key", key))
			}
		}
	}
	return questions, nil
}

func (s *quizService) questionCount(ctx context.Context, quizID int64) (int, error) {
	key := cache.GenerateCacheKey("quiz", "count", strconv.FormatInt(quizID, 10))

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, key); err == nil {
			if count, err := strconv.Atoi(cached); err == nil {
				return count, nil
			}
		} else if err != domain.ErrCacheMiss {
			logger.Get().Warn("Count cache read failed", zap.Error(err), zap.String("key", key))
		}
	}

	count, err := s.repo.QuestionCount(ctx, quizID)
	if err != nil {
		return 0, domain.NewInternalError("Failed to count questions", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, strconv.Itoa(count), s.cfg.Cache.QuestionsTTL); err != nil {
			logger.Get().Warn("Count cache write failed", zap.Error(err), zap.String("key", key))
		}
	}
	return count, nil
}

// invalidateQuizCaches drops the cached questions and count for a quiz.
// Cache failures are logged and otherwise ignored; the cache is
// best-effort.
func (s *quizService) invalidateQuizCaches(ctx context.Context, quizID int64) {
	if s.cache == nil {
		return
	}
	id := strconv.FormatInt(quizID, 10)
	for _, key := range []string{
		cache.GenerateCacheKey("quiz", "questions", id),
		cache.GenerateCacheKey("quiz", "count", id),
	} {
		if err := s.cache.Delete(ctx, key); err != nil {
			logger.Get().Warn("Cache invalidation failed", zap.Error(err), zap.String("key", key))
		}
	}
}

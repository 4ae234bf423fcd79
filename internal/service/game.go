package service

import (
	"context"
	"sync"
	"time"

	"quizlab/internal/config"
	"quizlab/internal/domain"
	"quizlab/internal/dto"
	"quizlab/internal/logger"
	"quizlab/internal/util"

	"go.uber.org/zap"
)

// Play session statuses as reported to clients. A loaded quiz with zero
// questions reports StatusEmpty so callers can tell it apart from a
// session that never loaded.
const (
	StatusLoading    = "loading"
	StatusEmpty      = "empty"
	StatusInProgress = "in_progress"
	StatusFinished   = "finished"
)

// GameService drives play sessions over the session engine
type GameService interface {
	StartGame(ctx context.Context, quizID int64) (*dto.GameStateResponse, error)
	GetState(sessionID string) (*dto.GameStateResponse, error)
	SubmitAnswer(sessionID, answer string) (*dto.GameStateResponse, error)
	NextQuestion(sessionID string) (*dto.GameStateResponse, error)
	Result(sessionID string) (*dto.GameResultResponse, error)
	AbandonGame(sessionID string) error

	// Close stops the idle-session janitor.
	Close()
}

// playSession wraps one engine with the bookkeeping the HTTP surface
// needs. The engine itself carries no locking; mu serializes access on its
// behalf. options caches the shuffled answer order per question so the
// on-screen order stays stable across polls of the same question.
type playSession struct {
	mu           sync.Mutex
	engine       *domain.GameSession
	quizID       int64
	options      []string
	optionsIndex int
	lastActive   time.Time
}

type gameService struct {
	repo domain.QuizRepository
	cfg  *config.Config

	mu       sync.Mutex
	sessions map[string]*playSession

	stop chan struct{}
	once sync.Once
}

// NewGameService creates a new game service and starts its idle-session
// janitor.
func NewGameService(repo domain.QuizRepository, cfg *config.Config) GameService {
	s := &gameService{
		repo:     repo,
		cfg:      cfg,
		sessions: make(map[string]*playSession),
		stop:     make(chan struct{}),
	}
	go s.sweepIdleSessions()
	return s
}

// StartGame implements GameService. Questions are fetched once; the
// session evolves independently of storage afterwards.
func (s *gameService) StartGame(ctx context.Context, quizID int64) (*dto.GameStateResponse, error) {
	quiz, err := s.repo.GetQuiz(ctx, quizID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get quiz", err)
	}
	if quiz == nil {
		return nil, domain.NewQuizNotFoundError(quizID)
	}

	questions, err := s.repo.GetQuestions(ctx, quizID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get questions", err)
	}

	engine := domain.NewGameSession()
	engine.Start(questions)

	session := &playSession{
		engine:       engine,
		quizID:       quizID,
		optionsIndex: -1,
		lastActive:   time.Now(),
	}

	sessionID := util.NewULID()
	s.mu.Lock()
	s.sessions[sessionID] = session
	s.mu.Unlock()

	logger.Get().Info("Play session started",
		zap.String("session_id", sessionID),
		zap.Int64("quiz_id", quizID),
		zap.Int("questions", engine.TotalQuestions()),
	)

	session.mu.Lock()
	defer session.mu.Unlock()
	return s.buildState(sessionID, session), nil
}

// GetState implements GameService
func (s *gameService) GetState(sessionID string) (*dto.GameStateResponse, error) {
	session, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	session.lastActive = time.Now()
	return s.buildState(sessionID, session), nil
}

// SubmitAnswer implements GameService. The engine locks the first
// selection per question; repeats are reported back unchanged.
func (s *gameService) SubmitAnswer(sessionID, answer string) (*dto.GameStateResponse, error) {
	session, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	session.lastActive = time.Now()
	session.engine.SelectAnswer(answer)
	return s.buildState(sessionID, session), nil
}

// NextQuestion implements GameService
func (s *gameService) NextQuestion(sessionID string) (*dto.GameStateResponse, error) {
	session, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	session.lastActive = time.Now()
	session.engine.NextQuestion()
	return s.buildState(sessionID, session), nil
}

// Result implements GameService. Percent is only defined when the session
// has at least one question.
func (s *gameService) Result(sessionID string) (*dto.GameResultResponse, error) {
	session, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	session.lastActive = time.Now()

	result := &dto.GameResultResponse{
		SessionID:      sessionID,
		Score:          session.engine.Score(),
		TotalQuestions: session.engine.TotalQuestions(),
		Finished:       session.engine.IsFinished(),
	}
	if total := session.engine.TotalQuestions(); total > 0 {
		percent := session.engine.Score() * 100 / total
		result.Percent = &percent
	}
	return result, nil
}

// AbandonGame implements GameService. In-memory state is simply discarded;
// nothing was persisted.
func (s *gameService) AbandonGame(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[sessionID]; !ok {
		return domain.NewGameNotFoundError(sessionID)
	}
	delete(s.sessions, sessionID)
	return nil
}

// Close implements GameService
func (s *gameService) Close() {
	s.once.Do(func() { close(s.stop) })
}

func (s *gameService) lookup(sessionID string) (*playSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, domain.NewGameNotFoundError(sessionID)
	}
	return session, nil
}

// buildState renders the session for clients. Callers must hold
// session.mu.
func (s *gameService) buildState(sessionID string, session *playSession) *dto.GameStateResponse {
	engine := session.engine

	state := &dto.GameStateResponse{
		SessionID:      sessionID,
		QuizID:         session.quizID,
		TotalQuestions: engine.TotalQuestions(),
		Score:          engine.Score(),
	}

	switch {
	case engine.HasLoaded() && engine.TotalQuestions() == 0:
		state.Status = StatusEmpty
	case engine.State() == domain.GameStateFinished:
		state.Status = StatusFinished
	case engine.State() == domain.GameStateInProgress:
		state.Status = StatusInProgress
	default:
		state.Status = StatusLoading
	}

	if q, ok := engine.CurrentQuestion(); ok {
		if session.optionsIndex != engine.CurrentIndex() {
			session.options = engine.AnswerOptions()
			session.optionsIndex = engine.CurrentIndex()
		}
		state.Question = &dto.GameQuestion{
			Index:   engine.CurrentIndex(),
			Text:    q.Text,
			Options: session.options,
		}
	}

	if selected, ok := engine.SelectedAnswer(); ok {
		state.SelectedAnswer = selected
		if correct, answered := engine.AnswerCorrect(); answered {
			state.AnswerCorrect = &correct
		}
	}

	return state
}

// sweepIdleSessions evicts sessions idle longer than the configured TTL.
func (s *gameService) sweepIdleSessions() {
	interval := s.cfg.Game.SweepInterval
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			ttl := s.cfg.Game.SessionTTL
			if ttl <= 0 {
				continue
			}
			cutoff := time.Now().Add(-ttl)

			s.mu.Lock()
			for id, session := range s.sessions {
				session.mu.Lock()
				idle := session.lastActive.Before(cutoff)
				session.mu.Unlock()
				if idle {
					delete(s.sessions, id)
					logger.Get().Info("Evicted idle play session", zap.String("session_id", id))
				}
			}
			s.mu.Unlock()
		}
	}
}

package domain

import (
	"math/rand"
)

// GameState identifies the phase of a play session.
type GameState string

const (
	// GameStateLoading means no questions have been loaded yet, or the
	// loaded quiz had no questions. Callers that need to tell the two
	// apart should check HasLoaded.
	GameStateLoading GameState = "loading"
	// GameStateInProgress means the session has a current question.
	GameStateInProgress GameState = "in_progress"
	// GameStateFinished is terminal; the score is final.
	GameStateFinished GameState = "finished"
)

// GameSession is the in-memory state machine driving one play-through of a
// quiz. It is owned by a single caller and carries no locking; every
// operation runs to completion before the next is observed. The session
// holds no reference back to storage: it consumes a question list once at
// Start and evolves independently afterwards.
//
// All operations are total. Calling them out of order (answering a
// finished session, advancing before Start) is a no-op, never a panic.
type GameSession struct {
	questions   []Question
	index       int
	score       int
	selected    string
	hasSelected bool
	finished    bool
	loaded      bool
}

// NewGameSession returns an empty session in the loading state.
func NewGameSession() *GameSession {
	return &GameSession{}
}

// Start begins a new play-through over a shuffled copy of questions. The
// shuffle happens once; the order is fixed for the session. Calling Start
// again restarts fully, discarding the previous score. An empty question
// list yields a loaded session with no game to play.
func (g *GameSession) Start(questions []Question) {
	shuffled := make([]Question, len(questions))
	copy(shuffled, questions)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	g.questions = shuffled
	g.index = 0
	g.score = 0
	g.selected = ""
	g.hasSelected = false
	g.finished = false
	g.loaded = true
}

// Reset returns the session to its initial empty state.
func (g *GameSession) Reset() {
	*g = GameSession{}
}

// State returns the current phase of the session.
func (g *GameSession) State() GameState {
	switch {
	case !g.loaded || len(g.questions) == 0:
		return GameStateLoading
	case g.finished:
		return GameStateFinished
	default:
		return GameStateInProgress
	}
}

// HasLoaded reports whether Start has been called since the last Reset.
// It distinguishes "no quiz loaded yet" from "quiz has zero questions",
// which are otherwise indistinguishable.
func (g *GameSession) HasLoaded() bool {
	return g.loaded
}

// CurrentQuestion returns the question at the cursor, or false when the
// cursor is out of range.
func (g *GameSession) CurrentQuestion() (Question, bool) {
	if g.index < 0 || g.index >= len(g.questions) {
		return Question{}, false
	}
	return g.questions[g.index], true
}

// CurrentIndex returns the 0-based cursor position.
func (g *GameSession) CurrentIndex() int {
	return g.index
}

// TotalQuestions returns the number of questions in this session.
func (g *GameSession) TotalQuestions() int {
	return len(g.questions)
}

// Score returns the count of correctly answered questions so far.
func (g *GameSession) Score() int {
	return g.score
}

// IsFinished reports whether the session has reached its terminal state.
func (g *GameSession) IsFinished() bool {
	return g.finished
}

// SelectedAnswer returns the answer chosen for the current question, or
// false when it is still unanswered.
func (g *GameSession) SelectedAnswer() (string, bool) {
	if !g.hasSelected {
		return "", false
	}
	return g.selected, true
}

// AnswerOptions returns the current question's wrong answers plus its
// correct answer in a fresh random order. The order changes on every call;
// callers wanting a stable on-screen order must cache per question.
func (g *GameSession) AnswerOptions() []string {
	q, ok := g.CurrentQuestion()
	if !ok {
		return nil
	}
	options := make([]string, 0, len(q.WrongAnswers)+1)
	options = append(options, q.WrongAnswers...)
	options = append(options, q.CorrectAnswer)
	rand.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}

// SelectAnswer records the answer for the current question and returns
// whether it was correct. The first selection locks: repeated calls do not
// change the selection or the score. This is the only mutation point for
// the score. Selecting on a finished or unstarted session reports false.
func (g *GameSession) SelectAnswer(answer string) bool {
	if g.finished || g.hasSelected {
		return false
	}
	q, ok := g.CurrentQuestion()
	if !ok {
		return false
	}

	g.selected = answer
	g.hasSelected = true
	correct := answer == q.CorrectAnswer
	if correct {
		g.score++
	}
	return correct
}

// AnswerCorrect reports whether the recorded selection was correct. The
// second value is false while the current question is unanswered.
func (g *GameSession) AnswerCorrect() (bool, bool) {
	q, ok := g.CurrentQuestion()
	if !ok || !g.hasSelected {
		return false, false
	}
	return g.selected == q.CorrectAnswer, true
}

// NextQuestion advances the cursor and clears the selection. Advancing
// past the last question finishes the session; advancing a finished or
// unstarted session is a no-op.
func (g *GameSession) NextQuestion() {
	if !g.loaded || g.finished || len(g.questions) == 0 {
		return
	}

	g.selected = ""
	g.hasSelected = false
	g.index++
	if g.index >= len(g.questions) {
		g.index = len(g.questions)
		g.finished = true
	}
}

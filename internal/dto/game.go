package dto

// StartGameRequest is the body for starting a play session
type StartGameRequest struct {
	QuizID int64 `json:"quiz_id"`
}

// GameQuestion is the current question as shown to the player. Options
// hold the shuffled answer choices; the correct one is not marked.
type GameQuestion struct {
	Index   int      `json:"index"`
	Text    string   `json:"text"`
	Options []string `json:"options"`
}

// GameStateResponse describes a play session's current state
// @Description Play session state
type GameStateResponse struct {
	SessionID      string        `json:"session_id"`
	QuizID         int64         `json:"quiz_id"`
	Status         string        `json:"status"`
	TotalQuestions int           `json:"total_questions"`
	Score          int           `json:"score"`
	Question       *GameQuestion `json:"question,omitempty"`
	SelectedAnswer string        `json:"selected_answer,omitempty"`
	AnswerCorrect  *bool         `json:"answer_correct,omitempty"`
}

// SubmitAnswerRequest is the body for answering the current question
type SubmitAnswerRequest struct {
	Answer string `json:"answer"`
}

// GameResultResponse is the final score of a session. Percent is only
// present when the session had at least one question.
type GameResultResponse struct {
	SessionID      string `json:"session_id"`
	Score          int    `json:"score"`
	TotalQuestions int    `json:"total_questions"`
	Percent        *int   `json:"percent,omitempty"`
	Finished       bool   `json:"finished"`
}

package validation

import (
	"strings"

	"quizlab/internal/domain"
	"quizlab/internal/dto"
)

const (
	maxTitleLength       = 255
	maxQuestionLength    = 2000
	maxContactQuestions  = 50
	maxQuestionsPerBatch = 200
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateCreateQuizRequest validates the create quiz request.
//
// Note: whether a question's correct answer also appears among its wrong
// answers is deliberately not checked here, mirroring the authoring flow
// this was built from.
func (v *Validator) ValidateCreateQuizRequest(req *dto.CreateQuizRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.Title) == "" {
		errors = append(errors, domain.NewMissingFieldError("title"))
	} else if len(req.Title) > maxTitleLength {
		errors = append(errors, domain.NewOutOfRangeError("title", len(req.Title), 1, maxTitleLength))
	}

	if len(req.Questions) > maxQuestionsPerBatch {
		errors = append(errors, domain.NewOutOfRangeError("questions", len(req.Questions), 0, maxQuestionsPerBatch))
	}

	for _, q := range req.Questions {
		errors = append(errors, v.validateQuestionInput(&q)...)
	}

	return errors
}

// ValidateRenameQuizRequest validates the rename quiz request
func (v *Validator) ValidateRenameQuizRequest(req *dto.RenameQuizRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.Title) == "" {
		errors = append(errors, domain.NewMissingFieldError("title"))
	} else if len(req.Title) > maxTitleLength {
		errors = append(errors, domain.NewOutOfRangeError("title", len(req.Title), 1, maxTitleLength))
	}

	return errors
}

// ValidateQuestionInput validates a single draft question
func (v *Validator) ValidateQuestionInput(q *dto.QuestionInput) domain.ValidationErrors {
	return v.validateQuestionInput(q)
}

func (v *Validator) validateQuestionInput(q *dto.QuestionInput) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(q.Text) == "" {
		errors = append(errors, domain.NewMissingFieldError("text"))
	} else if len(q.Text) > maxQuestionLength {
		errors = append(errors, domain.NewOutOfRangeError("text", len(q.Text), 1, maxQuestionLength))
	}

	if strings.TrimSpace(q.CorrectAnswer) == "" {
		errors = append(errors, domain.NewMissingFieldError("correct_answer"))
	}

	for _, w := range q.WrongAnswers {
		if strings.TrimSpace(w) == "" {
			errors = append(errors, domain.NewInvalidFormatError("wrong_answers", "empty answer"))
			break
		}
	}

	return errors
}

// ValidateGenerateContactQuestionsRequest validates the contact generation
// request. An empty contact list is allowed and produces empty output.
func (v *Validator) ValidateGenerateContactQuestionsRequest(req *dto.GenerateContactQuestionsRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if req.QuestionCount < 1 || req.QuestionCount > maxContactQuestions {
		errors = append(errors, domain.NewOutOfRangeError("question_count", req.QuestionCount, 1, maxContactQuestions))
	}

	if !domain.QuestionFormat(req.Format).Valid() {
		errors = append(errors, domain.NewInvalidFormatError("format", req.Format))
	}

	return errors
}

// ValidateSubmitAnswerRequest validates the answer submission
func (v *Validator) ValidateSubmitAnswerRequest(req *dto.SubmitAnswerRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if req.Answer == "" {
		errors = append(errors, domain.NewMissingFieldError("answer"))
	}

	return errors
}

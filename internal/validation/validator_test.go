package validation

import (
	"strings"
	"testing"

	"quizlab/internal/dto"

	"github.com/stretchr/testify/assert"
)

func TestValidateCreateQuizRequest(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name       string
		req        dto.CreateQuizRequest
		wantFields []string
	}{
		{
			name: "valid with questions",
			req: dto.CreateQuizRequest{
				Title: "Friends",
				Questions: []dto.QuestionInput{
					{Text: "2+2?", CorrectAnswer: "4", WrongAnswers: []string{"3"}},
				},
			},
		},
		{
			name: "valid without questions",
			req:  dto.CreateQuizRequest{Title: "Empty draft"},
		},
		{
			name:       "missing title",
			req:        dto.CreateQuizRequest{Title: "   "},
			wantFields: []string{"title"},
		},
		{
			name:       "title too long",
			req:        dto.CreateQuizRequest{Title: strings.Repeat("a", 256)},
			wantFields: []string{"title"},
		},
		{
			name: "question missing text and answer",
			req: dto.CreateQuizRequest{
				Title:     "Friends",
				Questions: []dto.QuestionInput{{WrongAnswers: []string{"Bob"}}},
			},
			wantFields: []string{"text", "correct_answer"},
		},
		{
			name: "blank wrong answer",
			req: dto.CreateQuizRequest{
				Title: "Friends",
				Questions: []dto.QuestionInput{
					{Text: "2+2?", CorrectAnswer: "4", WrongAnswers: []string{" "}},
				},
			},
			wantFields: []string{"wrong_answers"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := v.ValidateCreateQuizRequest(&tt.req)
			if len(tt.wantFields) == 0 {
				assert.Empty(t, errs)
				return
			}
			fields := make([]string, 0, len(errs))
			for _, e := range errs {
				fields = append(fields, e.Field)
			}
			for _, want := range tt.wantFields {
				assert.Contains(t, fields, want)
			}
		})
	}
}

func TestValidateGenerateContactQuestionsRequest(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		req     dto.GenerateContactQuestionsRequest
		wantErr bool
	}{
		{
			name: "valid",
			req: dto.GenerateContactQuestionsRequest{
				Contacts:      []dto.ContactInput{{Name: "Alice", PhoneNumber: "+7 900"}},
				QuestionCount: 10,
				Format:        "phone_to_name",
			},
		},
		{
			name: "empty contacts allowed",
			req: dto.GenerateContactQuestionsRequest{
				QuestionCount: 10,
				Format:        "name_to_phone",
			},
		},
		{
			name:    "zero count",
			req:     dto.GenerateContactQuestionsRequest{QuestionCount: 0, Format: "phone_to_name"},
			wantErr: true,
		},
		{
			name:    "count above limit",
			req:     dto.GenerateContactQuestionsRequest{QuestionCount: 51, Format: "phone_to_name"},
			wantErr: true,
		},
		{
			name:    "unknown format",
			req:     dto.GenerateContactQuestionsRequest{QuestionCount: 10, Format: "riddle"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := v.ValidateGenerateContactQuestionsRequest(&tt.req)
			if tt.wantErr {
				assert.NotEmpty(t, errs)
			} else {
				assert.Empty(t, errs)
			}
		})
	}
}

func TestValidateSubmitAnswerRequest(t *testing.T) {
	v := NewValidator()

	assert.Empty(t, v.ValidateSubmitAnswerRequest(&dto.SubmitAnswerRequest{Answer: "4"}))
	assert.NotEmpty(t, v.ValidateSubmitAnswerRequest(&dto.SubmitAnswerRequest{}))
}

func TestValidateRenameQuizRequest(t *testing.T) {
	v := NewValidator()

	assert.Empty(t, v.ValidateRenameQuizRequest(&dto.RenameQuizRequest{Title: "Family"}))
	assert.NotEmpty(t, v.ValidateRenameQuizRequest(&dto.RenameQuizRequest{Title: ""}))
}

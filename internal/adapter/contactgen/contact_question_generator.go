package contactgen

import (
	"fmt"
	"math/rand"

	"quizlab/internal/domain"

	"go.uber.org/zap"
)

const distractorCount = 3

// ContactQuestionGenerator implements domain.QuestionGenerator by building
// multiple-choice questions out of a device contact list.
type ContactQuestionGenerator struct {
	logger *zap.Logger
}

// NewContactQuestionGenerator creates a new instance of ContactQuestionGenerator.
func NewContactQuestionGenerator(logger *zap.Logger) domain.QuestionGenerator {
	return &ContactQuestionGenerator{logger: logger}
}

// GenerateQuestions turns contacts into at most count draft questions.
//
// Contacts are deduplicated by name, first occurrence wins: a name is
// assumed to map to one canonical number. Question subjects are a uniform
// random sample of the deduplicated pool; each question gets up to three
// distractors drawn from the other contacts, projected through the same
// format as the correct answer. A pool smaller than four contacts yields
// fewer distractors, which is degraded output rather than an error.
func (g *ContactQuestionGenerator) GenerateQuestions(contacts []domain.Contact, count int, format domain.QuestionFormat) []domain.Question {
	if count <= 0 || len(contacts) == 0 {
		return nil
	}

	unique := dedupeByName(contacts)

	subjects := make([]domain.Contact, len(unique))
	copy(subjects, unique)
	rand.Shuffle(len(subjects), func(i, j int) {
		subjects[i], subjects[j] = subjects[j], subjects[i]
	})
	if count < len(subjects) {
		subjects = subjects[:count]
	}

	questions := make([]domain.Question, 0, len(subjects))
	for _, subject := range subjects {
		others := make([]domain.Contact, 0, len(unique)-1)
		for _, c := range unique {
			if c.Name != subject.Name {
				others = append(others, c)
			}
		}
		rand.Shuffle(len(others), func(i, j int) {
			others[i], others[j] = others[j], others[i]
		})
		if len(others) > distractorCount {
			others = others[:distractorCount]
		}

		wrongAnswers := make([]string, 0, len(others))
		for _, c := range others {
			wrongAnswers = append(wrongAnswers, answerFor(c, format))
		}

		questions = append(questions, domain.Question{
			Text:          promptFor(subject, format),
			CorrectAnswer: answerFor(subject, format),
			WrongAnswers:  wrongAnswers,
		})
	}

	if g.logger != nil {
		g.logger.Debug("Generated contact questions",
			zap.Int("requested", count),
			zap.Int("distinct_contacts", len(unique)),
			zap.Int("generated", len(questions)),
			zap.String("format", string(format)),
		)
	}

	return questions
}

// dedupeByName keeps the first contact seen for each name.
func dedupeByName(contacts []domain.Contact) []domain.Contact {
	seen := make(map[string]bool, len(contacts))
	unique := make([]domain.Contact, 0, len(contacts))
	for _, c := range contacts {
		if seen[c.Name] {
			continue
		}
		seen[c.Name] = true
		unique = append(unique, c)
	}
	return unique
}

func promptFor(c domain.Contact, format domain.QuestionFormat) string {
	if format == domain.FormatNameToPhone {
		return fmt.Sprintf("What is %s's phone number?", c.Name)
	}
	return fmt.Sprintf("Whose number is %s?", c.PhoneNumber)
}

func answerFor(c domain.Contact, format domain.QuestionFormat) string {
	if format == domain.FormatNameToPhone {
		return c.PhoneNumber
	}
	return c.Name
}

package handler

import (
	"strconv"

	"quizlab/internal/domain"
	"quizlab/internal/dto"
	"quizlab/internal/logger"
	"quizlab/internal/service"
	"quizlab/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// QuizHandler handles quiz authoring HTTP requests
type QuizHandler struct {
	service   service.QuizService
	validator *validation.Validator
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService, validator *validation.Validator) *QuizHandler {
	return &QuizHandler{
		service:   service,
		validator: validator,
	}
}

// ListQuizzes godoc
// @Summary List quizzes
// @Description Returns all quizzes with their question counts, newest first
// @Tags quizzes
// @Produce json
// @Success 200 {array} dto.QuizSummary
// @Failure 500 {object} middleware.ErrorResponse
// @Router /quizzes [get]
func (h *QuizHandler) ListQuizzes(c *fiber.Ctx) error {
	summaries, err := h.service.ListQuizzes(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(summaries)
}

// GetQuiz godoc
// @Summary Get a quiz
// @Description Returns a quiz with all of its questions
// @Tags quizzes
// @Produce json
// @Param id path int true "Quiz ID"
// @Success 200 {object} dto.QuizDetail
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /quizzes/{id} [get]
func (h *QuizHandler) GetQuiz(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	detail, err := h.service.GetQuiz(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(detail)
}

// CreateQuiz godoc
// @Summary Create a quiz
// @Description Creates a quiz, optionally with an initial set of questions
// @Tags quizzes
// @Accept json
// @Produce json
// @Param quiz body dto.CreateQuizRequest true "Quiz"
// @Success 201 {object} dto.CreateQuizResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /quizzes [post]
func (h *QuizHandler) CreateQuiz(c *fiber.Ctx) error {
	var req dto.CreateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	if errs := h.validator.ValidateCreateQuizRequest(&req); len(errs) > 0 {
		return errs
	}

	id, err := h.service.CreateQuiz(c.Context(), &req)
	if err != nil {
		return err
	}

	logger.Get().Info("Quiz created", zap.Int64("quiz_id", id), zap.Int("questions", len(req.Questions)))
	return c.Status(fiber.StatusCreated).JSON(dto.CreateQuizResponse{ID: id})
}

// RenameQuiz godoc
// @Summary Rename a quiz
// @Tags quizzes
// @Accept json
// @Param id path int true "Quiz ID"
// @Param title body dto.RenameQuizRequest true "New title"
// @Success 204
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quizzes/{id} [put]
func (h *QuizHandler) RenameQuiz(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req dto.RenameQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	if errs := h.validator.ValidateRenameQuizRequest(&req); len(errs) > 0 {
		return errs
	}

	if err := h.service.RenameQuiz(c.Context(), id, req.Title); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteQuiz godoc
// @Summary Delete a quiz
// @Description Deletes a quiz and all of its questions
// @Tags quizzes
// @Param id path int true "Quiz ID"
// @Success 204
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quizzes/{id} [delete]
func (h *QuizHandler) DeleteQuiz(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.DeleteQuiz(c.Context(), id); err != nil {
		return err
	}

	logger.Get().Info("Quiz deleted", zap.Int64("quiz_id", id))
	return c.SendStatus(fiber.StatusNoContent)
}

// AddQuestion godoc
// @Summary Add a question to a quiz
// @Tags quizzes
// @Accept json
// @Produce json
// @Param id path int true "Quiz ID"
// @Param question body dto.QuestionInput true "Question"
// @Success 201 {object} dto.AddQuestionResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quizzes/{id}/questions [post]
func (h *QuizHandler) AddQuestion(c *fiber.Ctx) error {
	quizID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req dto.QuestionInput
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	if errs := h.validator.ValidateQuestionInput(&req); len(errs) > 0 {
		return errs
	}

	id, err := h.service.AddQuestion(c.Context(), quizID, &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.AddQuestionResponse{ID: id})
}

// DeleteQuestion godoc
// @Summary Delete a question
// @Tags quizzes
// @Param id path int true "Quiz ID"
// @Param questionId path int true "Question ID"
// @Success 204
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quizzes/{id}/questions/{questionId} [delete]
func (h *QuizHandler) DeleteQuestion(c *fiber.Ctx) error {
	quizID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	questionID, err := parseID(c, "questionId")
	if err != nil {
		return err
	}

	if err := h.service.DeleteQuestion(c.Context(), quizID, questionID); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GenerateContactQuestions godoc
// @Summary Generate draft questions from contacts
// @Description Builds multiple-choice draft questions from a posted contact
// @Description list. Nothing is persisted; save the draft as a quiz to keep it.
// @Tags quizzes
// @Accept json
// @Produce json
// @Param request body dto.GenerateContactQuestionsRequest true "Contacts and options"
// @Success 200 {object} dto.GenerateContactQuestionsResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /quizzes/generate-contacts [post]
func (h *QuizHandler) GenerateContactQuestions(c *fiber.Ctx) error {
	var req dto.GenerateContactQuestionsRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	if errs := h.validator.ValidateGenerateContactQuestionsRequest(&req); len(errs) > 0 {
		return errs
	}

	return c.JSON(h.service.GenerateContactQuestions(&req))
}

// parseID reads a positive int64 path parameter.
func parseID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewInvalidInputError("Invalid "+name+" parameter")
	}
	return id, nil
}

package handler

import (
	"quizlab/internal/domain"
	"quizlab/internal/dto"
	"quizlab/internal/service"
	"quizlab/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// GameHandler handles play session HTTP requests
type GameHandler struct {
	service   service.GameService
	validator *validation.Validator
}

// NewGameHandler creates a new GameHandler instance
func NewGameHandler(service service.GameService, validator *validation.Validator) *GameHandler {
	return &GameHandler{
		service:   service,
		validator: validator,
	}
}

// StartGame godoc
// @Summary Start a play session
// @Description Loads a quiz's questions into a new in-memory session and
// @Description returns its initial state with the first question
// @Tags games
// @Accept json
// @Produce json
// @Param request body dto.StartGameRequest true "Quiz to play"
// @Success 201 {object} dto.GameStateResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /games [post]
func (h *GameHandler) StartGame(c *fiber.Ctx) error {
	var req dto.StartGameRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if req.QuizID <= 0 {
		return domain.NewInvalidInputError("quiz_id is required")
	}

	state, err := h.service.StartGame(c.Context(), req.QuizID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(state)
}

// GetState godoc
// @Summary Get play session state
// @Tags games
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.GameStateResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /games/{id} [get]
func (h *GameHandler) GetState(c *fiber.Ctx) error {
	state, err := h.service.GetState(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(state)
}

// SubmitAnswer godoc
// @Summary Answer the current question
// @Description Records the answer for the current question. The first
// @Description answer per question is final; repeats leave state unchanged.
// @Tags games
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.SubmitAnswerRequest true "Chosen answer"
// @Success 200 {object} dto.GameStateResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /games/{id}/answer [post]
func (h *GameHandler) SubmitAnswer(c *fiber.Ctx) error {
	var req dto.SubmitAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	if errs := h.validator.ValidateSubmitAnswerRequest(&req); len(errs) > 0 {
		return errs
	}

	state, err := h.service.SubmitAnswer(c.Params("id"), req.Answer)
	if err != nil {
		return err
	}
	return c.JSON(state)
}

// NextQuestion godoc
// @Summary Advance to the next question
// @Description Moves the session to the next question, or to the finished
// @Description state after the last one
// @Tags games
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.GameStateResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /games/{id}/next [post]
func (h *GameHandler) NextQuestion(c *fiber.Ctx) error {
	state, err := h.service.NextQuestion(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(state)
}

// Result godoc
// @Summary Get the session score
// @Tags games
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.GameResultResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /games/{id}/result [get]
func (h *GameHandler) Result(c *fiber.Ctx) error {
	result, err := h.service.Result(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// AbandonGame godoc
// @Summary Abandon a play session
// @Description Discards the session's in-memory state
// @Tags games
// @Param id path string true "Session ID"
// @Success 204
// @Failure 404 {object} middleware.ErrorResponse
// @Router /games/{id} [delete]
func (h *GameHandler) AbandonGame(c *fiber.Ctx) error {
	if err := h.service.AbandonGame(c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

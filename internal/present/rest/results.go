package rest

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/drives-academy/academy-api/internal/domain"
	"github.com/drives-academy/academy-api/internal/present/rest/presenter"
)

type createResultRequest struct {
	UserID               int64      `json:"user_id" validate:"required,gt=0"`
	QuizID               int64      `json:"quiz_id" validate:"required,gt=0"`
	Score                int        `json:"score" validate:"gte=0"`
	CorrectAnswerCount   int        `json:"correct_answer_count" validate:"gte=0"`
	IncorrectAnswerCount int        `json:"incorrect_answer_count" validate:"gte=0"`
	CompletedAt          *time.Time `json:"completed_at"`
}

type updateResultRequest struct {
	Score                *int       `json:"score" validate:"omitempty,gte=0"`
	CorrectAnswerCount   *int       `json:"correct_answer_count" validate:"omitempty,gte=0"`
	IncorrectAnswerCount *int       `json:"incorrect_answer_count" validate:"omitempty,gte=0"`
	CompletedAt          *time.Time `json:"completed_at"`
}

func (h *Handler) handleCreateResult(c echo.Context) error {
	var req createResultRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return presenter.BadRequest(c, "User id and quiz id are required")
	}

	completedAt := time.Now()
	if req.CompletedAt != nil {
		completedAt = *req.CompletedAt
	}

	result, err := h.results.Create(c.Request().Context(), domain.QuizResult{
		UserID:               req.UserID,
		QuizID:               req.QuizID,
		Score:                req.Score,
		CorrectAnswerCount:   req.CorrectAnswerCount,
		IncorrectAnswerCount: req.IncorrectAnswerCount,
		CompletedAt:          completedAt,
	})
	if err != nil {
		return respondError(c, err, "creating", "quiz result")
	}
	return presenter.Created(c, result)
}

func (h *Handler) handleListResults(c echo.Context) error {
	results, err := h.results.List(c.Request().Context())
	if err != nil {
		return presenter.InternalError(c, "fetching", "quiz results", err)
	}
	return presenter.OK(c, results)
}

func (h *Handler) handleListResultsByUser(c echo.Context) error {
	userID, err := parseID(c, "userId")
	if err != nil {
		return presenter.BadRequest(c, "Invalid user id")
	}
	results, err := h.results.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return respondError(c, err, "fetching", "quiz results")
	}
	return presenter.OK(c, results)
}

func (h *Handler) handleListResultsByQuiz(c echo.Context) error {
	quizID, err := parseID(c, "quizId")
	if err != nil {
		return presenter.BadRequest(c, "Invalid quiz id")
	}
	results, err := h.results.ListByQuiz(c.Request().Context(), quizID)
	if err != nil {
		return respondError(c, err, "fetching", "quiz results")
	}
	return presenter.OK(c, results)
}

func (h *Handler) handleGetResult(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return presenter.BadRequest(c, "Invalid quiz result id")
	}
	result, err := h.results.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err, "fetching", "Quiz result")
	}
	return presenter.OK(c, result)
}

func (h *Handler) handleUpdateResult(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return presenter.BadRequest(c, "Invalid quiz result id")
	}
	var req updateResultRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return presenter.BadRequest(c, "Invalid field values")
	}

	result, err := h.results.Update(c.Request().Context(), id, domain.QuizResultPatch{
		Score:                req.Score,
		CorrectAnswerCount:   req.CorrectAnswerCount,
		IncorrectAnswerCount: req.IncorrectAnswerCount,
		CompletedAt:          req.CompletedAt,
	})
	if err != nil {
		return respondError(c, err, "updating", "Quiz result")
	}
	return presenter.OK(c, result)
}

func (h *Handler) handleDeleteResult(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return presenter.BadRequest(c, "Invalid quiz result id")
	}
	if err := h.results.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err, "deleting", "Quiz result")
	}
	return presenter.Message(c, "Quiz result deleted successfully")
}

package rest

import (
	"github.com/labstack/echo/v4"

	"github.com/drives-academy/academy-api/internal/domain"
	"github.com/drives-academy/academy-api/internal/present/rest/presenter"
)

type createLessonRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Duration    int    `json:"duration" validate:"gte=0"`
	IsLocked    bool   `json:"is_locked"`
}

type updateLessonRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Duration    *int    `json:"duration" validate:"omitempty,gte=0"`
	IsLocked    *bool   `json:"is_locked"`
}

func (h *Handler) handleCreateLesson(c echo.Context) error {
	var req createLessonRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return presenter.BadRequest(c, "Title is required")
	}

	lesson, err := h.lessons.CreateLesson(c.Request().Context(), domain.DrivingLesson{
		Title:       req.Title,
		Description: req.Description,
		Duration:    req.Duration,
		IsLocked:    req.IsLocked,
	})
	if err != nil {
		return presenter.InternalError(c, "creating", "driving lesson", err)
	}
	return presenter.Created(c, lesson)
}

func (h *Handler) handleListLessons(c echo.Context) error {
	lessons, err := h.lessons.ListLessons(c.Request().Context())
	if err != nil {
		return presenter.InternalError(c, "fetching", "driving lessons", err)
	}
	return presenter.OK(c, lessons)
}

func (h *Handler) handleGetLesson(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return presenter.BadRequest(c, "Invalid driving lesson id")
	}
	lesson, err := h.lessons.GetLesson(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err, "fetching", "Driving lesson")
	}
	return presenter.OK(c, lesson)
}

func (h *Handler) handleUpdateLesson(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return presenter.BadRequest(c, "Invalid driving lesson id")
	}
	var req updateLessonRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return presenter.BadRequest(c, "Invalid field values")
	}

	lesson, err := h.lessons.UpdateLesson(c.Request().Context(), id, domain.DrivingLessonPatch{
		Title:       req.Title,
		Description: req.Description,
		Duration:    req.Duration,
		IsLocked:    req.IsLocked,
	})
	if err != nil {
		return respondError(c, err, "updating", "Driving lesson")
	}
	return presenter.OK(c, lesson)
}

func (h *Handler) handleDeleteLesson(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return presenter.BadRequest(c, "Invalid driving lesson id")
	}
	if err := h.lessons.DeleteLesson(c.Request().Context(), id); err != nil {
		return respondError(c, err, "deleting", "Driving lesson")
	}
	return presenter.Message(c, "Driving lesson deleted successfully")
}

type createLessonContentRequest struct {
	DrivingLessonID int64  `json:"driving_lesson_id" validate:"required,gt=0"`
	Title           string `json:"title" validate:"required"`
	Content         string `json:"content" validate:"required"`
	Order           int    `json:"order" validate:"gte=0"`
}

type updateLessonContentRequest struct {
	DrivingLessonID *int64  `json:"driving_lesson_id" validate:"omitempty,gt=0"`
	Title           *string `json:"title"`
	Content         *string `json:"content"`
	Order           *int    `json:"order" validate:"omitempty,gte=0"`
}

func (h *Handler) handleCreateLessonContent(c echo.Context) error {
	var req createLessonContentRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return presenter.BadRequest(c, "Driving lesson id, title and content are required")
	}

	content, err := h.lessons.CreateContent(c.Request().Context(), domain.LessonContent{
		DrivingLessonID: req.DrivingLessonID,
		Title:           req.Title,
		Content:         req.Content,
		Order:           req.Order,
	})
	if err != nil {
		return respondError(c, err, "creating", "lesson content")
	}
	return presenter.Created(c, content)
}

func (h *Handler) handleListLessonContents(c echo.Context) error {
	contents, err := h.lessons.ListContents(c.Request().Context())
	if err != nil {
		return presenter.InternalError(c, "fetching", "lesson contents", err)
	}
	return presenter.OK(c, contents)
}

func (h *Handler) handleGetLessonContent(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return presenter.BadRequest(c, "Invalid lesson content id")
	}
	content, err := h.lessons.GetContent(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err, "fetching", "Lesson content")
	}
	return presenter.OK(c, content)
}

func (h *Handler) handleUpdateLessonContent(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return presenter.BadRequest(c, "Invalid lesson content id")
	}
	var req updateLessonContentRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return presenter.BadRequest(c, "Invalid field values")
	}

	content, err := h.lessons.UpdateContent(c.Request().Context(), id, domain.LessonContentPatch{
		DrivingLessonID: req.DrivingLessonID,
		Title:           req.Title,
		Content:         req.Content,
		Order:           req.Order,
	})
	if err != nil {
		return respondError(c, err, "updating", "Lesson content")
	}
	return presenter.OK(c, content)
}

func (h *Handler) handleDeleteLessonContent(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return presenter.BadRequest(c, "Invalid lesson content id")
	}
	if err := h.lessons.DeleteContent(c.Request().Context(), id); err != nil {
		return respondError(c, err, "deleting", "Lesson content")
	}
	return presenter.Message(c, "Lesson content deleted successfully")
}

package rest

import (
	"github.com/labstack/echo/v4"

	"github.com/drives-academy/academy-api/internal/domain"
	"github.com/drives-academy/academy-api/internal/present/rest/presenter"
)

type createRulesCategoryRequest struct {
	Title string `json:"title" validate:"required"`
}

type updateRulesCategoryRequest struct {
	Title *string `json:"title"`
}

func (h *Handler) handleCreateRulesCategory(c echo.Context) error {
	var req createRulesCategoryRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return presenter.BadRequest(c, "Title is required")
	}

	category, err := h.rules.CreateCategory(c.Request().Context(), domain.RulesCategory{Title: req.Title})
	if err != nil {
		return presenter.InternalError(c, "creating", "rules category", err)
	}
	return presenter.Created(c, category)
}

func (h *Handler) handleListRulesCategories(c echo.Context) error {
	categories, err := h.rules.ListCategories(c.Request().Context())
	if err != nil {
		return presenter.InternalError(c, "fetching", "rules categories", err)
	}
	return presenter.OK(c, categories)
}

func (h *Handler) handleGetRulesCategory(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return presenter.BadRequest(c, "Invalid rules category id")
	}
	category, err := h.rules.GetCategory(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err, "fetching", "Rules category")
	}
	return presenter.OK(c, category)
}

func (h *Handler) handleUpdateRulesCategory(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return presenter.BadRequest(c, "Invalid rules category id")
	}
	var req updateRulesCategoryRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, "Invalid request body")
	}

	category, err := h.rules.UpdateCategory(c.Request().Context(), id, domain.RulesCategoryPatch{Title: req.Title})
	if err != nil {
		return respondError(c, err, "updating", "Rules category")
	}
	return presenter.OK(c, category)
}

func (h *Handler) handleDeleteRulesCategory(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return presenter.BadRequest(c, "Invalid rules category id")
	}
	if err := h.rules.DeleteCategory(c.Request().Context(), id); err != nil {
		return respondError(c, err, "deleting", "Rules category")
	}
	return presenter.Message(c, "Rules category deleted successfully")
}

type createRulesContentRequest struct {
	CategoryID int64  `json:"category_id" validate:"required,gt=0"`
	Title      string `json:"title" validate:"required"`
	Content    string `json:"content" validate:"required"`
}

type updateRulesContentRequest struct {
	CategoryID *int64  `json:"category_id" validate:"omitempty,gt=0"`
	Title      *string `json:"title"`
	Content    *string `json:"content"`
}

func (h *Handler) handleCreateRulesContent(c echo.Context) error {
	var req createRulesContentRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return presenter.BadRequest(c, "Category id, title and content are required")
	}

	content, err := h.rules.CreateContent(c.Request().Context(), domain.RulesContent{
		CategoryID: req.CategoryID,
		Title:      req.Title,
		Content:    req.Content,
	})
	if err != nil {
		return respondError(c, err, "creating", "rules content")
	}
	return presenter.Created(c, content)
}

func (h *Handler) handleListRulesContent(c echo.Context) error {
	content, err := h.rules.ListContent(c.Request().Context())
	if err != nil {
		return presenter.InternalError(c, "fetching", "rules content", err)
	}
	return presenter.OK(c, content)
}

func (h *Handler) handleListRulesContentByCategory(c echo.Context) error {
	categoryID, err := parseID(c, "categoryId")
	if err != nil {
		return presenter.BadRequest(c, "Invalid rules category id")
	}
	content, err := h.rules.ListContentByCategory(c.Request().Context(), categoryID)
	if err != nil {
		return respondError(c, err, "fetching", "rules content")
	}
	return presenter.OK(c, content)
}

func (h *Handler) handleGetRulesContent(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return presenter.BadRequest(c, "Invalid rules content id")
	}
	content, err := h.rules.GetContent(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err, "fetching", "Rules content")
	}
	return presenter.OK(c, content)
}

func (h *Handler) handleUpdateRulesContent(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return presenter.BadRequest(c, "Invalid rules content id")
	}
	var req updateRulesContentRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, "Invalid request body")
	}

	content, err := h.rules.UpdateContent(c.Request().Context(), id, domain.RulesContentPatch{
		CategoryID: req.CategoryID,
		Title:      req.Title,
		Content:    req.Content,
	})
	if err != nil {
		return respondError(c, err, "updating", "Rules content")
	}
	return presenter.OK(c, content)
}

func (h *Handler) handleDeleteRulesContent(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return presenter.BadRequest(c, "Invalid rules content id")
	}
	if err := h.rules.DeleteContent(c.Request().Context(), id); err != nil {
		return respondError(c, err, "deleting", "Rules content")
	}
	return presenter.Message(c, "Rules content deleted successfully")
}

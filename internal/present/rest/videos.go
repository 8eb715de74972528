package rest

import (
	"github.com/labstack/echo/v4"

	"github.com/drives-academy/academy-api/internal/domain"
	"github.com/drives-academy/academy-api/internal/present/rest/presenter"
)

type createVideoRequest struct {
	Title        string `json:"title" validate:"required"`
	Description  string `json:"description"`
	Duration     string `json:"duration"`
	VideoURL     string `json:"video_url" validate:"required,url"`
	ThumbnailURL string `json:"thumbnail_url" validate:"omitempty,url"`
}

type updateVideoRequest struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	Duration     *string `json:"duration"`
	VideoURL     *string `json:"video_url" validate:"omitempty,url"`
	ThumbnailURL *string `json:"thumbnail_url" validate:"omitempty,url"`
}

func (h *Handler) handleCreateVideo(c echo.Context) error {
	var req createVideoRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return presenter.BadRequest(c, "Title and a valid video url are required")
	}

	video, err := h.videos.Create(c.Request().Context(), domain.VideoTutorial{
		Title:        req.Title,
		Description:  req.Description,
		Duration:     req.Duration,
		VideoURL:     req.VideoURL,
		ThumbnailURL: req.ThumbnailURL,
	})
	if err != nil {
		return presenter.InternalError(c, "creating", "video tutorial", err)
	}
	return presenter.Created(c, video)
}

func (h *Handler) handleListVideos(c echo.Context) error {
	videos, err := h.videos.List(c.Request().Context())
	if err != nil {
		return presenter.InternalError(c, "fetching", "video tutorials", err)
	}
	return presenter.OK(c, videos)
}

func (h *Handler) handleGetVideo(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return presenter.BadRequest(c, "Invalid video tutorial id")
	}
	video, err := h.videos.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err, "fetching", "Video tutorial")
	}
	return presenter.OK(c, video)
}

func (h *Handler) handleUpdateVideo(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return presenter.BadRequest(c, "Invalid video tutorial id")
	}
	var req updateVideoRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return presenter.BadRequest(c, "Invalid field values")
	}

	video, err := h.videos.Update(c.Request().Context(), id, domain.VideoTutorialPatch{
		Title:        req.Title,
		Description:  req.Description,
		Duration:     req.Duration,
		VideoURL:     req.VideoURL,
		ThumbnailURL: req.ThumbnailURL,
	})
	if err != nil {
		return respondError(c, err, "updating", "Video tutorial")
	}
	return presenter.OK(c, video)
}

func (h *Handler) handleDeleteVideo(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return presenter.BadRequest(c, "Invalid video tutorial id")
	}
	if err := h.videos.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err, "deleting", "Video tutorial")
	}
	return presenter.Message(c, "Video tutorial deleted successfully")
}

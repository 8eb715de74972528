package rest

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/drives-academy/academy-api/internal/domain"
	"github.com/drives-academy/academy-api/internal/present/rest/presenter"
	"github.com/drives-academy/academy-api/internal/service"
)

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Surname  string `json:"surname" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	User  domain.User `json:"user"`
	Token string      `json:"token"`
}

type updateUserRequest struct {
	Name     *string `json:"name"`
	Surname  *string `json:"surname"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=6"`
}

func (h *Handler) handleRegister(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return presenter.BadRequest(c, "Name, surname, email and password are required")
	}

	user, err := h.credential.Register(c.Request().Context(), req.Name, req.Surname, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return presenter.BadRequest(c, "User with this email already exists")
		}
		return presenter.InternalError(c, "registering", "user", err)
	}
	return presenter.Created(c, user)
}

func (h *Handler) handleLogin(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return presenter.BadRequest(c, "Email and password are required")
	}

	user, signed, err := h.credential.Authenticate(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return presenter.NotFound(c, "User")
		}
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return presenter.BadRequest(c, "Invalid credentials")
		}
		return presenter.InternalError(c, "logging in", "user", err)
	}
	return presenter.OK(c, loginResponse{User: user, Token: signed})
}

func (h *Handler) handleGetUser(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return presenter.BadRequest(c, "Invalid user id")
	}
	user, err := h.credential.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err, "fetching", "User")
	}
	return presenter.OK(c, user)
}

func (h *Handler) handleUpdateUser(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return presenter.BadRequest(c, "Invalid user id")
	}
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return presenter.BadRequest(c, "Invalid field values")
	}

	user, err := h.credential.Update(c.Request().Context(), id, toUserUpdate(req))
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return presenter.BadRequest(c, "User with this email already exists")
		}
		return respondError(c, err, "updating", "User")
	}
	return presenter.OK(c, user)
}

func toUserUpdate(req updateUserRequest) service.UserUpdate {
	return service.UserUpdate{
		Name:     req.Name,
		Surname:  req.Surname,
		Email:    req.Email,
		Password: req.Password,
	}
}

func (h *Handler) handleDeleteUser(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return presenter.BadRequest(c, "Invalid user id")
	}
	if err := h.credential.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err, "deleting", "User")
	}
	return presenter.Message(c, "User deleted successfully")
}

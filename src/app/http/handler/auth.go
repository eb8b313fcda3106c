package handler

import (
	"github.com/gin-gonic/gin"

	"blogapi/src/app/http/dto"
	"blogapi/src/app/http/response"
	"blogapi/src/app/middleware"
	"blogapi/src/core/usecase"
)

// AuthHandler handles registration, login and account endpoints.
type AuthHandler struct {
	authService *usecase.AuthService
}

func NewAuthHandler(authService *usecase.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload", requestID)
		return
	}

	res, err := h.authService.Register(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		c.Error(err)
		response.InternalError(c, requestID)
		return
	}
	response.Render(c, res, requestID)
}

func (h *AuthHandler) Login(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload", requestID)
		return
	}

	res, err := h.authService.Login(c.Request.Context(), req.Name, req.Password)
	if err != nil {
		c.Error(err)
		response.InternalError(c, requestID)
		return
	}
	response.Render(c, res, requestID)
}

func (h *AuthHandler) UpdateMe(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	identity, ok := middleware.GetIdentity(c)
	if !ok {
		response.Unauthorized(c, "not authenticated", requestID)
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload", requestID)
		return
	}

	res, err := h.authService.UpdateProfile(c.Request.Context(), identity.UserID, req.Name, req.Email)
	if err != nil {
		c.Error(err)
		response.InternalError(c, requestID)
		return
	}
	response.Render(c, res, requestID)
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	identity, ok := middleware.GetIdentity(c)
	if !ok {
		response.Unauthorized(c, "not authenticated", requestID)
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload", requestID)
		return
	}

	res, err := h.authService.ChangePassword(c.Request.Context(), identity.UserID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		c.Error(err)
		response.InternalError(c, requestID)
		return
	}
	response.Render(c, res, requestID)
}

func (h *AuthHandler) DeleteMe(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	identity, ok := middleware.GetIdentity(c)
	if !ok {
		response.Unauthorized(c, "not authenticated", requestID)
		return
	}

	res, err := h.authService.DeleteAccount(c.Request.Context(), identity.UserID)
	if err != nil {
		c.Error(err)
		response.InternalError(c, requestID)
		return
	}
	response.Render(c, res, requestID)
}

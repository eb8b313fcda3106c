package handler

import (
	"github.com/gin-gonic/gin"

	"blogapi/src/app/http/dto"
	"blogapi/src/app/http/response"
	"blogapi/src/app/middleware"
	"blogapi/src/core/usecase"
)

// CommentHandler handles comment endpoints.
type CommentHandler struct {
	commentService *usecase.CommentService
}

func NewCommentHandler(commentService *usecase.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

func (h *CommentHandler) ListByPost(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	postID, ok := pathID(c, "id")
	if !ok {
		return
	}

	res, err := h.commentService.ListByPost(c.Request.Context(), postID)
	if err != nil {
		c.Error(err)
		response.InternalError(c, requestID)
		return
	}
	response.Render(c, res, requestID)
}

func (h *CommentHandler) Create(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	identity, ok := middleware.GetIdentity(c)
	if !ok {
		response.Unauthorized(c, "not authenticated", requestID)
		return
	}

	postID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.CommentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload", requestID)
		return
	}

	res, err := h.commentService.Create(c.Request.Context(), postID, identity, req.Content)
	if err != nil {
		c.Error(err)
		response.InternalError(c, requestID)
		return
	}
	response.Render(c, res, requestID)
}

func (h *CommentHandler) Update(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	identity, ok := middleware.GetIdentity(c)
	if !ok {
		response.Unauthorized(c, "not authenticated", requestID)
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.CommentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload", requestID)
		return
	}

	res, err := h.commentService.Update(c.Request.Context(), id, identity.UserID, req.Content)
	if err != nil {
		c.Error(err)
		response.InternalError(c, requestID)
		return
	}
	response.Render(c, res, requestID)
}

func (h *CommentHandler) Delete(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	identity, ok := middleware.GetIdentity(c)
	if !ok {
		response.Unauthorized(c, "not authenticated", requestID)
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	res, err := h.commentService.Delete(c.Request.Context(), id, identity.UserID)
	if err != nil {
		c.Error(err)
		response.InternalError(c, requestID)
		return
	}
	response.Render(c, res, requestID)
}

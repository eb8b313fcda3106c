package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"blogapi/src/app/http/dto"
	"blogapi/src/app/http/response"
	"blogapi/src/app/middleware"
	"blogapi/src/core/usecase"
)

// BlogPostHandler handles post endpoints.
type BlogPostHandler struct {
	postService *usecase.BlogPostService
}

func NewBlogPostHandler(postService *usecase.BlogPostService) *BlogPostHandler {
	return &BlogPostHandler{postService: postService}
}

// List answers GET /api/blogposts?categoryId=&search=&page=&pageSize=.
// Unparseable paging values fall through as zero and get clamped by the
// service.
func (h *BlogPostHandler) List(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	var categoryID *int64
	if raw := c.Query("categoryId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.BadRequest(c, "invalid categoryId", requestID)
			return
		}
		categoryID = &id
	}

	page, _ := strconv.Atoi(c.Query("page"))
	pageSize, _ := strconv.Atoi(c.Query("pageSize"))

	res, err := h.postService.List(c.Request.Context(), categoryID, c.Query("search"), page, pageSize)
	if err != nil {
		c.Error(err)
		response.InternalError(c, requestID)
		return
	}
	response.Render(c, res, requestID)
}

func (h *BlogPostHandler) GetByID(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	res, err := h.postService.GetByID(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		response.InternalError(c, requestID)
		return
	}
	response.Render(c, res, requestID)
}

func (h *BlogPostHandler) Create(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	identity, ok := middleware.GetIdentity(c)
	if !ok {
		response.Unauthorized(c, "not authenticated", requestID)
		return
	}

	var req dto.BlogPostCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload", requestID)
		return
	}

	res, err := h.postService.Create(c.Request.Context(), identity.UserID, req.Title, req.Content, req.CategoryID)
	if err != nil {
		c.Error(err)
		response.InternalError(c, requestID)
		return
	}
	response.Render(c, res, requestID)
}

func (h *BlogPostHandler) Update(c *gin.Context) {
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

	var req dto.BlogPostUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload", requestID)
		return
	}

	res, err := h.postService.Update(c.Request.Context(), id, identity.UserID, req.Title, req.Content, req.CategoryID)
	if err != nil {
		c.Error(err)
		response.InternalError(c, requestID)
		return
	}
	response.Render(c, res, requestID)
}

func (h *BlogPostHandler) Delete(c *gin.Context) {
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

	res, err := h.postService.Delete(c.Request.Context(), id, identity.UserID)
	if err != nil {
		c.Error(err)
		response.InternalError(c, requestID)
		return
	}
	response.Render(c, res, requestID)
}

package handler

import (
	"github.com/gin-gonic/gin"

	"blogapi/src/app/http/response"
	"blogapi/src/app/middleware"
	"blogapi/src/core/usecase"
)

// CategoryHandler handles the read-only category endpoint.
type CategoryHandler struct {
	categoryService *usecase.CategoryService
}

func NewCategoryHandler(categoryService *usecase.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

func (h *CategoryHandler) List(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	res, err := h.categoryService.ListAll(c.Request.Context())
	if err != nil {
		c.Error(err)
		response.InternalError(c, requestID)
		return
	}
	response.Render(c, res, requestID)
}

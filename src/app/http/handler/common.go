// Package handler contains the Gin HTTP handlers. Handlers bind and
// validate payloads, call exactly one service method, and render its
// Result; they hold no domain logic.
package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"blogapi/src/app/http/response"
	"blogapi/src/app/middleware"
)

// pathID parses a positive integer path parameter, answering 400 itself
// when the value is malformed.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "invalid "+name, middleware.GetRequestID(c))
		return 0, false
	}
	return id, true
}

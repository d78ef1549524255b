package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the envelope of every API reply.
type Response struct {
	Success bool `json:"success"`
	Code    int  `json:"code"`
	Extras  any  `json:"extras"`
}

// Content is the payload of a plain status reply.
type Content struct {
	Content string `json:"content"`
}

// Failure is the payload of an error reply.
type Failure struct {
	Message string `json:"message"`
}

func NewResponse(success bool, code int, extras any) Response {
	return Response{
		Success: success,
		Code:    code,
		Extras:  extras,
	}
}

// SuccessResponseContent returns a JSON response with a success message and content
func SuccessResponseContent(c *gin.Context, content string) {
	SuccessResponse(c, Content{Content: content})
}

// SuccessResponse returns a JSON response with a success message with no type limitation
func SuccessResponse(c *gin.Context, extras any) {
	c.JSON(http.StatusOK, NewResponse(true, http.StatusOK, extras))
}

// ErrorResponse aborts the request with code and message.
func ErrorResponse(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, NewResponse(false, code, Failure{Message: message}))
}

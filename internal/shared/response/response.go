package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody is the wire format for every failed request: {"error": "..."}.
// Handlers must not leak internal details beyond the message they pass here.
type ErrorBody struct {
	Error string `json:"error"`
}

// Paginated wraps a result window together with its pagination metadata.
type Paginated struct {
	Data       interface{} `json:"data"`
	Pagination interface{} `json:"pagination"`
}

// Data wraps a plain collection response: {"data": [...]}.
type Data struct {
	Data interface{} `json:"data"`
}

// Success writes payload as-is with the given status code.
func Success(c *gin.Context, statusCode int, payload interface{}) {
	c.JSON(statusCode, payload)
}

// SuccessPaginated writes {"data": ..., "pagination": ...}.
func SuccessPaginated(c *gin.Context, statusCode int, data interface{}, pagination interface{}) {
	c.JSON(statusCode, Paginated{Data: data, Pagination: pagination})
}

// Error writes {"error": message} with the given status code.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorBody{Error: message})
}

// Common error responses

func BadRequest(c *gin.Context, message string) {
	Error(c, 400, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, 404, message)
}

func Conflict(c *gin.Context, message string) {
	Error(c, 409, message)
}

func InternalServerError(c *gin.Context, message string) {
	Error(c, 500, message)
}

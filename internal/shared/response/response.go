package response

import (
	"github.com/gin-gonic/gin"
)

// Every API response is wrapped in the same envelope:
//
//	success: {"message": ..., "<entity-key>": ..., "status": "success"}
//	failure: {"message": ..., "errors": ..., "status": "error"}
//
// The entity key names the payload ("book", "books", "author", ...), so
// clients can bind the part they care about without unwrapping a generic
// "data" field.

// Success renders a success envelope with the payload under key.
func Success(c *gin.Context, statusCode int, message, key string, data interface{}) {
	c.JSON(statusCode, gin.H{
		"message": message,
		key:       data,
		"status":  "success",
	})
}

// SuccessWithMeta renders a success envelope plus extra top-level fields
// (pagination, filter discovery metadata on list endpoints).
func SuccessWithMeta(c *gin.Context, statusCode int, message, key string, data interface{}, meta gin.H) {
	body := gin.H{
		"message": message,
		key:       data,
		"status":  "success",
	}
	for k, v := range meta {
		body[k] = v
	}
	c.JSON(statusCode, body)
}

// Error renders an error envelope. errs may be nil, a string, or a
// field→message map (ozzo validation.Errors marshals to the latter).
func Error(c *gin.Context, statusCode int, message string, errs interface{}) {
	body := gin.H{
		"message": message,
		"status":  "error",
	}
	if errs != nil {
		body["errors"] = errs
	}
	c.JSON(statusCode, body)
}

// Common error responses
func BadRequest(c *gin.Context, message string, errs interface{}) {
	Error(c, 400, message, errs)
}

func Unauthorized(c *gin.Context, message string) {
	Error(c, 401, message, nil)
}

func Forbidden(c *gin.Context, message string) {
	Error(c, 403, message, nil)
}

func NotFound(c *gin.Context, message string) {
	Error(c, 404, message, nil)
}

func Conflict(c *gin.Context, message string) {
	Error(c, 409, message, nil)
}

func InternalServerError(c *gin.Context, message string) {
	Error(c, 500, message, nil)
}

package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/OussemaDev7/AfarTech-Project/internal/error/code"
)

// MessageBody is the {message} body every failure in the API carries.
type MessageBody struct {
	Message string `json:"message"`
}

// OK writes data as-is with a 200 status. A nil data renders as JSON null,
// which is how an absent-but-not-erroneous lookup is reported.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created writes data as-is with a 201 status.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// NoBody writes a 200 status with an empty body.
func NoBody(c *gin.Context) {
	c.Status(http.StatusOK)
}

// Fail writes the default message for an error code with its mapped status.
func Fail(c *gin.Context, errorCode int) {
	c.JSON(code.GetStatus(errorCode), MessageBody{Message: code.GetMessage(errorCode)})
}

// FailWithMessage writes a custom message with the status mapped to the code.
func FailWithMessage(c *gin.Context, errorCode int, message string) {
	c.JSON(code.GetStatus(errorCode), MessageBody{Message: message})
}

// NotFoundEmpty writes a 404 status with an empty body.
func NotFoundEmpty(c *gin.Context) {
	c.Status(http.StatusNotFound)
}

// Unauthorized writes a 401 with a {message} body and aborts the request.
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = code.GetMessage(code.ErrTokenInvalid)
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, MessageBody{Message: message})
}

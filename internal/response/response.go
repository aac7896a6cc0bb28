package response

import "github.com/gin-gonic/gin"

// ErrorBody is the payload of an error response
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the envelope for all error responses
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// MessageResponse is returned by operations that have no entity to return
type MessageResponse struct {
	Message string `json:"message"`
}

// SendSuccess writes data as the JSON body. Lists are written as bare
// arrays and entities as bare objects.
func SendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// SendMessage writes a {"message": ...} body
func SendMessage(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, MessageResponse{Message: message})
}

// SendError writes the error envelope
func SendError(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, ErrorResponse{
		Error: ErrorBody{
			Code:    code,
			Message: message,
		},
	})
}

// AbortWithError writes the error envelope and stops the handler chain
func AbortWithError(c *gin.Context, statusCode int, code, message string) {
	c.AbortWithStatusJSON(statusCode, ErrorResponse{
		Error: ErrorBody{
			Code:    code,
			Message: message,
		},
	})
}

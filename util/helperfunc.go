package util

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIResponse is the wire shape every JSON endpoint answers with. The
// legacy frontend only understands `success` and an optional `message`.
type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// NotSpecified is the placeholder rendered for optional fields the student
// left empty.
const NotSpecified = "Not specified"

// CallUserError is for return error from user side
func CallUserError(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, APIResponse{
		Success: false,
		Message: msg,
	})
}

// CallServerError is for return API response server error
func CallServerError(c *gin.Context, msg string) {
	c.JSON(http.StatusInternalServerError, APIResponse{
		Success: false,
		Message: msg,
	})
}

// CallSuccessOK is for return API response with status code 200
func CallSuccessOK(c *gin.Context) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
	})
}

// OrNotSpecified returns the value behind s, or the NotSpecified
// placeholder when s is nil or empty.
func OrNotSpecified(s *string) string {
	if s == nil || *s == "" {
		return NotSpecified
	}
	return *s
}

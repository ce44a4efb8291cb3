// Package common holds the rendering helpers shared by the page handlers.
package common

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/errors"
)

// Viewer is the slice of the authenticated identity the templates need for
// the navigation bar.
type Viewer struct {
	UserID  uint
	IsAdmin bool
}

// BaseData seeds the template data for a page: title plus the current viewer
// when the request is authenticated.
func BaseData(c *gin.Context, title string) gin.H {
	data := gin.H{"Title": title}
	if identity, ok := middleware.CurrentIdentity(c); ok {
		data["CurrentUser"] = Viewer{
			UserID:  identity.UserID,
			IsAdmin: identity.IsAdmin(),
		}
	}
	return data
}

// RenderError maps an error onto the error page with the matching HTTP
// status.
func RenderError(c *gin.Context, err error) {
	status, message := ErrorStatus(err)
	data := BaseData(c, "Error")
	data["Status"] = status
	data["Message"] = message
	c.HTML(status, "error.html", data)
}

// ErrorStatus resolves an error to the HTTP status and the message shown to
// the visitor. Errors without an application classification stay opaque and
// render as a generic 500.
func ErrorStatus(err error) (int, string) {
	if appErr := errors.GetAppError(err); appErr != nil {
		return appErr.Code, appErr.Message
	}
	return http.StatusInternalServerError, "an unexpected error occurred"
}

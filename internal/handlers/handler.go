package handlers

import (
	"errors"
	"net/http"

	"github.com/farellandr/eventure/internal/forms"
	"github.com/farellandr/eventure/internal/helpers"
	"github.com/farellandr/eventure/internal/middleware"
	"github.com/farellandr/eventure/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// render adds the values every page template expects.
func render(c *gin.Context, status int, name, title string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Title"] = title
	data["Base"] = middleware.GetMountPrefix(c)
	c.HTML(status, name, data)
}

func redirect(c *gin.Context, path string) {
	c.Redirect(http.StatusFound, middleware.GetMountPrefix(c)+path)
}

// respondWithServiceError maps a service failure onto an error page.
func respondWithServiceError(c *gin.Context, log *zap.Logger, err error) {
	if errors.Is(err, service.ErrNotFound) {
		helpers.RespondWithError(c, http.StatusNotFound, "The requested page could not be found.")
		return
	}
	helpers.RespondWithServerError(c, log, err)
}

// pathID resolves the :id parameter, rendering the 404 page when it is not a
// valid id.
func pathID(c *gin.Context) (uint, bool) {
	id, ok := helpers.ParseID(c, "id")
	if !ok {
		helpers.RespondWithError(c, http.StatusNotFound, "The requested page could not be found.")
	}
	return id, ok
}

// bindForm decodes a urlencoded or multipart body into dst.
func bindForm(c *gin.Context, dst any) bool {
	if err := c.ShouldBind(dst); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return false
	}
	return true
}

// formErrors splits a write failure into field errors to re-render, or
// reports false when err must be handled as a failed request.
func formErrors(err error) (forms.Errors, bool) {
	if fields := service.FieldErrors(err); fields != nil {
		return fields, true
	}
	return nil, false
}

type confirmDelete struct {
	Object    string
	Kind      string
	CancelURL string
}

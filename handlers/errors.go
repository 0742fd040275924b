package handlers

import (
	"errors"
	"net/http"

	"github.com/pwnz15/backend-sld/models"
	"github.com/pwnz15/backend-sld/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps domain errors onto HTTP statuses. Anything unrecognized is
// an internal error and the underlying detail stays out of the response.
func respondError(c *gin.Context, err error) {
	var (
		validationErr   models.ValidationError
		transitionErr   models.InvalidTransitionError
		preconditionErr models.PreconditionError
		duplicateErr    models.DuplicateKeyError
		notFoundErr     models.NotFoundError
	)
	switch {
	case errors.As(err, &validationErr):
		utils.JSONError(c, http.StatusBadRequest, "Validation failed", validationErr.Error())
	case errors.As(err, &transitionErr):
		utils.JSONError(c, http.StatusBadRequest, "Invalid status transition", transitionErr.Error())
	case errors.As(err, &preconditionErr):
		utils.JSONError(c, http.StatusBadRequest, "Operation not permitted", preconditionErr.Error())
	case errors.As(err, &duplicateErr):
		utils.JSONError(c, http.StatusConflict, "Duplicate record", duplicateErr.Error())
	case errors.As(err, &notFoundErr):
		utils.JSONError(c, http.StatusNotFound, "Not found", notFoundErr.Error())
	default:
		utils.GetLogger().Error("unhandled service error", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
	}
}

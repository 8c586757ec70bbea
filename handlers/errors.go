package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	bookingRepo "taskhive/database/repository/booking"
	profileRepo "taskhive/database/repository/profile"
	taskRepo "taskhive/database/repository/task"
	"taskhive/services/booking"
	"taskhive/services/matching"
	"taskhive/utils"
)

// respondError translates the service error taxonomy onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	var (
		validation   *booking.ValidationError
		transition   *booking.InvalidTransitionError
		precondition *booking.PreconditionFailedError
		upstream     *booking.UpstreamError
		unknownSvc   *matching.UnknownServiceError
	)

	switch {
	case errors.As(err, &validation):
		utils.JSONError(c, http.StatusBadRequest, "invalid request", validation.Message)
	case errors.As(err, &unknownSvc):
		utils.JSONError(c, http.StatusBadRequest, "invalid request", unknownSvc.Error())
	case errors.As(err, &transition):
		utils.JSONError(c, http.StatusConflict, "invalid transition", transition.Error())
	case errors.As(err, &precondition):
		utils.JSONError(c, http.StatusPreconditionFailed, "precondition failed", precondition.Message)
	case errors.Is(err, bookingRepo.ErrNotFound),
		errors.Is(err, profileRepo.ErrNotFound),
		errors.Is(err, taskRepo.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "not found", err.Error())
	case errors.As(err, &upstream):
		utils.JSONError(c, http.StatusBadGateway, "upstream unavailable", upstream.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "internal error", err.Error())
	}
}

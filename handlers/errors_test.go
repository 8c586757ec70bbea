package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	bookingRepo "taskhive/database/repository/booking"
	"taskhive/models"
	"taskhive/services/booking"
	"taskhive/services/matching"
)

func TestRespondErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", &booking.ValidationError{Message: "bad input"}, http.StatusBadRequest},
		{"unknown service", &matching.UnknownServiceError{ServiceID: "nope"}, http.StatusBadRequest},
		{"invalid transition", &booking.InvalidTransitionError{From: models.BookingCompleted, To: models.BookingCancelled}, http.StatusConflict},
		{"precondition", &booking.PreconditionFailedError{Message: "final_price missing"}, http.StatusPreconditionFailed},
		{"not found", bookingRepo.ErrNotFound, http.StatusNotFound},
		{"upstream", &booking.UpstreamError{Op: "update", Err: errors.New("mongo down")}, http.StatusBadGateway},
		{"wrapped upstream not found", &booking.UpstreamError{Op: "fetch", Err: bookingRepo.ErrNotFound}, http.StatusNotFound},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			respondError(c, tc.err)
			assert.Equal(t, tc.want, rec.Code)
		})
	}
}

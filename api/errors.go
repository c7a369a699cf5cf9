package api

import (
	"errors"
	"net/http"

	"github.com/Domenick1991/goglobe/internal/service/booking"
	"github.com/Domenick1991/goglobe/internal/service/catalog"
	"github.com/Domenick1991/goglobe/internal/service/offers"
	"github.com/Domenick1991/goglobe/internal/service/users"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, booking.ErrInvalidStatus),
		errors.Is(err, booking.ErrInvalidInput),
		errors.Is(err, booking.ErrCreateFailed),
		errors.Is(err, booking.ErrUpdateFailed),
		errors.Is(err, offers.ErrInvalidOffer),
		errors.Is(err, catalog.ErrInvalid),
		errors.Is(err, users.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, booking.ErrNotFound),
		errors.Is(err, offers.ErrNotFound),
		errors.Is(err, catalog.ErrNotFound),
		errors.Is(err, users.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, offers.ErrConflict),
		errors.Is(err, catalog.ErrConflict),
		errors.Is(err, users.ErrEmailTaken):
		return http.StatusConflict
	case errors.Is(err, users.ErrInvalidCredentials):
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}

// writeError maps service errors to a status code. Internal errors are logged
// and hidden from the client.
func writeError(c *gin.Context, err error) {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		logrus.WithError(err).WithField("path", c.FullPath()).Error("request failed")
		c.JSON(code, gin.H{"error": "internal error"})
		return
	}
	c.JSON(code, gin.H{"error": err.Error()})
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func notFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"error": msg})
}

package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"quickhire/internal/application/common"
)

type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// writeServiceError is the single place where service failures become HTTP.
// Bodies stay generic on purpose: invalid-credentials responses must not
// reveal whether the email exists.
func writeServiceError(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	message := "Internal server error."

	switch {
	case errors.Is(err, common.ErrValidation):
		status = http.StatusBadRequest
		message = "Email and password are required."
	case errors.Is(err, common.ErrDuplicateUser):
		status = http.StatusConflict
		message = "User with this email already exists."
	case errors.Is(err, common.ErrInvalidCredentials):
		status = http.StatusUnauthorized
		message = "Invalid email or password."
	case errors.Is(err, common.ErrUnauthorized):
		status = http.StatusUnauthorized
		message = "Authentication required."
	case errors.Is(err, common.ErrMisconfigured):
		status = http.StatusInternalServerError
		message = "Job search is not configured on the server."
	case errors.Is(err, common.ErrUpstreamUnavailable):
		status = http.StatusBadGateway
		message = "Could not fetch jobs from the job search provider."
	}

	if status >= http.StatusInternalServerError {
		c.Logger().Error(err)
	}
	return c.JSON(status, errorResponse{Success: false, Message: message})
}

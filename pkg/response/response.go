package response

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apperrors "friendlyeats/pkg/errors"
)

// ErrorBody is the wire format every failure uses: a single message under
// an "error" key, matching what the web frontend expects.
type ErrorBody struct {
	Error string `json:"error"`
}

func Success(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

func Created(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, data)
}

func OK(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

func Error(c echo.Context, err error) error {
	var validationErr validator.ValidationErrors
	if errors.As(err, &validationErr) {
		return c.JSON(http.StatusBadRequest, ErrorBody{Error: validationMessage(validationErr)})
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return c.JSON(appErr.Status, ErrorBody{Error: appErr.Message})
	}

	return c.JSON(http.StatusInternalServerError, ErrorBody{Error: "An unexpected error occurred."})
}

func validationMessage(validationErr validator.ValidationErrors) string {
	for _, err := range validationErr {
		field := strings.ToLower(err.Field())
		switch err.Tag() {
		case "required":
			return field + " is required."
		case "email":
			return "Enter a valid email address."
		case "min":
			return field + " must be at least " + err.Param() + " characters."
		case "max":
			return field + " must be at most " + err.Param() + "."
		case "gte":
			return field + " must be " + err.Param() + " or more."
		case "lte":
			return field + " must be " + err.Param() + " or less."
		default:
			return field + " is invalid."
		}
	}
	return "Invalid input data."
}

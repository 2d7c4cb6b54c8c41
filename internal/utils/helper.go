package utils

import (
	"errors"
	"log/slog"
	"net/http"

	appErrors "github.com/aaravmahajanofficial/online-bookstore-platform/internal/errors"
	"github.com/aaravmahajanofficial/online-bookstore-platform/internal/utils/response"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

func ParseAndValidate(r *http.Request, w http.ResponseWriter, dest any, validate *validator.Validate) bool {

	if err := DecodeJSONBody(r, dest); err != nil {
		slog.Warn("Invalid request", slog.String("error", err.Error()))
		response.WriteJson(w, http.StatusBadRequest, response.GeneralError(err))
		return false
	}

	if err := ValidateStruct(validate, dest); err != nil {
		slog.Warn("Validation failed", slog.String("error", err.Error()))
		response.WriteJson(w, http.StatusBadRequest, response.GeneralError(errors.New("invalid input data")))
		return false
	}

	return true
}

// ParseID reads a UUID path parameter.
func ParseID(r *http.Request, name string) (uuid.UUID, error) {

	raw := r.PathValue(name)
	if raw == "" {
		return uuid.Nil, appErrors.BadRequestError("Missing " + name + " parameter")
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, appErrors.BadRequestError("Invalid " + name + " format").WithError(err)
	}

	return id, nil
}

package http

import (
	"errors"
	"net/http"

	"todo-list/internal/todo"
	pkgErrors "todo-list/pkg/errors"
)

var errInvalidID = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid task id")

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, todo.ErrValidation):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, todo.ErrValidation.Error())
	case errors.Is(err, todo.ErrNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, todo.ErrNotFound.Error())
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

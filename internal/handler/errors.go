package handler

import (
	"errors"
	"net/http"

	"tenant-ledger/internal/ledger"

	"github.com/labstack/echo/v4"
)

// writeLedgerError maps the ledger error taxonomy onto HTTP statuses.
// Validation problems and bad references carry their message through so the
// user can correct the form; storage failures get a generic message.
func writeLedgerError(c echo.Context, err error) error {
	var validationErr *ledger.ValidationError
	var referenceErr *ledger.ReferenceError
	var notFoundErr *ledger.NotFoundError

	switch {
	case errors.As(err, &validationErr):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": validationErr.Error()})
	case errors.As(err, &referenceErr):
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": referenceErr.Error()})
	case errors.As(err, &notFoundErr):
		return c.JSON(http.StatusNotFound, echo.Map{"error": notFoundErr.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Operation failed"})
	}
}

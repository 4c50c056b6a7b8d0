package http

import (
	"errors"
	"net/http"

	"github.com/ezfinancial/go-entry-engine/internal/common"
	"github.com/ezfinancial/go-entry-engine/internal/models"

	"github.com/labstack/echo/v4"
)

// RestServiceErrorResponse maps service sentinel errors onto HTTP status
// codes and the published error catalogue. Anything unmapped is reported
// as an internal error without leaking the cause.
func RestServiceErrorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrUnauthenticated):
		return RestErrorResponse(c, http.StatusUnauthorized, models.GetErrMap(models.ErrKeyUnauthenticated))
	case errors.Is(err, common.ErrDataNotFound):
		return RestErrorResponse(c, http.StatusNotFound, models.GetErrMap(models.ErrKeyEntryNotFound))
	case errors.Is(err, common.ErrInvalidStateTransition):
		return RestErrorResponse(c, http.StatusConflict, models.GetErrMap(models.ErrKeyInvalidStateTransition))
	case errors.Is(err, common.ErrNoAccountAvailable):
		return RestErrorResponse(c, http.StatusNotFound, models.GetErrMap(models.ErrKeyNoAccountAvailable))
	case errors.Is(err, common.ErrLedgerImbalance):
		return RestErrorResponse(c, http.StatusInternalServerError, models.GetErrMap(models.ErrKeyLedgerImbalance))
	case errors.Is(err, common.ErrUpstreamTimeout):
		return RestErrorResponse(c, http.StatusGatewayTimeout, models.GetErrMap(models.ErrKeyUpstreamTimeout))
	case errors.Is(err, common.ErrInvalidAmount),
		errors.Is(err, common.ErrInvalidFormatDate),
		errors.Is(err, common.ErrInvalidCurrency):
		return RestErrorResponse(c, http.StatusBadRequest, err)
	default:
		return RestErrorResponse(c, http.StatusInternalServerError, models.GetErrMap(models.ErrKeyInternalServerError))
	}
}

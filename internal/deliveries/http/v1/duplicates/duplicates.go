package duplicates

import (
	nethttp "net/http"

	"github.com/ezfinancial/go-entry-engine/internal/common/http"
	"github.com/ezfinancial/go-entry-engine/internal/common/http/middleware"
	"github.com/ezfinancial/go-entry-engine/internal/common/validation"
	"github.com/ezfinancial/go-entry-engine/internal/models"
	"github.com/ezfinancial/go-entry-engine/internal/services"

	"github.com/labstack/echo/v4"
)

type duplicatesHandler struct {
	duplicateService services.DuplicateService
}

// New duplicate handler will initialize the duplicates/ resources endpoint
func New(app *echo.Group, duplicateSvc services.DuplicateService) {
	handler := duplicatesHandler{
		duplicateService: duplicateSvc,
	}
	api := app.Group("/duplicates")
	api.GET("/check", handler.checkDuplicate)
}

// checkDuplicate scores the query parameters against the owner's recent
// transactions and reports the best accepted match, if any. Pure read.
func (h *duplicatesHandler) checkDuplicate(c echo.Context) error {
	var req models.CheckDuplicateRequest

	if err := c.Bind(&req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}
	req.OwnerID = middleware.OwnerFromContext(c.Request().Context())

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	match, err := h.duplicateService.CheckDuplicate(c.Request().Context(), req)
	if err != nil {
		return http.RestServiceErrorResponse(c, err)
	}

	res := models.CheckDuplicateResponse{
		Kind:        "duplicateCheck",
		IsDuplicate: match != nil,
	}
	if match != nil {
		matchRes := match.ToModelResponse()
		res.Match = &matchRes
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, res)
}

package accounts

import (
	"errors"
	nethttp "net/http"

	"github.com/ezfinancial/go-entry-engine/internal/common"
	"github.com/ezfinancial/go-entry-engine/internal/common/http"
	"github.com/ezfinancial/go-entry-engine/internal/common/http/middleware"
	"github.com/ezfinancial/go-entry-engine/internal/common/validation"
	"github.com/ezfinancial/go-entry-engine/internal/models"
	"github.com/ezfinancial/go-entry-engine/internal/services"

	"github.com/labstack/echo/v4"
)

type accountsHandler struct {
	accountService services.AccountService
}

// New account handler will initialize the accounts/ resources endpoint
func New(app *echo.Group, accountSvc services.AccountService) {
	handler := accountsHandler{
		accountService: accountSvc,
	}
	api := app.Group("/accounts")
	api.GET("", handler.getAccountsList)
	api.GET("/:accountId", handler.getAccountByID)
}

// getAccountsList reads the owner's chart of accounts, optionally
// narrowed to one account type.
func (h *accountsHandler) getAccountsList(c echo.Context) error {
	var req models.GetAccountsRequest

	if err := c.Bind(&req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}
	req.OwnerID = middleware.OwnerFromContext(c.Request().Context())

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	accounts, err := h.accountService.GetList(c.Request().Context(), req)
	if err != nil {
		return http.RestServiceErrorResponse(c, err)
	}

	contents := make([]models.AccountResponse, 0, len(accounts))
	for _, acc := range accounts {
		contents = append(contents, acc.ToModelResponse())
	}

	return http.RestSuccessResponseListWithTotalRows(c, contents, len(contents))
}

func (h *accountsHandler) getAccountByID(c echo.Context) error {
	ownerID := middleware.OwnerFromContext(c.Request().Context())
	accountID := c.Param("accountId")

	acc, err := h.accountService.GetOneByID(c.Request().Context(), ownerID, accountID)
	if err != nil {
		if errors.Is(err, common.ErrDataNotFound) {
			return http.RestErrorResponse(c, nethttp.StatusNotFound, models.GetErrMap(models.ErrKeyAccountNotFound))
		}
		return http.RestServiceErrorResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, acc.ToModelResponse())
}

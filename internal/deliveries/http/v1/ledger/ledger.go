package ledger

import (
	nethttp "net/http"

	"github.com/ezfinancial/go-entry-engine/internal/common/http"
	"github.com/ezfinancial/go-entry-engine/internal/common/http/middleware"
	"github.com/ezfinancial/go-entry-engine/internal/services"

	"github.com/labstack/echo/v4"
)

type ledgerHandler struct {
	ledgerService services.LedgerService
}

// New ledger handler will initialize the ledger/ resources endpoint
func New(app *echo.Group, ledgerSvc services.LedgerService) {
	handler := ledgerHandler{
		ledgerService: ledgerSvc,
	}
	api := app.Group("/ledger")
	api.GET("/entries/:entryId", handler.getLedgerEntry)
}

// getLedgerEntry reads one posted entry with both of its lines.
func (h *ledgerHandler) getLedgerEntry(c echo.Context) error {
	ownerID := middleware.OwnerFromContext(c.Request().Context())
	entryID := c.Param("entryId")

	fe, err := h.ledgerService.GetEntry(c.Request().Context(), ownerID, entryID)
	if err != nil {
		return http.RestServiceErrorResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, fe.ToModelResponse())
}

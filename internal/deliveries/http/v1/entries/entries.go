package entries

import (
	nethttp "net/http"

	"github.com/ezfinancial/go-entry-engine/internal/common/http"
	"github.com/ezfinancial/go-entry-engine/internal/common/http/middleware"
	"github.com/ezfinancial/go-entry-engine/internal/common/validation"
	"github.com/ezfinancial/go-entry-engine/internal/models"
	"github.com/ezfinancial/go-entry-engine/internal/services"

	"github.com/labstack/echo/v4"
)

// defaultPageSize mirrors the approval service's page size so the
// pagination envelope agrees with the rows actually fetched.
const defaultPageSize = 20

type entriesHandler struct {
	proposalService services.ProposalService
	approvalService services.ApprovalService
	rankerService   services.RankerService
}

// New entries handler will initialize the entries/ resources endpoint
func New(
	app *echo.Group,
	proposalSvc services.ProposalService,
	approvalSvc services.ApprovalService,
	rankerSvc services.RankerService,
	m middleware.AppMiddleware,
) {
	handler := entriesHandler{
		proposalService: proposalSvc,
		approvalService: approvalSvc,
		rankerService:   rankerSvc,
	}
	api := app.Group("/entries")
	api.POST("/propose", handler.proposeEntry)
	api.POST("/bulk-approve", handler.bulkApprove)
	api.POST("/bulk-reject", handler.bulkReject)
	api.GET("", handler.getEntriesList)
	api.GET("/:entryId", handler.getEntryByID)
	api.GET("/:entryId/alternatives", handler.getAlternatives)
	api.POST("/:entryId/approve", handler.approveEntry, m.CheckIdempotentRequest())
	api.POST("/:entryId/reject", handler.rejectEntry)
}

// proposeEntry builds or refreshes the pending proposal for a
// transaction. Unknown transaction ids are stored as manual transactions
// first, so ad-hoc entries flow through the same pipeline.
func (h *entriesHandler) proposeEntry(c echo.Context) error {
	var req models.ProposeEntryRequest

	if err := c.Bind(&req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	ownerID := middleware.OwnerFromContext(c.Request().Context())
	en, err := h.proposalService.Propose(c.Request().Context(), ownerID, req)
	if err != nil {
		return http.RestServiceErrorResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusCreated, en.ToModelResponse())
}

func (h *entriesHandler) getEntriesList(c echo.Context) error {
	var req models.GetEntriesRequest

	if err := c.Bind(&req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}
	req.OwnerID = middleware.OwnerFromContext(c.Request().Context())

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	// reject malformed cursors before hitting the service
	for _, cursor := range []string{req.NextCursor, req.PrevCursor} {
		if cursor == "" {
			continue
		}
		if _, err := models.DecodeEntryCursor(cursor); err != nil {
			return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
		}
	}

	entries, total, err := h.approvalService.GetList(c.Request().Context(), req)
	if err != nil {
		return http.RestServiceErrorResponse(c, err)
	}

	limit := req.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}

	return http.RestSuccessResponseCursorPagination[models.ProposedEntryResponse](c, entries, limit+1, total)
}

func (h *entriesHandler) getEntryByID(c echo.Context) error {
	ownerID := middleware.OwnerFromContext(c.Request().Context())
	entryID := c.Param("entryId")

	en, err := h.approvalService.GetByID(c.Request().Context(), ownerID, entryID)
	if err != nil {
		return http.RestServiceErrorResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, en.ToModelResponse())
}

// getAlternatives returns the ranked alternative account pairings for a
// pending entry. Terminal entries always come back empty.
func (h *entriesHandler) getAlternatives(c echo.Context) error {
	ownerID := middleware.OwnerFromContext(c.Request().Context())
	entryID := c.Param("entryId")

	alternatives, err := h.rankerService.RankAlternatives(c.Request().Context(), ownerID, entryID)
	if err != nil {
		return http.RestServiceErrorResponse(c, err)
	}

	res := models.EntryAlternativesResponse{
		Kind:         "entryAlternatives",
		EntryID:      entryID,
		Alternatives: make([]models.EntryAlternativeResponse, 0, len(alternatives)),
	}
	for _, alt := range alternatives {
		res.Alternatives = append(res.Alternatives, alt.ToAlternativeResponse())
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, res)
}

// approveEntry flips a pending entry to approved and returns the posted
// final entry. Approve-time edits ride along in the body.
func (h *entriesHandler) approveEntry(c echo.Context) error {
	var req models.ApproveEntryRequest

	if err := c.Bind(&req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	ownerID := middleware.OwnerFromContext(c.Request().Context())
	entryID := c.Param("entryId")

	fe, err := h.approvalService.Approve(c.Request().Context(), ownerID, entryID, req, req.ApprovedBy)
	if err != nil {
		return http.RestServiceErrorResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, fe.ToModelResponse())
}

func (h *entriesHandler) rejectEntry(c echo.Context) error {
	var req models.RejectEntryRequest

	if err := c.Bind(&req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	ownerID := middleware.OwnerFromContext(c.Request().Context())
	entryID := c.Param("entryId")

	en, err := h.approvalService.Reject(c.Request().Context(), ownerID, entryID, req)
	if err != nil {
		return http.RestServiceErrorResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, en.ToModelResponse())
}

func (h *entriesHandler) bulkApprove(c echo.Context) error {
	var req models.BulkEntryRequest

	if err := c.Bind(&req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	ownerID := middleware.OwnerFromContext(c.Request().Context())
	outcomes, err := h.approvalService.BulkApprove(c.Request().Context(), ownerID, req.IDs, req.ApprovedBy)
	if err != nil {
		return http.RestServiceErrorResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, models.BulkOutcomeResponse{
		Kind:     "bulkOutcome",
		Outcomes: outcomes,
	})
}

func (h *entriesHandler) bulkReject(c echo.Context) error {
	var req models.BulkEntryRequest

	if err := c.Bind(&req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	ownerID := middleware.OwnerFromContext(c.Request().Context())
	outcomes, err := h.approvalService.BulkReject(c.Request().Context(), ownerID, req.IDs)
	if err != nil {
		return http.RestServiceErrorResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, models.BulkOutcomeResponse{
		Kind:     "bulkOutcome",
		Outcomes: outcomes,
	})
}

package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	request "smeta_admin/internal/adapter/http/dto/request"
	response "smeta_admin/internal/adapter/http/dto/response"
	"smeta_admin/internal/infrastructure/backend"
	"smeta_admin/internal/usecase"
	"smeta_admin/pkg"
)

var (
	errInvalidEditorPayload = pkg.NewDomainErrorSimple("INVALID_EDITOR_INPUT", "Invalid editor payload", http.StatusBadRequest)
	errInvalidItemID        = pkg.NewDomainErrorSimple("INVALID_ITEM_ID", "Item id must be a positive number", http.StatusBadRequest)
)

// EstimateEditorHandler exposes the estimate editor sessions. Every
// successful call answers with the complete editor state so the client never
// has to reconcile partial updates.

type EstimateEditorHandler struct {
	usecase usecase.IEstimateEditorUseCase
}

func NewEstimateEditorHandler(uc usecase.IEstimateEditorUseCase) *EstimateEditorHandler {
	return &EstimateEditorHandler{usecase: uc}
}

// OpenSession loads a project's estimate view and starts an editor session.
func (h *EstimateEditorHandler) OpenSession(c *gin.Context) {
	var payload request.OpenSessionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEditorPayload.HTTPStatus, errInvalidEditorPayload.ToHTTPError())
		return
	}

	snap, err := h.usecase.Open(c.Request.Context(), payload.ProjectID)
	if err != nil {
		appErr := mapEditorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromSnapshot(snap))
}

func (h *EstimateEditorHandler) GetSession(c *gin.Context) {
	snap, err := h.usecase.Get(c.Param("session_id"))
	if err != nil {
		appErr := mapEditorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSnapshot(snap))
}

// CloseSession tears the session down, discarding unsaved edits.
func (h *EstimateEditorHandler) CloseSession(c *gin.Context) {
	if err := h.usecase.Close(c.Param("session_id")); err != nil {
		appErr := mapEditorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *EstimateEditorHandler) CreateEstimate(c *gin.Context) {
	var payload request.CreateEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEditorPayload.HTTPStatus, errInvalidEditorPayload.ToHTTPError())
		return
	}

	snap, err := h.usecase.CreateEstimate(c.Request.Context(), c.Param("session_id"), payload.Title, payload.Currency, payload.Notes)
	if err != nil {
		appErr := mapEditorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromSnapshot(snap))
}

func (h *EstimateEditorHandler) AddItem(c *gin.Context) {
	var payload request.AddItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEditorPayload.HTTPStatus, errInvalidEditorPayload.ToHTTPError())
		return
	}

	snap, err := h.usecase.AddItem(c.Request.Context(), c.Param("session_id"), payload.ToFields())
	if err != nil {
		appErr := mapEditorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromSnapshot(snap))
}

func (h *EstimateEditorHandler) DeleteItem(c *gin.Context) {
	itemID, ok := itemIDParam(c)
	if !ok {
		return
	}

	snap, err := h.usecase.DeleteItem(c.Request.Context(), c.Param("session_id"), itemID)
	if err != nil {
		appErr := mapEditorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSnapshot(snap))
}

// SetField buffers one field edit without touching the backend.
func (h *EstimateEditorHandler) SetField(c *gin.Context) {
	itemID, ok := itemIDParam(c)
	if !ok {
		return
	}

	var payload request.SetFieldRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEditorPayload.HTTPStatus, errInvalidEditorPayload.ToHTTPError())
		return
	}

	snap, err := h.usecase.SetItemField(c.Param("session_id"), itemID, payload.Field, payload.Value)
	if err != nil {
		appErr := mapEditorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSnapshot(snap))
}

// SaveItem pushes the item's buffered diff to the backend.
func (h *EstimateEditorHandler) SaveItem(c *gin.Context) {
	itemID, ok := itemIDParam(c)
	if !ok {
		return
	}

	snap, err := h.usecase.SaveItem(c.Request.Context(), c.Param("session_id"), itemID)
	if err != nil {
		appErr := mapEditorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSnapshot(snap))
}

// ToggleHistory opens or closes the item's audit panel.
func (h *EstimateEditorHandler) ToggleHistory(c *gin.Context) {
	itemID, ok := itemIDParam(c)
	if !ok {
		return
	}

	snap, err := h.usecase.ToggleHistory(c.Request.Context(), c.Param("session_id"), itemID)
	if err != nil {
		appErr := mapEditorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSnapshot(snap))
}

func itemIDParam(c *gin.Context) (int64, bool) {
	itemID, err := strconv.ParseInt(c.Param("item_id"), 10, 64)
	if err != nil || itemID <= 0 {
		c.JSON(errInvalidItemID.HTTPStatus, errInvalidItemID.ToHTTPError())
		return 0, false
	}
	return itemID, true
}

func mapEditorError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProjectID),
		errors.Is(err, usecase.ErrInvalidMaterialName),
		errors.Is(err, usecase.ErrUnknownField),
		errors.Is(err, usecase.ErrNotANumber),
		errors.Is(err, usecase.ErrNothingToSave):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Editor session not found or expired", http.StatusNotFound)
	case errors.Is(err, usecase.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Estimate item not found", http.StatusNotFound)
	case errors.Is(err, backend.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEstimateExists):
		return pkg.NewDomainErrorSimple("ESTIMATE_ALREADY_EXISTS", "Estimate already exists for this project", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoEstimate):
		return pkg.NewDomainErrorSimple("NO_ESTIMATE", "Project has no estimate yet", http.StatusConflict)
	case errors.Is(err, usecase.ErrSaveInFlight):
		return pkg.NewDomainErrorSimple("SAVE_IN_FLIGHT", "A save is already in flight for this item", http.StatusConflict)
	case backend.IsUnauthorized(err):
		return errInvalidToken
	case backend.IsForbidden(err):
		return errNotAllowed
	default:
		return mapBackendError(err)
	}
}

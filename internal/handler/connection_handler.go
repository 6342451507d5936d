package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "dashboard/internal/errors"
	"dashboard/internal/service"
)

// ConnectionHandler handles connection endpoints.
type ConnectionHandler struct {
	connService service.ConnectionService
}

// NewConnectionHandler creates a new connection handler.
func NewConnectionHandler(connService service.ConnectionService) *ConnectionHandler {
	return &ConnectionHandler{connService: connService}
}

// CreateConnectionRequest represents a connection creation request.
type CreateConnectionRequest struct {
	Name     string `json:"name" validate:"required"`
	Location string `json:"location" validate:"required"`
}

// ListConnections godoc
// @Summary List the authenticated user's connections newest-first
// @Tags connections
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Connection
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /connections [get]
func (h *ConnectionHandler) ListConnections(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return respondError(err)
	}

	conns, err := h.connService.ListConnections(c.Request().Context(), userID)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, conns)
}

// CreateConnection godoc
// @Summary Create a connection; the location is geocoded best-effort
// @Tags connections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateConnectionRequest true "Connection payload"
// @Success 201 {object} model.Connection
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /connections [post]
func (h *ConnectionHandler) CreateConnection(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return respondError(err)
	}

	var req CreateConnectionRequest
	if err := c.Bind(&req); err != nil {
		return bindError()
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	conn, err := h.connService.CreateConnection(c.Request().Context(), userID, req.Name, req.Location)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusCreated, conn)
}

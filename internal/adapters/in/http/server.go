// Package http exposes the shipment tracking operations over a REST API.
// Handlers translate between HTTP and the application layer: they parse and
// validate transport input, dispatch commands and queries, and map domain
// errors to status codes.
package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"tracker/internal/core/application/usecases/commands"
	"tracker/internal/core/application/usecases/queries"
	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/shipment"
	"tracker/internal/core/ports"
	"tracker/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createShipmentHandler commands.CreateShipmentCommandHandler
	updateStatusHandler   commands.UpdateShipmentStatusCommandHandler
	deleteShipmentHandler commands.DeleteShipmentCommandHandler

	// Query handlers
	getShipmentHandler     queries.GetShipmentQueryHandler
	getByTrackingHandler   queries.GetShipmentByTrackingNumberQueryHandler
	getByStatusHandler     queries.GetShipmentsByStatusQueryHandler
	getOverdueHandler      queries.GetOverdueShipmentsQueryHandler
	getAllShipmentsHandler queries.GetAllShipmentsQueryHandler

	tokenProvider ports.TokenProvider
	logger        *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
// Mutations are logged with the authenticated caller for auditability.
func NewServer(
	createShipmentHandler commands.CreateShipmentCommandHandler,
	updateStatusHandler commands.UpdateShipmentStatusCommandHandler,
	deleteShipmentHandler commands.DeleteShipmentCommandHandler,
	getShipmentHandler queries.GetShipmentQueryHandler,
	getByTrackingHandler queries.GetShipmentByTrackingNumberQueryHandler,
	getByStatusHandler queries.GetShipmentsByStatusQueryHandler,
	getOverdueHandler queries.GetOverdueShipmentsQueryHandler,
	getAllShipmentsHandler queries.GetAllShipmentsQueryHandler,
	tokenProvider ports.TokenProvider,
	logger *slog.Logger,
) *Server {
	return &Server{
		createShipmentHandler:  createShipmentHandler,
		updateStatusHandler:    updateStatusHandler,
		deleteShipmentHandler:  deleteShipmentHandler,
		getShipmentHandler:     getShipmentHandler,
		getByTrackingHandler:   getByTrackingHandler,
		getByStatusHandler:     getByStatusHandler,
		getOverdueHandler:      getOverdueHandler,
		getAllShipmentsHandler: getAllShipmentsHandler,
		tokenProvider:          tokenProvider,
		logger:                 logger,
	}
}

// RegisterRoutes wires all endpoints onto the echo instance. Shipment routes
// require a valid bearer token; auth and health routes do not.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	authGroup := e.Group("/api/v1/auth")
	authGroup.POST("/login", s.Login)
	authGroup.GET("/validate", s.ValidateToken)

	shipments := e.Group("/api/v1/shipments", BearerAuth(s.tokenProvider))
	shipments.POST("", s.CreateShipment)
	shipments.GET("", s.GetShipments)
	shipments.GET("/overdue", s.GetOverdueShipments)
	shipments.GET("/status/:status", s.GetShipmentsByStatus)
	shipments.GET("/track/:trackingNumber", s.TrackShipment)
	shipments.GET("/:id", s.GetShipment)
	shipments.PUT("/:id/status", s.UpdateShipmentStatus)
	shipments.DELETE("/:id", s.DeleteShipment)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Login handles POST /api/v1/auth/login - exchanges credentials for a token.
func (s *Server) Login(ctx echo.Context) error {
	var req LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	token, err := s.tokenProvider.Authenticate(ctx.Request().Context(), req.Username, req.Password)
	if err != nil {
		return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    http.StatusUnauthorized,
			Message: "Invalid credentials",
		})
	}

	return ctx.JSON(http.StatusOK, TokenResponse{Token: token})
}

// ValidateToken handles GET /api/v1/auth/validate - checks a bearer token.
func (s *Server) ValidateToken(ctx echo.Context) error {
	header := ctx.Request().Header.Get(echo.HeaderAuthorization)
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    http.StatusUnauthorized,
			Message: "Missing bearer token",
		})
	}

	identity, err := s.tokenProvider.Validate(ctx.Request().Context(), token)
	if err != nil {
		return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    http.StatusUnauthorized,
			Message: "Invalid or expired token",
		})
	}

	return ctx.JSON(http.StatusOK, ValidateResponse{Username: identity})
}

// CreateShipment handles POST /api/v1/shipments - registers a new shipment.
func (s *Server) CreateShipment(ctx echo.Context) error {
	var req CreateShipmentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateShipmentCommand(
		req.Origin, req.Destination, req.Description, req.EstimatedDelivery)
	if err != nil {
		return badRequest(ctx, "Invalid shipment data: "+err.Error())
	}

	created, err := s.createShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	s.logger.InfoContext(ctx.Request().Context(), "Shipment created",
		"shipmentId", created.ID().String(),
		"trackingNumber", created.TrackingNumber().String(),
		"user", callerIdentity(ctx),
	)

	return ctx.JSON(http.StatusCreated, shipmentResponseFromAggregate(created))
}

// GetShipments handles GET /api/v1/shipments - lists shipments page by page.
// Accepts optional page and pageSize query parameters.
func (s *Server) GetShipments(ctx echo.Context) error {
	page, err := intQueryParam(ctx, "page", 1)
	if err != nil {
		return badRequest(ctx, "Invalid page parameter")
	}

	pageSize, err := intQueryParam(ctx, "pageSize", queries.DefaultPageSize)
	if err != nil {
		return badRequest(ctx, "Invalid pageSize parameter")
	}

	query, err := queries.NewGetAllShipmentsQuery(page, pageSize)
	if err != nil {
		return badRequest(ctx, "Invalid paging: "+err.Error())
	}

	shipments, err := s.getAllShipmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shipmentResponsesFromReadModels(shipments))
}

// GetShipment handles GET /api/v1/shipments/:id - retrieves one shipment.
func (s *Server) GetShipment(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid shipment id")
	}

	query, err := queries.NewGetShipmentQuery(id)
	if err != nil {
		return badRequest(ctx, "Invalid shipment id")
	}

	resp, err := s.getShipmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shipmentResponseFromReadModel(resp))
}

// TrackShipment handles GET /api/v1/shipments/track/:trackingNumber - the
// public lookup by tracking number.
func (s *Server) TrackShipment(ctx echo.Context) error {
	trackingNumber, err := shipment.NewTrackingNumber(ctx.Param("trackingNumber"))
	if err != nil {
		return badRequest(ctx, "Invalid tracking number")
	}

	query, err := queries.NewGetShipmentByTrackingNumberQuery(trackingNumber)
	if err != nil {
		return badRequest(ctx, "Invalid tracking number")
	}

	resp, err := s.getByTrackingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shipmentResponseFromReadModel(resp))
}

// UpdateShipmentStatus handles PUT /api/v1/shipments/:id/status - moves a
// shipment to a new status, subject to the transition policy.
func (s *Server) UpdateShipmentStatus(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid shipment id")
	}

	var req UpdateStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := shipment.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, "Unknown status: "+req.Status)
	}

	cmd, err := commands.NewUpdateShipmentStatusCommand(id, status)
	if err != nil {
		return badRequest(ctx, "Invalid status update: "+err.Error())
	}

	updated, err := s.updateStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	s.logger.InfoContext(ctx.Request().Context(), "Shipment status updated",
		"shipmentId", updated.ID().String(),
		"status", updated.Status().String(),
		"user", callerIdentity(ctx),
	)

	return ctx.JSON(http.StatusOK, shipmentResponseFromAggregate(updated))
}

// DeleteShipment handles DELETE /api/v1/shipments/:id - permanently removes a
// shipment.
func (s *Server) DeleteShipment(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid shipment id")
	}

	cmd, err := commands.NewDeleteShipmentCommand(id)
	if err != nil {
		return badRequest(ctx, "Invalid shipment id")
	}

	if err = s.deleteShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	s.logger.InfoContext(ctx.Request().Context(), "Shipment deleted",
		"shipmentId", id.String(),
		"user", callerIdentity(ctx),
	)

	return ctx.NoContent(http.StatusNoContent)
}

// GetShipmentsByStatus handles GET /api/v1/shipments/status/:status.
func (s *Server) GetShipmentsByStatus(ctx echo.Context) error {
	status, err := shipment.StatusFromString(ctx.Param("status"))
	if err != nil {
		return badRequest(ctx, "Unknown status: "+ctx.Param("status"))
	}

	query, err := queries.NewGetShipmentsByStatusQuery(status)
	if err != nil {
		return badRequest(ctx, "Invalid status")
	}

	shipments, err := s.getByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shipmentResponsesFromReadModels(shipments))
}

// GetOverdueShipments handles GET /api/v1/shipments/overdue - lists shipments
// past their estimated delivery that are still in flight.
func (s *Server) GetOverdueShipments(ctx echo.Context) error {
	query, err := queries.NewGetOverdueShipmentsQuery(time.Now().UTC())
	if err != nil {
		return domainError(ctx, err)
	}

	shipments, err := s.getOverdueHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shipmentResponsesFromReadModels(shipments))
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// domainError maps application and domain errors to HTTP status codes.
func domainError(ctx echo.Context, err error) error {
	var transitionErr *shipment.InvalidTransitionError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.As(err, &transitionErr),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}

func intQueryParam(ctx echo.Context, name string, fallback int) (int, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}

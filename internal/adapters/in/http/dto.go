package http

import (
	"time"

	"tracker/internal/core/application/usecases/queries"
	"tracker/internal/core/domain/model/shipment"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateShipmentRequest is the body of POST /api/v1/shipments.
type CreateShipmentRequest struct {
	Origin            string     `json:"origin"`
	Destination       string     `json:"destination"`
	Description       string     `json:"description,omitempty"`
	EstimatedDelivery *time.Time `json:"estimatedDelivery,omitempty"`
}

// UpdateStatusRequest is the body of PUT /api/v1/shipments/:id/status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// LoginRequest is the body of POST /api/v1/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse carries a freshly issued bearer token.
type TokenResponse struct {
	Token string `json:"token"`
}

// ValidateResponse reports the identity a valid token belongs to.
type ValidateResponse struct {
	Username string `json:"username"`
}

// ShipmentResponse is the JSON representation of a shipment returned by all
// shipment endpoints.
type ShipmentResponse struct {
	ID                string    `json:"id"`
	TrackingNumber    string    `json:"trackingNumber"`
	Origin            string    `json:"origin"`
	Destination       string    `json:"destination"`
	Description       string    `json:"description,omitempty"`
	Status            string    `json:"status"`
	StatusDisplay     string    `json:"statusDisplay,omitempty"`
	EstimatedDelivery time.Time `json:"estimatedDelivery"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// shipmentResponseFromAggregate maps a domain aggregate to its JSON form.
// Used on the command paths, which return the mutated aggregate.
func shipmentResponseFromAggregate(aggregate *shipment.Shipment) ShipmentResponse {
	return ShipmentResponse{
		ID:                aggregate.ID().String(),
		TrackingNumber:    aggregate.TrackingNumber().String(),
		Origin:            aggregate.Origin(),
		Destination:       aggregate.Destination(),
		Description:       aggregate.Description(),
		Status:            aggregate.Status().String(),
		StatusDisplay:     aggregate.Status().DisplayName(),
		EstimatedDelivery: aggregate.EstimatedDelivery(),
		CreatedAt:         aggregate.CreatedAt(),
		UpdatedAt:         aggregate.UpdatedAt(),
	}
}

// shipmentResponseFromReadModel maps a query read model to its JSON form.
func shipmentResponseFromReadModel(model queries.ShipmentResponse) ShipmentResponse {
	return ShipmentResponse{
		ID:                model.ID.String(),
		TrackingNumber:    model.TrackingNumber,
		Origin:            model.Origin,
		Destination:       model.Destination,
		Description:       model.Description,
		Status:            model.Status,
		StatusDisplay:     model.StatusDisplay,
		EstimatedDelivery: model.EstimatedDelivery,
		CreatedAt:         model.CreatedAt,
		UpdatedAt:         model.UpdatedAt,
	}
}

func shipmentResponsesFromReadModels(models []queries.ShipmentResponse) []ShipmentResponse {
	responses := make([]ShipmentResponse, len(models))
	for i, model := range models {
		responses[i] = shipmentResponseFromReadModel(model)
	}
	return responses
}

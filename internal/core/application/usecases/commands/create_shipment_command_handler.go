package commands

import (
	"context"
	"log/slog"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/shipment"
	"tracker/internal/core/ports"
)

// CreateShipmentCommandHandler handles the business logic for shipment creation.
// Assigns a fresh identifier and tracking number, persists the new shipment in
// its initial Created status, and publishes a SHIPMENT_CREATED event after the
// transaction commits.
//
// A tracking number collision surfaces as errs.ObjectAlreadyExistsError from
// the repository; callers treat it as a retryable creation failure rather than
// regenerating inside the handler.
type CreateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewCreateShipmentCommandHandler creates a handler for shipment creation.
// Requires a ShipmentUoWFactory for transactional persistence and an
// EventPublisher for post-commit notifications.
func NewCreateShipmentCommandHandler(
	uowFactory ShipmentUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle processes the shipment creation command.
// All field validation happens before any persistence attempt. On successful
// commit exactly one SHIPMENT_CREATED event is published with the full
// snapshot; a publish failure is logged and never fails the request, since
// the mutation is already committed.
func (h *CreateShipmentCommandHandler) Handle(
	ctx context.Context,
	cmd CreateShipmentCommand,
) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := shipment.NewShipment(
		kernel.NewUUID(),
		shipment.GenerateTrackingNumber(),
		cmd.Origin(),
		cmd.Destination(),
		cmd.Description(),
		cmd.EstimatedDelivery(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ShipmentRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	publishEvent(ctx, h.publisher, h.logger,
		ports.NewShipmentSnapshotEvent(ports.EventShipmentCreated, aggregate))

	return aggregate, nil
}

// publishEvent makes the single post-commit publish attempt for a mutation.
// Delivery is at-least-once and best-effort: a failure is surfaced to the
// operational log and never propagated, because the state change has already
// been committed.
func publishEvent(ctx context.Context, publisher ports.EventPublisher, logger *slog.Logger, event ports.ShipmentEvent) {
	if err := publisher.Publish(ctx, event); err != nil {
		logger.ErrorContext(ctx, "Failed to publish shipment event",
			"eventType", event.EventType,
			"error", err,
		)
	}
}

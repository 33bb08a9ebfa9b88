package commands

import (
	"context"
	"log/slog"

	"tracker/internal/core/ports"
)

// DeleteShipmentCommandHandler handles permanent shipment removal.
// After the delete commits, a SHIPMENT_DELETED event carrying only the
// identifier is published, since the record no longer exists.
type DeleteShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewDeleteShipmentCommandHandler creates a handler for shipment deletion.
func NewDeleteShipmentCommandHandler(
	uowFactory ShipmentUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) DeleteShipmentCommandHandler {
	return DeleteShipmentCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle processes the deletion command.
// Fails with errs.ObjectNotFoundError for an unknown id, emitting no event.
func (h *DeleteShipmentCommandHandler) Handle(ctx context.Context, cmd DeleteShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.ShipmentRepository().Delete(ctx, cmd.ShipmentID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	publishEvent(ctx, h.publisher, h.logger,
		ports.NewShipmentDeletedEvent(cmd.ShipmentID().String()))

	return nil
}

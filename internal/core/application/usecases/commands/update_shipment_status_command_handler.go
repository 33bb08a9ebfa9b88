package commands

import (
	"context"
	"log/slog"

	"tracker/internal/core/domain/model/shipment"
	"tracker/internal/core/ports"
)

// UpdateShipmentStatusCommandHandler handles shipment status transitions.
//
// The check-then-mutate sequence is atomic per record: the shipment row is
// loaded under a write lock inside the unit-of-work transaction, so two
// concurrent updates against the same id serialize, and the loser re-evaluates
// the transition policy against the winner's committed status. Updates to
// different shipments proceed independently.
type UpdateShipmentStatusCommandHandler struct {
	uowFactory ShipmentUoWFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewUpdateShipmentStatusCommandHandler creates a handler for status updates.
func NewUpdateShipmentStatusCommandHandler(
	uowFactory ShipmentUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) UpdateShipmentStatusCommandHandler {
	return UpdateShipmentStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle processes the status update command.
// Fails with errs.ObjectNotFoundError for an unknown id and with
// *shipment.InvalidTransitionError when the transition policy forbids the
// move; in both cases nothing is persisted and no event is emitted. On
// successful commit exactly one SHIPMENT_STATUS_UPDATED event is published
// with the updated snapshot.
func (h *UpdateShipmentStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateShipmentStatusCommand,
) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ShipmentRepository()

	aggregate, err := repo.GetForUpdate(ctx, cmd.ShipmentID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.ChangeStatus(cmd.NewStatus()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	publishEvent(ctx, h.publisher, h.logger,
		ports.NewShipmentSnapshotEvent(ports.EventShipmentStatusUpdated, aggregate))

	return aggregate, nil
}

package commands_test

import (
	"errors"
	"testing"

	"tracker/internal/core/application/usecases/commands"
	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/ports"
	"tracker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteShipmentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewDeleteShipmentCommand(id)

	repo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("Delete", mock.Anything, id).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	var published ports.ShipmentEvent
	publisher := new(MockEventPublisher)
	publisher.On("Publish", mock.Anything, eventOfType(ports.EventShipmentDeleted)).
		Run(func(args mock.Arguments) {
			published = args.Get(1).(ports.ShipmentEvent)
		}).
		Return(nil).Once()

	h := commands.NewDeleteShipmentCommandHandler(factory, publisher, testLogger())
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	// deletion events carry only the identifier
	assert.Equal(t, id.String(), published.ShipmentID)
	assert.Nil(t, published.Shipment)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestDeleteShipmentCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewDeleteShipmentCommand(id)

	repo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("Delete", mock.Anything, id).
			Return(errs.NewObjectNotFoundError("shipmentId", id.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	h := commands.NewDeleteShipmentCommandHandler(factory, publisher, testLogger())
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestDeleteShipmentCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.DeleteShipmentCommand{}
	factory := new(MockShipmentUoWFactory)
	publisher := new(MockEventPublisher)
	h := commands.NewDeleteShipmentCommandHandler(factory, publisher, testLogger())
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestDeleteShipmentCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewDeleteShipmentCommand(id)

	repo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("Delete", mock.Anything, id).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	h := commands.NewDeleteShipmentCommandHandler(factory, publisher, testLogger())
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

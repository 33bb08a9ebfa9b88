package shipmentrepo_test

import (
	"context"
	"testing"
	"time"

	"tracker/internal/adapters/out/postgres/shipmentrepo"
	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/shipment"
	"tracker/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// ShipmentRepositoryIntegrationTestSuite provides integration tests for
// GormShipmentRepository using PostgreSQL containers.
type ShipmentRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *shipmentrepo.GormShipmentRepository
	tracker    *MockAggregateTracker
}

func (suite *ShipmentRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	// TranslateError maps the unique constraint violation on tracking_number
	// to gorm.ErrDuplicatedKey, which Add relies on.
	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&shipmentrepo.ShipmentDTO{}))
}

func (suite *ShipmentRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE shipments").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = shipmentrepo.NewGormShipmentRepository(suite.db, suite.tracker)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestAdd_ValidShipment_Success() {
	ctx := context.Background()
	testShipment := suite.createTestShipment()

	suite.tracker.On("TrackAggregate", testShipment.ID(), testShipment).Once()

	err := suite.repository.Add(ctx, testShipment)
	suite.Require().NoError(err)

	suite.assertShipmentCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestAdd_DuplicateTrackingNumber_ReturnsAlreadyExists() {
	ctx := context.Background()
	first := suite.createTestShipment()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	duplicate := suite.createTestShipmentWithTrackingNumber(first.TrackingNumber())

	err := suite.repository.Add(ctx, duplicate)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectAlreadyExists)
	suite.assertShipmentCount(1)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGet_ExistingShipment_RoundTrips() {
	ctx := context.Background()
	testShipment := suite.createTestShipment()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testShipment))

	loaded, err := suite.repository.Get(ctx, testShipment.ID())
	suite.Require().NoError(err)
	suite.True(testShipment.IsEqual(loaded))
	suite.Equal(testShipment.TrackingNumber().String(), loaded.TrackingNumber().String())
	suite.Equal(testShipment.Origin(), loaded.Origin())
	suite.Equal(testShipment.Destination(), loaded.Destination())
	suite.Equal(testShipment.Description(), loaded.Description())
	suite.Equal(testShipment.Status(), loaded.Status())
	suite.WithinDuration(testShipment.EstimatedDelivery(), loaded.EstimatedDelivery(), time.Millisecond)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGet_MissingShipment_ReturnsNotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGetByTrackingNumber_ExistingShipment() {
	ctx := context.Background()
	testShipment := suite.createTestShipment()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testShipment))

	loaded, err := suite.repository.GetByTrackingNumber(ctx, testShipment.TrackingNumber())
	suite.Require().NoError(err)
	suite.True(testShipment.IsEqual(loaded))
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGetByTrackingNumber_Missing_ReturnsNotFound() {
	ctx := context.Background()

	_, err := suite.repository.GetByTrackingNumber(ctx, shipment.GenerateTrackingNumber())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestUpdate_ExistingShipment_PersistsStatusChange() {
	ctx := context.Background()
	testShipment := suite.createTestShipment()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testShipment))

	suite.Require().NoError(testShipment.ChangeStatus(shipment.PickedUp))
	suite.Require().NoError(suite.repository.Update(ctx, testShipment))

	loaded, err := suite.repository.Get(ctx, testShipment.ID())
	suite.Require().NoError(err)
	suite.Equal(shipment.PickedUp, loaded.Status())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestUpdate_MissingShipment_ReturnsNotFound() {
	ctx := context.Background()
	testShipment := suite.createTestShipment()

	err := suite.repository.Update(ctx, testShipment)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGetAllByStatus_FiltersByStatus() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Times(3)
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestShipment()))
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestShipment()))

	inTransit := suite.createTestShipmentWithStatus(shipment.InTransit, time.Now().UTC().Add(24*time.Hour))
	suite.Require().NoError(suite.repository.Add(ctx, inTransit))

	created, err := suite.repository.GetAllByStatus(ctx, shipment.Created)
	suite.Require().NoError(err)
	suite.Len(created, 2)

	transit, err := suite.repository.GetAllByStatus(ctx, shipment.InTransit)
	suite.Require().NoError(err)
	suite.Len(transit, 1)
	suite.True(inTransit.IsEqual(transit[0]))
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGetAllOverdue_ExcludesTerminalAndFuture() {
	ctx := context.Background()
	now := time.Now().UTC()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Times(4)

	overdue := suite.createTestShipmentWithStatus(shipment.InTransit, now.Add(-time.Hour))
	suite.Require().NoError(suite.repository.Add(ctx, overdue))

	onTime := suite.createTestShipmentWithStatus(shipment.InTransit, now.Add(24*time.Hour))
	suite.Require().NoError(suite.repository.Add(ctx, onTime))

	deliveredLate := suite.createTestShipmentWithStatus(shipment.Delivered, now.Add(-time.Hour))
	suite.Require().NoError(suite.repository.Add(ctx, deliveredLate))

	cancelledLate := suite.createTestShipmentWithStatus(shipment.Cancelled, now.Add(-time.Hour))
	suite.Require().NoError(suite.repository.Add(ctx, cancelledLate))

	result, err := suite.repository.GetAllOverdue(ctx, now)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(overdue.IsEqual(result[0]))
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestDelete_ExistingShipment_RemovesRow() {
	ctx := context.Background()
	testShipment := suite.createTestShipment()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testShipment))

	suite.Require().NoError(suite.repository.Delete(ctx, testShipment.ID()))
	suite.assertShipmentCount(0)

	_, err := suite.repository.Get(ctx, testShipment.ID())
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestDelete_MissingShipment_ReturnsNotFound() {
	ctx := context.Background()

	err := suite.repository.Delete(ctx, kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGetForUpdate_InsideTransaction_LoadsShipment() {
	ctx := context.Background()
	testShipment := suite.createTestShipment()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testShipment))

	err := suite.db.Transaction(func(tx *gorm.DB) error {
		txRepo := shipmentrepo.NewGormShipmentRepository(tx, suite.tracker)
		loaded, txErr := txRepo.GetForUpdate(ctx, testShipment.ID())
		if txErr != nil {
			return txErr
		}
		suite.True(testShipment.IsEqual(loaded))
		return nil
	})
	suite.Require().NoError(err)
}

// createTestShipment creates a basic shipment in Created status.
func (suite *ShipmentRepositoryIntegrationTestSuite) createTestShipment() *shipment.Shipment {
	testShipment, err := shipment.NewShipment(
		kernel.NewUUID(),
		shipment.GenerateTrackingNumber(),
		"Warehouse A",
		"Customer B",
		"integration test cargo",
		nil,
	)
	suite.Require().NoError(err)
	return testShipment
}

// createTestShipmentWithStatus restores a shipment in the given status with
// the given estimated delivery.
func (suite *ShipmentRepositoryIntegrationTestSuite) createTestShipmentWithStatus(
	status shipment.Status, estimatedDelivery time.Time,
) *shipment.Shipment {
	now := time.Now().UTC()
	testShipment, err := shipment.RestoreShipment(
		kernel.NewUUID(),
		shipment.GenerateTrackingNumber(),
		"Warehouse A",
		"Customer B",
		"integration test cargo",
		status,
		estimatedDelivery,
		now,
		now,
	)
	suite.Require().NoError(err)
	return testShipment
}

// createTestShipmentWithTrackingNumber restores a shipment reusing an
// existing tracking number.
func (suite *ShipmentRepositoryIntegrationTestSuite) createTestShipmentWithTrackingNumber(
	trackingNumber shipment.TrackingNumber,
) *shipment.Shipment {
	now := time.Now().UTC()
	testShipment, err := shipment.RestoreShipment(
		kernel.NewUUID(),
		trackingNumber,
		"Warehouse A",
		"Customer B",
		"integration test cargo",
		shipment.Created,
		now.Add(72*time.Hour),
		now,
		now,
	)
	suite.Require().NoError(err)
	return testShipment
}

// assertShipmentCount verifies the number of shipments in the database.
func (suite *ShipmentRepositoryIntegrationTestSuite) assertShipmentCount(expected int) {
	var count int64
	suite.Require().NoError(suite.db.Model(&shipmentrepo.ShipmentDTO{}).Count(&count).Error)
	suite.Equal(int64(expected), count)
}

func TestShipmentRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ShipmentRepositoryIntegrationTestSuite))
}

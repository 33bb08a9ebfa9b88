package shipmentrepo

import (
	"context"
	"errors"
	"time"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/shipment"
	"tracker/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormShipmentRepository implements ports.ShipmentRepository using GORM.
type GormShipmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormShipmentRepository creates a new GORM shipment repository.
func NewGormShipmentRepository(db *gorm.DB, tracker aggregateTracker) *GormShipmentRepository {
	return &GormShipmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new shipment to the database.
// A tracking number collision is reported as errs.ObjectAlreadyExistsError;
// the unique constraint on tracking_number is the final arbiter. Requires the
// connection to be opened with gorm.Config{TranslateError: true}.
func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause(
				"trackingNumber", aggregate.TrackingNumber().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing shipment to the database.
func (r *GormShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ShipmentDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("shipmentId", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a shipment by ID.
func (r *GormShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShipmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipmentId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetForUpdate retrieves a shipment by ID while holding a row-level write
// lock. The lock lasts for the remainder of the surrounding transaction, so
// concurrent read-modify-write sequences against the same shipment serialize.
// Call only inside an active unit of work transaction.
func (r *GormShipmentRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShipmentDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipmentId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByTrackingNumber retrieves a shipment by its external tracking number.
func (r *GormShipmentRepository) GetByTrackingNumber(
	ctx context.Context,
	trackingNumber shipment.TrackingNumber,
) (*shipment.Shipment, error) {
	if err := trackingNumber.Validate(); err != nil {
		return nil, err
	}

	var dto ShipmentDTO
	err := r.db.WithContext(ctx).First(&dto, "tracking_number = ?", trackingNumber.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("trackingNumber", trackingNumber.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByStatus retrieves all shipments currently in the given status.
func (r *GormShipmentRepository) GetAllByStatus(
	ctx context.Context,
	status shipment.Status,
) ([]*shipment.Shipment, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	var dtos []ShipmentDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "status = ?", status.String()).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllOverdue retrieves all non-terminal shipments whose estimated delivery
// is strictly before now.
func (r *GormShipmentRepository) GetAllOverdue(ctx context.Context, now time.Time) ([]*shipment.Shipment, error) {
	terminal := shipment.TerminalStatuses()
	terminalNames := make([]string, 0, len(terminal))
	for _, s := range terminal {
		terminalNames = append(terminalNames, s.String())
	}

	var dtos []ShipmentDTO
	err := r.db.WithContext(ctx).
		Where("estimated_delivery < ?", now).
		Where("status NOT IN ?", terminalNames).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// Delete removes a shipment permanently.
func (r *GormShipmentRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ShipmentDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("shipmentId", id.String())
	}

	return nil
}

func toDomainSlice(dtos []ShipmentDTO) ([]*shipment.Shipment, error) {
	shipments := make([]*shipment.Shipment, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		shipments = append(shipments, s)
	}

	return shipments, nil
}

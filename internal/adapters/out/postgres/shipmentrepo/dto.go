// Package shipmentrepo provides data transfer objects and mapping functions
// for shipment persistence. It implements the repository pattern for the
// shipment aggregate, converting between the domain model and its relational
// representation.
package shipmentrepo

import (
	"time"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO represents the database structure for persisting shipment
// aggregates. The tracking number carries a unique constraint, which is the
// final arbiter of tracking number uniqueness; status is stored by its wire
// name and indexed for the status listing queries.
type ShipmentDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	TrackingNumber    string    `gorm:"type:varchar(10);uniqueIndex"`
	Origin            string    `gorm:"type:varchar(100)"`
	Destination       string    `gorm:"type:varchar(100)"`
	Description       string    `gorm:"type:varchar(500)"`
	Status            string    `gorm:"type:varchar(20);index"`
	EstimatedDelivery time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName specifies the database table name for shipment entities.
// Overrides GORM's default naming convention to use "shipments".
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// fromDomain converts a shipment aggregate to its database representation.
func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	return ShipmentDTO{
		ID:                aggregate.ID().Bytes(),
		TrackingNumber:    aggregate.TrackingNumber().String(),
		Origin:            aggregate.Origin(),
		Destination:       aggregate.Destination(),
		Description:       aggregate.Description(),
		Status:            aggregate.Status().String(),
		EstimatedDelivery: aggregate.EstimatedDelivery(),
		CreatedAt:         aggregate.CreatedAt(),
		UpdatedAt:         aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO back to a shipment aggregate using
// RestoreShipment, bypassing creation-time defaulting.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	trackingNumber, err := shipment.NewTrackingNumber(dto.TrackingNumber)
	if err != nil {
		return nil, err
	}

	status, err := shipment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(
		id,
		trackingNumber,
		dto.Origin,
		dto.Destination,
		dto.Description,
		status,
		dto.EstimatedDelivery,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}

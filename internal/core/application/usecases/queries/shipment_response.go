// Package queries contains read operations in the CQRS architecture.
// Query handlers bypass the domain aggregates and read the database directly,
// returning flat response models shaped for the transport layer.
package queries

import (
	"database/sql"
	"time"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentResponse is the read model returned by all shipment queries.
// Status carries the wire name of the current status and StatusDisplay its
// human-readable label.
type ShipmentResponse struct {
	ID                kernel.UUID
	TrackingNumber    string
	Origin            string
	Destination       string
	Description       string
	Status            string
	StatusDisplay     string
	EstimatedDelivery time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// shipmentColumns is the select list every shipment query scans from.
const shipmentColumns = `
		id,
		tracking_number,
		origin,
		destination,
		description,
		status,
		estimated_delivery,
		created_at,
		updated_at`

func scanShipmentRow(rows *sql.Rows) (ShipmentResponse, error) {
	var resp ShipmentResponse
	var id uuid.UUID

	err := rows.Scan(
		&id,
		&resp.TrackingNumber,
		&resp.Origin,
		&resp.Destination,
		&resp.Description,
		&resp.Status,
		&resp.EstimatedDelivery,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if err != nil {
		return ShipmentResponse{}, err
	}

	shipmentID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return ShipmentResponse{}, err
	}
	resp.ID = shipmentID

	if status, statusErr := shipment.StatusFromString(resp.Status); statusErr == nil {
		resp.StatusDisplay = status.DisplayName()
	}

	return resp, nil
}

func scanShipmentRows(rows *sql.Rows) ([]ShipmentResponse, error) {
	shipments := make([]ShipmentResponse, 0)

	for rows.Next() {
		resp, err := scanShipmentRow(rows)
		if err != nil {
			return nil, err
		}
		shipments = append(shipments, resp)
	}

	return shipments, rows.Err()
}

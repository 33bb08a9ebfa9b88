// Package shipment provides domain entities and business logic for shipment
// tracking. It implements the Shipment aggregate root with lifecycle management
// and a finite status-transition policy.
//
// The package includes:
//   - Shipment: The aggregate root that manages shipment identity, properties, and lifecycle
//   - Status: A state machine that enforces valid shipment status transitions
//   - TrackingNumber: A value object for the externally visible shipment identifier
//
// Key business rules:
//   - Shipments must have a valid unique identifier, tracking number, origin, and destination
//   - Status follows the progression Created -> PickedUp -> InTransit -> OutForDelivery -> Delivered,
//     with Delayed reachable from every active state and recoverable back into the flow
//   - Cancellation is allowed from any non-terminal state
//   - Delivered, Returned, and Cancelled are terminal: no further transitions
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package shipment

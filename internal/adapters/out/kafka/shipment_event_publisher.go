// Package kafka publishes shipment lifecycle events to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"tracker/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// shipmentPayload is the wire representation of a shipment snapshot inside an
// event envelope.
type shipmentPayload struct {
	ID                string    `json:"id"`
	TrackingNumber    string    `json:"trackingNumber"`
	Origin            string    `json:"origin"`
	Destination       string    `json:"destination"`
	Description       string    `json:"description,omitempty"`
	Status            string    `json:"status"`
	EstimatedDelivery time.Time `json:"estimatedDelivery"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// eventEnvelope is the JSON document written to the topic. Creation and
// status update events carry the shipment snapshot; deletion events carry
// only the shipment id.
type eventEnvelope struct {
	EventType  string           `json:"eventType"`
	Timestamp  time.Time        `json:"timestamp"`
	Shipment   *shipmentPayload `json:"shipment,omitempty"`
	ShipmentID string           `json:"shipmentId,omitempty"`
}

// ShipmentEventPublisher implements ports.EventPublisher on top of a Kafka
// writer. Messages are keyed by shipment id so all events for one shipment
// land on the same partition in order.
type ShipmentEventPublisher struct {
	writer *kafka.Writer
}

// NewShipmentEventPublisher creates a publisher writing to the given topic.
// RequireOne keeps latency low while still surfacing broker-side failures to
// the caller.
func NewShipmentEventPublisher(brokers []string, topic string) *ShipmentEventPublisher {
	return &ShipmentEventPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		},
	}
}

// Publish writes one event to the topic. Failures are wrapped in
// ports.PublishError; the caller decides whether delivery is best-effort.
func (p *ShipmentEventPublisher) Publish(ctx context.Context, event ports.ShipmentEvent) error {
	msg, err := newMessage(event)
	if err != nil {
		return &ports.PublishError{EventType: event.EventType, Cause: err}
	}

	if err = p.writer.WriteMessages(ctx, msg); err != nil {
		return &ports.PublishError{EventType: event.EventType, Cause: err}
	}

	return nil
}

// Close flushes pending writes and releases the writer's connections.
func (p *ShipmentEventPublisher) Close() error {
	return p.writer.Close()
}

func newMessage(event ports.ShipmentEvent) (kafka.Message, error) {
	envelope := eventEnvelope{
		EventType: event.EventType,
		Timestamp: event.OccurredAt,
	}

	key := event.ShipmentID
	if event.Shipment != nil {
		key = event.Shipment.ID().String()
		envelope.Shipment = &shipmentPayload{
			ID:                event.Shipment.ID().String(),
			TrackingNumber:    event.Shipment.TrackingNumber().String(),
			Origin:            event.Shipment.Origin(),
			Destination:       event.Shipment.Destination(),
			Description:       event.Shipment.Description(),
			Status:            event.Shipment.Status().String(),
			EstimatedDelivery: event.Shipment.EstimatedDelivery(),
			CreatedAt:         event.Shipment.CreatedAt(),
			UpdatedAt:         event.Shipment.UpdatedAt(),
		}
	} else {
		envelope.ShipmentID = event.ShipmentID
	}

	value, err := json.Marshal(envelope)
	if err != nil {
		return kafka.Message{}, err
	}

	return kafka.Message{
		Key:   []byte(key),
		Value: value,
	}, nil
}

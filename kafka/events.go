package kafka

import "time"

// DeliveryEvent represents a delivery lifecycle change published for
// downstream consumers (notifications, analytics).
type DeliveryEvent struct {
	EventID      string    `json:"event_id"`
	EventType    string    `json:"event_type"`
	DeliveryID   string    `json:"delivery_id"`
	SKU          string    `json:"sku"`
	Quantity     int       `json:"quantity"`
	AgentID      string    `json:"agent_id"`
	Status       string    `json:"status"`
	DeliveryDate string    `json:"delivery_date"`
	Timestamp    time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeDeliveryCreated = "delivery.created"
	EventTypeDeliveryUpdated = "delivery.updated"
)

// Kafka topics
const (
	TopicDeliveryEvents = "delivery-events"
)

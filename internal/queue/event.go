// Package queue defines message payloads exchanged over the message broker.
package queue

// NotificationQueueName is the durable queue carrying farmer notification
// events from the API to the background consumer.
const NotificationQueueName = "farmer.notification"

// FarmerNotificationEvent is published when something noteworthy happens to
// a farmer account, currently a successful OTP verification. The consumer
// persists each event as an in-app notification document that the
// dashboard reads back, so the payload carries everything needed to build
// one without querying the primary database.
type FarmerNotificationEvent struct {
	FarmerID  string `json:"farmer_id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Level     string `json:"level"` // info|warning|critical
	CreatedAt string `json:"created_at"`
}

package interfaces

// EventPublisher is the one-way notification sink for committed operations.
// Delivery is best effort; the vault never rolls back on a publish failure.
type EventPublisher interface {
	Publish(topic string, event any) error
}

package interfaces

// EventPublisher emits ledger events to an external stream.
type EventPublisher interface {
	Publish(topic string, event any) error
}

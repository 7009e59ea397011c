package kafka

import "context"

//go:generate mockery --name IProducer

// IProducer defines the interface for Kafka producer.
// Implementations are safe for concurrent use.
type IProducer interface {
	Publish(ctx context.Context, key, value []byte) error
	// PublishJSON encodes v as JSON and publishes it under key.
	PublishJSON(ctx context.Context, key string, v any) error
	Close() error
	HealthCheck() error
}

// NewProducer creates a new synchronous Kafka producer. Returns the interface.
func NewProducer(cfg Config) (IProducer, error) {
	if err := validateProducerConfig(cfg); err != nil {
		return nil, err
	}
	return newProducerImpl(cfg)
}

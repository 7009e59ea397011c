package kafka

import (
	"fmt"
	"sync"

	"webaudit-srv/config"
	"webaudit-srv/pkg/kafka"
)

var (
	producerInstance kafka.IProducer
	producerMu       sync.RWMutex
)

// ConnectProducer creates the audit event producer once. Later calls return the same instance.
func ConnectProducer(cfg config.KafkaConfig) (kafka.IProducer, error) {
	producerMu.Lock()
	defer producerMu.Unlock()

	if producerInstance != nil {
		return producerInstance, nil
	}

	client, err := kafka.NewProducer(kafka.Config{
		Brokers:  cfg.Brokers,
		Topic:    cfg.Topic,
		ClientID: cfg.ClientID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Kafka producer: %w", err)
	}

	producerInstance = client
	return producerInstance, nil
}

// HealthCheck reports whether the producer is usable.
func HealthCheck() error {
	producerMu.RLock()
	defer producerMu.RUnlock()

	if producerInstance == nil {
		return fmt.Errorf("kafka producer not initialized")
	}
	return producerInstance.HealthCheck()
}

// DisconnectProducer flushes and closes the producer.
func DisconnectProducer() error {
	producerMu.Lock()
	defer producerMu.Unlock()

	if producerInstance == nil {
		return nil
	}
	err := producerInstance.Close()
	producerInstance = nil
	return err
}

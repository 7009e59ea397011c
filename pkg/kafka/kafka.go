package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/IBM/sarama"
)

var errProducerClosed = errors.New("kafka: producer is not initialized")

func validateProducerConfig(cfg Config) error {
	if len(cfg.Brokers) == 0 {
		return fmt.Errorf("kafka: at least one broker is required")
	}
	if cfg.Topic == "" {
		return fmt.Errorf("kafka: topic is required")
	}
	return nil
}

func clientID(cfg Config) string {
	if cfg.ClientID == "" {
		return DefaultClientID
	}
	return cfg.ClientID
}

func newSaramaConfig(cfg Config) *sarama.Config {
	config := sarama.NewConfig()
	config.ClientID = clientID(cfg)
	config.Producer.RequiredAcks = sarama.WaitForLocal
	config.Producer.Compression = sarama.CompressionSnappy
	config.Producer.Return.Successes = true
	config.Producer.Retry.Max = ProducerRetryMax
	config.Producer.Timeout = ProducerTimeout
	config.Version = KafkaVersion
	return config
}

func newProducerImpl(cfg Config) (*producerImpl, error) {
	producer, err := sarama.NewSyncProducer(cfg.Brokers, newSaramaConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}
	return &producerImpl{producer: producer, topic: cfg.Topic, source: clientID(cfg)}, nil
}

// Publish sends a message to the configured topic.
// The sync producer cannot be cancelled mid-send; ctx is only checked before sending.
func (p *producerImpl) Publish(ctx context.Context, key, value []byte) error {
	return p.send(ctx, key, value, nil)
}

func (p *producerImpl) send(ctx context.Context, key, value []byte, headers []sarama.RecordHeader) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if p.producer == nil {
		return errProducerClosed
	}
	headers = append(headers, sarama.RecordHeader{Key: []byte(HeaderSource), Value: []byte(p.source)})
	msg := &sarama.ProducerMessage{
		Topic:   p.topic,
		Key:     sarama.ByteEncoder(key),
		Value:   sarama.ByteEncoder(value),
		Headers: headers,
	}
	if _, _, err := p.producer.SendMessage(msg); err != nil {
		return fmt.Errorf("failed to publish message to Kafka: %w", err)
	}
	return nil
}

func (p *producerImpl) PublishJSON(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("kafka: encode message: %w", err)
	}
	return p.send(ctx, []byte(key), data, []sarama.RecordHeader{
		{Key: []byte(HeaderContentType), Value: []byte(contentTypeJSON)},
	})
}

// Close closes the producer.
func (p *producerImpl) Close() error {
	if p.producer != nil {
		return p.producer.Close()
	}
	return nil
}

// HealthCheck verifies the producer is initialized.
func (p *producerImpl) HealthCheck() error {
	if p.producer == nil {
		return errProducerClosed
	}
	return nil
}

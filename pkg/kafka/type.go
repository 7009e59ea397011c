package kafka

import "github.com/IBM/sarama"

// Config configures the audit event producer.
type Config struct {
	Brokers  []string
	Topic    string
	ClientID string
}

type producerImpl struct {
	producer sarama.SyncProducer
	topic    string
	source   string
}

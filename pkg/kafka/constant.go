package kafka

import (
	"time"

	"github.com/IBM/sarama"
)

const (
	ProducerTimeout  = 10 * time.Second
	ProducerRetryMax = 3
	// DefaultClientID is used when Config.ClientID is empty. It is also
	// stamped on every message as the source header.
	DefaultClientID = "webaudit-srv"

	HeaderContentType = "content-type"
	HeaderSource      = "source"
	contentTypeJSON   = "application/json"
)

// KafkaVersion is the protocol version negotiated with the brokers.
var KafkaVersion = sarama.V2_6_0_0

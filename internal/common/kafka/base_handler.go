package kafka

import (
	"context"

	dlqpublisher "github.com/ezfinancial/go-entry-engine/internal/common/dlq_publisher"
	"github.com/ezfinancial/go-entry-engine/internal/common/log"
	"github.com/ezfinancial/go-entry-engine/internal/models"

	"github.com/Shopify/sarama"
)

type BaseHandler struct {
	ClientID  string
	DLQ       dlqpublisher.Publisher
	LogPrefix string
}

func (b *BaseHandler) CreateLogField(msg *sarama.ConsumerMessage) []log.Field {
	return []log.Field{
		log.Time("timestamp", msg.Timestamp),
		log.String("topic", msg.Topic),
		log.String("key", string(msg.Key)),
		log.Int32("partition", msg.Partition),
		log.Int64("offset", msg.Offset),
		log.String("message-claimed", string(msg.Value)),
	}
}

func (b *BaseHandler) Ack(session sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) {
	session.MarkMessage(message, "")
	log.Debug(
		context.Background(),
		b.LogPrefix+"[ACK]",
		log.String("topic", message.Topic),
		log.Int32("partition", message.Partition),
		log.Int64("offset", message.Offset),
	)
}

// Nack hands the message to the DLQ and still marks it consumed so the
// partition is not blocked by a poison message.
func (b *BaseHandler) Nack(ctx context.Context, session sarama.ConsumerGroupSession, message *sarama.ConsumerMessage, causeErr error) {
	logField := b.CreateLogField(message)
	logField = append(logField, log.Err(causeErr))

	err := b.DLQ.Publish(models.FailedMessage{
		Payload:    message.Value,
		Timestamp:  message.Timestamp,
		CauseError: causeErr,
	})

	if err != nil {
		logField = append(logField, log.String("dlq_status", "failed"))
		log.Error(ctx, b.LogPrefix+"[NACK-DLQ-FAILED]", logField...)
	} else {
		logField = append(logField, log.String("dlq_status", "success"))
		log.Info(ctx, b.LogPrefix+"[NACK-DLQ-SUCCESS]", logField...)
	}

	session.MarkMessage(message, "")
	log.Warn(ctx, b.LogPrefix+"[NACK]", logField...)
}

package dlqpublisher

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ezfinancial/go-entry-engine/internal/common/log"
	"github.com/ezfinancial/go-entry-engine/internal/models"

	"github.com/Shopify/sarama"
)

const prefixLogMessage = "[DLQ]"

type Publisher interface {
	Publish(message models.FailedMessage) error
}

type kafkaDlq struct {
	producer sarama.SyncProducer
	topic    string
}

func New(p sarama.SyncProducer, topic string) Publisher {
	return kafkaDlq{p, topic}
}

func (d kafkaDlq) Publish(message models.FailedMessage) (err error) {
	msg, err := d.prepareMessage(message)
	if err != nil {
		log.Error(
			context.Background(),
			prefixLogMessage,
			log.String("status", "prepare kafkaDlq message failed"),
			log.Err(err))
		return err
	}

	_, _, err = d.producer.SendMessage(msg)
	if err != nil {
		log.Error(
			context.Background(),
			prefixLogMessage,
			log.String("status", "publish kafkaDlq failed"),
			log.Err(err))
		return err
	}

	log.Info(context.Background(),
		prefixLogMessage,
		log.String("status", "success publish kafkaDlq message"),
		log.Time("timestamp", message.Timestamp),
		log.String("topic", d.topic),
	)

	return nil
}

func (d kafkaDlq) prepareMessage(message models.FailedMessage) (*sarama.ProducerMessage, error) {
	if message.CauseError != nil && message.Error == "" {
		message.Error = message.CauseError.Error()
	}

	msgByte, err := json.Marshal(message)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	return &sarama.ProducerMessage{
		Topic: d.topic,
		Value: sarama.ByteEncoder(msgByte),
	}, nil
}

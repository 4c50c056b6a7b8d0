package consumer

import (
	"context"
	"fmt"

	dlqpublisher "github.com/ezfinancial/go-entry-engine/internal/common/dlq_publisher"
	"github.com/ezfinancial/go-entry-engine/internal/common/graceful"
	"github.com/ezfinancial/go-entry-engine/internal/common/publisher"
	"github.com/ezfinancial/go-entry-engine/internal/common/retry"
	"github.com/ezfinancial/go-entry-engine/internal/config"
	rawtransaction "github.com/ezfinancial/go-entry-engine/internal/deliveries/consumer/raw_transaction"
	"github.com/ezfinancial/go-entry-engine/internal/repositories"
	"github.com/ezfinancial/go-entry-engine/internal/services"
)

// NewKafkaConsumer builds the consumer named by consumerName together with
// the stoppers for its side resources (DLQ producer).
func NewKafkaConsumer(
	ctx context.Context,
	consumerName string,
	conf config.Config,
	svc *services.Services,
	sqlRepo repositories.SQLRepository,
) (consumerProcess graceful.ProcessStartStopper, stoppers []graceful.ProcessStopper, err error) {
	switch consumerName {
	case "raw_transaction":
		producer, errProducer := publisher.NewKafkaSyncProducer(conf.MessageBroker.KafkaConsumer.Brokers)
		if errProducer != nil {
			err = fmt.Errorf("failed setup kafka dlq publisher : %w", errProducer)
			return
		}

		stoppers = append(stoppers, func(ctx context.Context) error { return producer.Close() })

		dlq := dlqpublisher.New(producer, conf.MessageBroker.KafkaConsumer.TopicDLQ)
		retryer := retry.NewExponentialBackOff(conf.ExponentialBackoff)

		consumerProcess, err = rawtransaction.New(
			ctx,
			conf,
			svc.Duplicate,
			svc.Proposal,
			svc.Approval,
			sqlRepo,
			dlq,
			retryer,
		)
	default:
		err = fmt.Errorf("consumer type name for %s not found", consumerName)
	}

	return
}

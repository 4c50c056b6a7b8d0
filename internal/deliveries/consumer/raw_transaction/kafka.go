package raw_transaction

import (
	"context"

	dlqpublisher "github.com/ezfinancial/go-entry-engine/internal/common/dlq_publisher"
	kafkacommon "github.com/ezfinancial/go-entry-engine/internal/common/kafka"
	"github.com/ezfinancial/go-entry-engine/internal/common/log"
	"github.com/ezfinancial/go-entry-engine/internal/common/retry"
	"github.com/ezfinancial/go-entry-engine/internal/config"
	"github.com/ezfinancial/go-entry-engine/internal/repositories"
	"github.com/ezfinancial/go-entry-engine/internal/services"
)

const logMessage = "[KAFKA-CONSUMER] [RAW-TRANSACTION] "

type Consumer struct {
	*kafkacommon.BaseConsumer
}

func New(
	ctx context.Context,
	cfg config.Config,
	duplicateSvc services.DuplicateService,
	proposalSvc services.ProposalService,
	approvalSvc services.ApprovalService,
	sqlRepo repositories.SQLRepository,
	dlq dlqpublisher.Publisher,
	retryer retry.Retryer,
) (*Consumer, error) {
	handler := NewRawTransactionHandler("", cfg, duplicateSvc, proposalSvc, approvalSvc, sqlRepo, dlq, retryer)

	baseConsumer, err := kafkacommon.NewBaseConsumer(kafkacommon.BaseConsumerConfig{
		Ctx:           ctx,
		Config:        cfg,
		Handler:       handler,
		LogPrefix:     logMessage,
		Topic:         cfg.MessageBroker.KafkaConsumer.Topic,
		ConsumerGroup: cfg.MessageBroker.KafkaConsumer.ConsumerGroup,
	})
	if err != nil {
		return nil, err
	}

	c := &Consumer{BaseConsumer: baseConsumer}

	log.Info(ctx, logMessage, log.String("status", "success init kafka consumer"))

	return c, nil
}

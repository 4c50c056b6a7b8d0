package raw_transaction

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ezfinancial/go-entry-engine/internal/common"
	dlqpublisher "github.com/ezfinancial/go-entry-engine/internal/common/dlq_publisher"
	kafkacommon "github.com/ezfinancial/go-entry-engine/internal/common/kafka"
	"github.com/ezfinancial/go-entry-engine/internal/common/log"
	"github.com/ezfinancial/go-entry-engine/internal/common/retry"
	"github.com/ezfinancial/go-entry-engine/internal/config"
	"github.com/ezfinancial/go-entry-engine/internal/models"
	"github.com/ezfinancial/go-entry-engine/internal/repositories"
	"github.com/ezfinancial/go-entry-engine/internal/services"

	"github.com/Shopify/sarama"
	"github.com/google/uuid"
)

type RawTransactionHandler struct {
	kafkacommon.BaseHandler
	duplicateService services.DuplicateService
	proposalService  services.ProposalService
	approvalService  services.ApprovalService
	sqlRepo          repositories.SQLRepository
	retryer          retry.Retryer
	cfg              config.Config
}

func NewRawTransactionHandler(
	clientId string,
	cfg config.Config,
	duplicateSvc services.DuplicateService,
	proposalSvc services.ProposalService,
	approvalSvc services.ApprovalService,
	sqlRepo repositories.SQLRepository,
	dlq dlqpublisher.Publisher,
	retryer retry.Retryer,
) sarama.ConsumerGroupHandler {
	return &RawTransactionHandler{
		BaseHandler: kafkacommon.BaseHandler{
			ClientID:  clientId,
			DLQ:       dlq,
			LogPrefix: logMessage,
		},
		duplicateService: duplicateSvc,
		proposalService:  proposalSvc,
		approvalService:  approvalSvc,
		sqlRepo:          sqlRepo,
		retryer:          retryer,
		cfg:              cfg,
	}
}

func (h RawTransactionHandler) Setup(session sarama.ConsumerGroupSession) error {
	log.Info(
		context.Background(),
		logMessage+"[SETUP]",
		log.String("member_id", session.MemberID()),
		log.Int32("generation_id", session.GenerationID()),
	)
	return nil
}

func (h RawTransactionHandler) Cleanup(session sarama.ConsumerGroupSession) error {
	log.Info(
		context.Background(),
		logMessage+"[CLEANUP]",
		log.String("member_id", session.MemberID()),
	)
	return nil
}

func (h RawTransactionHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info(
		session.Context(),
		logMessage+"[CONSUME-CLAIM-START]",
		log.String("topic", claim.Topic()),
		log.Int32("partition", claim.Partition()),
		log.Int64("initial_offset", claim.InitialOffset()),
	)

	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				log.Info(session.Context(), logMessage+"[CONSUME-CLAIM-CLOSED]")
				return nil
			}

			ctx := log.SetCorrelationID(session.Context(), uuid.New().String())

			start := time.Now()
			logField := h.CreateLogField(message)

			var (
				lastErr    error
				skipReason error
			)
			operation := func() error {
				err, shouldSkip := h.processMessage(ctx, message)
				if err == nil {
					return nil
				}
				if shouldSkip {
					skipReason = err
					return nil
				}
				lastErr = err
				return err
			}

			err := h.retryer.Retry(ctx, operation, func() error { return lastErr })

			logField = append(logField, log.Duration("response-time", time.Since(start)))

			switch {
			case err != nil:
				logField = append(logField, log.Err(err), log.String("status", "failed"))
				log.Warn(ctx, logMessage+"[PROCESS-FAILED]", logField...)
				h.Nack(ctx, session, message, err)
			case skipReason != nil:
				logField = append(logField, log.Err(skipReason), log.String("status", "skipped"))
				log.Info(ctx, logMessage+"[PROCESS-SKIPPED]", logField...)
				h.Ack(session, message)
			default:
				logField = append(logField, log.String("status", "success"))
				log.Info(ctx, logMessage+"[PROCESS-SUCCESS]", logField...)
				h.Ack(session, message)
			}

		case <-session.Context().Done():
			log.Info(session.Context(), logMessage+"[CONSUME-CLAIM-CONTEXT-DONE]")
			return nil
		}
	}
}

// processMessage returns (error, shouldSkip). shouldSkip means the message
// is acknowledged without going to the DLQ.
func (h RawTransactionHandler) processMessage(ctx context.Context, message *sarama.ConsumerMessage) (error, bool) {
	logMsg := logMessage + "[PROCESS-MESSAGE]"
	logField := h.CreateLogField(message)

	if len(message.Value) == 0 {
		log.Warn(ctx, logMsg, append(logField, log.String("error", "empty message"))...)
		return h.retryer.StopRetryWithErr(fmt.Errorf("empty message received")), false
	}

	var msg models.TransactionMessage
	if err := json.Unmarshal(message.Value, &msg); err != nil {
		log.Warn(ctx, logMsg, append(logField, log.Err(err))...)
		return h.retryer.StopRetryWithErr(fmt.Errorf("error unmarshal json: %w", err)), false
	}

	if msg.TransactionID == "" || msg.OwnerID == "" {
		return fmt.Errorf("transactionId and ownerId are required"), true
	}

	switch msg.Event {
	case models.TransactionEventCreated:
		return h.processCreated(ctx, msg)
	case models.TransactionEventRemoved:
		return h.processRemoved(ctx, msg), false
	default:
		return fmt.Errorf("unhandled event %q", msg.Event), true
	}
}

func (h RawTransactionHandler) processCreated(ctx context.Context, msg models.TransactionMessage) (error, bool) {
	trx, err := h.buildTransaction(msg)
	if err != nil {
		return h.retryer.StopRetryWithErr(err), false
	}

	match, err := h.duplicateService.CheckDuplicateForTransaction(ctx, trx)
	if err != nil {
		return fmt.Errorf("unable to check duplicate: %w", err), false
	}
	if match != nil {
		return fmt.Errorf("duplicate of transaction %s (score %.0f)", match.TransactionID, match.Score), true
	}

	if err := h.sqlRepo.GetRawTransactionRepository().Store(ctx, &trx); err != nil {
		return fmt.Errorf("unable to store transaction: %w", err), false
	}

	en, err := h.proposalService.ProposeForTransaction(ctx, trx)
	if err != nil {
		return fmt.Errorf("unable to propose entry: %w", err), false
	}

	log.Info(ctx, logMessage+"[PROPOSED]",
		log.String("transaction_id", trx.ID),
		log.String("entry_id", en.ID),
		log.Float64("confidence", en.Confidence),
	)

	return nil, false
}

func (h RawTransactionHandler) processRemoved(ctx context.Context, msg models.TransactionMessage) error {
	if err := h.approvalService.RejectPendingForTransaction(ctx, msg.OwnerID, msg.TransactionID); err != nil {
		return fmt.Errorf("unable to reject pending entries: %w", err)
	}

	if err := h.sqlRepo.GetRawTransactionRepository().UpdateStatus(ctx, msg.TransactionID, models.TransactionStatusRemoved); err != nil {
		return fmt.Errorf("unable to flag transaction removed: %w", err)
	}

	return nil
}

func (h RawTransactionHandler) buildTransaction(msg models.TransactionMessage) (models.RawTransaction, error) {
	amount, err := models.NewDecimal(msg.Amount)
	if err != nil {
		return models.RawTransaction{}, fmt.Errorf("%w: %q", common.ErrInvalidAmount, msg.Amount)
	}

	date, err := time.Parse("2006-01-02", msg.Date)
	if err != nil {
		return models.RawTransaction{}, fmt.Errorf("%w: %q", common.ErrInvalidFormatDate, msg.Date)
	}

	source := msg.Source
	if source == "" {
		source = models.TransactionSourceBank
	}

	return models.RawTransaction{
		ID:               msg.TransactionID,
		OwnerID:          msg.OwnerID,
		AccountID:        msg.AccountID,
		Merchant:         msg.Merchant,
		Description:      msg.Description,
		Amount:           amount,
		Currency:         msg.Currency,
		Date:             date,
		Category:         msg.Category,
		Source:           source,
		IsBusiness:       msg.IsBusiness,
		ExternalSourceID: msg.ExternalSourceID,
		Status:           models.TransactionStatusPending,
	}, nil
}

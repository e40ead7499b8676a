package consumer

import (
	"context"
	"encoding/json"

	"go-payroll/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeRunCompleted mencatat ringkasan run yang selesai sebagai notifikasi
// operasional. Murni observasi, tidak menyentuh state.
func ConsumeRunCompleted(
	ctx context.Context,
	reader *kafkago.Reader,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.run_completed")
	log.Info("run completed consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("run completed consumer stopped")
				return
			}
			log.Error("fetch run completed message failed", zap.Error(err))
			continue
		}

		var event events.PayrollRunCompletedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode payroll_run_completed event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit run completed message failed", zap.Error(err))
			continue
		}

		log.Info("payroll run completed",
			zap.String("payroll_run_id", event.PayrollRunID),
			zap.String("organization_id", event.OrganizationID),
			zap.Int("month", event.Month),
			zap.Int("year", event.Year),
			zap.Int("total_employees", event.TotalEmployees),
			zap.Int64("total_net_amount", event.TotalNetAmount),
		)
	}
}

package consumer

import (
	"context"
	"encoding/json"
	"errors"

	"go-payroll/internal/events"
	"go-payroll/internal/payroll"
	payrollerrors "go-payroll/internal/payroll/errors"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumePayslipDelivery adalah delivery sink: render PDF payslip yang baru
// terbit dan catat acknowledgment. Tidak pernah menulis balik ke state
// payroll.
func ConsumePayslipDelivery(
	ctx context.Context,
	reader *kafkago.Reader,
	payrollService payroll.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.payslip_delivery")
	log.Info("payslip delivery consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("payslip delivery consumer stopped")
				return
			}
			log.Error("fetch payslip delivery message failed", zap.Error(err))
			continue
		}

		var event events.PayslipGeneratedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode payslip_generated event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		pdf, err := payrollService.RenderPayslip(ctx, event.OrganizationID, event.PayslipID)
		if err != nil {
			// Payslip yang sudah dihapus bersama run-nya tidak bisa dikirim
			// lagi, jangan diretry selamanya.
			if errors.Is(err, payrollerrors.ErrPayslipNotFound) {
				log.Warn("payslip for delivery no longer exists, skipping",
					zap.String("payslip_id", event.PayslipID),
					zap.String("organization_id", event.OrganizationID),
				)
				_ = reader.CommitMessages(ctx, msg)
				continue
			}

			log.Error("render payslip for delivery failed",
				zap.String("payslip_id", event.PayslipID),
				zap.String("organization_id", event.OrganizationID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit payslip delivery message failed", zap.Error(err))
			continue
		}

		log.Info("payslip delivered",
			zap.String("payslip_id", event.PayslipID),
			zap.String("employee_id", event.EmployeeID),
			zap.String("organization_id", event.OrganizationID),
			zap.Int("pdf_bytes", len(pdf)),
		)
	}
}

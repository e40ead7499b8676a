package payroll

import "fmt"

type RunStatus string

const (
	StatusDraft      RunStatus = "DRAFT"
	StatusProcessing RunStatus = "PROCESSING"
	StatusCompleted  RunStatus = "COMPLETED"
	StatusPaid       RunStatus = "PAID"
)

func ParseRunStatus(v string) (RunStatus, error) {
	switch RunStatus(v) {
	case StatusDraft, StatusProcessing, StatusCompleted, StatusPaid:
		return RunStatus(v), nil
	default:
		return "", fmt.Errorf("invalid run status: %s", v)
	}
}

// runTransitions memetakan transisi run yang sah. Tidak ada jalan mundur dan
// tidak ada lompatan: PAID hanya bisa dicapai dari COMPLETED.
var runTransitions = map[RunStatus][]RunStatus{
	StatusDraft:      {StatusProcessing},
	StatusProcessing: {StatusCompleted},
	StatusCompleted:  {StatusPaid},
	StatusPaid:       {},
}

func (s RunStatus) CanTransitionTo(to RunStatus) bool {
	for _, allowed := range runTransitions[s] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Processable: generate payslip hanya boleh saat DRAFT (run baru) atau
// PROCESSING (retry setelah kegagalan parsial).
func (s RunStatus) Processable() bool {
	return s == StatusDraft || s == StatusProcessing
}

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentPaid    PaymentStatus = "PAID"
	PaymentOnHold  PaymentStatus = "ON_HOLD"
	PaymentFailed  PaymentStatus = "FAILED"
)

func ParsePaymentStatus(v string) (PaymentStatus, error) {
	switch PaymentStatus(v) {
	case PaymentPending, PaymentPaid, PaymentOnHold, PaymentFailed:
		return PaymentStatus(v), nil
	default:
		return "", fmt.Errorf("invalid payment status: %s", v)
	}
}

// paymentTransitions: PENDING bercabang ke tiga hasil, ON_HOLD bisa dilepas
// kembali. PAID dan FAILED terminal.
var paymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentPending: {PaymentPaid, PaymentOnHold, PaymentFailed},
	PaymentOnHold:  {PaymentPending, PaymentPaid, PaymentFailed},
	PaymentPaid:    {},
	PaymentFailed:  {},
}

func (s PaymentStatus) CanTransitionTo(to PaymentStatus) bool {
	for _, allowed := range paymentTransitions[s] {
		if allowed == to {
			return true
		}
	}
	return false
}

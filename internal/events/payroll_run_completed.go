package events

import "time"

const PayrollRunCompletedTopic = "hr.payroll.run.completed.v1"

type PayrollRunCompletedEvent struct {
	EventType      string    `json:"event_type"`
	PayrollRunID   string    `json:"payroll_run_id"`
	OrganizationID string    `json:"organization_id"`
	Month          int       `json:"month"`
	Year           int       `json:"year"`
	TotalEmployees int       `json:"total_employees"`
	TotalNetAmount int64     `json:"total_net_amount"`
	ProcessedBy    string    `json:"processed_by"`
	OccurredAt     time.Time `json:"occurred_at"`
}

package events

import "time"

const PayslipGeneratedTopic = "hr.payroll.payslip.generated.v1"

type PayslipGeneratedEvent struct {
	EventType      string    `json:"event_type"`
	PayslipID      string    `json:"payslip_id"`
	PayrollRunID   string    `json:"payroll_run_id"`
	OrganizationID string    `json:"organization_id"`
	EmployeeID     string    `json:"employee_id"`
	NetSalary      int64     `json:"net_salary"`
	OccurredAt     time.Time `json:"occurred_at"`
}

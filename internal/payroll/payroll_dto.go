package payroll

type CreateRunRequest struct {
	Month int `json:"month" binding:"required,min=1,max=12"`
	Year  int `json:"year" binding:"required,min=2000,max=2100"`
}

type ProcessRunRequest struct {
	EmployeeIDs []string `json:"employee_ids" binding:"required,min=1,dive,uuid"`
}

type UpdateRunStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=DRAFT PROCESSING COMPLETED PAID"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required,oneof=PENDING PAID ON_HOLD FAILED"`
}

type RunResponse struct {
	ID             string  `json:"id"`
	OrganizationID string  `json:"organization_id"`
	Month          int     `json:"month"`
	Year           int     `json:"year"`
	PeriodFrom     string  `json:"period_from"`
	PeriodTo       string  `json:"period_to"`
	Status         string  `json:"status"`
	TotalEmployees int     `json:"total_employees"`
	TotalGross     int64   `json:"total_gross"`
	TotalNet       int64   `json:"total_net"`
	PaymentDate    *string `json:"payment_date,omitempty"`
	ProcessedBy    *string `json:"processed_by,omitempty"`
	ProcessedDate  *string `json:"processed_date,omitempty"`
}

// EmployeeResult adalah hasil per karyawan dari satu batch process.
// Batch tidak pernah gagal total karena satu karyawan.
type EmployeeResult struct {
	EmployeeID string `json:"employee_id"`
	Status     string `json:"status"` // GENERATED | SKIPPED | FAILED
	Error      string `json:"error,omitempty"`
}

const (
	ResultGenerated = "GENERATED"
	ResultSkipped   = "SKIPPED"
	ResultFailed    = "FAILED"
)

type ProcessRunResponse struct {
	Run     RunResponse      `json:"run"`
	Results []EmployeeResult `json:"results"`
}

type PayslipLineResponse struct {
	Kind          string `json:"kind"`
	ComponentName string `json:"component_name"`
	ComponentCode string `json:"component_code"`
	ComponentType string `json:"component_type"`
	Amount        int64  `json:"amount"`
}

type PayslipResponse struct {
	ID             string `json:"id"`
	PayrollRunID   string `json:"payroll_run_id"`
	OrganizationID string `json:"organization_id"`
	EmployeeID     string `json:"employee_id"`
	EmployeeName   string `json:"employee_name"`
	EmployeeNumber string `json:"employee_number"`

	PresentDays      int `json:"present_days"`
	AbsentDays       int `json:"absent_days"`
	PaidLeaves       int `json:"paid_leaves"`
	OvertimeHours    int `json:"overtime_hours"`
	TotalWorkingDays int `json:"total_working_days"`

	GrossSalary         int64 `json:"gross_salary"`
	TotalEarnings       int64 `json:"total_earnings"`
	TotalDeductions     int64 `json:"total_deductions"`
	TotalReimbursements int64 `json:"total_reimbursements"`
	NetSalary           int64 `json:"net_salary"`

	PaymentStatus    string  `json:"payment_status"`
	PaymentMode      string  `json:"payment_mode"`
	PaymentDate      *string `json:"payment_date,omitempty"`
	PaymentReference *string `json:"payment_reference,omitempty"`

	Lines []PayslipLineResponse `json:"lines"`
}

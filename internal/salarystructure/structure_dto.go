package salarystructure

type AssignmentRequest struct {
	ComponentID        string   `json:"component_id" binding:"required,uuid"`
	Amount             int64    `json:"amount" binding:"min=0"`
	PercentageValue    *float64 `json:"percentage_value" binding:"omitempty,gte=0,lte=100"`
	CalculationFormula *string  `json:"calculation_formula"`
}

type CreateStructureRequest struct {
	EmployeeID    string              `json:"employee_id" binding:"required,uuid"`
	EffectiveFrom string              `json:"effective_from" binding:"required"`
	EffectiveTo   *string             `json:"effective_to"`
	CTCAnnual     int64               `json:"ctc_annual" binding:"required,gt=0"`
	PaymentMode   string              `json:"payment_mode" binding:"required,oneof=BANK_TRANSFER CASH CHEQUE UPI"`
	Assignments   []AssignmentRequest `json:"assignments" binding:"required,min=1,dive"`
}

type AssignmentResponse struct {
	ComponentID        string   `json:"component_id"`
	ComponentName      string   `json:"component_name"`
	ComponentCode      string   `json:"component_code"`
	ComponentType      string   `json:"component_type"`
	Amount             int64    `json:"amount"`
	PercentageValue    *float64 `json:"percentage_value,omitempty"`
	CalculationFormula *string  `json:"calculation_formula,omitempty"`
}

type StructureResponse struct {
	ID             string               `json:"id"`
	OrganizationID string               `json:"organization_id"`
	EmployeeID     string               `json:"employee_id"`
	EffectiveFrom  string               `json:"effective_from"`
	EffectiveTo    *string              `json:"effective_to,omitempty"`
	IsCurrent      bool                 `json:"is_current"`
	CTCAnnual      int64                `json:"ctc_annual"`
	CTCMonthly     int64                `json:"ctc_monthly"`
	GrossSalary    int64                `json:"gross_salary"`
	NetSalary      int64                `json:"net_salary"`
	PaymentMode    string               `json:"payment_mode"`
	Assignments    []AssignmentResponse `json:"assignments"`
}

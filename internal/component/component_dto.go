package component

type CreateComponentRequest struct {
	Name             string `json:"name" binding:"required,max=120"`
	Code             string `json:"code" binding:"required,uppercase,max=20"`
	Type             string `json:"type" binding:"required,oneof=EARNING DEDUCTION ALLOWANCE REIMBURSEMENT"`
	CalculationType  string `json:"calculation_type" binding:"required,oneof=FIXED PERCENTAGE FORMULA"`
	IsTaxable        bool   `json:"is_taxable"`
	IsFixed          bool   `json:"is_fixed"`
	DisplayInPayslip bool   `json:"display_in_payslip"`
	SortOrder        int    `json:"sort_order" binding:"required,min=1"`
}

type UpdateComponentRequest struct {
	Name             string `json:"name" binding:"required,max=120"`
	Type             string `json:"type" binding:"required,oneof=EARNING DEDUCTION ALLOWANCE REIMBURSEMENT"`
	CalculationType  string `json:"calculation_type" binding:"required,oneof=FIXED PERCENTAGE FORMULA"`
	IsTaxable        bool   `json:"is_taxable"`
	IsFixed          bool   `json:"is_fixed"`
	DisplayInPayslip bool   `json:"display_in_payslip"`
	SortOrder        int    `json:"sort_order" binding:"required,min=1"`
}

type ComponentResponse struct {
	ID               string `json:"id"`
	OrganizationID   string `json:"organization_id"`
	Name             string `json:"name"`
	Code             string `json:"code"`
	Type             string `json:"type"`
	CalculationType  string `json:"calculation_type"`
	IsTaxable        bool   `json:"is_taxable"`
	IsFixed          bool   `json:"is_fixed"`
	DisplayInPayslip bool   `json:"display_in_payslip"`
	SortOrder        int    `json:"sort_order"`
	IsActive         bool   `json:"is_active"`
}

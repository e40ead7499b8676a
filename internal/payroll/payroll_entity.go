package payroll

import (
	"time"

	"go-payroll/internal/component"
	"go-payroll/internal/salarystructure"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PayrollRun adalah satu siklus gaji bulanan untuk satu organisasi.
// Periode diturunkan dari (month, year), satu run per periode per organisasi.
type PayrollRun struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;index:idx_org_period,unique"`
	Month          int       `gorm:"not null;index:idx_org_period,unique"`
	Year           int       `gorm:"not null;index:idx_org_period,unique"`
	PeriodFrom     time.Time `gorm:"type:date;not null"`
	PeriodTo       time.Time `gorm:"type:date;not null"`

	Status RunStatus `gorm:"type:varchar(20);not null;default:'DRAFT';index"`

	// Total dihitung ulang penuh dari payslip, tidak pernah incremental.
	TotalEmployees int   `gorm:"not null;default:0"`
	TotalGross     int64 `gorm:"type:bigint;not null;default:0"`
	TotalNet       int64 `gorm:"type:bigint;not null;default:0"`

	PaymentDate   *time.Time `gorm:"index"`
	ProcessedBy   *uuid.UUID `gorm:"type:uuid"`
	ProcessedDate *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	Payslips []Payslip `gorm:"foreignKey:PayrollRunID"`
}

func (PayrollRun) TableName() string {
	return "payroll_runs"
}

// Payslip adalah snapshot gaji satu karyawan untuk satu run. Semua angka dan
// identitas komponen disalin saat generate; edit struktur setelahnya tidak
// pernah mengubah payslip yang sudah terbit.
type Payslip struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PayrollRunID   uuid.UUID `gorm:"type:uuid;not null;index:idx_run_employee,unique"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;index"`
	EmployeeID     uuid.UUID `gorm:"type:uuid;not null;index:idx_run_employee,unique"`

	EmployeeName      string    `gorm:"type:varchar(120);not null"`
	EmployeeNumber    string    `gorm:"type:varchar(30);not null"`
	SalaryStructureID uuid.UUID `gorm:"type:uuid;not null"`

	// Fakta kehadiran periode, disalin dari modul attendance.
	PresentDays      int `gorm:"not null;default:0"`
	AbsentDays       int `gorm:"not null;default:0"`
	PaidLeaves       int `gorm:"not null;default:0"`
	OvertimeHours    int `gorm:"not null;default:0"`
	TotalWorkingDays int `gorm:"not null;default:0"`

	// Financials disimpan dalam satuan terkecil (sen).
	GrossSalary         int64 `gorm:"type:bigint;not null;default:0"`
	TotalEarnings       int64 `gorm:"type:bigint;not null;default:0"`
	TotalDeductions     int64 `gorm:"type:bigint;not null;default:0"`
	TotalReimbursements int64 `gorm:"type:bigint;not null;default:0"`
	NetSalary           int64 `gorm:"type:bigint;not null;default:0"`

	PaymentStatus    PaymentStatus                 `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	PaymentMode      salarystructure.PaymentMode   `gorm:"type:varchar(20);not null;default:'BANK_TRANSFER'"`
	PaymentDate      *time.Time                    `gorm:"index"`
	PaymentReference *string                       `gorm:"type:varchar(40)"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Components []PayslipComponent `gorm:"foreignKey:PayslipID"`
}

func (Payslip) TableName() string {
	return "payslips"
}

type LineKind string

const (
	LineEarning       LineKind = "EARNING"
	LineDeduction     LineKind = "DEDUCTION"
	LineReimbursement LineKind = "REIMBURSEMENT"
)

// PayslipComponent adalah satu baris payslip, value copy dari assignment
// struktur pada saat generate.
type PayslipComponent struct {
	ID             uuid.UUID               `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PayslipID      uuid.UUID               `gorm:"type:uuid;not null;index"`
	OrganizationID uuid.UUID               `gorm:"type:uuid;not null;index"`
	Kind           LineKind                `gorm:"type:varchar(20);not null;index"`
	ComponentName  string                  `gorm:"type:varchar(120);not null"`
	ComponentCode  string                  `gorm:"type:varchar(20);not null"`
	ComponentType  component.ComponentType `gorm:"type:varchar(20);not null"`
	Amount         int64                   `gorm:"type:bigint;not null;default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (PayslipComponent) TableName() string {
	return "payslip_components"
}

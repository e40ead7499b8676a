package salarystructure

import (
	"fmt"
	"time"

	"go-payroll/internal/component"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentMode string

const (
	PayBankTransfer PaymentMode = "BANK_TRANSFER"
	PayCash         PaymentMode = "CASH"
	PayCheque       PaymentMode = "CHEQUE"
	PayUPI          PaymentMode = "UPI"
)

func ParsePaymentMode(v string) (PaymentMode, error) {
	switch PaymentMode(v) {
	case PayBankTransfer, PayCash, PayCheque, PayUPI:
		return PaymentMode(v), nil
	default:
		return "", fmt.Errorf("invalid payment mode: %s", v)
	}
}

// SalaryStructure adalah revisi bergaji satu karyawan untuk satu rentang tanggal.
// Revisi bersifat immutable setelah digantikan: perubahan gaji = baris baru,
// bukan edit in-place.
type SalaryStructure struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrganizationID uuid.UUID  `gorm:"type:uuid;not null;index"`
	EmployeeID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	EffectiveFrom  time.Time  `gorm:"type:date;not null"`
	EffectiveTo    *time.Time `gorm:"type:date"` // NULL = berlaku terus
	IsCurrent      bool       `gorm:"not null;default:true"`

	// Financials disimpan dalam satuan terkecil (sen) untuk hindari floating error.
	CTCAnnual   int64 `gorm:"type:bigint;not null"`
	CTCMonthly  int64 `gorm:"type:bigint;not null"`
	GrossSalary int64 `gorm:"type:bigint;not null;default:0"`
	NetSalary   int64 `gorm:"type:bigint;not null;default:0"`

	PaymentMode PaymentMode `gorm:"type:varchar(20);not null;default:'BANK_TRANSFER'"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	Assignments []ComponentAssignment `gorm:"foreignKey:SalaryStructureID"`
}

func (SalaryStructure) TableName() string {
	return "salary_structures"
}

// ComponentAssignment menempelkan satu komponen katalog ke struktur dengan
// nominal konkret. Nama/kode/tipe komponen disalin saat assign supaya histori
// tidak bergeser ketika katalog diedit.
type ComponentAssignment struct {
	ID                uuid.UUID               `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SalaryStructureID uuid.UUID               `gorm:"type:uuid;not null;index:idx_structure_component,unique"`
	SalaryComponentID uuid.UUID               `gorm:"type:uuid;not null;index:idx_structure_component,unique"`
	ComponentName     string                  `gorm:"type:varchar(120);not null"`
	ComponentCode     string                  `gorm:"type:varchar(20);not null"`
	ComponentType     component.ComponentType `gorm:"type:varchar(20);not null"`
	Amount            int64                   `gorm:"type:bigint;not null;default:0"`
	PercentageValue   *float64                `gorm:"type:numeric(5,2)"`
	CalculationFormula *string                `gorm:"type:text"` // opaque, tidak pernah dievaluasi
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (ComponentAssignment) TableName() string {
	return "structure_component_assignments"
}

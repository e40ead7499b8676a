package component

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ComponentType adalah enum tertutup. Penjumlahan gross/net melakukan switch
// exhaustive atas tipe ini; string bebas dari luar harus lewat ParseComponentType.
type ComponentType string

const (
	TypeEarning       ComponentType = "EARNING"
	TypeDeduction     ComponentType = "DEDUCTION"
	TypeAllowance     ComponentType = "ALLOWANCE"
	TypeReimbursement ComponentType = "REIMBURSEMENT"
)

func ParseComponentType(v string) (ComponentType, error) {
	switch ComponentType(v) {
	case TypeEarning, TypeDeduction, TypeAllowance, TypeReimbursement:
		return ComponentType(v), nil
	default:
		return "", fmt.Errorf("invalid component type: %s", v)
	}
}

// CountsTowardGross: Earning dan Allowance masuk gross. Reimbursement sengaja
// tidak masuk gross maupun net; nilainya dicatat terpisah.
func (t ComponentType) CountsTowardGross() bool {
	return t == TypeEarning || t == TypeAllowance
}

func (t ComponentType) IsDeduction() bool {
	return t == TypeDeduction
}

type CalculationType string

const (
	CalcFixed      CalculationType = "FIXED"
	CalcPercentage CalculationType = "PERCENTAGE"
	CalcFormula    CalculationType = "FORMULA"
)

func ParseCalculationType(v string) (CalculationType, error) {
	switch CalculationType(v) {
	case CalcFixed, CalcPercentage, CalcFormula:
		return CalculationType(v), nil
	default:
		return "", fmt.Errorf("invalid calculation type: %s", v)
	}
}

type SalaryComponent struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrganizationID   uuid.UUID       `gorm:"type:uuid;not null;index:idx_org_code,unique"`
	Name             string          `gorm:"type:varchar(120);not null"`
	Code             string          `gorm:"type:varchar(20);not null;index:idx_org_code,unique"`
	Type             ComponentType   `gorm:"type:varchar(20);not null"`
	CalculationType  CalculationType `gorm:"type:varchar(20);not null;default:'FIXED'"`
	IsTaxable        bool            `gorm:"not null;default:false"`
	IsFixed          bool            `gorm:"not null;default:true"`
	DisplayInPayslip bool            `gorm:"not null;default:true"`
	SortOrder        int             `gorm:"not null;default:1"`
	IsActive         bool            `gorm:"not null;default:true"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}

func (SalaryComponent) TableName() string {
	return "salary_components"
}

package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Employee struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrganizationID uuid.UUID  `gorm:"type:uuid;not null;index"`
	DepartmentID   *uuid.UUID `gorm:"type:uuid"`
	PositionID     *uuid.UUID `gorm:"type:uuid"`
	EmployeeNumber string     `gorm:"type:varchar(30);not null"`
	FullName       string     `gorm:"type:varchar(150);not null"`
	Designation    string     `gorm:"type:varchar(100)"`
	Department     string     `gorm:"type:varchar(100)"`
	Email          string     `gorm:"uniqueIndex"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

func (Employee) TableName() string {
	return "employees"
}

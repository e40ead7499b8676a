package attendance

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPresent   = "PRESENT"
	StatusLate      = "LATE"
	StatusAbsent    = "ABSENT"
	StatusPaidLeave = "PAID_LEAVE"
)

type Attendance struct {
	ID             uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	OrganizationID uuid.UUID  `gorm:"column:organization_id;type:uuid;not null;index"`
	EmployeeID     uuid.UUID  `gorm:"column:employee_id;type:uuid;not null;index"`
	AttendanceDate time.Time  `gorm:"column:attendance_date;type:date;not null;index"`
	ClockIn        *time.Time `gorm:"column:clock_in;type:timestamptz"`
	ClockOut       *time.Time `gorm:"column:clock_out;type:timestamptz"`
	Status         string     `gorm:"column:status;type:varchar(20);not null;default:PRESENT"`
	OvertimeHours  int        `gorm:"column:overtime_hours;not null;default:0"`
	Source         string     `gorm:"column:source;type:varchar(30);not null;default:MANUAL"`
	Notes          *string    `gorm:"column:notes;type:text"`
	CreatedAt      time.Time  `gorm:"column:created_at"`
	UpdatedAt      time.Time  `gorm:"column:updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Attendance) TableName() string {
	return "attendances"
}

// PeriodSummary adalah fakta kehadiran satu karyawan untuk satu periode payroll.
type PeriodSummary struct {
	PresentDays      int `json:"present_days"`
	AbsentDays       int `json:"absent_days"`
	PaidLeaves       int `json:"paid_leaves"`
	OvertimeHours    int `json:"overtime_hours"`
	TotalWorkingDays int `json:"total_working_days"`
}

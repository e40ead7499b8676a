package attendance

import (
	"context"
	"time"

	"go-payroll/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	SummarizePeriod(ctx context.Context, organizationID, employeeID string, from, to time.Time) (PeriodSummary, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

type periodRow struct {
	PresentDays   int
	AbsentDays    int
	PaidLeaves    int
	OvertimeHours int
}

func (r *repository) SummarizePeriod(
	ctx context.Context,
	organizationID, employeeID string,
	from, to time.Time,
) (PeriodSummary, error) {
	var row periodRow
	err := r.db.WithContext(ctx).
		Model(&Attendance{}).
		Scopes(tenant.Scope(organizationID)).
		Select(`
			COUNT(*) FILTER (WHERE status IN (?, ?)) AS present_days,
			COUNT(*) FILTER (WHERE status = ?) AS absent_days,
			COUNT(*) FILTER (WHERE status = ?) AS paid_leaves,
			COALESCE(SUM(overtime_hours), 0) AS overtime_hours`,
			StatusPresent, StatusLate, StatusAbsent, StatusPaidLeave).
		Where("employee_id = ?", employeeID).
		Where("attendance_date BETWEEN ? AND ?", from, to).
		Scan(&row).Error
	if err != nil {
		return PeriodSummary{}, err
	}

	return PeriodSummary{
		PresentDays:      row.PresentDays,
		AbsentDays:       row.AbsentDays,
		PaidLeaves:       row.PaidLeaves,
		OvertimeHours:    row.OvertimeHours,
		TotalWorkingDays: workingDays(from, to),
	}, nil
}

// workingDays menghitung hari kerja Senin-Jumat dalam rentang inklusif.
func workingDays(from, to time.Time) int {
	days := 0
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		switch d.Weekday() {
		case time.Saturday, time.Sunday:
		default:
			days++
		}
	}
	return days
}

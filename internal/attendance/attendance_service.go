package attendance

import (
	"context"
	"time"

	attendanceerrors "go-payroll/internal/attendance/errors"

	"go.uber.org/zap"
)

const summaryTimeout = 5 * time.Second

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	GetPeriodSummary(ctx context.Context, organizationID, employeeID string, from, to time.Time) (PeriodSummary, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository) Service {
	return &service{
		repo:   repo,
		logger: zap.L().Named("attendance.service"),
	}
}

// GetPeriodSummary mengambil fakta kehadiran untuk satu periode payroll.
// Dibatasi timeout: kegagalan di sini hanya menggagalkan satu karyawan,
// bukan seluruh batch payroll.
func (s *service) GetPeriodSummary(
	ctx context.Context,
	organizationID, employeeID string,
	from, to time.Time,
) (PeriodSummary, error) {
	if from.After(to) {
		return PeriodSummary{}, attendanceerrors.ErrInvalidPeriod
	}

	ctx, cancel := context.WithTimeout(ctx, summaryTimeout)
	defer cancel()

	summary, err := s.repo.SummarizePeriod(ctx, organizationID, employeeID, from, to)
	if err != nil {
		s.logger.Warn("summarize attendance period failed",
			zap.String("organization_id", organizationID),
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return PeriodSummary{}, attendanceerrors.ErrAttendanceUnavailable
	}

	return summary, nil
}

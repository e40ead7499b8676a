package attendanceerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrAttendanceUnavailable = apperror.New(
		apperror.CodeServiceUnavailable,
		"attendance facts are unavailable for this employee and period",
		http.StatusServiceUnavailable,
	)
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"period start must be before or equal period end",
		http.StatusBadRequest,
	)
)

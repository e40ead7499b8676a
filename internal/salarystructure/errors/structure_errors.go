package salarystructureerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrStructureNotFound = apperror.New(
		apperror.CodeNotFound,
		"salary structure not found",
		http.StatusNotFound,
	)
	ErrNoActiveStructure = apperror.New(
		apperror.CodeNotFound,
		"employee has no salary structure covering this period",
		http.StatusNotFound,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrEmployeeNotInOrganization = apperror.New(
		apperror.CodeInvalidInput,
		"employee does not belong to this organization",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidEffectiveRange = apperror.New(
		apperror.CodeInvalidInput,
		"effective_from must be before or equal effective_to",
		http.StatusBadRequest,
	)
	ErrInvalidCTC = apperror.New(
		apperror.CodeInvalidInput,
		"ctc_annual must be greater than zero",
		http.StatusBadRequest,
	)
	ErrNoAssignments = apperror.New(
		apperror.CodeInvalidInput,
		"a salary structure requires at least one component assignment",
		http.StatusBadRequest,
	)
	ErrComponentAlreadyAdded = apperror.New(
		apperror.CodeConflict,
		"component is already added to this structure",
		http.StatusConflict,
	)
	ErrComponentNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"assigned salary component does not exist in this organization",
		http.StatusBadRequest,
	)
	ErrComponentInactive = apperror.New(
		apperror.CodeInvalidInput,
		"assigned salary component is deactivated",
		http.StatusBadRequest,
	)
	ErrInvalidPaymentMode = apperror.New(
		apperror.CodeInvalidInput,
		"invalid payment mode",
		http.StatusBadRequest,
	)
)

package payrollerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrRunNotFound = apperror.New(
		apperror.CodeNotFound,
		"payroll run not found",
		http.StatusNotFound,
	)
	ErrRunExistsForPeriod = apperror.New(
		apperror.CodeConflict,
		"a payroll run already exists for this period",
		http.StatusConflict,
	)
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"month must be 1-12 and year must be positive",
		http.StatusBadRequest,
	)
	ErrRunNotProcessable = apperror.New(
		apperror.CodeInvalidState,
		"payroll run can only be processed from DRAFT or PROCESSING",
		http.StatusConflict,
	)
	ErrInvalidRunTransition = apperror.New(
		apperror.CodeInvalidState,
		"illegal payroll run status transition",
		http.StatusConflict,
	)
	ErrNoEmployeesSelected = apperror.New(
		apperror.CodeInvalidInput,
		"at least one employee is required to process a run",
		http.StatusBadRequest,
	)
	ErrPayslipNotFound = apperror.New(
		apperror.CodeNotFound,
		"payslip not found",
		http.StatusNotFound,
	)
	ErrInvalidPaymentTransition = apperror.New(
		apperror.CodeInvalidState,
		"illegal payslip payment status transition",
		http.StatusConflict,
	)
	ErrPaymentConflict = apperror.New(
		apperror.CodeConflict,
		"payslip payment status changed concurrently, retry",
		http.StatusConflict,
	)
	ErrInvalidActorID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid actor id",
		http.StatusBadRequest,
	)
	ErrInvalidOrganizationID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid organization id",
		http.StatusBadRequest,
	)
)

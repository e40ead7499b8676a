package componenterrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrComponentNotFound = apperror.New(
		apperror.CodeNotFound,
		"salary component not found",
		http.StatusNotFound,
	)
	ErrDuplicateComponentCode = apperror.New(
		apperror.CodeConflict,
		"a salary component with this code already exists in the organization",
		http.StatusConflict,
	)
	ErrComponentInUse = apperror.New(
		apperror.CodeConflict,
		"salary component is referenced by a salary structure and can only be deactivated",
		http.StatusConflict,
	)
	ErrInvalidComponentType = apperror.New(
		apperror.CodeInvalidInput,
		"invalid component type",
		http.StatusBadRequest,
	)
	ErrInvalidCalculationType = apperror.New(
		apperror.CodeInvalidInput,
		"invalid calculation type",
		http.StatusBadRequest,
	)
	ErrInvalidComponentID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid component id",
		http.StatusBadRequest,
	)
)

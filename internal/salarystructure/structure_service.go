package salarystructure

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go-payroll/internal/component"
	salarystructureerrors "go-payroll/internal/salarystructure/errors"
	"go-payroll/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=structure_service.go -destination=mock/structure_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, organizationID string, req CreateStructureRequest) (StructureResponse, error)
	GetAllByEmployee(ctx context.Context, organizationID, employeeID string) ([]StructureResponse, error)
	GetByID(ctx context.Context, organizationID, id string) (StructureResponse, error)
	ResolveForPeriod(ctx context.Context, organizationID, employeeID string, periodFrom, periodTo time.Time) (*SalaryStructure, error)
}

type service struct {
	db            *sql.DB
	repo          Repository
	componentRepo component.Repository
	logger        *zap.Logger
}

func NewService(db *sql.DB, repo Repository, componentRepo component.Repository) Service {
	return &service{
		db:            db,
		repo:          repo,
		componentRepo: componentRepo,
		logger:        zap.L().Named("salarystructure.service"),
	}
}

func (s *service) Create(
	ctx context.Context,
	organizationID string,
	req CreateStructureRequest,
) (StructureResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create salary structure requested",
		zap.String("request_id", rid),
		zap.String("organization_id", organizationID),
		zap.String("employee_id", req.EmployeeID),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return StructureResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	employeeID, effectiveFrom, effectiveTo, paymentMode, err := validateCreateRequest(req)
	if err != nil {
		return StructureResponse{}, err
	}

	belongs, err := qtx.EmployeeBelongsToOrganization(ctx, organizationID, req.EmployeeID)
	if err != nil {
		return StructureResponse{}, err
	}
	if !belongs {
		return StructureResponse{}, salarystructureerrors.ErrEmployeeNotInOrganization
	}

	ctcMonthly := MonthlyCTC(req.CTCAnnual)

	assignments, err := s.resolveAssignments(ctx, organizationID, req.Assignments, ctcMonthly)
	if err != nil {
		return StructureResponse{}, err
	}

	// Hitung ke hasil baru, bukan akumulasi di tempat
	totals := ComputeTotals(assignments)

	structure := &SalaryStructure{
		ID:             uuid.New(),
		OrganizationID: uuid.MustParse(organizationID),
		EmployeeID:     employeeID,
		EffectiveFrom:  effectiveFrom,
		EffectiveTo:    effectiveTo,
		IsCurrent:      true,
		CTCAnnual:      req.CTCAnnual,
		CTCMonthly:     ctcMonthly,
		GrossSalary:    totals.Gross,
		NetSalary:      totals.Net,
		PaymentMode:    paymentMode,
		Assignments:    assignments,
	}

	// Revisi baru menggantikan struktur aktif sebelumnya; histori tidak diedit
	closedAt := effectiveFrom.AddDate(0, 0, -1)
	if err := qtx.CloseCurrent(ctx, organizationID, req.EmployeeID, closedAt); err != nil {
		return StructureResponse{}, err
	}

	if err := qtx.Create(ctx, structure); err != nil {
		return StructureResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return StructureResponse{}, err
	}

	return mapToResponse(*structure), nil
}

// resolveAssignments memvalidasi setiap assignment terhadap katalog dan
// menyalin nama/kode/tipe komponen (snapshot saat assign).
func (s *service) resolveAssignments(
	ctx context.Context,
	organizationID string,
	reqs []AssignmentRequest,
	ctcMonthly int64,
) ([]ComponentAssignment, error) {
	if len(reqs) == 0 {
		return nil, salarystructureerrors.ErrNoAssignments
	}

	seen := make(map[string]bool, len(reqs))
	assignments := make([]ComponentAssignment, 0, len(reqs))

	for _, ar := range reqs {
		if seen[ar.ComponentID] {
			return nil, salarystructureerrors.ErrComponentAlreadyAdded
		}
		seen[ar.ComponentID] = true

		comp, err := s.componentRepo.FindByIDAndOrganization(ctx, organizationID, ar.ComponentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, salarystructureerrors.ErrComponentNotFound
			}
			return nil, err
		}
		if !comp.IsActive {
			return nil, salarystructureerrors.ErrComponentInactive
		}

		amount := ar.Amount
		if comp.CalculationType == component.CalcPercentage && ar.PercentageValue != nil {
			amount = PercentageAmount(*ar.PercentageValue, ctcMonthly)
		}

		assignments = append(assignments, ComponentAssignment{
			ID:                 uuid.New(),
			SalaryComponentID:  comp.ID,
			ComponentName:      comp.Name,
			ComponentCode:      comp.Code,
			ComponentType:      comp.Type,
			Amount:             amount,
			PercentageValue:    ar.PercentageValue,
			CalculationFormula: ar.CalculationFormula,
		})
	}

	return assignments, nil
}

func (s *service) GetAllByEmployee(
	ctx context.Context,
	organizationID, employeeID string,
) ([]StructureResponse, error) {
	rows, err := s.repo.FindAllByEmployee(ctx, organizationID, employeeID)
	if err != nil {
		return nil, err
	}

	resp := make([]StructureResponse, len(rows))
	for i, row := range rows {
		resp[i] = mapToResponse(row)
	}
	return resp, nil
}

func (s *service) GetByID(
	ctx context.Context,
	organizationID, id string,
) (StructureResponse, error) {
	row, err := s.repo.FindByIDAndOrganization(ctx, organizationID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return StructureResponse{}, salarystructureerrors.ErrStructureNotFound
		}
		return StructureResponse{}, err
	}

	return mapToResponse(*row), nil
}

// ResolveForPeriod dipakai generator payslip: cari struktur yang menutupi
// periode payroll. Tidak ada struktur = NoActiveStructure untuk karyawan itu.
func (s *service) ResolveForPeriod(
	ctx context.Context,
	organizationID, employeeID string,
	periodFrom, periodTo time.Time,
) (*SalaryStructure, error) {
	row, err := s.repo.FindCurrentForPeriod(ctx, organizationID, employeeID, periodFrom, periodTo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, salarystructureerrors.ErrNoActiveStructure
		}
		return nil, err
	}
	return row, nil
}

func validateCreateRequest(req CreateStructureRequest) (uuid.UUID, time.Time, *time.Time, PaymentMode, error) {
	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return uuid.Nil, time.Time{}, nil, "", salarystructureerrors.ErrInvalidEmployeeID
	}

	if req.CTCAnnual <= 0 {
		return uuid.Nil, time.Time{}, nil, "", salarystructureerrors.ErrInvalidCTC
	}

	effectiveFrom, err := time.Parse("2006-01-02", req.EffectiveFrom)
	if err != nil {
		return uuid.Nil, time.Time{}, nil, "", salarystructureerrors.ErrInvalidDateFormat
	}

	var effectiveTo *time.Time
	if req.EffectiveTo != nil && *req.EffectiveTo != "" {
		parsed, err := time.Parse("2006-01-02", *req.EffectiveTo)
		if err != nil {
			return uuid.Nil, time.Time{}, nil, "", salarystructureerrors.ErrInvalidDateFormat
		}
		if effectiveFrom.After(parsed) {
			return uuid.Nil, time.Time{}, nil, "", salarystructureerrors.ErrInvalidEffectiveRange
		}
		effectiveTo = &parsed
	}

	paymentMode, err := ParsePaymentMode(req.PaymentMode)
	if err != nil {
		return uuid.Nil, time.Time{}, nil, "", salarystructureerrors.ErrInvalidPaymentMode
	}

	return employeeID, effectiveFrom, effectiveTo, paymentMode, nil
}

func mapToResponse(s SalaryStructure) StructureResponse {
	resp := StructureResponse{
		ID:             s.ID.String(),
		OrganizationID: s.OrganizationID.String(),
		EmployeeID:     s.EmployeeID.String(),
		EffectiveFrom:  s.EffectiveFrom.Format("2006-01-02"),
		IsCurrent:      s.IsCurrent,
		CTCAnnual:      s.CTCAnnual,
		CTCMonthly:     s.CTCMonthly,
		GrossSalary:    s.GrossSalary,
		NetSalary:      s.NetSalary,
		PaymentMode:    string(s.PaymentMode),
		Assignments:    make([]AssignmentResponse, len(s.Assignments)),
	}

	if s.EffectiveTo != nil {
		v := s.EffectiveTo.Format("2006-01-02")
		resp.EffectiveTo = &v
	}

	for i, a := range s.Assignments {
		resp.Assignments[i] = AssignmentResponse{
			ComponentID:        a.SalaryComponentID.String(),
			ComponentName:      a.ComponentName,
			ComponentCode:      a.ComponentCode,
			ComponentType:      string(a.ComponentType),
			Amount:             a.Amount,
			PercentageValue:    a.PercentageValue,
			CalculationFormula: a.CalculationFormula,
		}
	}

	return resp
}

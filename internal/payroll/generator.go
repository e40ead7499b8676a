package payroll

import (
	"context"
	"time"

	"go-payroll/internal/attendance"
	"go-payroll/internal/employee"
	"go-payroll/internal/salarystructure"

	"github.com/google/uuid"
)

// Interface lokal: generator hanya butuh potongan kecil dari tiap modul.
type StructureResolver interface {
	ResolveForPeriod(ctx context.Context, organizationID, employeeID string, periodFrom, periodTo time.Time) (*salarystructure.SalaryStructure, error)
}

type AttendanceSource interface {
	GetPeriodSummary(ctx context.Context, organizationID, employeeID string, from, to time.Time) (attendance.PeriodSummary, error)
}

type EmployeeDirectory interface {
	Resolve(ctx context.Context, organizationID, employeeID string) (employee.EmployeeRef, error)
}

// Generator membangun payslip sebagai snapshot: identitas karyawan, struktur
// gaji yang berlaku pada periode, dan fakta kehadiran disalin per nilai.
// Edit struktur setelah generate tidak menyentuh payslip yang sudah terbit.
type Generator struct {
	structures StructureResolver
	attendance AttendanceSource
	employees  EmployeeDirectory
}

func NewGenerator(structures StructureResolver, attendance AttendanceSource, employees EmployeeDirectory) *Generator {
	return &Generator{
		structures: structures,
		attendance: attendance,
		employees:  employees,
	}
}

func (g *Generator) Generate(ctx context.Context, run *PayrollRun, employeeID string) (*Payslip, error) {
	ref, err := g.employees.Resolve(ctx, run.OrganizationID.String(), employeeID)
	if err != nil {
		return nil, err
	}

	structure, err := g.structures.ResolveForPeriod(
		ctx, run.OrganizationID.String(), employeeID, run.PeriodFrom, run.PeriodTo,
	)
	if err != nil {
		return nil, err
	}

	summary, err := g.attendance.GetPeriodSummary(
		ctx, run.OrganizationID.String(), employeeID, run.PeriodFrom, run.PeriodTo,
	)
	if err != nil {
		return nil, err
	}

	payslip := &Payslip{
		ID:                uuid.New(),
		PayrollRunID:      run.ID,
		OrganizationID:    run.OrganizationID,
		EmployeeID:        uuid.MustParse(employeeID),
		EmployeeName:      ref.FullName,
		EmployeeNumber:    ref.EmployeeNumber,
		SalaryStructureID: structure.ID,

		PresentDays:      summary.PresentDays,
		AbsentDays:       summary.AbsentDays,
		PaidLeaves:       summary.PaidLeaves,
		OvertimeHours:    summary.OvertimeHours,
		TotalWorkingDays: summary.TotalWorkingDays,

		PaymentStatus: PaymentPending,
		PaymentMode:   structure.PaymentMode,
	}

	for _, a := range structure.Assignments {
		line := PayslipComponent{
			ID:             uuid.New(),
			PayslipID:      payslip.ID,
			OrganizationID: run.OrganizationID,
			ComponentName:  a.ComponentName,
			ComponentCode:  a.ComponentCode,
			ComponentType:  a.ComponentType,
			Amount:         a.Amount,
		}

		switch {
		case a.ComponentType.CountsTowardGross():
			line.Kind = LineEarning
			payslip.TotalEarnings += a.Amount
		case a.ComponentType.IsDeduction():
			line.Kind = LineDeduction
			payslip.TotalDeductions += a.Amount
		default:
			line.Kind = LineReimbursement
			payslip.TotalReimbursements += a.Amount
		}

		payslip.Components = append(payslip.Components, line)
	}

	payslip.GrossSalary = payslip.TotalEarnings
	payslip.NetSalary = payslip.TotalEarnings - payslip.TotalDeductions

	return payslip, nil
}

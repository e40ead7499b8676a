package payroll_test

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/organization"
	"go-payroll/internal/payroll"
	payrollerrors "go-payroll/internal/payroll/errors"
	"go-payroll/internal/salarystructure"
	salarystructureerrors "go-payroll/internal/salarystructure/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakePayrollRepository struct {
	mu sync.Mutex

	withTxFn                  func(tx *sql.Tx) payroll.Repository
	createFn                  func(ctx context.Context, run *payroll.PayrollRun) error
	existsForPeriodFn         func(ctx context.Context, organizationID string, month, year int) (bool, error)
	findAllByOrganizationFn   func(ctx context.Context, organizationID string) ([]payroll.PayrollRun, error)
	findByIDAndOrganizationFn func(ctx context.Context, organizationID string, id string) (*payroll.PayrollRun, error)
	updateFn                  func(ctx context.Context, run *payroll.PayrollRun) error
	deleteFn                  func(ctx context.Context, organizationID string, id string) error
	createPayslipFn           func(ctx context.Context, payslip *payroll.Payslip) error
	payslipExistsFn           func(ctx context.Context, runID string, employeeID string) (bool, error)
	findPayslipsByRunFn       func(ctx context.Context, organizationID string, runID string) ([]payroll.Payslip, error)
	findPayslipFn             func(ctx context.Context, organizationID string, id string) (*payroll.Payslip, error)
	updatePaymentStatusFn     func(ctx context.Context, organizationID string, payslipID string, from, to payroll.PaymentStatus, paymentDate *time.Time, reference *string) (bool, error)

	createdPayslips []payroll.Payslip
}

func (f *fakePayrollRepository) WithTx(tx *sql.Tx) payroll.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakePayrollRepository) Create(ctx context.Context, run *payroll.PayrollRun) error {
	if f.createFn != nil {
		return f.createFn(ctx, run)
	}
	return nil
}

func (f *fakePayrollRepository) ExistsForPeriod(ctx context.Context, organizationID string, month, year int) (bool, error) {
	if f.existsForPeriodFn != nil {
		return f.existsForPeriodFn(ctx, organizationID, month, year)
	}
	return false, nil
}

func (f *fakePayrollRepository) FindAllByOrganization(ctx context.Context, organizationID string) ([]payroll.PayrollRun, error) {
	if f.findAllByOrganizationFn != nil {
		return f.findAllByOrganizationFn(ctx, organizationID)
	}
	return nil, nil
}

func (f *fakePayrollRepository) FindByIDAndOrganization(ctx context.Context, organizationID string, id string) (*payroll.PayrollRun, error) {
	if f.findByIDAndOrganizationFn != nil {
		return f.findByIDAndOrganizationFn(ctx, organizationID, id)
	}
	return nil, nil
}

func (f *fakePayrollRepository) Update(ctx context.Context, run *payroll.PayrollRun) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, run)
	}
	return nil
}

func (f *fakePayrollRepository) Delete(ctx context.Context, organizationID string, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, organizationID, id)
	}
	return nil
}

func (f *fakePayrollRepository) CreatePayslip(ctx context.Context, payslip *payroll.Payslip) error {
	if f.createPayslipFn != nil {
		return f.createPayslipFn(ctx, payslip)
	}
	f.mu.Lock()
	f.createdPayslips = append(f.createdPayslips, *payslip)
	f.mu.Unlock()
	return nil
}

func (f *fakePayrollRepository) PayslipExists(ctx context.Context, runID string, employeeID string) (bool, error) {
	if f.payslipExistsFn != nil {
		return f.payslipExistsFn(ctx, runID, employeeID)
	}
	return false, nil
}

func (f *fakePayrollRepository) FindPayslipsByRun(ctx context.Context, organizationID string, runID string) ([]payroll.Payslip, error) {
	if f.findPayslipsByRunFn != nil {
		return f.findPayslipsByRunFn(ctx, organizationID, runID)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.createdPayslips, nil
}

func (f *fakePayrollRepository) FindPayslipByIDAndOrganization(ctx context.Context, organizationID string, id string) (*payroll.Payslip, error) {
	if f.findPayslipFn != nil {
		return f.findPayslipFn(ctx, organizationID, id)
	}
	return nil, nil
}

func (f *fakePayrollRepository) UpdatePaymentStatus(ctx context.Context, organizationID string, payslipID string, from, to payroll.PaymentStatus, paymentDate *time.Time, reference *string) (bool, error) {
	if f.updatePaymentStatusFn != nil {
		return f.updatePaymentStatusFn(ctx, organizationID, payslipID, from, to, paymentDate, reference)
	}
	return true, nil
}

type fakeOrganizationService struct {
	validateFn func(ctx context.Context, id string) error
}

func (f *fakeOrganizationService) GetByID(ctx context.Context, id string) (*organization.OrganizationResponse, error) {
	return &organization.OrganizationResponse{ID: id}, nil
}

func (f *fakeOrganizationService) Validate(ctx context.Context, id string) error {
	if f.validateFn != nil {
		return f.validateFn(ctx, id)
	}
	return nil
}

type fakeCounterRepository struct {
	mu   sync.Mutex
	next int64
}

func (f *fakeCounterRepository) GetNextValue(ctx context.Context, organizationID string, counterType string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.next++
	return f.next, nil
}

type fakeOutboxRepository struct {
	mu       sync.Mutex
	withTxFn func(tx *sql.Tx) kafka.OutboxRepository
	createFn func(ctx context.Context, event kafka.OutboxEvent) error
	created  []kafka.OutboxEvent
}

func (f *fakeOutboxRepository) WithTx(tx *sql.Tx) kafka.OutboxRepository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeOutboxRepository) Create(ctx context.Context, event kafka.OutboxEvent) error {
	if f.createFn != nil {
		return f.createFn(ctx, event)
	}
	f.mu.Lock()
	f.created = append(f.created, event)
	f.mu.Unlock()
	return nil
}

func (f *fakeOutboxRepository) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepository) MarkSent(ctx context.Context, id string) error {
	return nil
}

func (f *fakeOutboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	return nil
}

type payrollServiceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   payroll.Service
	repo      *fakePayrollRepository
	outbox    *fakeOutboxRepository
	resolver  *fakeStructureResolver
	source    *fakeAttendanceSource
	directory *fakeEmployeeDirectory
	counter   *fakeCounterRepository
}

func setupPayrollServiceTest(t *testing.T) *payrollServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakePayrollRepository{}
	outbox := &fakeOutboxRepository{}
	resolver := &fakeStructureResolver{
		resolveForPeriodFn: func(ctx context.Context, orgID, eid string, from, to time.Time) (*salarystructure.SalaryStructure, error) {
			return testStructure(), nil
		},
	}
	source := &fakeAttendanceSource{}
	directory := &fakeEmployeeDirectory{}
	counterRepo := &fakeCounterRepository{}

	generator := payroll.NewGenerator(resolver, source, directory)
	svc := payroll.NewService(db, repo, generator, &fakeOrganizationService{}, counterRepo, outbox)

	return &payrollServiceDeps{
		db:        db,
		sqlMock:   sqlMock,
		service:   svc,
		repo:      repo,
		outbox:    outbox,
		resolver:  resolver,
		source:    source,
		directory: directory,
		counter:   counterRepo,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestPayrollService_Create(t *testing.T) {
	ctx := context.Background()
	organizationID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.createFn = func(ctx context.Context, run *payroll.PayrollRun) error {
			assert.Equal(t, payroll.StatusDraft, run.Status)
			assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), run.PeriodFrom)
			assert.Equal(t, time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC), run.PeriodTo)
			return nil
		}

		resp, err := deps.service.Create(ctx, organizationID, payroll.CreateRunRequest{Month: 3, Year: 2025})

		assert.NoError(t, err)
		assert.Equal(t, "DRAFT", resp.Status)
		assert.Equal(t, "2025-03-01", resp.PeriodFrom)
		assert.Equal(t, "2025-03-31", resp.PeriodTo)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("conflict when period already has a run", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.existsForPeriodFn = func(ctx context.Context, orgID string, month, year int) (bool, error) {
			return true, nil
		}

		_, err := deps.service.Create(ctx, organizationID, payroll.CreateRunRequest{Month: 3, Year: 2025})

		assert.ErrorIs(t, err, payrollerrors.ErrRunExistsForPeriod)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("invalid organization id", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Create(ctx, "not-a-uuid", payroll.CreateRunRequest{Month: 3, Year: 2025})

		assert.ErrorIs(t, err, payrollerrors.ErrInvalidOrganizationID)
	})
}

func TestPayrollService_Process(t *testing.T) {
	ctx := context.Background()
	organizationID := uuid.New()
	actorID := uuid.New().String()
	runID := uuid.New()

	draftRun := func() *payroll.PayrollRun {
		from, to, _ := payroll.PeriodBounds(3, 2025)
		return &payroll.PayrollRun{
			ID:             runID,
			OrganizationID: organizationID,
			Month:          3,
			Year:           2025,
			PeriodFrom:     from,
			PeriodTo:       to,
			Status:         payroll.StatusDraft,
		}
	}

	t.Run("full success completes the run", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)
		defer deps.db.Close()

		run := draftRun()
		deps.repo.findByIDAndOrganizationFn = func(ctx context.Context, orgID, id string) (*payroll.PayrollRun, error) {
			return run, nil
		}

		// Satu payslip berarti satu transaksi persist.
		expectTx(t, deps.sqlMock, true)

		resp, err := deps.service.Process(ctx, organizationID.String(), actorID, runID.String(), payroll.ProcessRunRequest{
			EmployeeIDs: []string{uuid.New().String()},
		})

		assert.NoError(t, err)
		assert.Equal(t, "COMPLETED", resp.Run.Status)
		assert.Len(t, resp.Results, 1)
		assert.Equal(t, payroll.ResultGenerated, resp.Results[0].Status)
		assert.Equal(t, 1, resp.Run.TotalEmployees)
		assert.Equal(t, int64(4200000), resp.Run.TotalGross)
		assert.Equal(t, int64(3840000), resp.Run.TotalNet)
		assert.NotNil(t, resp.Run.ProcessedBy)
		assert.NotNil(t, resp.Run.ProcessedDate)

		// Outbox: satu payslip_generated + satu payroll_run_completed.
		deps.outbox.mu.Lock()
		defer deps.outbox.mu.Unlock()
		assert.Len(t, deps.outbox.created, 2)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("partial failure keeps run processing", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)
		defer deps.db.Close()

		run := draftRun()
		deps.repo.findByIDAndOrganizationFn = func(ctx context.Context, orgID, id string) (*payroll.PayrollRun, error) {
			return run, nil
		}

		okEmployee := uuid.New().String()
		badEmployee := uuid.New().String()
		deps.resolver.resolveForPeriodFn = func(ctx context.Context, orgID, eid string, from, to time.Time) (*salarystructure.SalaryStructure, error) {
			if eid == badEmployee {
				return nil, salarystructureerrors.ErrNoActiveStructure
			}
			return testStructure(), nil
		}

		// Hanya karyawan yang sukses yang membuka transaksi persist.
		expectTx(t, deps.sqlMock, true)

		resp, err := deps.service.Process(ctx, organizationID.String(), actorID, runID.String(), payroll.ProcessRunRequest{
			EmployeeIDs: []string{okEmployee, badEmployee},
		})

		assert.NoError(t, err)
		assert.Equal(t, "PROCESSING", resp.Run.Status)
		assert.Len(t, resp.Results, 2)

		byEmployee := map[string]payroll.EmployeeResult{}
		for _, r := range resp.Results {
			byEmployee[r.EmployeeID] = r
		}
		assert.Equal(t, payroll.ResultGenerated, byEmployee[okEmployee].Status)
		assert.Equal(t, payroll.ResultFailed, byEmployee[badEmployee].Status)
		assert.NotEmpty(t, byEmployee[badEmployee].Error)

		// Agregat tetap dihitung dari payslip yang berhasil.
		assert.Equal(t, 1, resp.Run.TotalEmployees)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("reprocess skips existing payslips", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)
		defer deps.db.Close()

		run := draftRun()
		run.Status = payroll.StatusProcessing
		deps.repo.findByIDAndOrganizationFn = func(ctx context.Context, orgID, id string) (*payroll.PayrollRun, error) {
			return run, nil
		}
		deps.repo.payslipExistsFn = func(ctx context.Context, rid, eid string) (bool, error) {
			return true, nil
		}

		resp, err := deps.service.Process(ctx, organizationID.String(), actorID, runID.String(), payroll.ProcessRunRequest{
			EmployeeIDs: []string{uuid.New().String()},
		})

		assert.NoError(t, err)
		assert.Equal(t, payroll.ResultSkipped, resp.Results[0].Status)
		assert.Equal(t, "COMPLETED", resp.Run.Status)
	})

	t.Run("rejected outside draft or processing", func(t *testing.T) {
		for _, status := range []payroll.RunStatus{payroll.StatusCompleted, payroll.StatusPaid} {
			deps := setupPayrollServiceTest(t)

			run := draftRun()
			run.Status = status
			deps.repo.findByIDAndOrganizationFn = func(ctx context.Context, orgID, id string) (*payroll.PayrollRun, error) {
				return run, nil
			}

			_, err := deps.service.Process(ctx, organizationID.String(), actorID, runID.String(), payroll.ProcessRunRequest{
				EmployeeIDs: []string{uuid.New().String()},
			})

			assert.ErrorIs(t, err, payrollerrors.ErrRunNotProcessable)
			deps.db.Close()
		}
	})

	t.Run("empty employee list", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Process(ctx, organizationID.String(), actorID, runID.String(), payroll.ProcessRunRequest{})

		assert.ErrorIs(t, err, payrollerrors.ErrNoEmployeesSelected)
	})
}

func TestPayrollService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	organizationID := uuid.New()
	runID := uuid.New()

	runWithStatus := func(status payroll.RunStatus) *payroll.PayrollRun {
		return &payroll.PayrollRun{ID: runID, OrganizationID: organizationID, Month: 3, Year: 2025, Status: status}
	}

	t.Run("completed to paid stamps payment date", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)
		defer deps.db.Close()

		deps.repo.findByIDAndOrganizationFn = func(ctx context.Context, orgID, id string) (*payroll.PayrollRun, error) {
			return runWithStatus(payroll.StatusCompleted), nil
		}

		resp, err := deps.service.UpdateStatus(ctx, organizationID.String(), runID.String(), payroll.UpdateRunStatusRequest{Status: "PAID"})

		assert.NoError(t, err)
		assert.Equal(t, "PAID", resp.Status)
		assert.NotNil(t, resp.PaymentDate)
	})

	t.Run("direct jumps rejected", func(t *testing.T) {
		cases := []struct {
			from   payroll.RunStatus
			target string
		}{
			{payroll.StatusDraft, "PAID"},
			{payroll.StatusProcessing, "PAID"},
			{payroll.StatusDraft, "COMPLETED"},
			{payroll.StatusPaid, "DRAFT"},
		}

		for _, tc := range cases {
			deps := setupPayrollServiceTest(t)

			deps.repo.findByIDAndOrganizationFn = func(ctx context.Context, orgID, id string) (*payroll.PayrollRun, error) {
				return runWithStatus(tc.from), nil
			}

			_, err := deps.service.UpdateStatus(ctx, organizationID.String(), runID.String(), payroll.UpdateRunStatusRequest{Status: tc.target})

			assert.ErrorIs(t, err, payrollerrors.ErrInvalidRunTransition, "%s -> %s", tc.from, tc.target)
			deps.db.Close()
		}
	})
}

func TestPayrollService_UpdatePaymentStatus(t *testing.T) {
	ctx := context.Background()
	organizationID := uuid.New()
	runID := uuid.New()
	payslipID := uuid.New()

	pendingPayslip := func() *payroll.Payslip {
		return &payroll.Payslip{
			ID:             payslipID,
			PayrollRunID:   runID,
			OrganizationID: organizationID,
			EmployeeID:     uuid.New(),
			PaymentStatus:  payroll.PaymentPending,
			NetSalary:      3840000,
		}
	}

	t.Run("pending to paid issues reference", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)
		defer deps.db.Close()

		current := pendingPayslip()
		deps.repo.findPayslipFn = func(ctx context.Context, orgID, id string) (*payroll.Payslip, error) {
			return current, nil
		}
		deps.repo.findByIDAndOrganizationFn = func(ctx context.Context, orgID, id string) (*payroll.PayrollRun, error) {
			return &payroll.PayrollRun{ID: runID, OrganizationID: organizationID, Month: 3, Year: 2025}, nil
		}
		deps.repo.updatePaymentStatusFn = func(ctx context.Context, orgID, pid string, from, to payroll.PaymentStatus, paymentDate *time.Time, reference *string) (bool, error) {
			assert.Equal(t, payroll.PaymentPending, from)
			assert.Equal(t, payroll.PaymentPaid, to)
			assert.NotNil(t, paymentDate)
			assert.NotNil(t, reference)
			assert.Equal(t, "PAY-1-202503", *reference)

			current.PaymentStatus = to
			current.PaymentDate = paymentDate
			current.PaymentReference = reference
			return true, nil
		}

		resp, err := deps.service.UpdatePaymentStatus(ctx, organizationID.String(), payslipID.String(), payroll.UpdatePaymentStatusRequest{PaymentStatus: "PAID"})

		assert.NoError(t, err)
		assert.Equal(t, "PAID", resp.PaymentStatus)
		assert.NotNil(t, resp.PaymentDate)
		assert.Equal(t, "PAY-1-202503", *resp.PaymentReference)
	})

	t.Run("repeating current status is a no-op", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)
		defer deps.db.Close()

		paid := pendingPayslip()
		paid.PaymentStatus = payroll.PaymentPaid
		deps.repo.findPayslipFn = func(ctx context.Context, orgID, id string) (*payroll.Payslip, error) {
			return paid, nil
		}
		deps.repo.updatePaymentStatusFn = func(ctx context.Context, orgID, pid string, from, to payroll.PaymentStatus, paymentDate *time.Time, reference *string) (bool, error) {
			t.Fatal("no write expected for an idempotent repeat")
			return false, nil
		}

		resp, err := deps.service.UpdatePaymentStatus(ctx, organizationID.String(), payslipID.String(), payroll.UpdatePaymentStatusRequest{PaymentStatus: "PAID"})

		assert.NoError(t, err)
		assert.Equal(t, "PAID", resp.PaymentStatus)
	})

	t.Run("terminal status rejects further transitions", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)
		defer deps.db.Close()

		paid := pendingPayslip()
		paid.PaymentStatus = payroll.PaymentPaid
		deps.repo.findPayslipFn = func(ctx context.Context, orgID, id string) (*payroll.Payslip, error) {
			return paid, nil
		}

		_, err := deps.service.UpdatePaymentStatus(ctx, organizationID.String(), payslipID.String(), payroll.UpdatePaymentStatusRequest{PaymentStatus: "PENDING"})

		assert.ErrorIs(t, err, payrollerrors.ErrInvalidPaymentTransition)
	})

	t.Run("lost swap against same target is treated as success", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)
		defer deps.db.Close()

		reads := 0
		deps.repo.findPayslipFn = func(ctx context.Context, orgID, id string) (*payroll.Payslip, error) {
			reads++
			p := pendingPayslip()
			if reads > 1 {
				// Penulis lain sudah menandai ON_HOLD lebih dulu.
				p.PaymentStatus = payroll.PaymentOnHold
			}
			return p, nil
		}
		deps.repo.updatePaymentStatusFn = func(ctx context.Context, orgID, pid string, from, to payroll.PaymentStatus, paymentDate *time.Time, reference *string) (bool, error) {
			return false, nil
		}

		resp, err := deps.service.UpdatePaymentStatus(ctx, organizationID.String(), payslipID.String(), payroll.UpdatePaymentStatusRequest{PaymentStatus: "ON_HOLD"})

		assert.NoError(t, err)
		assert.Equal(t, "ON_HOLD", resp.PaymentStatus)
	})

	t.Run("lost swap against different target conflicts", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)
		defer deps.db.Close()

		reads := 0
		deps.repo.findPayslipFn = func(ctx context.Context, orgID, id string) (*payroll.Payslip, error) {
			reads++
			p := pendingPayslip()
			if reads > 1 {
				p.PaymentStatus = payroll.PaymentFailed
			}
			return p, nil
		}
		deps.repo.updatePaymentStatusFn = func(ctx context.Context, orgID, pid string, from, to payroll.PaymentStatus, paymentDate *time.Time, reference *string) (bool, error) {
			return false, nil
		}

		_, err := deps.service.UpdatePaymentStatus(ctx, organizationID.String(), payslipID.String(), payroll.UpdatePaymentStatusRequest{PaymentStatus: "ON_HOLD"})

		assert.ErrorIs(t, err, payrollerrors.ErrPaymentConflict)
	})
}

func TestPayrollService_Delete(t *testing.T) {
	ctx := context.Background()
	organizationID := uuid.New()
	runID := uuid.New()

	t.Run("deletes in any state", func(t *testing.T) {
		for _, status := range []payroll.RunStatus{payroll.StatusDraft, payroll.StatusProcessing, payroll.StatusCompleted, payroll.StatusPaid} {
			deps := setupPayrollServiceTest(t)

			deleted := false
			deps.repo.findByIDAndOrganizationFn = func(ctx context.Context, orgID, id string) (*payroll.PayrollRun, error) {
				return &payroll.PayrollRun{ID: runID, OrganizationID: organizationID, Status: status}, nil
			}
			deps.repo.deleteFn = func(ctx context.Context, orgID, id string) error {
				deleted = true
				return nil
			}

			err := deps.service.Delete(ctx, organizationID.String(), runID.String())

			assert.NoError(t, err)
			assert.True(t, deleted)
			deps.db.Close()
		}
	})
}

func TestPayrollService_RenderPayslip(t *testing.T) {
	ctx := context.Background()
	organizationID := uuid.New()
	runID := uuid.New()
	payslipID := uuid.New()

	deps := setupPayrollServiceTest(t)
	defer deps.db.Close()

	deps.repo.findPayslipFn = func(ctx context.Context, orgID, id string) (*payroll.Payslip, error) {
		return &payroll.Payslip{
			ID:             payslipID,
			PayrollRunID:   runID,
			OrganizationID: organizationID,
			EmployeeName:   "Jane Tester",
			EmployeeNumber: "EMP-000001",
			TotalEarnings:  4200000,
			NetSalary:      3840000,
			PaymentStatus:  payroll.PaymentPending,
			Components: []payroll.PayslipComponent{
				{Kind: payroll.LineEarning, ComponentName: "Basic", ComponentCode: "BASIC", Amount: 3000000},
			},
		}, nil
	}
	deps.repo.findByIDAndOrganizationFn = func(ctx context.Context, orgID, id string) (*payroll.PayrollRun, error) {
		return &payroll.PayrollRun{ID: runID, OrganizationID: organizationID, Month: 3, Year: 2025}, nil
	}

	pdf, err := deps.service.RenderPayslip(ctx, organizationID.String(), payslipID.String())

	assert.NoError(t, err)
	assert.True(t, len(pdf) > 0)
	assert.Equal(t, "%PDF-1.4", string(pdf[:8]))
}

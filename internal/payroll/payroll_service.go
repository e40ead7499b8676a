package payroll

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"go-payroll/internal/events"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/organization"
	payrollerrors "go-payroll/internal/payroll/errors"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/contextutil"
	"go-payroll/internal/shared/counter"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// Batas goroutine generate per batch. Generate menyentuh Postgres dan Redis,
// jadi paralelisme dibatasi agar tidak menghabiskan pool koneksi.
const processConcurrency = 4

const paymentReferenceCounter = "payment_reference"

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, organizationID string, req CreateRunRequest) (RunResponse, error)
	GetAll(ctx context.Context, organizationID string) ([]RunResponse, error)
	GetByID(ctx context.Context, organizationID, id string) (RunResponse, error)
	Process(ctx context.Context, organizationID, actorID, runID string, req ProcessRunRequest) (ProcessRunResponse, error)
	UpdateStatus(ctx context.Context, organizationID, runID string, req UpdateRunStatusRequest) (RunResponse, error)
	Delete(ctx context.Context, organizationID, runID string) error
	GetPayslips(ctx context.Context, organizationID, runID string) ([]PayslipResponse, error)
	GetPayslip(ctx context.Context, organizationID, payslipID string) (PayslipResponse, error)
	UpdatePaymentStatus(ctx context.Context, organizationID, payslipID string, req UpdatePaymentStatusRequest) (PayslipResponse, error)
	RenderPayslip(ctx context.Context, organizationID, payslipID string) ([]byte, error)
}

type service struct {
	db            *sql.DB
	repo          Repository
	generator     *Generator
	organizations organization.Service
	counter       counter.Repository
	outbox        kafka.OutboxRepository
	logger        *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	generator *Generator,
	organizations organization.Service,
	counterRepo counter.Repository,
	outboxRepo kafka.OutboxRepository,
) Service {
	return &service{
		db:            db,
		repo:          repo,
		generator:     generator,
		organizations: organizations,
		counter:       counterRepo,
		outbox:        outboxRepo,
		logger:        zap.L().Named("payroll.service"),
	}
}

func (s *service) Create(
	ctx context.Context,
	organizationID string,
	req CreateRunRequest,
) (RunResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	orgUUID, err := uuid.Parse(organizationID)
	if err != nil {
		return RunResponse{}, payrollerrors.ErrInvalidOrganizationID
	}

	if err := s.organizations.Validate(ctx, organizationID); err != nil {
		return RunResponse{}, err
	}

	periodFrom, periodTo, err := PeriodBounds(req.Month, req.Year)
	if err != nil {
		return RunResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return RunResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.ExistsForPeriod(ctx, organizationID, req.Month, req.Year)
	if err != nil {
		return RunResponse{}, err
	}
	if exists {
		return RunResponse{}, payrollerrors.ErrRunExistsForPeriod
	}

	run := &PayrollRun{
		ID:             uuid.New(),
		OrganizationID: orgUUID,
		Month:          req.Month,
		Year:           req.Year,
		PeriodFrom:     periodFrom,
		PeriodTo:       periodTo,
		Status:         StatusDraft,
	}

	if err := qtx.Create(ctx, run); err != nil {
		return RunResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return RunResponse{}, err
	}

	s.logger.Info("payroll run created",
		zap.String("request_id", rid),
		zap.String("run_id", run.ID.String()),
		zap.Int("month", req.Month),
		zap.Int("year", req.Year),
	)
	return mapRunToResponse(*run), nil
}

func (s *service) GetAll(ctx context.Context, organizationID string) ([]RunResponse, error) {
	runs, err := s.repo.FindAllByOrganization(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	resp := make([]RunResponse, len(runs))
	for i, run := range runs {
		resp[i] = mapRunToResponse(run)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, organizationID, id string) (RunResponse, error) {
	run, err := s.findRun(ctx, organizationID, id)
	if err != nil {
		return RunResponse{}, err
	}
	return mapRunToResponse(*run), nil
}

// Process menggenerate payslip untuk daftar karyawan yang diminta. Kegagalan
// satu karyawan tidak membatalkan yang lain: hasil dilaporkan per karyawan,
// dan run tetap PROCESSING selama masih ada yang gagal.
func (s *service) Process(
	ctx context.Context,
	organizationID, actorID, runID string,
	req ProcessRunRequest,
) (ProcessRunResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return ProcessRunResponse{}, payrollerrors.ErrInvalidActorID
	}
	if len(req.EmployeeIDs) == 0 {
		return ProcessRunResponse{}, payrollerrors.ErrNoEmployeesSelected
	}

	run, err := s.findRun(ctx, organizationID, runID)
	if err != nil {
		return ProcessRunResponse{}, err
	}
	if !run.Status.Processable() {
		return ProcessRunResponse{}, payrollerrors.ErrRunNotProcessable
	}

	if run.Status == StatusDraft {
		run.Status = StatusProcessing
		if err := s.repo.Update(ctx, run); err != nil {
			return ProcessRunResponse{}, err
		}
	}

	results := make([]EmployeeResult, len(req.EmployeeIDs))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(processConcurrency)
	for i, employeeID := range req.EmployeeIDs {
		i, employeeID := i, employeeID
		g.Go(func() error {
			result := s.processEmployee(gctx, run, employeeID)
			mu.Lock()
			results[i] = result
			mu.Unlock()
			return nil
		})
	}
	// Worker selalu return nil; kegagalan dicatat per karyawan.
	_ = g.Wait()

	failed := 0
	for _, r := range results {
		if r.Status == ResultFailed {
			failed++
		}
	}

	// Satu pass agregasi setelah seluruh generate selesai.
	payslips, err := s.repo.FindPayslipsByRun(ctx, organizationID, runID)
	if err != nil {
		return ProcessRunResponse{}, err
	}
	totals := RecomputeTotals(payslips)
	run.TotalEmployees = totals.TotalEmployees
	run.TotalGross = totals.TotalGross
	run.TotalNet = totals.TotalNet

	if failed == 0 {
		now := time.Now().UTC()
		run.Status = StatusCompleted
		run.ProcessedBy = &actorUUID
		run.ProcessedDate = &now

		if err := s.completeRun(ctx, run, rid); err != nil {
			return ProcessRunResponse{}, err
		}
	} else {
		if err := s.repo.Update(ctx, run); err != nil {
			return ProcessRunResponse{}, err
		}
	}

	s.logger.Info("payroll run processed",
		zap.String("request_id", rid),
		zap.String("run_id", runID),
		zap.Int("requested", len(req.EmployeeIDs)),
		zap.Int("failed", failed),
		zap.String("status", string(run.Status)),
	)

	return ProcessRunResponse{
		Run:     mapRunToResponse(*run),
		Results: results,
	}, nil
}

// processEmployee menggenerate dan menyimpan satu payslip. Reprocess run yang
// setengah jadi aman: karyawan yang sudah punya payslip dilewati.
func (s *service) processEmployee(ctx context.Context, run *PayrollRun, employeeID string) EmployeeResult {
	exists, err := s.repo.PayslipExists(ctx, run.ID.String(), employeeID)
	if err != nil {
		return EmployeeResult{EmployeeID: employeeID, Status: ResultFailed, Error: err.Error()}
	}
	if exists {
		return EmployeeResult{EmployeeID: employeeID, Status: ResultSkipped}
	}

	payslip, err := s.generator.Generate(ctx, run, employeeID)
	if err != nil {
		s.logger.Warn("payslip generation failed",
			zap.String("run_id", run.ID.String()),
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return EmployeeResult{EmployeeID: employeeID, Status: ResultFailed, Error: failureMessage(err)}
	}

	if err := s.persistPayslip(ctx, payslip); err != nil {
		s.logger.Error("payslip persist failed",
			zap.String("run_id", run.ID.String()),
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return EmployeeResult{EmployeeID: employeeID, Status: ResultFailed, Error: failureMessage(err)}
	}

	return EmployeeResult{EmployeeID: employeeID, Status: ResultGenerated}
}

// persistPayslip menyimpan payslip dan event outbox-nya dalam satu transaksi.
func (s *service) persistPayslip(ctx context.Context, payslip *Payslip) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.CreatePayslip(ctx, payslip); err != nil {
		return err
	}

	if s.outbox != nil {
		event := events.PayslipGeneratedEvent{
			EventType:      "payslip_generated",
			PayslipID:      payslip.ID.String(),
			PayrollRunID:   payslip.PayrollRunID.String(),
			OrganizationID: payslip.OrganizationID.String(),
			EmployeeID:     payslip.EmployeeID.String(),
			NetSalary:      payslip.NetSalary,
			OccurredAt:     time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return err
		}

		outboxRepo := s.outbox.WithTx(tx)
		if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     contextutil.GetRequestID(ctx),
			AggregateType: "payslip",
			AggregateID:   payslip.ID.String(),
			EventType:     event.EventType,
			Topic:         events.PayslipGeneratedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// completeRun menyimpan run COMPLETED dan event penyelesaiannya bersama-sama.
func (s *service) completeRun(ctx context.Context, run *PayrollRun, rid string) error {
	if err := s.repo.Update(ctx, run); err != nil {
		return err
	}

	if s.outbox == nil {
		return nil
	}

	event := events.PayrollRunCompletedEvent{
		EventType:      "payroll_run_completed",
		PayrollRunID:   run.ID.String(),
		OrganizationID: run.OrganizationID.String(),
		Month:          run.Month,
		Year:           run.Year,
		TotalEmployees: run.TotalEmployees,
		TotalNetAmount: run.TotalNet,
		ProcessedBy:    run.ProcessedBy.String(),
		OccurredAt:     time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	if err := s.outbox.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "payroll_run",
		AggregateID:   run.ID.String(),
		EventType:     event.EventType,
		Topic:         events.PayrollRunCompletedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("run completed outbox persist failed",
			zap.String("run_id", run.ID.String()),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// UpdateStatus hanya melayani COMPLETED ke PAID. Transisi lain lewat Process,
// bukan endpoint ini.
func (s *service) UpdateStatus(
	ctx context.Context,
	organizationID, runID string,
	req UpdateRunStatusRequest,
) (RunResponse, error) {
	target, err := ParseRunStatus(req.Status)
	if err != nil {
		return RunResponse{}, payrollerrors.ErrInvalidRunTransition
	}

	run, err := s.findRun(ctx, organizationID, runID)
	if err != nil {
		return RunResponse{}, err
	}

	if target != StatusPaid || !run.Status.CanTransitionTo(target) {
		return RunResponse{}, payrollerrors.ErrInvalidRunTransition
	}

	now := time.Now().UTC()
	run.Status = StatusPaid
	run.PaymentDate = &now

	if err := s.repo.Update(ctx, run); err != nil {
		return RunResponse{}, err
	}

	s.logger.Info("payroll run marked paid",
		zap.String("run_id", runID),
		zap.String("organization_id", organizationID),
	)
	return mapRunToResponse(*run), nil
}

func (s *service) Delete(ctx context.Context, organizationID, runID string) error {
	if _, err := s.findRun(ctx, organizationID, runID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, organizationID, runID); err != nil {
		return err
	}

	s.logger.Info("payroll run deleted",
		zap.String("run_id", runID),
		zap.String("organization_id", organizationID),
	)
	return nil
}

func (s *service) GetPayslips(ctx context.Context, organizationID, runID string) ([]PayslipResponse, error) {
	if _, err := s.findRun(ctx, organizationID, runID); err != nil {
		return nil, err
	}

	payslips, err := s.repo.FindPayslipsByRun(ctx, organizationID, runID)
	if err != nil {
		return nil, err
	}

	resp := make([]PayslipResponse, len(payslips))
	for i, p := range payslips {
		resp[i] = mapPayslipToResponse(p)
	}
	return resp, nil
}

func (s *service) GetPayslip(ctx context.Context, organizationID, payslipID string) (PayslipResponse, error) {
	payslip, err := s.findPayslip(ctx, organizationID, payslipID)
	if err != nil {
		return PayslipResponse{}, err
	}
	return mapPayslipToResponse(*payslip), nil
}

// UpdatePaymentStatus menjalankan sub-state-machine pembayaran per payslip.
// Idempotent untuk status yang sama; transisi bersaing diserialisasi lewat
// UPDATE bersyarat di repo.
func (s *service) UpdatePaymentStatus(
	ctx context.Context,
	organizationID, payslipID string,
	req UpdatePaymentStatusRequest,
) (PayslipResponse, error) {
	target, err := ParsePaymentStatus(req.PaymentStatus)
	if err != nil {
		return PayslipResponse{}, payrollerrors.ErrInvalidPaymentTransition
	}

	payslip, err := s.findPayslip(ctx, organizationID, payslipID)
	if err != nil {
		return PayslipResponse{}, err
	}

	// Mengulang status yang sudah berlaku adalah no-op.
	if payslip.PaymentStatus == target {
		return mapPayslipToResponse(*payslip), nil
	}

	if !payslip.PaymentStatus.CanTransitionTo(target) {
		return PayslipResponse{}, payrollerrors.ErrInvalidPaymentTransition
	}

	var paymentDate *time.Time
	var reference *string
	if target == PaymentPaid {
		now := time.Now().UTC()
		paymentDate = &now

		run, err := s.findRun(ctx, organizationID, payslip.PayrollRunID.String())
		if err != nil {
			return PayslipResponse{}, err
		}
		seq, err := s.counter.GetNextValue(ctx, organizationID, paymentReferenceCounter)
		if err != nil {
			return PayslipResponse{}, err
		}
		ref := fmt.Sprintf("PAY-%d-%04d%02d", seq, run.Year, run.Month)
		reference = &ref
	}

	swapped, err := s.repo.UpdatePaymentStatus(
		ctx, organizationID, payslipID, payslip.PaymentStatus, target, paymentDate, reference,
	)
	if err != nil {
		return PayslipResponse{}, err
	}
	if !swapped {
		// Penulis lain menang. Baca ulang: kalau hasil akhirnya sama dengan
		// yang diminta, anggap sukses idempotent; kalau beda, konflik.
		current, err := s.findPayslip(ctx, organizationID, payslipID)
		if err != nil {
			return PayslipResponse{}, err
		}
		if current.PaymentStatus == target {
			return mapPayslipToResponse(*current), nil
		}
		return PayslipResponse{}, payrollerrors.ErrPaymentConflict
	}

	s.logger.Info("payslip payment status updated",
		zap.String("payslip_id", payslipID),
		zap.String("from", string(payslip.PaymentStatus)),
		zap.String("to", string(target)),
	)

	updated, err := s.findPayslip(ctx, organizationID, payslipID)
	if err != nil {
		return PayslipResponse{}, err
	}
	return mapPayslipToResponse(*updated), nil
}

func (s *service) RenderPayslip(ctx context.Context, organizationID, payslipID string) ([]byte, error) {
	payslip, err := s.findPayslip(ctx, organizationID, payslipID)
	if err != nil {
		return nil, err
	}

	run, err := s.findRun(ctx, organizationID, payslip.PayrollRunID.String())
	if err != nil {
		return nil, err
	}

	return RenderPayslipPDF(payslip, run)
}

func (s *service) findRun(ctx context.Context, organizationID, id string) (*PayrollRun, error) {
	run, err := s.repo.FindByIDAndOrganization(ctx, organizationID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, payrollerrors.ErrRunNotFound
		}
		return nil, err
	}
	return run, nil
}

func (s *service) findPayslip(ctx context.Context, organizationID, id string) (*Payslip, error) {
	payslip, err := s.repo.FindPayslipByIDAndOrganization(ctx, organizationID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, payrollerrors.ErrPayslipNotFound
		}
		return nil, err
	}
	return payslip, nil
}

// failureMessage melaporkan pesan AppError apa adanya untuk hasil batch;
// error infrastruktur lain dibungkus pesan generik.
func failureMessage(err error) string {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "internal error"
}

func mapRunToResponse(run PayrollRun) RunResponse {
	resp := RunResponse{
		ID:             run.ID.String(),
		OrganizationID: run.OrganizationID.String(),
		Month:          run.Month,
		Year:           run.Year,
		PeriodFrom:     run.PeriodFrom.Format("2006-01-02"),
		PeriodTo:       run.PeriodTo.Format("2006-01-02"),
		Status:         string(run.Status),
		TotalEmployees: run.TotalEmployees,
		TotalGross:     run.TotalGross,
		TotalNet:       run.TotalNet,
	}

	if run.PaymentDate != nil {
		v := run.PaymentDate.Format(time.RFC3339)
		resp.PaymentDate = &v
	}
	if run.ProcessedBy != nil {
		v := run.ProcessedBy.String()
		resp.ProcessedBy = &v
	}
	if run.ProcessedDate != nil {
		v := run.ProcessedDate.Format(time.RFC3339)
		resp.ProcessedDate = &v
	}

	return resp
}

func mapPayslipToResponse(p Payslip) PayslipResponse {
	resp := PayslipResponse{
		ID:             p.ID.String(),
		PayrollRunID:   p.PayrollRunID.String(),
		OrganizationID: p.OrganizationID.String(),
		EmployeeID:     p.EmployeeID.String(),
		EmployeeName:   p.EmployeeName,
		EmployeeNumber: p.EmployeeNumber,

		PresentDays:      p.PresentDays,
		AbsentDays:       p.AbsentDays,
		PaidLeaves:       p.PaidLeaves,
		OvertimeHours:    p.OvertimeHours,
		TotalWorkingDays: p.TotalWorkingDays,

		GrossSalary:         p.GrossSalary,
		TotalEarnings:       p.TotalEarnings,
		TotalDeductions:     p.TotalDeductions,
		TotalReimbursements: p.TotalReimbursements,
		NetSalary:           p.NetSalary,

		PaymentStatus: string(p.PaymentStatus),
		PaymentMode:   string(p.PaymentMode),

		Lines: make([]PayslipLineResponse, len(p.Components)),
	}

	if p.PaymentDate != nil {
		v := p.PaymentDate.Format(time.RFC3339)
		resp.PaymentDate = &v
	}
	resp.PaymentReference = p.PaymentReference

	for i, c := range p.Components {
		resp.Lines[i] = PayslipLineResponse{
			Kind:          string(c.Kind),
			ComponentName: c.ComponentName,
			ComponentCode: c.ComponentCode,
			ComponentType: string(c.ComponentType),
			Amount:        c.Amount,
		}
	}

	return resp
}

package payroll

import (
	"context"
	"database/sql"
	"time"

	"go-payroll/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	Create(ctx context.Context, run *PayrollRun) error
	ExistsForPeriod(ctx context.Context, organizationID string, month, year int) (bool, error)
	FindAllByOrganization(ctx context.Context, organizationID string) ([]PayrollRun, error)
	FindByIDAndOrganization(ctx context.Context, organizationID string, id string) (*PayrollRun, error)
	Update(ctx context.Context, run *PayrollRun) error
	Delete(ctx context.Context, organizationID string, id string) error

	CreatePayslip(ctx context.Context, payslip *Payslip) error
	PayslipExists(ctx context.Context, runID string, employeeID string) (bool, error)
	FindPayslipsByRun(ctx context.Context, organizationID string, runID string) ([]Payslip, error)
	FindPayslipByIDAndOrganization(ctx context.Context, organizationID string, id string) (*Payslip, error)
	UpdatePaymentStatus(ctx context.Context, organizationID string, payslipID string, from, to PaymentStatus, paymentDate *time.Time, reference *string) (bool, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) Create(ctx context.Context, run *PayrollRun) error {
	return r.db.WithContext(ctx).Create(run).Error
}

func (r *repository) ExistsForPeriod(ctx context.Context, organizationID string, month, year int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&PayrollRun{}).
		Scopes(tenant.Scope(organizationID)).
		Where("month = ? AND year = ?", month, year).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) FindAllByOrganization(ctx context.Context, organizationID string) ([]PayrollRun, error) {
	var runs []PayrollRun
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(organizationID)).
		Order("year DESC, month DESC").
		Find(&runs).Error
	return runs, err
}

func (r *repository) FindByIDAndOrganization(ctx context.Context, organizationID string, id string) (*PayrollRun, error) {
	var run PayrollRun
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(organizationID)).
		First(&run, "id = ?", id).Error
	return &run, err
}

func (r *repository) Update(ctx context.Context, run *PayrollRun) error {
	return r.db.WithContext(ctx).
		Omit("Payslips").
		Save(run).Error
}

// Delete menghapus run beserta payslip dan baris komponennya. Destructive,
// konfirmasi adalah urusan pemanggil.
func (r *repository) Delete(ctx context.Context, organizationID string, id string) error {
	return r.db.WithContext(ctx).Transaction(func(txdb *gorm.DB) error {
		if err := txdb.
			Where("payslip_id IN (?)",
				txdb.Session(&gorm.Session{NewDB: true}).
					Model(&Payslip{}).
					Select("id").
					Where("payroll_run_id = ? AND organization_id = ?", id, organizationID),
			).
			Delete(&PayslipComponent{}).Error; err != nil {
			return err
		}
		if err := txdb.
			Where("payroll_run_id = ? AND organization_id = ?", id, organizationID).
			Delete(&Payslip{}).Error; err != nil {
			return err
		}
		return txdb.
			Scopes(tenant.Scope(organizationID)).
			Delete(&PayrollRun{}, "id = ?", id).Error
	})
}

func (r *repository) CreatePayslip(ctx context.Context, payslip *Payslip) error {
	return r.db.WithContext(ctx).Create(payslip).Error
}

func (r *repository) PayslipExists(ctx context.Context, runID string, employeeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Payslip{}).
		Where("payroll_run_id = ? AND employee_id = ?", runID, employeeID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) FindPayslipsByRun(ctx context.Context, organizationID string, runID string) ([]Payslip, error) {
	var payslips []Payslip
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(organizationID)).
		Where("payroll_run_id = ?", runID).
		Order("employee_number ASC").
		Preload("Components").
		Find(&payslips).Error
	return payslips, err
}

func (r *repository) FindPayslipByIDAndOrganization(ctx context.Context, organizationID string, id string) (*Payslip, error) {
	var payslip Payslip
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(organizationID)).
		Preload("Components").
		First(&payslip, "id = ?", id).Error
	return &payslip, err
}

// UpdatePaymentStatus adalah compare-and-swap: UPDATE bersyarat pada status
// saat ini. RowsAffected 0 berarti ada penulis lain yang menang, pemanggil
// membaca ulang dan memutuskan. Tidak ada last-writer-wins.
func (r *repository) UpdatePaymentStatus(
	ctx context.Context,
	organizationID string,
	payslipID string,
	from, to PaymentStatus,
	paymentDate *time.Time,
	reference *string,
) (bool, error) {
	values := map[string]interface{}{
		"payment_status": to,
		"updated_at":     time.Now().UTC(),
	}
	if paymentDate != nil {
		values["payment_date"] = *paymentDate
	}
	if reference != nil {
		values["payment_reference"] = *reference
	}

	result := r.db.WithContext(ctx).
		Model(&Payslip{}).
		Scopes(tenant.Scope(organizationID)).
		Where("id = ? AND payment_status = ?", payslipID, from).
		Updates(values)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

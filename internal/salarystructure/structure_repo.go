package salarystructure

import (
	"context"
	"database/sql"
	"time"

	"go-payroll/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=structure_repo.go -destination=mock/structure_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, structure *SalaryStructure) error
	FindAllByEmployee(ctx context.Context, organizationID, employeeID string) ([]SalaryStructure, error)
	FindByIDAndOrganization(ctx context.Context, organizationID string, id string) (*SalaryStructure, error)
	FindCurrentForPeriod(ctx context.Context, organizationID, employeeID string, periodFrom, periodTo time.Time) (*SalaryStructure, error)
	CloseCurrent(ctx context.Context, organizationID, employeeID string, closedAt time.Time) error
	EmployeeBelongsToOrganization(ctx context.Context, organizationID, employeeID string) (bool, error)
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

func (r *repository) Create(ctx context.Context, structure *SalaryStructure) error {
	return r.db.WithContext(ctx).Create(structure).Error
}

func (r *repository) FindAllByEmployee(ctx context.Context, organizationID, employeeID string) ([]SalaryStructure, error) {
	var rows []SalaryStructure
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(organizationID)).
		Preload("Assignments").
		Where("employee_id = ?", employeeID).
		Order("effective_from DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByIDAndOrganization(ctx context.Context, organizationID string, id string) (*SalaryStructure, error) {
	var row SalaryStructure
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(organizationID)).
		Preload("Assignments").
		First(&row, "id = ?", id).Error
	return &row, err
}

// FindCurrentForPeriod mencari struktur yang rentang efektifnya menutupi
// periode payroll: effective_from <= periodTo dan (effective_to null atau
// effective_to >= periodFrom). Revisi terbaru menang.
func (r *repository) FindCurrentForPeriod(
	ctx context.Context,
	organizationID, employeeID string,
	periodFrom, periodTo time.Time,
) (*SalaryStructure, error) {
	var row SalaryStructure
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(organizationID)).
		Preload("Assignments").
		Where("employee_id = ?", employeeID).
		Where("effective_from <= ?", periodTo).
		Where("effective_to IS NULL OR effective_to >= ?", periodFrom).
		Order("effective_from DESC").
		First(&row).Error
	return &row, err
}

// CloseCurrent menutup struktur aktif sebelumnya saat revisi baru dibuat.
// Struktur lama tetap utuh sebagai histori.
func (r *repository) CloseCurrent(
	ctx context.Context,
	organizationID, employeeID string,
	closedAt time.Time,
) error {
	return r.db.WithContext(ctx).
		Model(&SalaryStructure{}).
		Scopes(tenant.Scope(organizationID)).
		Where("employee_id = ?", employeeID).
		Where("is_current = TRUE").
		Updates(map[string]interface{}{
			"is_current":   false,
			"effective_to": closedAt,
		}).Error
}

func (r *repository) EmployeeBelongsToOrganization(ctx context.Context, organizationID, employeeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("id = ?", employeeID).
		Scopes(tenant.Scope(organizationID)).
		Where("deleted_at IS NULL").
		Count(&count).Error
	return count > 0, err
}

package employee

import (
	"context"

	"go-payroll/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	FindAllByOrganization(ctx context.Context, organizationID string) ([]Employee, error)
	FindByIDAndOrganization(ctx context.Context, organizationID string, id string) (*Employee, error)
	BelongsToOrganization(ctx context.Context, organizationID string, id string) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindAllByOrganization(ctx context.Context, organizationID string) ([]Employee, error) {
	var rows []Employee
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(organizationID)).
		Order("full_name ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByIDAndOrganization(ctx context.Context, organizationID string, id string) (*Employee, error) {
	var row Employee
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(organizationID)).
		First(&row, "id = ?", id).Error
	return &row, err
}

func (r *repository) BelongsToOrganization(ctx context.Context, organizationID string, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Scopes(tenant.Scope(organizationID)).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

package component

import (
	"context"
	"database/sql"

	"go-payroll/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=component_repo.go -destination=mock/component_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, comp *SalaryComponent) error
	FindAllByOrganization(ctx context.Context, organizationID string) ([]SalaryComponent, error)
	FindByIDAndOrganization(ctx context.Context, organizationID string, id string) (*SalaryComponent, error)
	CodeExists(ctx context.Context, organizationID string, code string, excludeID *string) (bool, error)
	IsReferencedByStructure(ctx context.Context, organizationID string, id string) (bool, error)
	Update(ctx context.Context, comp *SalaryComponent) error
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

func (r *repository) Create(ctx context.Context, comp *SalaryComponent) error {
	return r.db.WithContext(ctx).Create(comp).Error
}

func (r *repository) FindAllByOrganization(ctx context.Context, organizationID string) ([]SalaryComponent, error) {
	var comps []SalaryComponent
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(organizationID)).
		Order("sort_order ASC, code ASC").
		Find(&comps).Error
	return comps, err
}

func (r *repository) FindByIDAndOrganization(ctx context.Context, organizationID string, id string) (*SalaryComponent, error) {
	var comp SalaryComponent
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(organizationID)).
		First(&comp, "id = ?", id).Error
	return &comp, err
}

func (r *repository) CodeExists(
	ctx context.Context,
	organizationID string,
	code string,
	excludeID *string,
) (bool, error) {
	db := r.db.WithContext(ctx).
		Model(&SalaryComponent{}).
		Scopes(tenant.Scope(organizationID)).
		Where("code = ?", code)

	if excludeID != nil && *excludeID != "" {
		db = db.Where("id <> ?", *excludeID)
	}

	var count int64
	err := db.Count(&count).Error
	return count > 0, err
}

func (r *repository) IsReferencedByStructure(ctx context.Context, organizationID string, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("structure_component_assignments a").
		Joins("JOIN salary_structures s ON s.id = a.salary_structure_id").
		Where("a.salary_component_id = ?", id).
		Where("s.organization_id = ?", organizationID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Update(ctx context.Context, comp *SalaryComponent) error {
	return r.db.WithContext(ctx).Save(comp).Error
}

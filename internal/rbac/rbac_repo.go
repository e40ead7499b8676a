package rbac

import (
	"gorm.io/gorm"
)

type EmployeeRole struct {
	EmployeeID string
	RoleID     string
}

type RolePermission struct {
	RoleID   string
	Resource string
	Action   string
}

//go:generate mockgen -source=rbac_repo.go -destination=mock/rbac_repo_mock.go -package=mock
type Repository interface {
	GetEmployeeRoles(organizationID string) ([]EmployeeRole, error)
	GetRolePermissions(organizationID string) ([]RolePermission, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetEmployeeRoles(organizationID string) ([]EmployeeRole, error) {
	var rows []EmployeeRole
	err := r.db.
		Table("employee_roles").
		Select("employee_id::text AS employee_id, role_id::text AS role_id").
		Where("organization_id = ?", organizationID).
		Scan(&rows).Error
	return rows, err
}

func (r *repository) GetRolePermissions(organizationID string) ([]RolePermission, error) {
	var rows []RolePermission
	err := r.db.
		Table("role_permissions rp").
		Select("rp.role_id::text AS role_id, p.resource, p.action").
		Joins("JOIN permissions p ON p.id = rp.permission_id").
		Joins("JOIN roles ro ON ro.id = rp.role_id").
		Where("ro.organization_id = ?", organizationID).
		Scan(&rows).Error
	return rows, err
}

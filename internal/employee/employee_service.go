package employee

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	employeeerrors "go-payroll/internal/employee/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const EmployeeDetailKeyPrefix = "employees:detail:"

func GetEmployeeDetailKey(organizationID, employeeID string) string {
	return EmployeeDetailKeyPrefix + organizationID + ":" + employeeID
}

// EmployeeRef adalah potret ringan karyawan untuk kebutuhan payroll
// (denormalized ke payslip saat generate).
type EmployeeRef struct {
	ID             string `json:"id"`
	FullName       string `json:"full_name"`
	EmployeeNumber string `json:"employee_number"`
	Designation    string `json:"designation"`
	Department     string `json:"department"`
}

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Resolve(ctx context.Context, organizationID, employeeID string) (EmployeeRef, error)
	GetAll(ctx context.Context, organizationID string) ([]EmployeeRef, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client) Service {
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: zap.L().Named("employee.service"),
	}
}

// Resolve mencari karyawan untuk payroll. Lookup ini berada di hot path
// pembuatan payslip, jadi hasilnya di-cache dan query DB dilindungi singleflight.
func (s *service) Resolve(ctx context.Context, organizationID, employeeID string) (EmployeeRef, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return EmployeeRef{}, employeeerrors.ErrInvalidEmployeeID
	}

	cacheKey := GetEmployeeDetailKey(organizationID, employeeID)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var ref EmployeeRef
			if err := json.Unmarshal([]byte(cached), &ref); err == nil {
				return ref, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		row, err := s.repo.FindByIDAndOrganization(ctx, organizationID, employeeID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return EmployeeRef{}, employeeerrors.ErrEmployeeNotFound
			}
			return EmployeeRef{}, err
		}

		ref := mapToRef(*row)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(ref); err == nil {
				s.rdb.Set(ctx, cacheKey, jsonData, 15*time.Minute)
			}
		}

		return ref, nil
	})

	if err != nil {
		return EmployeeRef{}, err
	}

	return v.(EmployeeRef), nil
}

func (s *service) GetAll(ctx context.Context, organizationID string) ([]EmployeeRef, error) {
	rows, err := s.repo.FindAllByOrganization(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	refs := make([]EmployeeRef, len(rows))
	for i, row := range rows {
		refs[i] = mapToRef(row)
	}
	return refs, nil
}

func mapToRef(e Employee) EmployeeRef {
	return EmployeeRef{
		ID:             e.ID.String(),
		FullName:       e.FullName,
		EmployeeNumber: e.EmployeeNumber,
		Designation:    e.Designation,
		Department:     e.Department,
	}
}

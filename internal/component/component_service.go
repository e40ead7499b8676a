package component

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	componenterrors "go-payroll/internal/component/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const ComponentAllKeyPrefix = "components:all:"

func GetComponentAllKey(organizationID string) string {
	return ComponentAllKeyPrefix + organizationID
}

//go:generate mockgen -source=component_service.go -destination=mock/component_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, organizationID string, req CreateComponentRequest) (ComponentResponse, error)
	GetAll(ctx context.Context, organizationID string) ([]ComponentResponse, error)
	GetByID(ctx context.Context, organizationID, id string) (ComponentResponse, error)
	Update(ctx context.Context, organizationID, id string, req UpdateComponentRequest) (ComponentResponse, error)
	Deactivate(ctx context.Context, organizationID, id string) (ComponentResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client) Service {
	return &service{
		db:     db,
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: zap.L().Named("component.service"),
	}
}

func (s *service) Create(
	ctx context.Context,
	organizationID string,
	req CreateComponentRequest,
) (ComponentResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ComponentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	compType, err := ParseComponentType(req.Type)
	if err != nil {
		return ComponentResponse{}, componenterrors.ErrInvalidComponentType
	}

	calcType, err := ParseCalculationType(req.CalculationType)
	if err != nil {
		return ComponentResponse{}, componenterrors.ErrInvalidCalculationType
	}

	code := strings.ToUpper(strings.TrimSpace(req.Code))

	exists, err := qtx.CodeExists(ctx, organizationID, code, nil)
	if err != nil {
		return ComponentResponse{}, err
	}
	if exists {
		return ComponentResponse{}, componenterrors.ErrDuplicateComponentCode
	}

	comp := &SalaryComponent{
		ID:               uuid.New(),
		OrganizationID:   uuid.MustParse(organizationID),
		Name:             req.Name,
		Code:             code,
		Type:             compType,
		CalculationType:  calcType,
		IsTaxable:        req.IsTaxable,
		IsFixed:          req.IsFixed,
		DisplayInPayslip: req.DisplayInPayslip,
		SortOrder:        req.SortOrder,
		IsActive:         true,
	}

	if err := qtx.Create(ctx, comp); err != nil {
		return ComponentResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return ComponentResponse{}, err
	}

	s.invalidateCache(ctx, organizationID)

	return mapToResponse(*comp), nil
}

func (s *service) GetAll(
	ctx context.Context,
	organizationID string,
) ([]ComponentResponse, error) {
	cacheKey := GetComponentAllKey(organizationID)

	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, cacheKey).Result()
		if err == nil {
			var resp []ComponentResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		}
	}

	// Singleflight untuk mencegah query berulang ke DB saat cache kosong
	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		comps, err := s.repo.FindAllByOrganization(ctx, organizationID)
		if err != nil {
			return nil, err
		}

		resp := mapToListResponse(comps)

		// Data katalog jarang berubah; TTL 30 menit cukup
		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, jsonData, 30*time.Minute)
			}
		}

		return resp, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]ComponentResponse), nil
}

func (s *service) GetByID(
	ctx context.Context,
	organizationID, id string,
) (ComponentResponse, error) {
	comp, err := s.repo.FindByIDAndOrganization(ctx, organizationID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ComponentResponse{}, componenterrors.ErrComponentNotFound
		}
		return ComponentResponse{}, err
	}

	return mapToResponse(*comp), nil
}

func (s *service) Update(
	ctx context.Context,
	organizationID, id string,
	req UpdateComponentRequest,
) (ComponentResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ComponentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	comp, err := qtx.FindByIDAndOrganization(ctx, organizationID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ComponentResponse{}, componenterrors.ErrComponentNotFound
		}
		return ComponentResponse{}, err
	}

	compType, err := ParseComponentType(req.Type)
	if err != nil {
		return ComponentResponse{}, componenterrors.ErrInvalidComponentType
	}

	calcType, err := ParseCalculationType(req.CalculationType)
	if err != nil {
		return ComponentResponse{}, componenterrors.ErrInvalidCalculationType
	}

	comp.Name = req.Name
	comp.Type = compType
	comp.CalculationType = calcType
	comp.IsTaxable = req.IsTaxable
	comp.IsFixed = req.IsFixed
	comp.DisplayInPayslip = req.DisplayInPayslip
	comp.SortOrder = req.SortOrder

	if err := qtx.Update(ctx, comp); err != nil {
		return ComponentResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return ComponentResponse{}, err
	}

	s.invalidateCache(ctx, organizationID)

	return mapToResponse(*comp), nil
}

// Deactivate mematikan komponen tanpa menghapus. Komponen yang sudah dipakai
// struktur gaji tidak boleh hilang dari histori payslip.
func (s *service) Deactivate(
	ctx context.Context,
	organizationID, id string,
) (ComponentResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ComponentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	comp, err := qtx.FindByIDAndOrganization(ctx, organizationID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ComponentResponse{}, componenterrors.ErrComponentNotFound
		}
		return ComponentResponse{}, err
	}

	if !comp.IsActive {
		// idempotent
		if err := tx.Commit(); err != nil {
			return ComponentResponse{}, err
		}
		return mapToResponse(*comp), nil
	}

	comp.IsActive = false
	if err := qtx.Update(ctx, comp); err != nil {
		return ComponentResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return ComponentResponse{}, err
	}

	s.invalidateCache(ctx, organizationID)

	return mapToResponse(*comp), nil
}

func (s *service) invalidateCache(ctx context.Context, organizationID string) {
	if s.rdb == nil {
		return
	}
	cacheKey := GetComponentAllKey(organizationID)
	if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
		s.logger.Error("invalidate component cache failed",
			zap.String("cache_key", cacheKey),
			zap.Error(err),
		)
	}
}

func mapToResponse(comp SalaryComponent) ComponentResponse {
	return ComponentResponse{
		ID:               comp.ID.String(),
		OrganizationID:   comp.OrganizationID.String(),
		Name:             comp.Name,
		Code:             comp.Code,
		Type:             string(comp.Type),
		CalculationType:  string(comp.CalculationType),
		IsTaxable:        comp.IsTaxable,
		IsFixed:          comp.IsFixed,
		DisplayInPayslip: comp.DisplayInPayslip,
		SortOrder:        comp.SortOrder,
		IsActive:         comp.IsActive,
	}
}

func mapToListResponse(comps []SalaryComponent) []ComponentResponse {
	resp := make([]ComponentResponse, len(comps))
	for i, comp := range comps {
		resp[i] = mapToResponse(comp)
	}
	return resp
}

package organization

import (
	"context"
	"errors"

	organizationerrors "go-payroll/internal/organization/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=organization_service.go -destination=mock/organization_service_mock.go -package=mock
type Service interface {
	GetByID(ctx context.Context, id string) (*OrganizationResponse, error)
	Validate(ctx context.Context, id string) error
}

type OrganizationResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetByID(ctx context.Context, id string) (*OrganizationResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, organizationerrors.ErrInvalidOrganizationID
	}

	org, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, organizationerrors.ErrOrganizationNotFound
		}
		return nil, err
	}

	return &OrganizationResponse{
		ID:    org.ID.String(),
		Name:  org.Name,
		Email: org.Email,
	}, nil
}

// Validate memastikan organization ada sebelum entitas lain menempel padanya.
func (s *service) Validate(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return organizationerrors.ErrInvalidOrganizationID
	}

	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return organizationerrors.ErrOrganizationNotFound
	}
	return nil
}

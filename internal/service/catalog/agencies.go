package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/Domenick1991/goglobe/internal/domain"
	"github.com/Domenick1991/goglobe/internal/repository"
)

type AgencyUseCase interface {
	List(ctx context.Context) ([]domain.Agency, error)
	GetByID(ctx context.Context, id int64) (*domain.Agency, error)
	Create(ctx context.Context, agency *domain.Agency) error
	Update(ctx context.Context, id int64, patch AgencyPatch) (*domain.Agency, error)
	Delete(ctx context.Context, id int64) error
}

// AgencyPatch applies only the non-nil members.
type AgencyPatch struct {
	Name    *string
	Address *string
	Logo    *string
}

type AgencyService struct {
	repo repository.AgencyRepository
}

func NewAgencyService(repo repository.AgencyRepository) *AgencyService {
	return &AgencyService{repo: repo}
}

func (s *AgencyService) List(ctx context.Context) ([]domain.Agency, error) {
	return s.repo.List(ctx)
}

func (s *AgencyService) GetByID(ctx context.Context, id int64) (*domain.Agency, error) {
	a, err := s.repo.GetByID(ctx, id)
	return a, mapErr(err)
}

func (s *AgencyService) Create(ctx context.Context, agency *domain.Agency) error {
	if strings.TrimSpace(agency.Name) == "" {
		return fmt.Errorf("%w: agency name is required", ErrInvalid)
	}
	return mapErr(s.repo.Create(ctx, agency))
}

func (s *AgencyService) Update(ctx context.Context, id int64, patch AgencyPatch) (*domain.Agency, error) {
	agency, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			return nil, fmt.Errorf("%w: agency name must not be empty", ErrInvalid)
		}
		agency.Name = *patch.Name
	}
	if patch.Address != nil {
		agency.Address = *patch.Address
	}
	if patch.Logo != nil {
		agency.Logo = *patch.Logo
	}
	if err := s.repo.Update(ctx, agency); err != nil {
		return nil, mapErr(err)
	}
	return agency, nil
}

func (s *AgencyService) Delete(ctx context.Context, id int64) error {
	return mapErr(s.repo.Delete(ctx, id))
}

var _ AgencyUseCase = (*AgencyService)(nil)

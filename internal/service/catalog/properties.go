package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/Domenick1991/goglobe/internal/domain"
	"github.com/Domenick1991/goglobe/internal/repository"
)

type PropertyUseCase interface {
	List(ctx context.Context) ([]domain.Property, error)
	Create(ctx context.Context, property *domain.Property) error
	Delete(ctx context.Context, id int64) error
}

type PropertyService struct {
	repo repository.PropertyRepository
}

func NewPropertyService(repo repository.PropertyRepository) *PropertyService {
	return &PropertyService{repo: repo}
}

func (s *PropertyService) List(ctx context.Context) ([]domain.Property, error) {
	return s.repo.List(ctx)
}

func (s *PropertyService) Create(ctx context.Context, p *domain.Property) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: property name is required", ErrInvalid)
	}
	if !p.Kind.Valid() {
		return fmt.Errorf("%w: property kind must be %q or %q", ErrInvalid, domain.PropertyKindIncluded, domain.PropertyKindExcluded)
	}
	return mapErr(s.repo.Create(ctx, p))
}

func (s *PropertyService) Delete(ctx context.Context, id int64) error {
	return mapErr(s.repo.Delete(ctx, id))
}

var _ PropertyUseCase = (*PropertyService)(nil)

package offers

import (
	"context"
	"errors"
	"fmt"

	"github.com/Domenick1991/goglobe/internal/domain"
	"github.com/Domenick1991/goglobe/internal/repository"
	"github.com/sirupsen/logrus"
)

var (
	ErrNotFound     = errors.New("travel offer not found")
	ErrInvalidOffer = errors.New("invalid travel offer")
	ErrConflict     = errors.New("travel offer conflict")
)

type OfferUseCase interface {
	List(ctx context.Context) ([]domain.TravelOffer, error)
	GetByID(ctx context.Context, id int64) (*domain.TravelOffer, error)
	Create(ctx context.Context, offer *domain.TravelOffer) error
	Update(ctx context.Context, offer *domain.TravelOffer) error
	Delete(ctx context.Context, id int64) error
	ListProperties(ctx context.Context, offerID int64) ([]domain.Property, error)
	AttachProperty(ctx context.Context, offerID, propertyID int64) error
	DetachProperty(ctx context.Context, offerID, propertyID int64) error
}

type OfferCache interface {
	GetOffers(ctx context.Context) ([]domain.TravelOffer, error)
	SetOffers(ctx context.Context, offers []domain.TravelOffer) error
	InvalidateOffers(ctx context.Context) error
	GetOffer(ctx context.Context, id int64) (*domain.TravelOffer, error)
	SetOffer(ctx context.Context, offer *domain.TravelOffer) error
	InvalidateOffer(ctx context.Context, id int64) error
}

type OfferService struct {
	repo  repository.TravelOfferRepository
	cache OfferCache
	log   logrus.FieldLogger
}

// NewOfferService builds the catalogue service. cache may be nil.
func NewOfferService(repo repository.TravelOfferRepository, cache OfferCache, log logrus.FieldLogger) *OfferService {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &OfferService{repo: repo, cache: cache, log: log}
}

func (s *OfferService) List(ctx context.Context) ([]domain.TravelOffer, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetOffers(ctx); err == nil && cached != nil {
			return cached, nil
		} else if err != nil {
			s.log.WithError(err).Warn("offers cache read")
		}
	}

	offers, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetOffers(ctx, offers)
	}
	return offers, nil
}

func (s *OfferService) GetByID(ctx context.Context, id int64) (*domain.TravelOffer, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetOffer(ctx, id); err == nil && cached != nil {
			return cached, nil
		}
	}

	offer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapErr(err)
	}
	if s.cache != nil {
		_ = s.cache.SetOffer(ctx, offer)
	}
	return offer, nil
}

func (s *OfferService) Create(ctx context.Context, offer *domain.TravelOffer) error {
	if err := validate(offer); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, offer); err != nil {
		return mapErr(err)
	}
	s.invalidate(ctx, offer.ID)
	return nil
}

func (s *OfferService) Update(ctx context.Context, offer *domain.TravelOffer) error {
	if err := validate(offer); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, offer); err != nil {
		return mapErr(err)
	}
	s.invalidate(ctx, offer.ID)
	return nil
}

func (s *OfferService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapErr(err)
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *OfferService) ListProperties(ctx context.Context, offerID int64) ([]domain.Property, error) {
	if _, err := s.GetByID(ctx, offerID); err != nil {
		return nil, err
	}
	return s.repo.ListProperties(ctx, offerID)
}

func (s *OfferService) AttachProperty(ctx context.Context, offerID, propertyID int64) error {
	return mapErr(s.repo.AttachProperty(ctx, offerID, propertyID))
}

func (s *OfferService) DetachProperty(ctx context.Context, offerID, propertyID int64) error {
	return mapErr(s.repo.DetachProperty(ctx, offerID, propertyID))
}

func (s *OfferService) invalidate(ctx context.Context, id int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateOffer(ctx, id); err != nil {
		s.log.WithError(err).WithField("offer_id", id).Warn("offers cache invalidate")
	}
}

func validate(o *domain.TravelOffer) error {
	switch {
	case o.AgencyID <= 0 || o.HotelID <= 0 || o.CityID <= 0 || o.CountryID <= 0:
		return fmt.Errorf("%w: agency, hotel, city and country are required", ErrInvalidOffer)
	case o.PersonCount <= 0:
		return fmt.Errorf("%w: person count must be positive", ErrInvalidOffer)
	case o.Price < 0:
		return fmt.Errorf("%w: price must not be negative", ErrInvalidOffer)
	case !o.ReturnDate.After(o.DepartureDate):
		return fmt.Errorf("%w: return date must be after departure date", ErrInvalidOffer)
	}
	return nil
}

func mapErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, repository.ErrConflict):
		return fmt.Errorf("%w: %w", ErrConflict, err)
	}
	return err
}

var _ OfferUseCase = (*OfferService)(nil)

package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	models "travelbook/internal"
	"travelbook/internal/cache"
	"travelbook/internal/ports"
)

const (
	searchPageSize = 10
	queryLimit     = 20
	featuredLimit  = 6
)

type travelService struct {
	repo  ports.TravelRepository
	cache ports.SearchCache
}

type TravelServiceOption func(*travelService)

// WithSearchCache enables cache-aside reads for the public query
// endpoint.
func WithSearchCache(c ports.SearchCache) TravelServiceOption {
	return func(s *travelService) {
		s.cache = c
	}
}

func NewTravelService(repo ports.TravelRepository, opts ...TravelServiceOption) *travelService {
	s := &travelService{repo: repo}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *travelService) GetTravelOption(ctx context.Context, travelID string) (*models.TravelOption, error) {
	return s.repo.GetByTravelID(ctx, travelID)
}

func (s *travelService) SearchTravelOptions(ctx context.Context, filter models.SearchFilter, page int) (*models.SearchTravelOptionsResponse, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * searchPageSize

	options, total, err := s.repo.Search(ctx, filter, searchPageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("error searching travel options: %w", err)
	}

	return &models.SearchTravelOptionsResponse{
		TravelOptions: options,
		Page:          page,
		PageSize:      searchPageSize,
		Total:         total,
	}, nil
}

func (s *travelService) FeaturedTravelOptions(ctx context.Context) ([]models.TravelOption, error) {
	options, _, err := s.repo.Search(ctx, models.SearchFilter{}, featuredLimit, 0)
	if err != nil {
		return nil, fmt.Errorf("error fetching featured travel options: %w", err)
	}
	return options, nil
}

func (s *travelService) QueryTravelOptions(ctx context.Context, filter models.SearchFilter) (*models.QueryTravelOptionsResponse, error) {
	key := cache.QueryKey(filter)
	if s.cache != nil {
		if cached, err := s.cache.GetTravelOptions(ctx, key); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("search cache read failed")
		} else if cached != nil {
			return &models.QueryTravelOptionsResponse{TravelOptions: cached}, nil
		}
	}

	options, _, err := s.repo.Search(ctx, filter, queryLimit, 0)
	if err != nil {
		return nil, fmt.Errorf("error querying travel options: %w", err)
	}

	summaries := make([]models.TravelOptionSummary, len(options))
	for i, option := range options {
		summaries[i] = models.NewTravelOptionSummary(option)
	}

	if s.cache != nil {
		if err := s.cache.SetTravelOptions(ctx, key, summaries); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("search cache write failed")
		}
	}
	return &models.QueryTravelOptionsResponse{TravelOptions: summaries}, nil
}

func (s *travelService) CreateTravelOption(ctx context.Context, request *models.CreateTravelOptionRequest) (*models.TravelOption, error) {
	price, err := models.ParseCents(request.Price)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidTravelOption, err)
	}
	if price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", models.ErrInvalidTravelOption)
	}
	if !request.ArrivalAt.After(request.DepartureAt) {
		return nil, fmt.Errorf("%w: arrival must be after departure", models.ErrInvalidTravelOption)
	}

	option := &models.TravelOption{
		ID:             uuid.New(),
		TravelID:       request.TravelID,
		TravelType:     models.TravelType(request.TravelType),
		Source:         request.Source,
		Destination:    request.Destination,
		DepartureAt:    request.DepartureAt,
		ArrivalAt:      request.ArrivalAt,
		PriceCents:     price,
		TotalSeats:     request.TotalSeats,
		AvailableSeats: request.TotalSeats,
		Status:         models.TravelStatusActive,
	}

	if err := s.repo.CreateTravelOption(ctx, option); err != nil {
		return nil, err
	}
	return option, nil
}

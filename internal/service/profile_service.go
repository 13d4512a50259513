package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	models "travelbook/internal"
	"travelbook/internal/ports"
)

type profileService struct {
	repo ports.ProfileRepository
}

func NewProfileService(repo ports.ProfileRepository) *profileService {
	return &profileService{repo: repo}
}

func (s *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error) {
	profile, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error fetching profile: %w", err)
	}
	if profile == nil {
		return &models.UserProfile{UserID: userID}, nil
	}
	return profile, nil
}

func (s *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, request *models.UpdateProfileRequest) (*models.UserProfile, error) {
	profile := &models.UserProfile{
		UserID:      userID,
		PhoneNumber: request.PhoneNumber,
		DateOfBirth: request.DateOfBirth,
		Address:     request.Address,
		PictureURL:  request.PictureURL,
	}
	if err := s.repo.UpsertProfile(ctx, profile); err != nil {
		return nil, fmt.Errorf("error updating profile: %w", err)
	}
	return profile, nil
}

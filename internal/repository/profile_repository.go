package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	models "travelbook/internal"
)

type ProfileRepository struct {
	db DBConn
}

func NewProfileRepository(db DBConn) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// GetProfile returns nil without error when no profile row exists yet;
// the service treats that as an empty profile.
func (r *ProfileRepository) GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error) {
	query := `
        SELECT user_id, phone_number, date_of_birth, address, picture_url, created_at, updated_at
        FROM user_profiles
        WHERE user_id = $1
    `
	var profile models.UserProfile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&profile.UserID, &profile.PhoneNumber, &profile.DateOfBirth,
		&profile.Address, &profile.PictureURL, &profile.CreatedAt, &profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepository) UpsertProfile(ctx context.Context, profile *models.UserProfile) error {
	query := `
        INSERT INTO user_profiles (user_id, phone_number, date_of_birth, address, picture_url)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (user_id) DO UPDATE SET
            phone_number = EXCLUDED.phone_number,
            date_of_birth = EXCLUDED.date_of_birth,
            address = EXCLUDED.address,
            picture_url = EXCLUDED.picture_url,
            updated_at = now()
        RETURNING created_at, updated_at
    `
	return r.db.QueryRow(ctx, query,
		profile.UserID, profile.PhoneNumber, profile.DateOfBirth, profile.Address, profile.PictureURL,
	).Scan(&profile.CreatedAt, &profile.UpdatedAt)
}

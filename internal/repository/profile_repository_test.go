package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	models "travelbook/internal"
	"travelbook/internal/repository"
)

func setupProfileRepo(t *testing.T) (pgxmock.PgxPoolIface, *repository.ProfileRepository) {
	mockDb, err := pgxmock.NewPool()
	require.NoError(t, err)
	return mockDb, repository.NewProfileRepository(mockDb)
}

func TestGetProfile(t *testing.T) {
	userID := uuid.New()

	t.Run("found", func(t *testing.T) {
		mockDb, repo := setupProfileRepo(t)
		defer mockDb.Close()

		dob := time.Date(1990, 5, 20, 0, 0, 0, 0, time.UTC)
		mockDb.ExpectQuery(`SELECT user_id, phone_number, date_of_birth, address, picture_url, created_at, updated_at FROM user_profiles WHERE user_id = \$1`).
			WithArgs(userID).
			WillReturnRows(pgxmock.NewRows([]string{
				"user_id", "phone_number", "date_of_birth", "address", "picture_url", "created_at", "updated_at",
			}).AddRow(userID, "+15551234567", &dob, "1 Main St", "", time.Now().UTC(), time.Now().UTC()))

		got, err := repo.GetProfile(context.Background(), userID)
		require.NoError(t, err)
		assert.Equal(t, userID, got.UserID)
		assert.Equal(t, "+15551234567", got.PhoneNumber)
		assert.True(t, got.DateOfBirth.Equal(dob))
	})

	t.Run("missing row returns nil without error", func(t *testing.T) {
		mockDb, repo := setupProfileRepo(t)
		defer mockDb.Close()

		mockDb.ExpectQuery(`FROM user_profiles WHERE user_id = \$1`).
			WithArgs(userID).
			WillReturnError(pgx.ErrNoRows)

		got, err := repo.GetProfile(context.Background(), userID)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestUpsertProfile(t *testing.T) {
	mockDb, repo := setupProfileRepo(t)
	defer mockDb.Close()

	profile := &models.UserProfile{
		UserID:      uuid.New(),
		PhoneNumber: "+15551234567",
		Address:     "1 Main St",
	}

	mockDb.ExpectQuery(`INSERT INTO user_profiles .* ON CONFLICT \(user_id\) DO UPDATE`).
		WithArgs(profile.UserID, profile.PhoneNumber, profile.DateOfBirth, profile.Address, profile.PictureURL).
		WillReturnRows(pgxmock.NewRows([]string{"created_at", "updated_at"}).
			AddRow(time.Now().UTC(), time.Now().UTC()))

	err := repo.UpsertProfile(context.Background(), profile)
	require.NoError(t, err)
	assert.False(t, profile.CreatedAt.IsZero())
}

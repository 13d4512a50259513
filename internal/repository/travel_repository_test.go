package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	models "travelbook/internal"
	"travelbook/internal/repository"
)

func setupTravelRepo(t *testing.T) (pgxmock.PgxPoolIface, *repository.TravelRepository) {
	mockDb, err := pgxmock.NewPool()
	require.NoError(t, err)
	return mockDb, repository.NewTravelRepository(mockDb)
}

func TestGetByTravelID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		mockDb, repo := setupTravelRepo(t)
		defer mockDb.Close()

		option := mockTravelOption()

		mockDb.ExpectQuery(`SELECT .* FROM travel_options WHERE travel_id = \$1`).
			WithArgs(option.TravelID).
			WillReturnRows(addTravelOptionRow(pgxmock.NewRows(travelOptionColumns), option))

		got, err := repo.GetByTravelID(context.Background(), option.TravelID)
		require.NoError(t, err)
		assert.Equal(t, option.TravelID, got.TravelID)
		assert.Equal(t, models.Cents(29999), got.PriceCents)
		assert.Equal(t, models.TravelTypeFlight, got.TravelType)
	})

	t.Run("not found", func(t *testing.T) {
		mockDb, repo := setupTravelRepo(t)
		defer mockDb.Close()

		mockDb.ExpectQuery(`SELECT .* FROM travel_options WHERE travel_id = \$1`).
			WithArgs("XX0000").
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.GetByTravelID(context.Background(), "XX0000")
		assert.ErrorIs(t, err, models.ErrTravelOptionNotFound)
	})
}

func TestSearch(t *testing.T) {
	t.Run("no filters restricts to active future options", func(t *testing.T) {
		mockDb, repo := setupTravelRepo(t)
		defer mockDb.Close()

		option := mockTravelOption()

		mockDb.ExpectQuery(formatQueryForRegex(
			`SELECT COUNT(*) FROM travel_options WHERE status = 'active' AND departure_at >= CURRENT_DATE`)).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(1))

		mockDb.ExpectQuery(`WHERE status = 'active' AND departure_at >= CURRENT_DATE ORDER BY departure_at, travel_id LIMIT \$1 OFFSET \$2`).
			WithArgs(10, 0).
			WillReturnRows(addTravelOptionRow(pgxmock.NewRows(travelOptionColumns), option))

		got, total, err := repo.Search(context.Background(), models.SearchFilter{}, 10, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, got, 1)
		assert.Equal(t, option.TravelID, got[0].TravelID)
	})

	t.Run("all filters applied", func(t *testing.T) {
		mockDb, repo := setupTravelRepo(t)
		defer mockDb.Close()

		departure := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
		maxPrice := models.Cents(50000)
		filter := models.SearchFilter{
			Source:        "New York",
			Destination:   "Boston",
			DepartureDate: &departure,
			TravelType:    models.TravelTypeFlight,
			MaxPriceCents: &maxPrice,
		}

		mockDb.ExpectQuery(`source ILIKE \$1 AND destination ILIKE \$2 AND departure_at::date = \$3 AND travel_type = \$4 AND price_cents <= \$5`).
			WithArgs("%New York%", "%Boston%", "2026-09-15", "flight", int64(50000)).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(0))

		mockDb.ExpectQuery(`ORDER BY departure_at, travel_id LIMIT \$6 OFFSET \$7`).
			WithArgs("%New York%", "%Boston%", "2026-09-15", "flight", int64(50000), 10, 0).
			WillReturnRows(pgxmock.NewRows(travelOptionColumns))

		got, total, err := repo.Search(context.Background(), filter, 10, 0)
		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, got)
	})

	t.Run("count error", func(t *testing.T) {
		mockDb, repo := setupTravelRepo(t)
		defer mockDb.Close()

		mockDb.ExpectQuery(`SELECT COUNT`).
			WillReturnError(pgx.ErrTxClosed)

		_, _, err := repo.Search(context.Background(), models.SearchFilter{}, 10, 0)
		assert.Error(t, err)
	})
}

func TestCreateTravelOption(t *testing.T) {
	t.Run("inserts with returned timestamps", func(t *testing.T) {
		mockDb, repo := setupTravelRepo(t)
		defer mockDb.Close()

		option := mockTravelOption()
		option.CreatedAt = time.Time{}
		option.UpdatedAt = time.Time{}

		mockDb.ExpectQuery(`INSERT INTO travel_options`).
			WithArgs(
				option.ID, option.TravelID, option.TravelType, option.Source, option.Destination,
				option.DepartureAt, option.ArrivalAt, int64(option.PriceCents),
				option.TotalSeats, option.AvailableSeats, option.Status,
			).
			WillReturnRows(pgxmock.NewRows([]string{"created_at", "updated_at"}).
				AddRow(time.Now().UTC(), time.Now().UTC()))

		err := repo.CreateTravelOption(context.Background(), &option)
		require.NoError(t, err)
		assert.False(t, option.CreatedAt.IsZero())
		assert.False(t, option.UpdatedAt.IsZero())
	})

	t.Run("duplicate travel id", func(t *testing.T) {
		mockDb, repo := setupTravelRepo(t)
		defer mockDb.Close()

		option := mockTravelOption()

		mockDb.ExpectQuery(`INSERT INTO travel_options`).
			WithArgs(
				option.ID, option.TravelID, option.TravelType, option.Source, option.Destination,
				option.DepartureAt, option.ArrivalAt, int64(option.PriceCents),
				option.TotalSeats, option.AvailableSeats, option.Status,
			).
			WillReturnError(&pgconn.PgError{Code: "23505"})

		err := repo.CreateTravelOption(context.Background(), &option)
		assert.ErrorIs(t, err, models.ErrTravelOptionExists)
	})
}

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	models "travelbook/internal"
	"travelbook/internal/repository"
	"travelbook/pkg/config"
)

var cities = []string{
	"New York", "Los Angeles", "Chicago", "Houston", "Phoenix",
	"Philadelphia", "San Antonio", "San Diego", "Dallas", "Seattle",
	"Boston", "Denver", "Miami", "Atlanta", "San Francisco",
}

var travelTypes = []models.TravelType{
	models.TravelTypeFlight,
	models.TravelTypeTrain,
	models.TravelTypeBus,
}

var typePrefix = map[models.TravelType]string{
	models.TravelTypeFlight: "FL",
	models.TravelTypeTrain:  "TR",
	models.TravelTypeBus:    "BU",
}

// priceRangeCents and durations roughly track real fares per mode.
var priceRangeCents = map[models.TravelType][2]int64{
	models.TravelTypeFlight: {10000, 80000},
	models.TravelTypeTrain:  {3000, 25000},
	models.TravelTypeBus:    {1500, 12000},
}

var maxDuration = map[models.TravelType]time.Duration{
	models.TravelTypeFlight: 6 * time.Hour,
	models.TravelTypeTrain:  12 * time.Hour,
	models.TravelTypeBus:    18 * time.Hour,
}

func randomOption(rng *rand.Rand, seq int) *models.TravelOption {
	travelType := travelTypes[rng.Intn(len(travelTypes))]

	src := cities[rng.Intn(len(cities))]
	dst := cities[rng.Intn(len(cities))]
	for dst == src {
		dst = cities[rng.Intn(len(cities))]
	}

	departure := time.Now().UTC().
		AddDate(0, 0, 1+rng.Intn(60)).
		Truncate(time.Hour).
		Add(time.Duration(rng.Intn(24)) * time.Hour)
	duration := time.Hour + time.Duration(rng.Int63n(int64(maxDuration[travelType])))

	bounds := priceRangeCents[travelType]
	price := bounds[0] + rng.Int63n(bounds[1]-bounds[0])

	seats := 20 + rng.Intn(180)

	return &models.TravelOption{
		ID:             uuid.New(),
		TravelID:       fmt.Sprintf("%s%04d", typePrefix[travelType], seq),
		TravelType:     travelType,
		Source:         src,
		Destination:    dst,
		DepartureAt:    departure,
		ArrivalAt:      departure.Add(duration),
		PriceCents:     models.Cents(price),
		TotalSeats:     seats,
		AvailableSeats: seats,
		Status:         models.TravelStatusActive,
	}
}

func main() {
	count := flag.Int("count", 100, "number of travel options to generate")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()

	repo := repository.NewTravelRepository(pool)
	rng := rand.New(rand.NewSource(*seed))

	created := 0
	for i := 1; i <= *count; i++ {
		option := randomOption(rng, i)
		if err := repo.CreateTravelOption(ctx, option); err != nil {
			if errors.Is(err, models.ErrTravelOptionExists) {
				continue
			}
			log.Fatal().Err(err).Str("travel_id", option.TravelID).Msg("failed to insert travel option")
		}
		created++
	}

	log.Info().Int("created", created).Msg("catalog seeded")
}

package usecase

import (
	"errors"
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"

	"boardingpass-service/internal/domain/entity"
)

const (
	flightNumberMin  = 1000
	flightNumberMax  = 9999
	seatRowMax       = 30
	connectionChance = 0.5
	flightPrefixLen  = 2
	flightPrefixRune = 'X'
)

// FlightGenerator produces random flight data from a catalog. It is safe for
// concurrent use; mu guards rng, which is shared by every request.
type FlightGenerator struct {
	catalog entity.Catalog

	mu  sync.Mutex
	rng *rand.Rand
}

// NewFlightGenerator creates a generator over catalog using rng as its only randomness source
func NewFlightGenerator(catalog entity.Catalog, rng *rand.Rand) (*FlightGenerator, error) {
	if len(catalog.Airlines) == 0 {
		return nil, errors.New("catalog has no airlines")
	}
	if len(catalog.Airports) == 0 {
		return nil, errors.New("catalog has no airports")
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return &FlightGenerator{
		catalog: catalog,
		rng:     rng,
	}, nil
}

// Catalog returns the reference data the generator samples from
func (g *FlightGenerator) Catalog() entity.Catalog {
	return g.catalog
}

// PlanBatch picks the airline and route shared by one batch. The connection
// is drawn independently and may equal the destination.
func (g *FlightGenerator) PlanBatch() entity.FlightPlan {
	g.mu.Lock()
	defer g.mu.Unlock()

	plan := entity.FlightPlan{
		Airline:     g.catalog.Airlines[g.rng.IntN(len(g.catalog.Airlines))],
		Origin:      g.catalog.Home,
		Destination: g.catalog.Airports[g.rng.IntN(len(g.catalog.Airports))],
	}

	if g.rng.Float64() < connectionChance {
		connection := g.catalog.Airports[g.rng.IntN(len(g.catalog.Airports))]
		plan.Connection = &connection
	}

	return plan
}

// FlightNumber returns the airline prefix followed by a number in [1000, 9999]
func (g *FlightGenerator) FlightNumber(airline string) string {
	g.mu.Lock()
	num := flightNumberMin + g.rng.IntN(flightNumberMax-flightNumberMin+1)
	g.mu.Unlock()
	return FlightPrefix(airline) + strconv.Itoa(num)
}

// Seat returns the letter for the unit index followed by a row in [1, 30]
func (g *FlightGenerator) Seat(index int) string {
	g.mu.Lock()
	row := 1 + g.rng.IntN(seatRowMax)
	g.mu.Unlock()
	return string(rune('A'+index)) + strconv.Itoa(row)
}

// FlightPrefix is the uppercased first two characters of the airline name.
// Shorter names are padded with 'X'.
func FlightPrefix(airline string) string {
	runes := []rune(strings.ToUpper(strings.TrimSpace(airline)))
	if len(runes) > flightPrefixLen {
		runes = runes[:flightPrefixLen]
	}
	for len(runes) < flightPrefixLen {
		runes = append(runes, flightPrefixRune)
	}
	return string(runes)
}

package repository

import (
	"context"

	"boardingpass-service/internal/domain/entity"
	"boardingpass-service/internal/domain/repository"
)

// HomeAirport is the origin of every issued pass
var HomeAirport = entity.Airport{Name: "Vienna Schwechat Int'l", Code: "VIE"}

// DefaultCatalog is the built-in reference data
func DefaultCatalog() *entity.Catalog {
	return &entity.Catalog{
		Airlines: []string{"Lufthansa", "KLM", "Turkish Airlines", "Qatar Airways", "Emirates"},
		Airports: []entity.Airport{
			{Name: "Budapest Liszt Ferenc Nemzetközi", Code: "BUD"},
			{Name: "London Heathrow", Code: "LHR"},
			{Name: "Paris Charles de Gaulle", Code: "CDG"},
			{Name: "Dubai International", Code: "DXB"},
			{Name: "Frankfurt am Main", Code: "FRA"},
			{Name: "Amsterdam Schiphol", Code: "AMS"},
		},
		Home: HomeAirport,
	}
}

// StaticCatalogRepository serves the built-in catalog
type StaticCatalogRepository struct {
	catalog *entity.Catalog
}

// NewStaticCatalogRepository creates a catalog repository over DefaultCatalog
func NewStaticCatalogRepository() repository.CatalogRepository {
	return &StaticCatalogRepository{catalog: DefaultCatalog()}
}

// LoadCatalog returns a copy of the built-in catalog
func (r *StaticCatalogRepository) LoadCatalog(ctx context.Context) (*entity.Catalog, error) {
	c := *r.catalog
	c.Airlines = append([]string(nil), r.catalog.Airlines...)
	c.Airports = append([]entity.Airport(nil), r.catalog.Airports...)
	return &c, nil
}

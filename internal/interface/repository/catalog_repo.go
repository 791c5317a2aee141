package repository

import (
	"context"
	"fmt"
	"time"

	"boardingpass-service/internal/domain/entity"
	"boardingpass-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormCatalogRepository reads airlines and airport names from PostgreSQL.
// Airport codes are fixed by the caller; only their display names come from the database.
type GormCatalogRepository struct {
	db               *gorm.DB
	destinationCodes []string
	homeCode         string
}

// NewGormCatalogRepository creates a catalog repository backed by the m_airlines
// and m_timezone_list tables
func NewGormCatalogRepository(db *gorm.DB, destinationCodes []string, homeCode string) repository.CatalogRepository {
	return &GormCatalogRepository{
		db:               db,
		destinationCodes: destinationCodes,
		homeCode:         homeCode,
	}
}

// Airlines GORM model for database mapping
type Airlines struct {
	ID        uint           `gorm:"primaryKey"`
	Code      string         `gorm:"column:code;unique"`
	Name      string         `gorm:"column:name;unique"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides the default table name
func (Airlines) TableName() string {
	return "m_airlines"
}

// Timezonelist GORM model, only the airport columns are read
type Timezonelist struct {
	ID          uint   `gorm:"primaryKey"`
	AirportCode string `gorm:"column:airportcode;unique"`
	AirportName string `gorm:"column:airport_name"`
}

// TableName overrides the default table name
func (Timezonelist) TableName() string {
	return "m_timezone_list"
}

// LoadCatalog builds the catalog from the database
func (r *GormCatalogRepository) LoadCatalog(ctx context.Context) (*entity.Catalog, error) {
	var airlines []Airlines
	if err := r.db.WithContext(ctx).Order("name").Find(&airlines).Error; err != nil {
		return nil, fmt.Errorf("failed to load airlines: %w", err)
	}
	if len(airlines) == 0 {
		return nil, fmt.Errorf("airline catalog is empty")
	}

	codes := append([]string{r.homeCode}, r.destinationCodes...)
	var rows []Timezonelist
	if err := r.db.WithContext(ctx).Unscoped().Where("airportcode IN ?", codes).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load airports: %w", err)
	}

	names := make(map[string]string, len(rows))
	for _, row := range rows {
		names[row.AirportCode] = row.AirportName
	}

	catalog := &entity.Catalog{
		Airlines: make([]string, 0, len(airlines)),
		Airports: make([]entity.Airport, 0, len(r.destinationCodes)),
	}
	for _, a := range airlines {
		catalog.Airlines = append(catalog.Airlines, a.Name)
	}

	for _, code := range r.destinationCodes {
		name, ok := names[code]
		if !ok {
			return nil, fmt.Errorf("airport %s not found in m_timezone_list", code)
		}
		catalog.Airports = append(catalog.Airports, entity.Airport{Name: name, Code: code})
	}

	homeName, ok := names[r.homeCode]
	if !ok {
		return nil, fmt.Errorf("home airport %s not found in m_timezone_list", r.homeCode)
	}
	catalog.Home = entity.Airport{Name: homeName, Code: r.homeCode}

	return catalog, nil
}

package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newMockCatalogDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func expectAirlines(mock sqlmock.Sqlmock, names ...string) {
	rows := sqlmock.NewRows([]string{"id", "code", "name"})
	for i, name := range names {
		rows.AddRow(i+1, name[:2], name)
	}
	mock.ExpectQuery(`SELECT \* FROM "m_airlines"`).WillReturnRows(rows)
}

func expectAirports(mock sqlmock.Sqlmock, airports map[string]string) {
	rows := sqlmock.NewRows([]string{"id", "airportcode", "airport_name"})
	id := 1
	for code, name := range airports {
		rows.AddRow(id, code, name)
		id++
	}
	mock.ExpectQuery(`SELECT \* FROM "m_timezone_list" WHERE airportcode IN`).WillReturnRows(rows)
}

func TestGormCatalogRepository_LoadCatalog(t *testing.T) {
	db, mock := newMockCatalogDB(t)
	expectAirlines(mock, "KLM", "Lufthansa")
	expectAirports(mock, map[string]string{
		"VIE": "Vienna Schwechat Int'l",
		"LHR": "London Heathrow",
		"CDG": "Paris Charles de Gaulle",
	})

	repo := NewGormCatalogRepository(db, []string{"LHR", "CDG"}, "VIE")
	catalog, err := repo.LoadCatalog(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"KLM", "Lufthansa"}, catalog.Airlines)
	require.Len(t, catalog.Airports, 2)
	assert.Equal(t, "LHR", catalog.Airports[0].Code)
	assert.Equal(t, "London Heathrow", catalog.Airports[0].Name)
	assert.Equal(t, "CDG", catalog.Airports[1].Code)
	assert.Equal(t, "VIE", catalog.Home.Code)
	assert.Equal(t, "Vienna Schwechat Int'l", catalog.Home.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormCatalogRepository_EmptyAirlines(t *testing.T) {
	db, mock := newMockCatalogDB(t)
	expectAirlines(mock)

	repo := NewGormCatalogRepository(db, []string{"LHR"}, "VIE")
	catalog, err := repo.LoadCatalog(context.Background())

	assert.Nil(t, catalog)
	assert.EqualError(t, err, "airline catalog is empty")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormCatalogRepository_AirportNotFound(t *testing.T) {
	db, mock := newMockCatalogDB(t)
	expectAirlines(mock, "KLM")
	expectAirports(mock, map[string]string{
		"VIE": "Vienna Schwechat Int'l",
		"LHR": "London Heathrow",
	})

	repo := NewGormCatalogRepository(db, []string{"LHR", "DXB"}, "VIE")
	catalog, err := repo.LoadCatalog(context.Background())

	assert.Nil(t, catalog)
	assert.EqualError(t, err, "airport DXB not found in m_timezone_list")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormCatalogRepository_HomeAirportNotFound(t *testing.T) {
	db, mock := newMockCatalogDB(t)
	expectAirlines(mock, "KLM")
	expectAirports(mock, map[string]string{"LHR": "London Heathrow"})

	repo := NewGormCatalogRepository(db, []string{"LHR"}, "VIE")
	_, err := repo.LoadCatalog(context.Background())

	assert.EqualError(t, err, "home airport VIE not found in m_timezone_list")
}

package repository

import (
	"context"

	"boardingpass-service/internal/domain/entity"
)

// CatalogRepository provides the airlines and airports flights are drawn from
type CatalogRepository interface {
	LoadCatalog(ctx context.Context) (*entity.Catalog, error)
}

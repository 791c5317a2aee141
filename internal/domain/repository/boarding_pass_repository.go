package repository

import (
	"context"

	"boardingpass-service/internal/domain/entity"
)

// BoardingPassRepository defines the interface for boarding pass storage
type BoardingPassRepository interface {
	Create(ctx context.Context, pass *entity.BoardingPass) error
	// AttachArtifacts writes pass.QR and pass.Barcode and refreshes pass.UpdatedAt.
	// It fails if the stored pass already has artifacts.
	AttachArtifacts(ctx context.Context, pass *entity.BoardingPass) error
	FindByID(ctx context.Context, id string) (*entity.BoardingPass, error)
	FindAll(ctx context.Context) ([]*entity.BoardingPass, error)
}

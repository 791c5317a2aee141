package repository

import (
	"boardingpass-service/internal/domain/entity"
)

// ArtifactGenerator renders the QR reference and barcode for a pass id
type ArtifactGenerator interface {
	Generate(id string) (*entity.Artifacts, error)
}

package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"boardingpass-service/internal/domain/entity"
	"boardingpass-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const boardingPassCollection = "boarding_passes"

// MongoBoardingPassRepository implements BoardingPassRepository
type MongoBoardingPassRepository struct {
	collection *mongo.Collection
}

// NewMongoBoardingPassRepository creates a new boarding pass repository
func NewMongoBoardingPassRepository(db *mongo.Database) repository.BoardingPassRepository {
	collection := db.Collection(boardingPassCollection)

	// Index on createdAt for the admin listing
	createdAtIndex := mongo.IndexModel{
		Keys: bson.M{"createdAt": -1},
	}
	collection.Indexes().CreateOne(context.Background(), createdAtIndex)

	return &MongoBoardingPassRepository{
		collection: collection,
	}
}

// Create assigns an id and timestamps and inserts the pass
func (r *MongoBoardingPassRepository) Create(ctx context.Context, pass *entity.BoardingPass) error {
	createdAt := now()
	pass.ID = primitive.NewObjectID().Hex()
	pass.CreatedAt = createdAt
	pass.UpdatedAt = createdAt

	if _, err := r.collection.InsertOne(ctx, pass); err != nil {
		pass.ID = ""
		return fmt.Errorf("failed to insert boarding pass: %w", err)
	}
	return nil
}

// AttachArtifacts stores the QR and barcode on a pass that has none yet
func (r *MongoBoardingPassRepository) AttachArtifacts(ctx context.Context, pass *entity.BoardingPass) error {
	updatedAt := now()
	filter := bson.M{
		"_id": pass.ID,
		"qr":  bson.M{"$exists": false},
	}
	update := bson.M{
		"$set": bson.M{
			"qr":        pass.QR,
			"barcode":   pass.Barcode,
			"updatedAt": updatedAt,
		},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update artifacts: %w", err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("no boarding pass without artifacts found with id: %s", pass.ID)
	}

	pass.UpdatedAt = updatedAt
	return nil
}

// FindByID finds a boarding pass by id
func (r *MongoBoardingPassRepository) FindByID(ctx context.Context, id string) (*entity.BoardingPass, error) {
	var pass entity.BoardingPass
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&pass)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrPassNotFound
		}
		return nil, fmt.Errorf("failed to find boarding pass: %w", err)
	}
	return &pass, nil
}

// FindAll returns every pass in natural storage order
func (r *MongoBoardingPassRepository) FindAll(ctx context.Context) ([]*entity.BoardingPass, error) {
	cursor, err := r.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to list boarding passes: %w", err)
	}
	defer cursor.Close(ctx)

	passes := make([]*entity.BoardingPass, 0)
	if err := cursor.All(ctx, &passes); err != nil {
		return nil, fmt.Errorf("failed to decode boarding passes: %w", err)
	}

	return passes, nil
}

// now is truncated to BSON datetime precision so stored and returned passes compare equal
func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

package repository

import (
	"context"
	"testing"
	"time"

	"boardingpass-service/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func newMockPassRepository(mt *mtest.T) *MongoBoardingPassRepository {
	return &MongoBoardingPassRepository{collection: mt.Coll}
}

func namespace(mt *mtest.T) string {
	return mt.Coll.Database().Name() + "." + mt.Coll.Name()
}

func storedPassDoc(id string) bson.D {
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "airline", Value: "Lufthansa"},
		{Key: "flightNumber", Value: "LU1234"},
		{Key: "origin", Value: "VIE"},
		{Key: "destination", Value: "LHR"},
		{Key: "connection", Value: nil},
		{Key: "seat", Value: "A12"},
		{Key: "createdAt", Value: created},
		{Key: "updatedAt", Value: created},
	}
}

func TestMongoBoardingPassRepository_Create(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("assigns id and timestamps", func(mt *mtest.T) {
		repo := newMockPassRepository(mt)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		pass := &entity.BoardingPass{Airline: "Lufthansa", Seat: "A1"}
		require.NoError(mt, repo.Create(context.Background(), pass))

		assert.Len(mt, pass.ID, 24)
		assert.False(mt, pass.CreatedAt.IsZero())
		assert.Equal(mt, pass.CreatedAt, pass.UpdatedAt)
		assert.Equal(mt, pass.CreatedAt, pass.CreatedAt.Truncate(time.Millisecond))
	})

	mt.Run("clears id when insert fails", func(mt *mtest.T) {
		repo := newMockPassRepository(mt)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		pass := &entity.BoardingPass{Airline: "Lufthansa", Seat: "A1"}
		err := repo.Create(context.Background(), pass)

		require.Error(mt, err)
		assert.True(mt, mongo.IsDuplicateKeyError(err))
		assert.Empty(mt, pass.ID)
	})
}

func TestMongoBoardingPassRepository_AttachArtifacts(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("writes artifacts once", func(mt *mtest.T) {
		repo := newMockPassRepository(mt)
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}),
		)

		pass := &entity.BoardingPass{
			ID:      "65f000000000000000000001",
			QR:      "https://quickchart.io/qr?text=65f000000000000000000001&size=200",
			Barcode: "data:image/png;base64,AAAA",
		}
		require.NoError(mt, repo.AttachArtifacts(context.Background(), pass))
		firstUpdate := pass.UpdatedAt
		assert.False(mt, firstUpdate.IsZero())

		err := repo.AttachArtifacts(context.Background(), pass)
		require.Error(mt, err)
		assert.Contains(mt, err.Error(), pass.ID)
		assert.Equal(mt, firstUpdate, pass.UpdatedAt)
	})

	mt.Run("wraps driver errors", func(mt *mtest.T) {
		repo := newMockPassRepository(mt)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Name:    "BadValue",
			Message: "bad update",
		}))

		err := repo.AttachArtifacts(context.Background(), &entity.BoardingPass{ID: "x"})
		require.Error(mt, err)
		assert.Contains(mt, err.Error(), "failed to update artifacts")
	})
}

func TestMongoBoardingPassRepository_FindByID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("not found", func(mt *mtest.T) {
		repo := newMockPassRepository(mt)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch))

		pass, err := repo.FindByID(context.Background(), "65f000000000000000000009")
		assert.Nil(mt, pass)
		assert.ErrorIs(mt, err, entity.ErrPassNotFound)
	})

	mt.Run("found", func(mt *mtest.T) {
		repo := newMockPassRepository(mt)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch,
			storedPassDoc("65f000000000000000000001")))

		pass, err := repo.FindByID(context.Background(), "65f000000000000000000001")
		require.NoError(mt, err)
		assert.Equal(mt, "65f000000000000000000001", pass.ID)
		assert.Equal(mt, "LU1234", pass.FlightNumber)
		assert.Nil(mt, pass.Connection)
		assert.False(mt, pass.HasArtifacts())
	})

	mt.Run("driver error is not a miss", func(mt *mtest.T) {
		repo := newMockPassRepository(mt)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    13,
			Name:    "Unauthorized",
			Message: "not authorized",
		}))

		_, err := repo.FindByID(context.Background(), "65f000000000000000000001")
		require.Error(mt, err)
		assert.NotErrorIs(mt, err, entity.ErrPassNotFound)
	})
}

func TestMongoBoardingPassRepository_FindAll(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("storage order", func(mt *mtest.T) {
		repo := newMockPassRepository(mt)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch,
			storedPassDoc("65f000000000000000000001"),
			storedPassDoc("65f000000000000000000002"),
		))

		passes, err := repo.FindAll(context.Background())
		require.NoError(mt, err)
		require.Len(mt, passes, 2)
		assert.Equal(mt, "65f000000000000000000001", passes[0].ID)
		assert.Equal(mt, "65f000000000000000000002", passes[1].ID)
	})

	mt.Run("empty", func(mt *mtest.T) {
		repo := newMockPassRepository(mt)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch))

		passes, err := repo.FindAll(context.Background())
		require.NoError(mt, err)
		assert.NotNil(mt, passes)
		assert.Empty(mt, passes)
	})
}

package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/sftwrlab/hwlab-backend/internal/resources/domain"
	"github.com/sftwrlab/hwlab-backend/internal/resources/repository"
)

func hwsetDoc(available, allocated int) bson.D {
	return bson.D{
		{Key: "projectId", Value: "p1"},
		{Key: "hwsetId", Value: "HWSet1"},
		{Key: "name", Value: "Arduino Uno Kit"},
		{Key: "total", Value: 15},
		{Key: "allocatedToProject", Value: allocated},
		{Key: "available", Value: available},
	}
}

func TestCheckout(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("applies the conditional update", func(mt *mtest.T) {
		// findAndModify matched: server returns the post-update document.
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: hwsetDoc(7, 8)}))

		repo := repository.NewResourceRepository(mt.DB)
		res, err := repo.Checkout(context.Background(), "p1", "HWSet1", 3)
		require.NoError(t, err)

		assert.Equal(t, 7, res.Available)
		assert.Equal(t, 8, res.Allocated)
	})

	mt.Run("insufficient stock", func(mt *mtest.T) {
		// No document matches the available >= qty filter, but the set exists.
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}),
			mtest.CreateCursorResponse(0, mt.DB.Name()+".resources", mtest.FirstBatch, hwsetDoc(2, 13)),
		)

		repo := repository.NewResourceRepository(mt.DB)
		_, err := repo.Checkout(context.Background(), "p1", "HWSet1", 5)
		assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	})

	mt.Run("unknown hardware set", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}),
			mtest.CreateCursorResponse(0, mt.DB.Name()+".resources", mtest.FirstBatch),
		)

		repo := repository.NewResourceRepository(mt.DB)
		_, err := repo.Checkout(context.Background(), "p1", "HWSet9", 1)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	mt.Run("rejects non-positive quantity", func(mt *mtest.T) {
		repo := repository.NewResourceRepository(mt.DB)

		_, err := repo.Checkout(context.Background(), "p1", "HWSet1", 0)
		assert.Error(t, err)

		_, err = repo.Checkout(context.Background(), "p1", "HWSet1", -2)
		assert.Error(t, err)
	})
}

func TestCheckin(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("applies the conditional update", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: hwsetDoc(15, 0)}))

		repo := repository.NewResourceRepository(mt.DB)
		res, err := repo.Checkin(context.Background(), "p1", "HWSet1", 5)
		require.NoError(t, err)

		assert.Equal(t, 15, res.Available)
		assert.Equal(t, 0, res.Allocated)
	})

	mt.Run("exceeds allocation", func(mt *mtest.T) {
		// No match on allocatedToProject >= qty, but the set exists.
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}),
			mtest.CreateCursorResponse(0, mt.DB.Name()+".resources", mtest.FirstBatch, hwsetDoc(10, 5)),
		)

		repo := repository.NewResourceRepository(mt.DB)
		_, err := repo.Checkin(context.Background(), "p1", "HWSet1", 6)
		assert.ErrorIs(t, err, domain.ErrExceedsAllocation)
	})
}

func TestListByProject(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("decodes every set", func(mt *mtest.T) {
		second := bson.D{
			{Key: "projectId", Value: "p1"},
			{Key: "hwsetId", Value: "HWSet2"},
			{Key: "name", Value: "Raspberry Pi Kit"},
			{Key: "total", Value: 10},
			{Key: "allocatedToProject", Value: 0},
			{Key: "available", Value: 10},
		}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, mt.DB.Name()+".resources", mtest.FirstBatch, hwsetDoc(10, 5), second))

		repo := repository.NewResourceRepository(mt.DB)
		items, err := repo.ListByProject(context.Background(), "p1")
		require.NoError(t, err)

		require.Len(t, items, 2)
		assert.Equal(t, "HWSet1", items[0].HWSetID)
		assert.Equal(t, "HWSet2", items[1].HWSetID)
	})

	mt.Run("empty collection", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, mt.DB.Name()+".resources", mtest.FirstBatch))

		repo := repository.NewResourceRepository(mt.DB)
		items, err := repo.ListByProject(context.Background(), "p1")
		require.NoError(t, err)

		assert.NotNil(t, items)
		assert.Empty(t, items)
	})
}

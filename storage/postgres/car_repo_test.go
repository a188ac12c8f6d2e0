package postgres

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taxipark/pkg/models"
	"taxipark/storage"
)

func TestCarRepoCreateWithDrivers(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	m, err := store.Manufacturer().Create(ctx, &models.Manufacturer{Name: "Test Manufacturer", Country: "Testland"})
	require.NoError(t, err)
	d1 := createDriver(t, store.Driver(), "driver1", "ABC12345")
	d2 := createDriver(t, store.Driver(), "driver2", "XYZ12345")

	car, err := store.Car().Create(ctx, &models.Car{
		Model:          "Test Car",
		ManufacturerID: m.ID,
		DriverIDs:      []int64{d2.ID, d1.ID},
	})
	require.NoError(t, err)

	got, err := store.Car().GetByID(ctx, car.ID)
	require.NoError(t, err)
	assert.Equal(t, "Test Car", got.Model)
	assert.Equal(t, "Test Manufacturer", got.Manufacturer.Name)
	assert.Equal(t, []int64{d1.ID, d2.ID}, got.DriverIDs)
	require.Len(t, got.Drivers, 2)
	assert.Equal(t, "driver1", got.Drivers[0].Username)
}

func TestCarRepoUnknownManufacturer(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Car().Create(context.Background(), &models.Car{Model: "Ghost", ManufacturerID: 999})
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestCarRepoUpdateReplacesDrivers(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	m, err := store.Manufacturer().Create(ctx, &models.Manufacturer{Name: "BMW", Country: "Germany"})
	require.NoError(t, err)
	d1 := createDriver(t, store.Driver(), "driver1", "")
	d2 := createDriver(t, store.Driver(), "driver2", "")

	car, err := store.Car().Create(ctx, &models.Car{Model: "X5", ManufacturerID: m.ID, DriverIDs: []int64{d1.ID}})
	require.NoError(t, err)

	car.Model = "X5 M"
	car.DriverIDs = []int64{d2.ID}
	_, err = store.Car().Update(ctx, car)
	require.NoError(t, err)

	got, err := store.Car().GetByID(ctx, car.ID)
	require.NoError(t, err)
	assert.Equal(t, "X5 M", got.Model)
	assert.Equal(t, []int64{d2.ID}, got.DriverIDs)

	_, err = store.Car().Update(ctx, &models.Car{ID: car.ID + 100, Model: "x", ManufacturerID: m.ID})
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestCarRepoSearchPrefetchesDrivers(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	m, err := store.Manufacturer().Create(ctx, &models.Manufacturer{Name: "TestManufacturer", Country: "TestCountry"})
	require.NoError(t, err)
	d := createDriver(t, store.Driver(), "TestUser", "ABC12345")

	for i := 0; i < 7; i++ {
		_, err := store.Car().Create(ctx, &models.Car{
			Model:          fmt.Sprintf("TestModel%d", i),
			ManufacturerID: m.ID,
			DriverIDs:      []int64{d.ID},
		})
		require.NoError(t, err)
	}

	queries.Reset()
	count, err := store.Car().Count(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 7, count)

	cars, err := store.Car().Search(ctx, "", 5, 0)
	require.NoError(t, err)
	require.Len(t, cars, 5)
	// count, page, drivers of the page
	assert.Equal(t, 3, queries.Count())
	for _, c := range cars {
		assert.Equal(t, "TestManufacturer", c.Manufacturer.Name)
		assert.Equal(t, []int64{d.ID}, c.DriverIDs)
	}

	cars, err = store.Car().Search(ctx, "model6", 5, 0)
	require.NoError(t, err)
	require.Len(t, cars, 1)
	assert.Equal(t, "TestModel6", cars[0].Model)

	byDriver, err := store.Car().GetByDriver(ctx, d.ID)
	require.NoError(t, err)
	assert.Len(t, byDriver, 7)
}

func TestCarRepoToggleDriver(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	m, err := store.Manufacturer().Create(ctx, &models.Manufacturer{Name: "Audi", Country: "Germany"})
	require.NoError(t, err)
	d := createDriver(t, store.Driver(), "me", "")
	car, err := store.Car().Create(ctx, &models.Car{Model: "A4", ManufacturerID: m.ID})
	require.NoError(t, err)

	assigned, err := store.Car().ToggleDriver(ctx, car.ID, d.ID)
	require.NoError(t, err)
	assert.True(t, assigned)

	assigned, err = store.Car().ToggleDriver(ctx, car.ID, d.ID)
	require.NoError(t, err)
	assert.False(t, assigned)

	_, err = store.Car().ToggleDriver(ctx, car.ID+100, d.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestManufacturerDeleteCascadesToCars(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	m, err := store.Manufacturer().Create(ctx, &models.Manufacturer{Name: "Lada", Country: "Russia"})
	require.NoError(t, err)
	car, err := store.Car().Create(ctx, &models.Car{Model: "Niva", ManufacturerID: m.ID})
	require.NoError(t, err)

	require.NoError(t, store.Manufacturer().Delete(ctx, m.ID))

	_, err = store.Car().GetByID(ctx, car.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

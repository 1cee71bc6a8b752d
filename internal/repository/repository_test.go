package repository

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"drinks-marketplace-service/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Seller{},
		&models.Drink{},
		&models.Order{},
		&models.Favorite{},
		&models.Rating{},
	))

	return db
}

func newSeller(userID uuid.UUID, name string) *models.Seller {
	city := "Marrakech"
	return &models.Seller{
		ID:           uuid.New(),
		UserID:       userID,
		BusinessName: name,
		Phone:        "212606060606",
		Address:      "12 Rue des Orangers",
		City:         &city,
		Status:       models.SellerStatusActive,
		IsActive:     true,
	}
}

func TestSellerRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSellerRepository(db)

	seller := newSeller(uuid.New(), "Atay Corner")
	require.NoError(t, repo.Create(seller))

	got, err := repo.GetByID(seller.ID)
	require.NoError(t, err)
	assert.Equal(t, "Atay Corner", got.BusinessName)

	byUser, err := repo.GetByUserID(seller.UserID)
	require.NoError(t, err)
	assert.Equal(t, seller.ID, byUser.ID)
}

func TestSellerRepository_UpdateMissingRow(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSellerRepository(db)

	err := repo.Update(uuid.New(), map[string]interface{}{"business_name": "x"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestSellerRepository_ListFiltersByCity(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSellerRepository(db)

	a := newSeller(uuid.New(), "Atay Corner")
	b := newSeller(uuid.New(), "Casablanca Juice")
	casa := "Casablanca"
	b.City = &casa
	require.NoError(t, repo.Create(a))
	require.NoError(t, repo.Create(b))

	sellers, pagination, err := repo.List(&models.SellerFilters{Cities: []string{"Casablanca"}}, 1, 20)
	require.NoError(t, err)
	require.Len(t, sellers, 1)
	assert.Equal(t, "Casablanca Juice", sellers[0].BusinessName)
	assert.Equal(t, int64(1), pagination.Total)
}

func TestSellerRepository_SoftDeleteHidesRow(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSellerRepository(db)

	seller := newSeller(uuid.New(), "Atay Corner")
	require.NoError(t, repo.Create(seller))
	require.NoError(t, repo.Delete(seller.ID))

	_, err := repo.GetByID(seller.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestSellerRepository_ListNearbyOrdersByDistance(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSellerRepository(db)

	// Marrakech center
	queryLat, queryLon := 31.6295, -7.9811

	near := newSeller(uuid.New(), "Near")
	nearLat, nearLon := 31.63, -7.98
	near.Latitude, near.Longitude = &nearLat, &nearLon

	far := newSeller(uuid.New(), "Far")
	farLat, farLon := 33.5731, -7.5898 // Casablanca
	far.Latitude, far.Longitude = &farLat, &farLon

	noCoords := newSeller(uuid.New(), "NoCoords")

	require.NoError(t, repo.Create(far))
	require.NoError(t, repo.Create(near))
	require.NoError(t, repo.Create(noCoords))

	nearby, err := repo.ListNearby(queryLat, queryLon, 10)
	require.NoError(t, err)
	require.Len(t, nearby, 2)
	assert.Equal(t, "Near", nearby[0].BusinessName)
	assert.Equal(t, "Far", nearby[1].BusinessName)
	assert.Less(t, nearby[0].DistanceKm, 1.0)
	assert.Greater(t, nearby[1].DistanceKm, 100.0)
}

func TestDrinkRepository_ListByCategoryAndSearch(t *testing.T) {
	db := setupTestDB(t)
	sellerRepo := NewSellerRepository(db)
	drinkRepo := NewDrinkRepository(db)

	seller := newSeller(uuid.New(), "Atay Corner")
	require.NoError(t, sellerRepo.Create(seller))

	tea := &models.Drink{ID: uuid.New(), SellerID: seller.ID, Name: "Mint Tea", Category: "hot-drinks", Price: 12, IsAvailable: true}
	juice := &models.Drink{ID: uuid.New(), SellerID: seller.ID, Name: "Orange Juice", Category: "juices", Price: 15, IsAvailable: true}
	require.NoError(t, drinkRepo.Create(tea))
	require.NoError(t, drinkRepo.Create(juice))

	cat := "hot-drinks"
	drinks, _, err := drinkRepo.List(&models.DrinkFilters{Category: &cat}, 1, 20)
	require.NoError(t, err)
	require.Len(t, drinks, 1)
	assert.Equal(t, "Mint Tea", drinks[0].Name)

	search := "juice"
	drinks, _, err = drinkRepo.List(&models.DrinkFilters{Search: &search}, 1, 20)
	require.NoError(t, err)
	require.Len(t, drinks, 1)
	assert.Equal(t, "Orange Juice", drinks[0].Name)
}

func TestFavoriteRepository_ToggleRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFavoriteRepository(db)

	userID, sellerID := uuid.New(), uuid.New()

	favorited, err := repo.Toggle(userID, sellerID)
	require.NoError(t, err)
	assert.True(t, favorited)

	is, err := repo.IsFavorited(userID, sellerID)
	require.NoError(t, err)
	assert.True(t, is)

	favorited, err = repo.Toggle(userID, sellerID)
	require.NoError(t, err)
	assert.False(t, favorited)

	is, err = repo.IsFavorited(userID, sellerID)
	require.NoError(t, err)
	assert.False(t, is)
}

func TestRatingRepository_UpsertAndSummary(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRatingRepository(db)

	sellerID := uuid.New()
	alice, bob := uuid.New(), uuid.New()

	require.NoError(t, repo.Upsert(&models.Rating{ID: uuid.New(), UserID: alice, SellerID: sellerID, Score: 5}))
	require.NoError(t, repo.Upsert(&models.Rating{ID: uuid.New(), UserID: bob, SellerID: sellerID, Score: 3}))

	summary, err := repo.GetSummary(sellerID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), summary.Count)
	assert.InDelta(t, 4.0, summary.Average, 0.001)

	// Re-rating replaces, not duplicates, and the returned row carries
	// the refreshed timestamp and the original identity
	first, err := repo.ListBySeller(sellerID)
	require.NoError(t, err)

	rerated := &models.Rating{ID: uuid.New(), UserID: bob, SellerID: sellerID, Score: 5}
	require.NoError(t, repo.Upsert(rerated))
	assert.False(t, rerated.UpdatedAt.IsZero())
	assert.False(t, rerated.CreatedAt.IsZero())
	assert.NotEqual(t, uuid.Nil, rerated.ID)
	for _, r := range first {
		if r.UserID == bob {
			assert.Equal(t, r.ID, rerated.ID)
		}
	}

	summary, err = repo.GetSummary(sellerID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), summary.Count)
	assert.InDelta(t, 5.0, summary.Average, 0.001)

	ratings, err := repo.ListBySeller(sellerID)
	require.NoError(t, err)
	assert.Len(t, ratings, 2)
}
